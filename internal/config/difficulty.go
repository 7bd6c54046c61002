package config

// ApplyMarblesPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyMarblesPreset(cfg *MarblesConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)
	cfg.Difficulty.Progression = !IsFixedPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.SpeedScale = 0.8
		cfg.Palette.LevelsPerColor = 3
		cfg.Combo.DecaySeconds = 6
	case DifficultyHard:
		cfg.Difficulty.SpeedScale = 1.3
		cfg.Palette.LevelsPerColor = 1
		cfg.Combo.DecaySeconds = 4
	case DifficultyFixed:
		cfg.Difficulty.SpeedScale = 1.0
	}
}

// LevelSpeed returns the chain advance per tick for a level, with the
// difficulty scale and progression applied.
func (c MarblesConfig) LevelSpeed(level int) float64 {
	speed := c.Chain.BaseSpeed
	if c.Difficulty.Progression && level > 1 {
		speed += float64(level-1) * c.Chain.SpeedPerLevel
	}
	scale := c.Difficulty.SpeedScale
	if scale <= 0 {
		scale = 1
	}
	return speed * scale
}

// PaletteSize returns how many colors are active at a level, capped at total.
func (c MarblesConfig) PaletteSize(level, total int) int {
	n := c.Palette.BaseColors
	if c.Palette.LevelsPerColor > 0 {
		n += level / c.Palette.LevelsPerColor
	}
	return max(1, min(n, total))
}

package config

import (
	_ "embed"
)

//go:embed defaults/marbles.yaml
var defaultMarblesYAML []byte

// DefaultMarblesConfig returns the default marbles configuration.
func DefaultMarblesConfig() MarblesConfig {
	return MarblesConfig{
		Board: BoardConfig{
			Width:        320,
			Height:       568,
			RadiusMargin: 20,
		},
		Marble: MarbleConfig{
			HitRadius:      24,
			Spacing:        0.23,
			TouchTolerance: 0.05,
		},
		Chain: ChainConfig{
			BaseSpeed:     0.005,
			SpeedPerLevel: 0.001,
			ClosingSpeed:  0.04,
			InitialCount:  20,
			MaxQueue:      300,
			WaveSeconds:   60,
			WaveTickRate:  60,
		},
		Projectile: ProjectileConfig{
			Speed:        12,
			BoundsMargin: 50,
		},
		Scoring: ScoringConfig{
			ChainMatchPoints: 50,
			ShotMatchPoints:  100,
			MinRun:           3,
		},
		Combo: ComboConfig{
			DecaySeconds: 5,
		},
		Palette: PaletteConfig{
			BaseColors:     3,
			LevelsPerColor: 2,
		},
		Shapes: []ShapePreset{
			{Name: "balanced", InnerRadius: 25, MaxT: 25},
			{Name: "tight", InnerRadius: 15, MaxT: 32},
			{Name: "wide", InnerRadius: 65, MaxT: 18},
			{Name: "very tight", InnerRadius: 10, MaxT: 40},
			{Name: "very wide", InnerRadius: 80, MaxT: 15},
		},
		Difficulty: DifficultyConfig{
			Preset:      string(DifficultyNormal),
			SpeedScale:  1.0,
			Progression: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "marbles":
		return defaultMarblesYAML
	default:
		return nil
	}
}

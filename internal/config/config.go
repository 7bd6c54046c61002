// Package config provides YAML-based game configuration loading and
// difficulty presets for the marbles game.
package config

import (
	"errors"
	"fmt"
)

// MarblesConfig contains all tuning for the marble-chain game.
type MarblesConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Marble     MarbleConfig     `yaml:"marble"`
	Chain      ChainConfig      `yaml:"chain"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Combo      ComboConfig      `yaml:"combo"`
	Palette    PaletteConfig    `yaml:"palette"`
	Shapes     []ShapePreset    `yaml:"shapes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the logical play area. All engine coordinates are in
// board units; the renderer scales them to terminal cells.
type BoardConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	RadiusMargin float64 `yaml:"radius_margin"` // Gap between the outer spiral loop and the board edge
}

// MarbleConfig defines marble size and spacing along the path.
type MarbleConfig struct {
	HitRadius      float64 `yaml:"hit_radius"`      // Projectile collision distance in board units
	Spacing        float64 `yaml:"spacing"`         // Minimum t-difference between neighbours
	TouchTolerance float64 `yaml:"touch_tolerance"` // Extra gap still counted as touching
}

// ChainConfig defines chain motion and the per-level spawn queue.
type ChainConfig struct {
	BaseSpeed     float64 `yaml:"base_speed"`      // t per tick at level 1
	SpeedPerLevel float64 `yaml:"speed_per_level"` // t per tick added each level
	ClosingSpeed  float64 `yaml:"closing_speed"`   // Max t per tick a gap closes by
	InitialCount  int     `yaml:"initial_count"`   // Marbles visible at level start
	MaxQueue      int     `yaml:"max_queue"`       // Cap on total marbles per level
	WaveSeconds   float64 `yaml:"wave_seconds"`    // Seconds of incoming marbles per level
	WaveTickRate  float64 `yaml:"wave_tick_rate"`  // Tick rate the queue length is derived for
}

// ProjectileConfig defines the fired marble.
type ProjectileConfig struct {
	Speed        float64 `yaml:"speed"`         // Board units per tick
	BoundsMargin float64 `yaml:"bounds_margin"` // Distance outside the board before despawn
}

// ScoringConfig defines points per removed marble.
type ScoringConfig struct {
	ChainMatchPoints int `yaml:"chain_match_points"`
	ShotMatchPoints  int `yaml:"shot_match_points"`
	MinRun           int `yaml:"min_run"`
}

// ComboConfig defines the combo streak window.
type ComboConfig struct {
	DecaySeconds float64 `yaml:"decay_seconds"`
}

// PaletteConfig defines how many colors are active per level.
type PaletteConfig struct {
	BaseColors     int `yaml:"base_colors"`
	LevelsPerColor int `yaml:"levels_per_color"`
}

// ShapePreset is one spiral shape. Presets cycle with the level number.
type ShapePreset struct {
	Name        string  `yaml:"name"`
	InnerRadius float64 `yaml:"inner_radius"` // Spiral offset a at t = 0
	MaxT        float64 `yaml:"max_t"`        // Path parameter at the mouth
}

// DifficultyConfig scales the chain speed and palette growth.
type DifficultyConfig struct {
	Preset      string  `yaml:"preset"`
	SpeedScale  float64 `yaml:"speed_scale"` // Multiplier on chain speed
	Progression bool    `yaml:"progression"` // Whether speed grows with level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports configuration values the engine cannot run with.
func (c MarblesConfig) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, errors.New("board width and height must be positive"))
	}
	if c.Marble.Spacing <= 0 {
		errs = append(errs, errors.New("marble spacing must be positive"))
	}
	if c.Marble.HitRadius <= 0 {
		errs = append(errs, errors.New("marble hit_radius must be positive"))
	}
	if c.Chain.BaseSpeed <= 0 {
		errs = append(errs, errors.New("chain base_speed must be positive"))
	}
	if c.Chain.InitialCount < 0 || c.Chain.MaxQueue < c.Chain.InitialCount {
		errs = append(errs, errors.New("chain max_queue must be at least initial_count"))
	}
	if c.Projectile.Speed <= 0 {
		errs = append(errs, errors.New("projectile speed must be positive"))
	}
	if c.Scoring.MinRun < 2 {
		errs = append(errs, errors.New("scoring min_run must be at least 2"))
	}
	if c.Palette.BaseColors < 1 {
		errs = append(errs, errors.New("palette base_colors must be at least 1"))
	}
	if len(c.Shapes) == 0 {
		errs = append(errs, errors.New("at least one shape preset is required"))
	}
	for i, s := range c.Shapes {
		if s.MaxT <= 0 {
			errs = append(errs, fmt.Errorf("shape %d (%s): max_t must be positive", i, s.Name))
		}
	}
	return errors.Join(errs...)
}

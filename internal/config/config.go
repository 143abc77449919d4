// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

import (
	"errors"
	"fmt"
)

// ShooterConfig contains all tunable parameters of the shooter simulation.
// Distances are world units (the playfield is World.Width x World.Height)
// and speeds are world units per tick.
type ShooterConfig struct {
	World        WorldConfig       `yaml:"world"`
	Player       PlayerConfig      `yaml:"player"`
	Projectiles  ProjectileConfig  `yaml:"projectiles"`
	Hostiles     HostileConfig     `yaml:"hostiles"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Effects      EffectConfig      `yaml:"effects"`
	Background   BackgroundConfig  `yaml:"background"`
	Difficulty   DifficultyConfig  `yaml:"difficulty"`
}

// WorldConfig defines the playfield size.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	BottomMargin   float64 `yaml:"bottom_margin"`
	MaxHealth      int     `yaml:"max_health"`
	FireCooldownMS int     `yaml:"fire_cooldown_ms"`
	InvulnerableMS int     `yaml:"invulnerable_ms"`
	ContactDamage  int     `yaml:"contact_damage"`
}

// ProjectileConfig defines bullet size and speeds for both owners.
type ProjectileConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PlayerSpeed  float64 `yaml:"player_speed"`
	HostileSpeed float64 `yaml:"hostile_speed"`
}

// HostileConfig defines where hostiles appear and how difficulty scales them.
type HostileConfig struct {
	SpawnYMin  float64 `yaml:"spawn_y_min"`
	SpawnYMax  float64 `yaml:"spawn_y_max"`
	SpeedScale float64 `yaml:"speed_scale"` // speed multiplier per unit of difficulty factor
}

// CollectibleConfig defines drop chance and pickup effects.
type CollectibleConfig struct {
	Size       float64 `yaml:"size"`
	DriftSpeed float64 `yaml:"drift_speed"`
	DropChance float64 `yaml:"drop_chance"`
	HealAmount int     `yaml:"heal_amount"`
	ScoreBonus int     `yaml:"score_bonus"`
}

// EffectConfig defines explosion lifetimes and sizes.
type EffectConfig struct {
	Frames   int     `yaml:"frames"`
	KillSize float64 `yaml:"kill_size"`
	RamSize  float64 `yaml:"ram_size"`
}

// BackgroundConfig defines the cosmetic starfield.
type BackgroundConfig struct {
	Stars    int     `yaml:"stars"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// DifficultyConfig defines the score-driven level progression.
type DifficultyConfig struct {
	Enabled           bool    `yaml:"enabled"`
	StartLevel        int     `yaml:"start_level"`
	LevelScoreStep    int     `yaml:"level_score_step"`    // level L advances once score > L*step
	FactorStep        float64 `yaml:"factor_step"`         // factor = 1 + (level-1)*step
	BaseSpawnInterval int     `yaml:"base_spawn_interval"` // ticks between spawns at level 1
	SpawnIntervalStep int     `yaml:"spawn_interval_step"`
	MinSpawnInterval  int     `yaml:"min_spawn_interval"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 4
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c ShooterConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Width > c.World.Width:
		return fmt.Errorf("%w: player size must be positive and fit the world", ErrInvalidConfig)
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: player max_health must be positive", ErrInvalidConfig)
	case c.Player.FireCooldownMS < 0 || c.Player.InvulnerableMS < 0:
		return fmt.Errorf("%w: player timers must not be negative", ErrInvalidConfig)
	case c.Hostiles.SpawnYMin > c.Hostiles.SpawnYMax:
		return fmt.Errorf("%w: hostiles spawn_y_min > spawn_y_max", ErrInvalidConfig)
	case c.Collectibles.DropChance < 0 || c.Collectibles.DropChance > 1:
		return fmt.Errorf("%w: collectibles drop_chance must be within [0, 1]", ErrInvalidConfig)
	case c.Effects.Frames <= 0:
		return fmt.Errorf("%w: effects frames must be positive", ErrInvalidConfig)
	case c.Background.Stars < 0:
		return fmt.Errorf("%w: background stars must not be negative", ErrInvalidConfig)
	case c.Background.MinSpeed > c.Background.MaxSpeed:
		return fmt.Errorf("%w: background min_speed > max_speed", ErrInvalidConfig)
	case c.Difficulty.StartLevel < 1:
		return fmt.Errorf("%w: difficulty start_level must be at least 1", ErrInvalidConfig)
	case c.Difficulty.BaseSpawnInterval <= 0 || c.Difficulty.MinSpawnInterval <= 0:
		return fmt.Errorf("%w: spawn intervals must be positive", ErrInvalidConfig)
	case c.Difficulty.LevelScoreStep <= 0:
		return fmt.Errorf("%w: difficulty level_score_step must be positive", ErrInvalidConfig)
	}
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:          50,
			Height:         40,
			Speed:          6,
			BottomMargin:   20,
			MaxHealth:      100,
			FireCooldownMS: 250,
			InvulnerableMS: 2000,
			ContactDamage:  20,
		},
		Projectiles: ProjectileConfig{
			Width:        4,
			Height:       15,
			PlayerSpeed:  10,
			HostileSpeed: 5,
		},
		Hostiles: HostileConfig{
			SpawnYMin:  -100,
			SpawnYMax:  -40,
			SpeedScale: 0.1,
		},
		Collectibles: CollectibleConfig{
			Size:       25,
			DriftSpeed: 2,
			DropChance: 0.15,
			HealAmount: 20,
			ScoreBonus: 50,
		},
		Effects: EffectConfig{
			Frames:   20,
			KillSize: 50,
			RamSize:  60,
		},
		Background: BackgroundConfig{
			Stars:    100,
			MinSpeed: 0.5,
			MaxSpeed: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			StartLevel:        1,
			LevelScoreStep:    500,
			FactorStep:        0.2,
			BaseSpawnInterval: 60,
			SpawnIntervalStep: 5,
			MinSpawnInterval:  20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter":
		return defaultShooterYAML
	default:
		return nil
	}
}

package config

import (
	"math"
	"testing"
)

func TestDifficultyFactor(t *testing.T) {
	d := NewDifficultyManager(DefaultShooterConfig().Difficulty)

	tests := []struct {
		level    int
		expected float64
	}{
		{1, 1.0},
		{2, 1.2},
		{3, 1.4},
		{6, 2.0},
	}

	for _, tc := range tests {
		if got := d.Factor(tc.level); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Factor(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestDifficultySpawnInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultShooterConfig().Difficulty)

	tests := []struct {
		level    int
		expected int
	}{
		{1, 60},
		{2, 50},
		{3, 45},
		{8, 20},
		{20, 20},
	}

	for _, tc := range tests {
		if got := d.SpawnInterval(tc.level); got != tc.expected {
			t.Errorf("SpawnInterval(%d) = %d, expected %d", tc.level, got, tc.expected)
		}
	}
}

func TestDifficultyShouldAdvance(t *testing.T) {
	d := NewDifficultyManager(DefaultShooterConfig().Difficulty)

	if d.ShouldAdvance(1, 500) {
		t.Error("ShouldAdvance(1, 500) = true, expected false (threshold is strict)")
	}
	if !d.ShouldAdvance(1, 501) {
		t.Error("ShouldAdvance(1, 501) = false, expected true")
	}
	if d.ShouldAdvance(2, 1000) {
		t.Error("ShouldAdvance(2, 1000) = true, expected false")
	}

	cfg := DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyFixed)
	if NewDifficultyManager(cfg.Difficulty).ShouldAdvance(1, 10000) {
		t.Error("ShouldAdvance should be false when progression is disabled")
	}
}

func TestDifficultyStartLevel(t *testing.T) {
	cfg := DefaultShooterConfig().Difficulty
	cfg.StartLevel = 0
	if got := NewDifficultyManager(cfg).StartLevel(); got != 1 {
		t.Errorf("StartLevel() = %d, expected 1", got)
	}

	cfg.StartLevel = 4
	if got := NewDifficultyManager(cfg).StartLevel(); got != 4 {
		t.Errorf("StartLevel() = %d, expected 4", got)
	}
}

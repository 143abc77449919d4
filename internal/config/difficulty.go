package config

// DifficultyManager calculates level-dependent game parameters.
// It is stateless; the current level lives with the caller.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// StartLevel returns the level a new run begins at (never below 1).
func (d *DifficultyManager) StartLevel() int {
	if d.cfg.StartLevel < 1 {
		return 1
	}
	return d.cfg.StartLevel
}

// ShouldAdvance reports whether a run at level with the given score earns the next level.
// The comparison is strict: exactly level*step does not advance.
func (d *DifficultyManager) ShouldAdvance(level, score int) bool {
	if !d.IsEnabled() {
		return false
	}
	return score > level*d.cfg.LevelScoreStep
}

// Factor returns the speed factor for a level: 1 + (level-1)*step.
func (d *DifficultyManager) Factor(level int) float64 {
	return 1 + float64(level-1)*d.cfg.FactorStep
}

// SpawnInterval returns the ticks between hostile spawns at a level.
// Level 1 uses the base interval; later levels use max(min, base - level*step).
func (d *DifficultyManager) SpawnInterval(level int) int {
	if level <= 1 {
		return d.cfg.BaseSpawnInterval
	}
	interval := d.cfg.BaseSpawnInterval - level*d.cfg.SpawnIntervalStep
	if interval < d.cfg.MinSpawnInterval {
		interval = d.cfg.MinSpawnInterval
	}
	return interval
}

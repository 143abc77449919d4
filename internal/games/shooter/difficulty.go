package shooter

import "github.com/vovakirdan/tui-shooter/internal/config"

// Difficulty is the score-driven level state of a run.
type Difficulty struct {
	Level         int
	Factor        float64
	SpawnInterval int

	mgr *config.DifficultyManager
}

// NewDifficulty returns the state for a fresh run.
func NewDifficulty(cfg config.DifficultyConfig) Difficulty {
	mgr := config.NewDifficultyManager(cfg)
	level := mgr.StartLevel()
	return Difficulty{
		Level:         level,
		Factor:        mgr.Factor(level),
		SpawnInterval: mgr.SpawnInterval(level),
		mgr:           mgr,
	}
}

// Recompute advances at most one level for the given score and reports
// whether the level changed. Levels never decrease.
func (d *Difficulty) Recompute(score int) bool {
	if !d.mgr.ShouldAdvance(d.Level, score) {
		return false
	}
	d.Level++
	d.Factor = d.mgr.Factor(d.Level)
	d.SpawnInterval = d.mgr.SpawnInterval(d.Level)
	return true
}

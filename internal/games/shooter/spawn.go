package shooter

// Random is the subset of *rand.Rand the simulation draws from.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// uniform returns a value in [lo, hi).
func uniform(rng Random, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// SpawnDirector decides when hostiles appear and whether a kill drops a collectible.
type SpawnDirector struct {
	counter    int
	dropChance float64
}

// NewSpawnDirector creates a director with the given collectible drop chance.
func NewSpawnDirector(dropChance float64) *SpawnDirector {
	return &SpawnDirector{dropChance: dropChance}
}

// Tick advances the frame counter and reports whether a hostile is due.
// The counter resets whenever it reaches interval.
func (s *SpawnDirector) Tick(interval int) bool {
	s.counter++
	if s.counter >= interval {
		s.counter = 0
		return true
	}
	return false
}

// Counter returns the frames elapsed since the last spawn.
func (s *SpawnDirector) Counter() int {
	return s.counter
}

// RollDrop reports whether a destroyed hostile leaves a collectible behind.
func (s *SpawnDirector) RollDrop(rng Random) bool {
	return rng.Float64() < s.dropChance
}

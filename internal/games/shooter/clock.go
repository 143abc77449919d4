package shooter

import "time"

// Clock supplies simulation timestamps as offsets from an arbitrary epoch.
// Cooldowns and invulnerability compare these values, never wall time.
type Clock interface {
	Now() time.Duration
}

// TickClock is a Clock that advances a fixed amount per simulation tick.
type TickClock struct {
	now  time.Duration
	step time.Duration
}

// NewTickClock creates a clock advancing 1/tickRate seconds per tick.
func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{step: time.Second / time.Duration(tickRate)}
}

// Now returns the current simulation time.
func (c *TickClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.now += c.step
}

// Step returns the duration of one tick.
func (c *TickClock) Step() time.Duration {
	return c.step
}

package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// TickReport summarises what happened during one simulation tick.
type TickReport struct {
	Shots   int  // projectiles fired by the player
	Kills   int  // hostiles destroyed by projectiles
	Hits    int  // hostiles that rammed the player
	Pickups int  // collectibles picked up
	Spawned bool // a hostile entered the world
	LevelUp bool
	Fatal   bool // the player's health reached zero this tick
}

// World owns every entity of a run and the run's scalar state.
// Nothing else mutates it; entities never reference it.
type World struct {
	Player       *Player
	Projectiles  []*Projectile
	Hostiles     []*Hostile
	Collectibles []*Collectible
	Effects      []*Effect
	Score        int
	Kills        int
	Ticks        uint64
	Difficulty   Difficulty

	cfg     config.ShooterConfig
	spawner *SpawnDirector
	rng     Random
	dead    bool // fatal damage already reported
}

// NewWorld creates the state of a fresh run.
func NewWorld(cfg config.ShooterConfig, rng Random) *World {
	return &World{
		Player:     NewPlayer(cfg),
		Difficulty: NewDifficulty(cfg.Difficulty),
		cfg:        cfg,
		spawner:    NewSpawnDirector(cfg.Collectibles.DropChance),
		rng:        rng,
	}
}

// Tick advances the run by one frame: steer and fire, move everything,
// spawn, resolve collisions, update difficulty, then purge the dead.
func (w *World) Tick(now time.Duration, dir Direction, fire bool) TickReport {
	var report TickReport
	w.Ticks++

	w.Player.Move(dir)
	if fire {
		shots := w.Player.Fire(now)
		w.Projectiles = append(w.Projectiles, shots...)
		report.Shots = len(shots)
	}

	w.Player.Update(now)
	for _, p := range w.Projectiles {
		p.Update()
	}
	for _, h := range w.Hostiles {
		h.Update(w.Difficulty.Factor)
	}
	for _, c := range w.Collectibles {
		c.Update()
	}
	for _, e := range w.Effects {
		e.Update()
	}

	if w.spawner.Tick(w.Difficulty.SpawnInterval) {
		w.Hostiles = append(w.Hostiles, SpawnHostile(w.rng, w.cfg))
		report.Spawned = true
	}

	w.resolveCollisions(now, &report)

	report.LevelUp = w.Difficulty.Recompute(w.Score)

	w.purge()
	return report
}

// AddHostile inserts a hostile directly, bypassing the spawn director.
func (w *World) AddHostile(h *Hostile) {
	w.Hostiles = append(w.Hostiles, h)
}

// AddCollectible inserts a collectible directly.
func (w *World) AddCollectible(c *Collectible) {
	w.Collectibles = append(w.Collectibles, c)
}

// FireFromHostile launches a downward projectile from the hostile's bottom centre.
// Hostile projectiles move and expire but do not collide with the player.
func (w *World) FireFromHostile(h *Hostile) *Projectile {
	p := NewHostileProjectile(h.Box.CenterX(), h.Box.Bottom(), w.cfg.Projectiles, w.cfg.World.Height)
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.ShooterConfig {
	return w.cfg
}

// purge drops every entity marked dead during the tick.
func (w *World) purge() {
	w.Projectiles = filterAlive(w.Projectiles, func(p *Projectile) bool { return !p.Dead })
	w.Hostiles = filterAlive(w.Hostiles, func(h *Hostile) bool { return !h.Dead })
	w.Collectibles = filterAlive(w.Collectibles, func(c *Collectible) bool { return !c.Dead })
	w.Effects = filterAlive(w.Effects, func(e *Effect) bool { return !e.Dead })
}

// filterAlive compacts s in place, keeping elements for which alive is true.
func filterAlive[T any](s []T, alive func(T) bool) []T {
	n := 0
	for _, v := range s {
		if alive(v) {
			s[n] = v
			n++
		}
	}
	clear(s[n:])
	return s[:n]
}

package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// HostileView is the render-facing copy of a hostile.
type HostileView struct {
	Box       core.RectF
	Variant   Variant
	HitPoints int
}

// ProjectileView is the render-facing copy of a projectile.
type ProjectileView struct {
	Box   core.RectF
	Owner Owner
}

// CollectibleView is the render-facing copy of a collectible.
type CollectibleView struct {
	Box  core.RectF
	Kind Kind
}

// EffectView is the render-facing copy of an explosion.
type EffectView struct {
	X, Y   float64
	Radius float64
	Alpha  int
	Color  core.Color
}

// Snapshot is the complete per-tick state handed to the renderer.
// Uses value types only so it can be compared and hashed.
type Snapshot struct {
	Tick          uint64
	Mode          Mode
	Score         int
	HighScore     int
	Kills         int
	Level         int
	Factor        float64
	SpawnInterval int

	Player        core.RectF
	PlayerVisible bool
	Health        int
	MaxHealth     int
	WeaponTier    int
	Invulnerable  bool

	Hostiles     []HostileView
	Projectiles  []ProjectileView
	Collectibles []CollectibleView
	Effects      []EffectView
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	p := w.Player

	snap := Snapshot{
		Tick:          w.Ticks,
		Mode:          g.mode,
		Score:         w.Score,
		HighScore:     g.highScore,
		Kills:         w.Kills,
		Level:         w.Difficulty.Level,
		Factor:        w.Difficulty.Factor,
		SpawnInterval: w.Difficulty.SpawnInterval,

		Player:        p.Box,
		PlayerVisible: p.Visible(g.clock.Now()),
		Health:        p.Health,
		MaxHealth:     p.MaxHealth,
		WeaponTier:    p.WeaponTier,
		Invulnerable:  p.Invulnerable,

		Hostiles:     make([]HostileView, 0, len(w.Hostiles)),
		Projectiles:  make([]ProjectileView, 0, len(w.Projectiles)),
		Collectibles: make([]CollectibleView, 0, len(w.Collectibles)),
		Effects:      make([]EffectView, 0, len(w.Effects)),
	}

	for _, h := range w.Hostiles {
		snap.Hostiles = append(snap.Hostiles, HostileView{Box: h.Box, Variant: h.Variant, HitPoints: h.HitPoints})
	}
	for _, pr := range w.Projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{Box: pr.Box, Owner: pr.Owner})
	}
	for _, c := range w.Collectibles {
		snap.Collectibles = append(snap.Collectibles, CollectibleView{Box: c.Box, Kind: c.Kind})
	}
	for _, e := range w.Effects {
		snap.Effects = append(snap.Effects, EffectView{X: e.X, Y: e.Y, Radius: e.Radius(), Alpha: e.Alpha(), Color: e.Color()})
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixI := func(i int) { mix(uint64(i)) } //#nosec G115 -- hash computation
	mixBox := func(r core.RectF) {
		mixF(r.X)
		mixF(r.Y)
		mixF(r.W)
		mixF(r.H)
	}

	mixI(int(snap.Mode))
	mixI(snap.Score)
	mixI(snap.HighScore)
	mixI(snap.Kills)
	mixI(snap.Level)
	mixF(snap.Factor)
	mixI(snap.SpawnInterval)
	mixBox(snap.Player)
	mixI(snap.Health)
	mixI(snap.WeaponTier)

	for _, v := range snap.Hostiles {
		mixBox(v.Box)
		mixI(int(v.Variant))
		mixI(v.HitPoints)
	}
	for _, v := range snap.Projectiles {
		mixBox(v.Box)
		mixI(int(v.Owner))
	}
	for _, v := range snap.Collectibles {
		mixBox(v.Box)
		mixI(int(v.Kind))
	}
	for _, v := range snap.Effects {
		mixF(v.X)
		mixF(v.Y)
		mixI(v.Alpha)
	}

	return h
}

package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Owner identifies who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerHostile
)

// Projectile is a bullet travelling vertically at a fixed speed.
type Projectile struct {
	Box   core.RectF
	VY    float64
	Owner Owner
	Dead  bool

	floor float64
}

// newProjectile places a projectile with its bottom-centre at (x, y).
func newProjectile(x, y, vy float64, owner Owner, cfg config.ProjectileConfig, floor float64) *Projectile {
	return &Projectile{
		Box:   core.NewRectF(x-cfg.Width/2, y-cfg.Height, cfg.Width, cfg.Height),
		VY:    vy,
		Owner: owner,
		floor: floor,
	}
}

// NewPlayerProjectile creates an upward player bullet.
func NewPlayerProjectile(x, y float64, cfg config.ProjectileConfig, floor float64) *Projectile {
	return newProjectile(x, y, -cfg.PlayerSpeed, OwnerPlayer, cfg, floor)
}

// NewHostileProjectile creates a downward hostile bullet.
func NewHostileProjectile(x, y float64, cfg config.ProjectileConfig, floor float64) *Projectile {
	return newProjectile(x, y, cfg.HostileSpeed, OwnerHostile, cfg, floor)
}

// Update moves the projectile and marks it dead once fully off screen.
func (p *Projectile) Update() {
	p.Box = p.Box.Translate(0, p.VY)
	if p.Box.Bottom() < 0 || p.Box.Y > p.floor {
		p.Dead = true
	}
}

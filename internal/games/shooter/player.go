package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// MaxWeaponTier is the highest weapon tier a ship can reach.
const MaxWeaponTier = 3

// Direction is the lateral steering intent for one tick.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// Player is the player-controlled ship.
type Player struct {
	Box        core.RectF
	VX         float64
	Health     int
	MaxHealth  int
	WeaponTier int

	// Invulnerable is set by ApplyDamage and cleared by Update once
	// the window has elapsed.
	Invulnerable      bool
	InvulnerableUntil time.Duration

	speed        float64
	worldW       float64
	cooldown     time.Duration
	invulnWindow time.Duration
	lastFire     time.Duration
	hasFired     bool
	hitAt        time.Duration
	shot         config.ProjectileConfig
	floor        float64
}

// NewPlayer creates a ship centred horizontally near the bottom of the world.
func NewPlayer(cfg config.ShooterConfig) *Player {
	pc := cfg.Player
	return &Player{
		Box: core.NewRectF(
			cfg.World.Width/2-pc.Width/2,
			cfg.World.Height-pc.BottomMargin-pc.Height,
			pc.Width, pc.Height,
		),
		Health:       pc.MaxHealth,
		MaxHealth:    pc.MaxHealth,
		WeaponTier:   1,
		speed:        pc.Speed,
		worldW:       cfg.World.Width,
		cooldown:     time.Duration(pc.FireCooldownMS) * time.Millisecond,
		invulnWindow: time.Duration(pc.InvulnerableMS) * time.Millisecond,
		shot:         cfg.Projectiles,
		floor:        cfg.World.Height,
	}
}

// Move sets the lateral velocity for the next update.
func (p *Player) Move(dir Direction) {
	switch dir {
	case DirLeft:
		p.VX = -p.speed
	case DirRight:
		p.VX = p.speed
	default:
		p.VX = 0
	}
}

// Update applies velocity, keeps the ship inside the world and expires invulnerability.
func (p *Player) Update(now time.Duration) {
	p.Box.X = core.ClampF(p.Box.X+p.VX, 0, p.worldW-p.Box.W)

	if p.Invulnerable && now >= p.InvulnerableUntil {
		p.Invulnerable = false
	}
}

// Fire returns the projectiles for the current weapon tier, or nil while the
// cooldown since the last successful shot has not elapsed.
func (p *Player) Fire(now time.Duration) []*Projectile {
	if p.hasFired && now-p.lastFire < p.cooldown {
		return nil
	}
	p.lastFire = now
	p.hasFired = true

	b := p.Box
	switch p.WeaponTier {
	case 1:
		return []*Projectile{
			NewPlayerProjectile(b.CenterX(), b.Y, p.shot, p.floor),
		}
	case 2:
		return []*Projectile{
			NewPlayerProjectile(b.X, b.Y, p.shot, p.floor),
			NewPlayerProjectile(b.Right(), b.Y, p.shot, p.floor),
		}
	default:
		return []*Projectile{
			NewPlayerProjectile(b.CenterX(), b.Y, p.shot, p.floor),
			NewPlayerProjectile(b.X, b.CenterY(), p.shot, p.floor),
			NewPlayerProjectile(b.Right(), b.CenterY(), p.shot, p.floor),
		}
	}
}

// shielded reports whether damage at now falls inside an open invulnerability window.
// A hit at the same timestamp as the one that opened the window still lands.
func (p *Player) shielded(now time.Duration) bool {
	return p.Invulnerable && now > p.hitAt && now < p.InvulnerableUntil
}

// ApplyDamage subtracts health unless the ship is shielded and opens a new
// invulnerability window. It returns true when health has reached zero.
func (p *Player) ApplyDamage(amount int, now time.Duration) bool {
	if p.shielded(now) {
		return false
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.Invulnerable = true
	p.hitAt = now
	p.InvulnerableUntil = now + p.invulnWindow
	return p.Health <= 0
}

// Heal restores health up to the maximum.
func (p *Player) Heal(amount int) {
	p.Health = core.Min(p.Health+amount, p.MaxHealth)
}

// UpgradeWeapon raises the weapon tier, capped at MaxWeaponTier.
func (p *Player) UpgradeWeapon() {
	p.WeaponTier = core.Min(p.WeaponTier+1, MaxWeaponTier)
}

// Visible reports whether the ship is drawn this frame; it blinks while invulnerable.
func (p *Player) Visible(now time.Duration) bool {
	if !p.Invulnerable {
		return true
	}
	return now%(200*time.Millisecond) < 100*time.Millisecond
}

package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Kind is the type of a collectible.
type Kind int

const (
	KindHealth Kind = iota
	KindPowerUp
	KindScore
	kindCount
)

// Glyph returns the display character for a collectible kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindHealth:
		return '+'
	case KindPowerUp:
		return 'P'
	case KindScore:
		return '$'
	default:
		return '?'
	}
}

// Color returns the display colour for a collectible kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindHealth:
		return core.ColorGreen
	case KindPowerUp:
		return core.ColorBrightMagenta
	default:
		return core.ColorYellow
	}
}

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindHealth:
		return "health"
	case KindPowerUp:
		return "power"
	case KindScore:
		return "score"
	default:
		return "unknown"
	}
}

// Collectible is a pickup drifting down from a destroyed hostile.
type Collectible struct {
	Kind  Kind
	Box   core.RectF
	Speed float64
	Dead  bool

	floor float64
}

// NewCollectible creates a collectible of the given kind centred on (cx, cy).
func NewCollectible(k Kind, cx, cy float64, cfg config.ShooterConfig) *Collectible {
	size := cfg.Collectibles.Size
	return &Collectible{
		Kind:  k,
		Box:   core.RectFromCenter(cx, cy, size, size),
		Speed: cfg.Collectibles.DriftSpeed,
		floor: cfg.World.Height,
	}
}

// SpawnCollectible picks a kind uniformly.
func SpawnCollectible(rng Random, cx, cy float64, cfg config.ShooterConfig) *Collectible {
	return NewCollectible(Kind(rng.Intn(int(kindCount))), cx, cy, cfg)
}

// Update drifts down and expires below the bottom edge.
func (c *Collectible) Update() {
	c.Box = c.Box.Translate(0, c.Speed)
	if c.Box.Y > c.floor {
		c.Dead = true
	}
}

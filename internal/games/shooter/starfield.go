package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// Star is one background point scrolling down the screen.
type Star struct {
	X, Y       float64
	Speed      float64
	Size       int // 1 or 2
	Brightness int // 100..255
}

// Starfield is the cosmetic scrolling background. It draws from its own RNG
// so it never perturbs the simulation's random sequence.
type Starfield struct {
	stars  []Star
	rng    *rand.Rand
	width  float64
	height float64
}

// NewStarfield scatters cfg.Background.Stars stars across the world.
func NewStarfield(cfg config.ShooterConfig, seed int64) *Starfield {
	sf := &Starfield{
		rng:    rand.New(rand.NewSource(seed)), //#nosec G404 -- cosmetic randomness
		width:  cfg.World.Width,
		height: cfg.World.Height,
	}
	bg := cfg.Background
	sf.stars = make([]Star, bg.Stars)
	for i := range sf.stars {
		sf.stars[i] = Star{
			X:          sf.rng.Float64() * sf.width,
			Y:          sf.rng.Float64() * sf.height,
			Speed:      uniform(sf.rng, bg.MinSpeed, bg.MaxSpeed),
			Size:       1 + sf.rng.Intn(2),
			Brightness: 100 + sf.rng.Intn(156),
		}
	}
	return sf
}

// Update scrolls every star; stars leaving the bottom wrap to the top at a new x.
func (sf *Starfield) Update() {
	for i := range sf.stars {
		s := &sf.stars[i]
		s.Y += s.Speed
		if s.Y > sf.height {
			s.Y = 0
			s.X = sf.rng.Float64() * sf.width
		}
	}
}

// Stars returns the current stars. The slice must not be modified.
func (sf *Starfield) Stars() []Star {
	return sf.stars
}

package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Variant is a hostile class, fixed at spawn.
type Variant int

const (
	VariantBasic Variant = iota
	VariantFast
	VariantTank
	variantCount
)

// VariantTraits holds the constant attributes of a hostile variant.
type VariantTraits struct {
	Name       string
	MinSpeed   float64
	MaxSpeed   float64
	HitPoints  int
	ScoreValue int
	Width      float64
	Height     float64
	Glyph      rune
	Color      core.Color
}

var variantTraits = [variantCount]VariantTraits{
	VariantBasic: {Name: "basic", MinSpeed: 2, MaxSpeed: 3, HitPoints: 1, ScoreValue: 10, Width: 40, Height: 35, Glyph: 'V', Color: core.ColorRed},
	VariantFast:  {Name: "fast", MinSpeed: 4, MaxSpeed: 6, HitPoints: 1, ScoreValue: 15, Width: 35, Height: 30, Glyph: 'v', Color: core.ColorOrange},
	VariantTank:  {Name: "tank", MinSpeed: 1, MaxSpeed: 2, HitPoints: 3, ScoreValue: 25, Width: 50, Height: 45, Glyph: 'W', Color: core.ColorMagenta},
}

// Traits returns the constant table entry for the variant.
func (v Variant) Traits() VariantTraits {
	if v < 0 || v >= variantCount {
		return variantTraits[VariantBasic]
	}
	return variantTraits[v]
}

// String returns the variant name.
func (v Variant) String() string {
	return v.Traits().Name
}

// Hostile is an enemy ship descending the screen.
type Hostile struct {
	Variant   Variant
	Box       core.RectF
	Speed     float64 // base speed, before difficulty scaling
	HitPoints int
	Dead      bool

	speedScale float64
	floor      float64
}

// NewHostile creates a hostile of the given variant at (x, y) with a base speed.
func NewHostile(v Variant, x, y, speed float64, cfg config.ShooterConfig) *Hostile {
	tr := v.Traits()
	return &Hostile{
		Variant:    v,
		Box:        core.NewRectF(x, y, tr.Width, tr.Height),
		Speed:      speed,
		HitPoints:  tr.HitPoints,
		speedScale: cfg.Hostiles.SpeedScale,
		floor:      cfg.World.Height,
	}
}

// SpawnHostile rolls a variant, position and speed from rng.
func SpawnHostile(rng Random, cfg config.ShooterConfig) *Hostile {
	v := Variant(rng.Intn(int(variantCount)))
	tr := v.Traits()
	x := rng.Float64() * (cfg.World.Width - tr.Width)
	y := uniform(rng, cfg.Hostiles.SpawnYMin, cfg.Hostiles.SpawnYMax)
	speed := uniform(rng, tr.MinSpeed, tr.MaxSpeed)
	return NewHostile(v, x, y, speed, cfg)
}

// Update descends by the base speed scaled by the difficulty factor.
// A hostile that leaves the bottom edge dies without awarding score.
func (h *Hostile) Update(factor float64) {
	h.Box = h.Box.Translate(0, h.Speed*(1+factor*h.speedScale))
	if h.Box.Y > h.floor {
		h.Dead = true
	}
}

// RegisterHit removes one hit point and reports whether the hostile is destroyed.
func (h *Hostile) RegisterHit() bool {
	h.HitPoints--
	return h.HitPoints <= 0
}

// ScoreValue returns the points awarded for destroying this hostile.
func (h *Hostile) ScoreValue() int {
	return h.Variant.Traits().ScoreValue
}

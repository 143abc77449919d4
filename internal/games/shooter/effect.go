package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// explosionColors cycles per frame.
var explosionColors = [...]core.Color{core.ColorOrange, core.ColorYellow, core.ColorRed}

// Effect is a short-lived explosion. It has no gameplay influence.
type Effect struct {
	X, Y      float64 // centre
	Size      float64
	Frame     int
	MaxFrames int
	Dead      bool
}

// NewEffect creates an explosion centred on (x, y).
func NewEffect(x, y, size float64, frames int) *Effect {
	return &Effect{X: x, Y: y, Size: size, MaxFrames: frames}
}

// Update advances one frame and expires the effect at MaxFrames.
func (e *Effect) Update() {
	e.Frame++
	if e.Frame >= e.MaxFrames {
		e.Dead = true
	}
}

// Progress returns the animation progress in [0, 1].
func (e *Effect) Progress() float64 {
	if e.MaxFrames <= 0 {
		return 1
	}
	return float64(e.Frame) / float64(e.MaxFrames)
}

// Alpha returns the fade-out opacity in [0, 255].
func (e *Effect) Alpha() int {
	return int(255 * (1 - e.Progress()))
}

// Radius returns the current drawn radius: the bounding size grows by half
// while the circle inside it shrinks by up to 30%.
func (e *Effect) Radius() float64 {
	p := e.Progress()
	current := e.Size * (1 + p*0.5)
	return current / 2 * (1 - p*0.3)
}

// Color returns the frame colour.
func (e *Effect) Color() core.Color {
	return explosionColors[e.Frame%len(explosionColors)]
}

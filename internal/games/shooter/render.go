package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Minimum terminal size the shooter renders in.
const (
	MinScreenW = 40
	MinScreenH = 15
)

// Display characters.
const (
	PlayerFill       = '▲'
	PlayerNose       = '^'
	PlayerShotChar   = '|'
	HostileShotChar  = '!'
	HealthBarFull    = '█'
	HealthBarEmpty   = '░'
	healthBarWidth   = 10
	hudHeight        = 1
	starDim          = '.'
	starBright       = '+'
	starBrightCutoff = 200
)

// viewport maps world units onto the screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
	field  core.Rect // playfield cells
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	h := dst.Height() - hudHeight
	return viewport{
		sx:    float64(dst.Width()) / worldW,
		sy:    float64(h) / worldH,
		top:   hudHeight,
		field: core.NewRect(0, hudHeight, dst.Width(), h),
	}
}

// cell converts a world point to a screen cell.
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), v.top + int(math.Floor(y*v.sy))
}

// span converts a world box to a cell rectangle that is at least one cell in size.
func (v viewport) span(r core.RectF) core.Rect {
	x0, y0 := v.cell(r.X, r.Y)
	x1, y1 := v.cell(r.Right(), r.Bottom())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// inField reports whether a cell is inside the playfield.
func (v viewport) inField(x, y int) bool {
	return v.field.Contains(x, y)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}
	if g.world == nil {
		return
	}

	snap := g.Snapshot()
	vp := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)

	g.renderStars(dst, vp)

	if snap.Mode == ModeMenu {
		g.renderMenu(dst, &snap)
		return
	}

	renderCollectibles(dst, vp, snap.Collectibles)
	renderHostiles(dst, vp, snap.Hostiles)
	renderProjectiles(dst, vp, snap.Projectiles)
	if snap.PlayerVisible {
		renderPlayer(dst, vp, snap.Player)
	}
	renderEffects(dst, vp, snap.Effects)
	renderHUD(dst, &snap)

	switch snap.Mode {
	case ModePaused:
		drawCenteredBox(dst, "PAUSED", "P resume | ESC menu")
	case ModeGameOver:
		g.renderGameOver(dst, &snap)
	}
}

func (g *Game) renderStars(dst *core.Screen, vp viewport) {
	for _, s := range g.stars.Stars() {
		x, y := vp.cell(s.X, s.Y)
		if !vp.inField(x, y) {
			continue
		}
		glyph, color := starDim, core.ColorGray
		if s.Size > 1 {
			glyph = starBright
		}
		if s.Brightness >= starBrightCutoff {
			color = core.ColorWhite
		}
		dst.SetColor(x, y, glyph, color)
	}
}

func fillSpan(dst *core.Screen, vp viewport, r core.Rect, glyph rune, color core.Color) {
	if !r.Intersects(vp.field) {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if vp.inField(x, y) {
				dst.SetColor(x, y, glyph, color)
			}
		}
	}
}

func renderPlayer(dst *core.Screen, vp viewport, box core.RectF) {
	r := vp.span(box)
	fillSpan(dst, vp, r, PlayerFill, core.ColorCyan)
	nx, _ := vp.cell(box.CenterX(), box.Y)
	if vp.inField(nx, r.Y) {
		dst.SetColor(nx, r.Y, PlayerNose, core.ColorBrightCyan)
	}
}

func renderHostiles(dst *core.Screen, vp viewport, hostiles []HostileView) {
	for _, h := range hostiles {
		tr := h.Variant.Traits()
		fillSpan(dst, vp, vp.span(h.Box), tr.Glyph, tr.Color)
	}
}

func renderProjectiles(dst *core.Screen, vp viewport, shots []ProjectileView) {
	for _, p := range shots {
		x, y := vp.cell(p.Box.CenterX(), p.Box.CenterY())
		if !vp.inField(x, y) {
			continue
		}
		if p.Owner == OwnerPlayer {
			dst.SetColor(x, y, PlayerShotChar, core.ColorYellow)
		} else {
			dst.SetColor(x, y, HostileShotChar, core.ColorRed)
		}
	}
}

func renderCollectibles(dst *core.Screen, vp viewport, items []CollectibleView) {
	for _, c := range items {
		x, y := vp.cell(c.Box.CenterX(), c.Box.CenterY())
		if vp.inField(x, y) {
			dst.SetColor(x, y, c.Kind.Glyph(), c.Kind.Color())
		}
	}
}

// renderEffects draws each explosion as a filled ellipse that fades from '@' to '.'.
func renderEffects(dst *core.Screen, vp viewport, effects []EffectView) {
	for _, e := range effects {
		glyph := '.'
		switch {
		case e.Alpha > 170:
			glyph = '@'
		case e.Alpha > 85:
			glyph = '*'
		}

		r := vp.span(core.RectFromCenter(e.X, e.Y, e.Radius*2, e.Radius*2))
		cx, cy := float64(r.X)+float64(r.W)/2, float64(r.Y)+float64(r.H)/2
		rx, ry := math.Max(float64(r.W)/2, 0.5), math.Max(float64(r.H)/2, 0.5)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dx := (float64(x) + 0.5 - cx) / rx
				dy := (float64(y) + 0.5 - cy) / ry
				if dx*dx+dy*dy <= 1 && vp.inField(x, y) {
					dst.SetColor(x, y, glyph, e.Color)
				}
			}
		}
	}
}

func healthColor(health int) core.Color {
	switch {
	case health > 50:
		return core.ColorGreen
	case health > 25:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// healthBar returns a fixed-width bar for health out of maxHealth.
func healthBar(health, maxHealth int) string {
	filled := 0
	if maxHealth > 0 {
		filled = core.Clamp(health*healthBarWidth/maxHealth, 0, healthBarWidth)
	}
	return strings.Repeat(string(HealthBarFull), filled) + strings.Repeat(string(HealthBarEmpty), healthBarWidth-filled)
}

func renderHUD(dst *core.Screen, snap *Snapshot) {
	bar := healthBar(snap.Health, snap.MaxHealth)
	dst.DrawTextColor(1, 0, bar, healthColor(snap.Health))
	dst.DrawText(healthBarWidth+2, 0, fmt.Sprintf("%3d", snap.Health))

	dst.DrawTextCentered(0, fmt.Sprintf("Score: %d", snap.Score))

	right := fmt.Sprintf("Lv %d  Gun %d", snap.Level, snap.WeaponTier)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}

func (g *Game) renderMenu(dst *core.Screen, snap *Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColor(mid-4, "S P A C E   S H O O T E R", core.ColorBrightCyan)
	dst.DrawTextCentered(mid-1, "SPACE to start")
	dst.DrawTextCentered(mid, "Q to quit")
	dst.DrawTextCenteredColor(mid+2, "Arrows/A,D move | SPACE fire | P pause", core.ColorGray)
	if snap.HighScore > 0 {
		dst.DrawTextCenteredColor(mid+4, fmt.Sprintf("High Score: %d", snap.HighScore), core.ColorYellow)
	}
}

func (g *Game) renderGameOver(dst *core.Screen, snap *Snapshot) {
	drawCenteredBox(dst, "GAME OVER", "SPACE restart | ESC menu")

	mid := dst.Height() / 2
	dst.DrawTextCentered(mid+3, fmt.Sprintf("Final Score: %d  Level: %d", snap.Score, snap.Level))
	if snap.Score > 0 && snap.Score >= snap.HighScore {
		dst.DrawTextCenteredColor(mid+4, "NEW RECORD!", core.ColorBrightYellow)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	cx, cy := box.Center()
	dst.DrawText(cx-len(title)/2, cy-1, title)
	dst.DrawText(cx-len(subtitle)/2, cy+1, subtitle)
}

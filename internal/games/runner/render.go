package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
)

// Visual characters for rendering
const (
	PlayerBody  = '█'
	PlayerEye   = '◆'
	PlayerLeg1  = '╱'
	PlayerLeg2  = '╲'
	CrouchBody  = '▄'
	CactusChar  = '▓'
	FlyerChar1  = '≈'
	FlyerChar2  = '~'
	hudRows     = 1
	legCycle    = 10 // Frames per running leg cycle
	wingCycle   = 16 // Frames per wing flap
	minPlayerW  = 2
	minPlayerH  = 2
	groundBelow = "  .    _     .   ,      _   .     "
	groundLine  = "═════════╪════════════════╪══════"
)

// backdrop is a background parallax layer drawn as a repeating pattern.
type backdrop struct {
	pattern []rune
	above   int // Rows above the ground line; 0 puts it in the sky
	color   core.Color
}

// backdrops are the background layers from farthest to nearest.
var backdrops = []backdrop{
	{pattern: []rune("   .          *              .       +        "), above: 0, color: core.ColorDarkGray},
	{pattern: []rune("        /\\              /\\/\\                 "), above: 3, color: core.ColorGray},
	{pattern: []rune("  ,,     \"      ,        ,,,       \"    "), above: 1, color: core.ColorGreen},
}

// view maps world coordinates to screen cells.
type view struct {
	cellW, cellH float64
	top          int // First screen row of the play area
}

func newView(dst *core.Screen, vp sim.Viewport) view {
	cols := max(1, dst.Width())
	rows := max(1, dst.Height()-hudRows)
	return view{
		cellW: vp.W / float64(cols),
		cellH: vp.H / float64(rows),
		top:   hudRows,
	}
}

func (v view) rect(b core.Box) core.Rect {
	r := b.Cells(v.cellW, v.cellH)
	r.Y += v.top
	return r
}

func (v view) row(y float64) int {
	return v.top + int(math.Floor(y/v.cellH))
}

func (v view) columns(px float64) int {
	return int(math.Floor(px / v.cellW))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudRows {
		return
	}

	snap := g.world.Snapshot()
	v := newView(dst, snap.Viewport)
	groundRow := min(v.row(snap.GroundY), dst.Height()-1)

	g.drawLayers(dst, v, snap, groundRow)
	for _, o := range snap.Obstacles {
		g.drawObstacle(dst, v, o)
	}
	g.drawPlayer(dst, v, snap.Player)
	g.drawHUD(dst, snap)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Level: %d  |  Press R to restart", snap.Score, snap.Level))
	}
}

// drawLayers draws the parallax backdrops and the scrolling ground.
func (g *Game) drawLayers(dst *core.Screen, v view, snap sim.Snapshot, groundRow int) {
	scoreLayer := g.cfg.Scroll.ScoreLayer
	for i, offset := range snap.Layers {
		shift := v.columns(offset)
		if i == scoreLayer {
			drawPattern(dst, groundRow, []rune(groundLine), shift, core.ColorDarkGray)
			drawPattern(dst, groundRow+1, []rune(groundBelow), shift, core.ColorDarkGray)
			continue
		}
		if i >= len(backdrops) {
			continue
		}
		b := backdrops[i]
		y := v.top + (groundRow-v.top)/5
		if b.above > 0 {
			y = groundRow - b.above
		}
		if y >= v.top {
			drawPattern(dst, y, b.pattern, shift, b.color)
		}
	}
}

// drawPattern repeats pattern across row y, scrolled left by shift columns.
// Spaces are transparent.
func drawPattern(dst *core.Screen, y int, pattern []rune, shift int, c core.Color) {
	n := len(pattern)
	if n == 0 {
		return
	}
	for x := 0; x < dst.Width(); x++ {
		r := pattern[((x+shift)%n+n)%n]
		if r != ' ' {
			dst.SetColored(x, y, r, c)
		}
	}
}

// drawObstacle renders an obstacle over its hitbox cells.
func (g *Game) drawObstacle(dst *core.Screen, v view, o sim.ObstacleView) {
	r := v.rect(o.Hitbox)
	switch o.Kind {
	case sim.KindFlying:
		wing := FlyerChar1
		if !g.stopped && (g.frame/wingCycle)%2 == 1 {
			wing = FlyerChar2
		}
		dst.FillRect(r, wing, core.ColorYellow)
	case sim.KindLarge:
		dst.FillRect(r, CactusChar, core.ColorGreen)
	case sim.KindMedium:
		dst.FillRect(r, CactusChar, core.ColorBrightGreen)
	default:
		dst.FillRect(r, CactusChar, core.ColorGreen)
	}
}

// drawPlayer renders the runner over its hitbox cells.
func (g *Game) drawPlayer(dst *core.Screen, v view, p sim.PlayerView) {
	r := v.rect(p.Hitbox)
	color := core.ColorCyan
	if g.world.GameOver() {
		color = core.ColorRed
	}

	if g.anim == sim.AnimCrouch {
		r.W = max(r.W, minPlayerW+1)
		dst.FillRect(core.NewRect(r.X, r.Bottom()-1, r.W, 1), CrouchBody, color)
		dst.SetColored(r.Right()-1, r.Bottom()-1, PlayerEye, color)
		return
	}

	r.W = max(r.W, minPlayerW)
	if r.H < minPlayerH {
		r.Y -= minPlayerH - r.H
		r.H = minPlayerH
	}

	// Body with the eye on the leading edge
	dst.FillRect(core.NewRect(r.X, r.Y, r.W, r.H-1), PlayerBody, color)
	dst.SetColored(r.Right()-1, r.Y, PlayerEye, color)

	// Legs: alternating while running, tucked while airborne
	legs := r.Bottom() - 1
	switch {
	case g.anim == sim.AnimJump:
		dst.SetColored(r.X, legs, PlayerLeg2, color)
		dst.SetColored(r.Right()-1, legs, PlayerLeg1, color)
	case g.stopped || (g.frame/(legCycle/2))%2 == 0:
		dst.SetColored(r.X, legs, PlayerLeg1, color)
		dst.SetColored(r.Right()-1, legs, PlayerLeg2, color)
	default:
		dst.SetColored(r.X+r.W/2, legs, PlayerLeg1, color)
		dst.SetColored(r.Right()-1, legs, PlayerLeg2, color)
	}
}

// drawHUD renders the score line and the level-up banner.
func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightYellow)

	right := fmt.Sprintf(" Lv %d  Spd %.0f/%.0f ", snap.Level, snap.Speed, snap.MaxSpeed)
	if !g.world.Config().Difficulty.Enabled {
		right = fmt.Sprintf(" Spd %.0f ", snap.Speed)
	}
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorGray)

	if g.levelFlash > 0 && !snap.GameOver {
		banner := fmt.Sprintf(" LEVEL %d ", snap.Level)
		x := (dst.Width() - len(banner)) / 2
		dst.DrawTextColored(x, 0, banner, core.ColorOrange)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightRed)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

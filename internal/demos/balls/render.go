package balls

import (
	"fmt"

	"github.com/vovakirdan/tui-bounce/internal/ballfield"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Visual characters for rendering
const (
	BallFill = '█'
	BallDot  = '●'
)

// cellAspect is how many times taller than wide a terminal cell is.
const cellAspect = 2.0

// Minimum screen size that can show a frame and the status line.
const (
	minScreenW = 12
	minScreenH = 6
)

// Render draws the field inside a frame with a status line underneath.
func (d *Demo) Render(dst *core.Screen) {
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawText(0, 0, "Terminal too small", core.ColorDefault)
		return
	}
	if d.sim == nil {
		dst.DrawText(0, 0, "Not started", core.ColorDefault)
		return
	}

	// Reserve the last row for status
	area := core.NewRect(0, 0, dst.Width(), dst.Height()-1)
	frame := FitFrame(area.Inset(1), d.sim.Domain())
	dst.DrawBox(core.NewRect(frame.X-1, frame.Y-1, frame.W+2, frame.H+2), core.ColorGray)

	DrawBalls(dst, frame, d.sim.Domain(), d.sim.Balls())
	dst.DrawText(0, dst.Height()-1, d.statusLine(), core.ColorGray)
}

func (d *Demo) statusLine() string {
	st := d.State()
	line := fmt.Sprintf(" %s  tick %d  balls %d", d.title, st.Tick, st.Balls)
	if st.Paused {
		line += "  [paused]"
	}
	return line
}

// FitFrame returns the largest rectangle inside area that keeps the
// domain's aspect ratio once cell proportions are accounted for, centered.
func FitFrame(area core.Rect, d ballfield.Domain) core.Rect {
	if area.W <= 0 || area.H <= 0 || d.W <= 0 || d.H <= 0 {
		return core.NewRect(area.X, area.Y, 0, 0)
	}

	// Horizontal cells per domain unit, limited by both dimensions.
	scale := min(float64(area.W)/d.W, float64(area.H)*cellAspect/d.H)
	w := core.Clamp(int(d.W*scale), 1, area.W)
	h := core.Clamp(int(d.H*scale/cellAspect), 1, area.H)

	return core.NewRect(area.X+(area.W-w)/2, area.Y+(area.H-h)/2, w, h)
}

// DrawBalls draws each ball as a filled ellipse of cells inside frame.
// Balls that overshoot a wall are clipped to the frame.
func DrawBalls(dst *core.Screen, frame core.Rect, d ballfield.Domain, balls []ballfield.Ball) {
	vp := core.Viewport{Cells: frame, W: d.W, H: d.H}
	for _, b := range balls {
		cx, cy := vp.Project(b.Pos.X, b.Pos.Y)
		rx := b.Radius * vp.ScaleX()
		ry := b.Radius * vp.ScaleY()

		glyph := BallFill
		if rx < 1 || ry < 1 {
			glyph = BallDot
		}
		dst.FillEllipse(cx, cy, rx, ry, frame, glyph, b.Color)
	}
}

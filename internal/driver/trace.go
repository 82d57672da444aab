package driver

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/tui-bounce/internal/ballfield"
)

// TraceFormat selects how TraceRenderer prints frames.
type TraceFormat int

const (
	// TraceLines prints one line per ball: "tick id x y vx vy radius color".
	TraceLines TraceFormat = iota

	// TraceTable prints one bordered table per frame.
	TraceTable
)

// TraceRenderer writes ball states as text. Frames are numbered from 1.
type TraceRenderer struct {
	w      io.Writer
	format TraceFormat
	frame  uint64
}

// NewTraceRenderer creates a renderer writing to w.
func NewTraceRenderer(w io.Writer, format TraceFormat) *TraceRenderer {
	return &TraceRenderer{w: w, format: format}
}

// Draw writes one frame.
func (r *TraceRenderer) Draw(_ ballfield.Domain, balls []ballfield.Ball) error {
	r.frame++
	if r.format == TraceTable {
		return r.drawTable(balls)
	}

	for _, b := range balls {
		if _, err := fmt.Fprintf(r.w, "%d %d %s %s %s %s %s %s\n",
			r.frame, b.ID,
			formatFloat(b.Pos.X), formatFloat(b.Pos.Y),
			formatFloat(b.Vel.X), formatFloat(b.Vel.Y),
			formatFloat(b.Radius), colorField(b),
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *TraceRenderer) drawTable(balls []ballfield.Ball) error {
	rows := make([][]string, 0, len(balls))
	for _, b := range balls {
		rows = append(rows, []string{
			strconv.Itoa(b.ID),
			formatFloat(b.Pos.X),
			formatFloat(b.Pos.Y),
			formatFloat(b.Vel.X),
			formatFloat(b.Vel.Y),
			formatFloat(b.Radius),
			colorField(b),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "X", "Y", "VX", "VY", "R", "COLOR").
		Rows(rows...)

	_, err := fmt.Fprintf(r.w, "frame %d\n%s\n", r.frame, t.String())
	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}

func colorField(b ballfield.Ball) string {
	if hex := b.Color.Hex(); hex != "" {
		return hex
	}
	return "-"
}

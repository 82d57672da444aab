// Package ballfield simulates a fixed set of independent balls bouncing
// inside a rectangular domain.
//
// The simulator is a pure state machine: it has no notion of time, screen or
// input. A driver calls Step once per frame and hands Balls to a renderer.
package ballfield

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Domain is the rectangular area balls move within, origin at (0, 0).
type Domain struct {
	W, H float64
}

// Contains reports whether a ball of radius r centered at p lies fully
// inside the domain.
func (d Domain) Contains(p r2.Vec, r float64) bool {
	return p.X >= r && p.X <= d.W-r && p.Y >= r && p.Y <= d.H-r
}

// Ball is a single body in the field.
// Radius and Color never change after creation.
type Ball struct {
	ID     int
	Pos    r2.Vec  // Center, in domain units
	Vel    r2.Vec  // Displacement per step
	Radius float64 // Always > 0
	Color  core.Color
}

// reflect flips each velocity component whose one-step look-ahead would put
// the ball past a wall. Position is not clamped.
func (b *Ball) reflect(d Domain) {
	next := r2.Add(b.Pos, b.Vel)
	if next.X > d.W-b.Radius || next.X < b.Radius {
		b.Vel.X = -b.Vel.X
	}
	if next.Y > d.H-b.Radius || next.Y < b.Radius {
		b.Vel.Y = -b.Vel.Y
	}
}

// advance reflects against the walls, then moves by the resulting velocity.
func (b *Ball) advance(d Domain) {
	b.reflect(d)
	b.Pos = r2.Add(b.Pos, b.Vel)
}

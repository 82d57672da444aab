package ballfield

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Params describes a randomly populated field.
// Radius and speed bounds are half-open: [Min, Max).
type Params struct {
	Domain    Domain
	Count     int
	RadiusMin float64
	RadiusMax float64
	SpeedMin  float64
	SpeedMax  float64
}

// Validate checks that at least one valid placement exists for every ball.
// Comparisons are written so that NaN bounds fail.
func (p Params) Validate() error {
	switch {
	case p.Count < 0:
		return fmt.Errorf("ballfield: count %d is negative: %w", p.Count, ErrInvalidConfig)
	case !(p.RadiusMin > 0):
		return fmt.Errorf("ballfield: min radius %v must be positive: %w", p.RadiusMin, ErrInvalidConfig)
	case !(p.RadiusMax > p.RadiusMin):
		return fmt.Errorf("ballfield: max radius %v must exceed min radius %v: %w", p.RadiusMax, p.RadiusMin, ErrInvalidConfig)
	case !(p.Domain.W > 2*p.RadiusMax):
		return fmt.Errorf("ballfield: width %v must exceed twice the max radius %v: %w", p.Domain.W, p.RadiusMax, ErrInvalidConfig)
	case !(p.Domain.H > 2*p.RadiusMax):
		return fmt.Errorf("ballfield: height %v must exceed twice the max radius %v: %w", p.Domain.H, p.RadiusMax, ErrInvalidConfig)
	case !(p.SpeedMax >= p.SpeedMin) || math.IsInf(p.SpeedMax, 0) || math.IsInf(p.SpeedMin, 0):
		return fmt.Errorf("ballfield: speed bounds [%v, %v) are not a finite range: %w", p.SpeedMin, p.SpeedMax, ErrInvalidConfig)
	}
	return nil
}

// Simulator owns a fixed collection of balls and advances them one step at a
// time. It is not safe for concurrent use.
type Simulator struct {
	domain Domain
	balls  []Ball
	tick   uint64
}

// New builds a field of p.Count balls drawn from src.
//
// Each ball consumes its draws in a fixed order (radius, x, y, vx, vy, then
// three color channels) before the next ball starts, so the first k balls of
// a field are the same for any Count >= k and the same seed.
func New(p Params, src Source) (*Simulator, error) {
	if src == nil {
		return nil, fmt.Errorf("ballfield: nil random source: %w", ErrInvalidConfig)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	balls := make([]Ball, p.Count)
	for i := range balls {
		r := uniform(src, p.RadiusMin, p.RadiusMax)
		x := uniform(src, r, p.Domain.W-r)
		y := uniform(src, r, p.Domain.H-r)
		vx := uniform(src, p.SpeedMin, p.SpeedMax)
		vy := uniform(src, p.SpeedMin, p.SpeedMax)
		red := src.Intn(colorLevels)
		green := src.Intn(colorLevels)
		blue := src.Intn(colorLevels)

		balls[i] = Ball{
			ID:     i,
			Pos:    r2.Vec{X: x, Y: y},
			Vel:    r2.Vec{X: vx, Y: vy},
			Radius: r,
			Color:  core.RGB(uint8(red), uint8(green), uint8(blue)), //#nosec G115 -- bounded by colorLevels
		}
	}

	return &Simulator{domain: p.Domain, balls: balls}, nil
}

// NewWithBalls builds a field from explicit initial states. The slice is
// copied and IDs are reassigned to slice indices.
func NewWithBalls(d Domain, balls []Ball) (*Simulator, error) {
	if !(d.W > 0) || !(d.H > 0) || math.IsInf(d.W, 0) || math.IsInf(d.H, 0) {
		return nil, fmt.Errorf("ballfield: domain %vx%v must be positive: %w", d.W, d.H, ErrInvalidConfig)
	}

	owned := make([]Ball, len(balls))
	for i, b := range balls {
		if !(b.Radius > 0) {
			return nil, fmt.Errorf("ballfield: ball %d radius %v must be positive: %w", i, b.Radius, ErrInvalidConfig)
		}
		if !d.Contains(b.Pos, b.Radius) {
			return nil, fmt.Errorf("ballfield: ball %d at (%v, %v) with radius %v is outside the domain: %w",
				i, b.Pos.X, b.Pos.Y, b.Radius, ErrInvalidConfig)
		}
		b.ID = i
		owned[i] = b
	}

	return &Simulator{domain: d, balls: owned}, nil
}

// Step advances every ball by one tick.
//
// For each ball the wall test looks one step ahead from the current position
// and flips the offending velocity components; the ball then moves by the
// post-flip velocity. Balls never interact, so order is irrelevant.
func (s *Simulator) Step() {
	for i := range s.balls {
		s.balls[i].advance(s.domain)
	}
	s.tick++
}

// Balls returns a copy of the current ball states.
func (s *Simulator) Balls() []Ball {
	out := make([]Ball, len(s.balls))
	copy(out, s.balls)
	return out
}

// Ball returns the state of ball i.
func (s *Simulator) Ball(i int) (Ball, bool) {
	if i < 0 || i >= len(s.balls) {
		return Ball{}, false
	}
	return s.balls[i], true
}

// Len returns the number of balls.
func (s *Simulator) Len() int {
	return len(s.balls)
}

// Domain returns the simulation bounds.
func (s *Simulator) Domain() Domain {
	return s.domain
}

// Tick returns the number of completed steps.
func (s *Simulator) Tick() uint64 {
	return s.tick
}

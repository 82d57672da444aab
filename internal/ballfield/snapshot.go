package ballfield

import "math"

// Snapshot captures the full simulator state at one tick.
type Snapshot struct {
	Tick   uint64
	Domain Domain
	Balls  []Ball
}

// Snapshot returns the current state. The returned slice is not shared
// with the simulator.
func (s *Simulator) Snapshot() Snapshot {
	return Snapshot{
		Tick:   s.tick,
		Domain: s.domain,
		Balls:  s.Balls(),
	}
}

// Hash returns a hash of tick, positions and velocities for determinism
// testing. Two snapshots hash equal only if every float is bit-identical.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, b := range snap.Balls {
		h = h*31 + math.Float64bits(b.Pos.X)
		h = h*31 + math.Float64bits(b.Pos.Y)
		h = h*31 + math.Float64bits(b.Vel.X)
		h = h*31 + math.Float64bits(b.Vel.Y)
		h = h*31 + math.Float64bits(b.Radius)
	}
	return h
}

// Package config provides YAML-based demo configuration loading and speed
// presets for the bounce platform.
package config

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-bounce/internal/ballfield"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// BallsConfig contains all configuration for one ball field demo.
// When Initial is non-empty the field is built from those balls and the
// random Balls section is ignored.
type BallsConfig struct {
	Domain  DomainConfig `yaml:"domain"`
	Balls   FieldConfig  `yaml:"balls"`
	Timing  TimingConfig `yaml:"timing"`
	Initial []BallConfig `yaml:"initial"`
}

// DomainConfig defines the simulation bounds in domain units.
type DomainConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FieldConfig defines how a random field is sampled.
type FieldConfig struct {
	Count     int     `yaml:"count"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"` // exclusive
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"` // exclusive
}

// TimingConfig defines frame pacing for interactive playback.
type TimingConfig struct {
	PauseMS int `yaml:"pause_ms"`
}

// BallConfig defines one explicitly placed ball.
type BallConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"` // "#rrggbb", empty for terminal default
}

// Explicit reports whether the field is built from Initial.
func (c BallsConfig) Explicit() bool {
	return len(c.Initial) > 0
}

// DomainBounds returns the simulator domain.
func (c BallsConfig) DomainBounds() ballfield.Domain {
	return ballfield.Domain{W: c.Domain.Width, H: c.Domain.Height}
}

// Params converts the random field section to simulator parameters.
func (c BallsConfig) Params() ballfield.Params {
	return ballfield.Params{
		Domain:    c.DomainBounds(),
		Count:     c.Balls.Count,
		RadiusMin: c.Balls.MinRadius,
		RadiusMax: c.Balls.MaxRadius,
		SpeedMin:  c.Balls.MinSpeed,
		SpeedMax:  c.Balls.MaxSpeed,
	}
}

// InitialBalls converts the explicit ball list.
func (c BallsConfig) InitialBalls() ([]ballfield.Ball, error) {
	balls := make([]ballfield.Ball, 0, len(c.Initial))
	for i, bc := range c.Initial {
		color := core.ColorDefault
		if bc.Color != "" {
			parsed, err := core.ParseHex(bc.Color)
			if err != nil {
				return nil, fmt.Errorf("initial ball %d: %w", i, err)
			}
			color = parsed
		}
		balls = append(balls, ballfield.Ball{
			Pos:    r2.Vec{X: bc.X, Y: bc.Y},
			Vel:    r2.Vec{X: bc.VX, Y: bc.VY},
			Radius: bc.Radius,
			Color:  color,
		})
	}
	return balls, nil
}

// Build creates a simulator from this config. src is only consulted for
// random fields.
func (c BallsConfig) Build(src ballfield.Source) (*ballfield.Simulator, error) {
	if c.Explicit() {
		balls, err := c.InitialBalls()
		if err != nil {
			return nil, err
		}
		return ballfield.NewWithBalls(c.DomainBounds(), balls)
	}
	return ballfield.New(c.Params(), src)
}

// Validate reports configuration errors without keeping the simulator.
func (c BallsConfig) Validate() error {
	if c.Timing.PauseMS < 0 {
		return fmt.Errorf("timing.pause_ms %d is negative: %w", c.Timing.PauseMS, ballfield.ErrInvalidConfig)
	}
	_, err := c.Build(ballfield.NewSource(1))
	return err
}

// Pause returns the delay between frames.
func (c BallsConfig) Pause() time.Duration {
	return time.Duration(c.Timing.PauseMS) * time.Millisecond
}

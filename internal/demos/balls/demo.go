// Package balls registers the bouncing ball demos: a random multi-ball
// field and a single explicitly placed ball.
package balls

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-bounce/internal/ballfield"
	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/registry"
)

// Demo IDs.
const (
	FieldID  = "balls"
	SingleID = "ball"
)

// configPath stores the custom config path set via CLI
var configPath string

// speedPreset stores the speed preset set via CLI
var speedPreset = config.SpeedNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSpeedPreset sets the speed preset applied on every Reset.
func SetSpeedPreset(preset config.SpeedPreset) {
	speedPreset = preset
}

func init() {
	registry.Register(FieldID, func() registry.Demo { return NewField() })
	registry.Register(SingleID, func() registry.Demo { return NewSingle() })
}

// Demo drives a ballfield.Simulator from platform frames.
type Demo struct {
	id    string
	title string

	sim    *ballfield.Simulator
	cfg    config.BallsConfig
	paused bool
}

// NewField creates the multi-ball demo.
func NewField() *Demo {
	return &Demo{id: FieldID, title: "Multiple Bouncing Balls"}
}

// NewSingle creates the single-ball demo.
func NewSingle() *Demo {
	return &Demo{id: SingleID, title: "Bouncing Ball"}
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return d.id
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return d.title
}

// Reset loads the demo config and builds a new simulator seeded from runtime.
// On error the previous simulation, if any, is kept.
func (d *Demo) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.Load(d.id, configPath)
	if err != nil {
		return err
	}
	config.ApplySpeedPreset(&cfg, speedPreset)

	sim, err := cfg.Build(ballfield.NewSource(runtime.Seed))
	if err != nil {
		return fmt.Errorf("%s: %w", d.id, err)
	}

	d.cfg = cfg
	d.sim = sim
	d.paused = false
	return nil
}

// Config returns the configuration used by the last successful Reset.
func (d *Demo) Config() config.BallsConfig {
	return d.cfg
}

// Simulator exposes the underlying simulator, nil before Reset.
func (d *Demo) Simulator() *ballfield.Simulator {
	return d.sim
}

// FrameInterval returns the configured pause between frames.
func (d *Demo) FrameInterval() time.Duration {
	return d.cfg.Pause()
}

// Step advances the field by one tick. Pause toggles stepping; while paused
// ActionStep advances exactly one tick.
func (d *Demo) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		d.paused = !d.paused
	}

	stepped := false
	if d.sim != nil && (!d.paused || in.Has(core.ActionStep)) {
		d.sim.Step()
		stepped = true
	}

	return core.StepResult{State: d.State(), Stepped: stepped}
}

// State returns the current demo state.
func (d *Demo) State() core.DemoState {
	if d.sim == nil {
		return core.DemoState{Paused: d.paused}
	}
	return core.DemoState{
		Tick:   d.sim.Tick(),
		Balls:  d.sim.Len(),
		Paused: d.paused,
	}
}

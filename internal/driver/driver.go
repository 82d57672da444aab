// Package driver runs a simulator headlessly: step, then draw, at a fixed
// interval until cancelled or a step budget runs out.
package driver

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-bounce/internal/ballfield"
)

// Stepper is the simulation side of the loop. *ballfield.Simulator satisfies it.
type Stepper interface {
	Step()
	Balls() []ballfield.Ball
	Domain() ballfield.Domain
	Tick() uint64
}

// Renderer draws one frame of ball states.
type Renderer interface {
	Draw(d ballfield.Domain, balls []ballfield.Ball) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(d ballfield.Domain, balls []ballfield.Ball) error

// Draw calls f.
func (f RendererFunc) Draw(d ballfield.Domain, balls []ballfield.Ball) error {
	return f(d, balls)
}

// Options configures a Driver.
type Options struct {
	// Interval between frames. Zero runs frames back to back.
	Interval time.Duration

	// Steps is the number of frames to run. Zero runs until the context ends.
	Steps uint64

	// Logger receives run lifecycle events. Nil discards them.
	Logger *log.Logger
}

// Driver paces a Stepper and hands each resulting frame to a Renderer.
type Driver struct {
	sim      Stepper
	renderer Renderer
	opts     Options
	logger   *log.Logger
}

// New creates a driver.
func New(sim Stepper, renderer Renderer, opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		sim:      sim,
		renderer: renderer,
		opts:     opts,
		logger:   logger,
	}
}

// Result summarizes a finished run.
type Result struct {
	RunID   string
	Steps   uint64
	Elapsed time.Duration
}

// Run executes frames until ctx is done or the step budget is used up.
// Each frame calls Step and then Draw, in that order. A renderer error
// stops the run and is returned; cancellation is not an error.
func (d *Driver) Run(ctx context.Context) (Result, error) {
	res := Result{RunID: uuid.NewString()}
	logger := d.logger.With("run_id", res.RunID)
	start := time.Now()

	logger.Info("run started",
		"balls", len(d.sim.Balls()),
		"interval", d.opts.Interval,
		"steps", d.opts.Steps,
	)

	var ticker *time.Ticker
	if d.opts.Interval > 0 {
		ticker = time.NewTicker(d.opts.Interval)
		defer ticker.Stop()
	}

	err := d.loop(ctx, ticker, &res)
	res.Elapsed = time.Since(start)

	if err != nil {
		logger.Error("run failed", "steps", res.Steps, "error", err)
		return res, err
	}
	logger.Info("run finished", "steps", res.Steps, "elapsed", res.Elapsed)
	return res, nil
}

func (d *Driver) loop(ctx context.Context, ticker *time.Ticker, res *Result) error {
	for d.opts.Steps == 0 || res.Steps < d.opts.Steps {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		d.sim.Step()
		res.Steps++

		if err := d.renderer.Draw(d.sim.Domain(), d.sim.Balls()); err != nil {
			return fmt.Errorf("driver: draw at tick %d: %w", d.sim.Tick(), err)
		}
	}
	return nil
}

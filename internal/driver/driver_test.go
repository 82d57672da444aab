package driver

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-bounce/internal/ballfield"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

func newField(t *testing.T, seed int64) *ballfield.Simulator {
	t.Helper()
	sim, err := ballfield.New(ballfield.Params{
		Domain:    ballfield.Domain{W: 400, H: 600},
		Count:     10,
		RadiusMin: 5,
		RadiusMax: 10,
		SpeedMin:  2,
		SpeedMax:  10,
	}, ballfield.NewSource(seed))
	if err != nil {
		t.Fatalf("ballfield.New() failed: %v", err)
	}
	return sim
}

// recordingStepper wraps a simulator and records call order.
type recordingStepper struct {
	*ballfield.Simulator
	calls *[]string
}

func (s recordingStepper) Step() {
	*s.calls = append(*s.calls, "step")
	s.Simulator.Step()
}

func TestRunStepsThenDraws(t *testing.T) {
	var calls []string
	sim := recordingStepper{Simulator: newField(t, 1), calls: &calls}

	var drawnTicks []uint64
	r := RendererFunc(func(_ ballfield.Domain, balls []ballfield.Ball) error {
		calls = append(calls, "draw")
		drawnTicks = append(drawnTicks, sim.Tick())
		if len(balls) != 10 {
			t.Errorf("draw got %d balls, expected 10", len(balls))
		}
		return nil
	})

	res, err := New(sim, r, Options{Steps: 3}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := []string{"step", "draw", "step", "draw", "step", "draw"}
	if strings.Join(calls, ",") != strings.Join(want, ",") {
		t.Errorf("call order = %v, expected %v", calls, want)
	}
	if res.Steps != 3 || sim.Tick() != 3 {
		t.Errorf("Steps = %d, Tick = %d, expected 3", res.Steps, sim.Tick())
	}
	if drawnTicks[0] != 1 || drawnTicks[2] != 3 {
		t.Errorf("renderer saw ticks %v, expected post-step state", drawnTicks)
	}
	if res.RunID == "" {
		t.Error("RunID should be set")
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := newField(t, 1)
	res, err := New(sim, RendererFunc(func(ballfield.Domain, []ballfield.Ball) error { return nil }), Options{}).Run(ctx)
	if err != nil {
		t.Fatalf("cancellation should not be an error: %v", err)
	}
	if res.Steps != 0 || sim.Tick() != 0 {
		t.Errorf("Steps = %d, expected 0", res.Steps)
	}
}

func TestRunStopsWhenCancelledMidRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	draws := 0
	r := RendererFunc(func(ballfield.Domain, []ballfield.Ball) error {
		draws++
		if draws == 4 {
			cancel()
		}
		return nil
	})

	res, err := New(newField(t, 1), r, Options{}).Run(ctx)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Steps != 4 {
		t.Errorf("Steps = %d, expected 4", res.Steps)
	}
}

func TestRunWithIntervalUntilTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := New(newField(t, 1), RendererFunc(func(ballfield.Domain, []ballfield.Ball) error { return nil }),
		Options{Interval: time.Millisecond}).Run(ctx)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Steps == 0 {
		t.Error("expected some steps before timeout")
	}
	if res.Elapsed < 40*time.Millisecond {
		t.Errorf("Elapsed = %v, expected the run to last until the timeout", res.Elapsed)
	}
}

func TestRunRendererError(t *testing.T) {
	boom := errors.New("boom")
	var logBuf bytes.Buffer

	res, err := New(newField(t, 1), RendererFunc(func(ballfield.Domain, []ballfield.Ball) error { return boom }),
		Options{Steps: 10, Logger: log.New(&logBuf)}).Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, expected boom", err)
	}
	if res.Steps != 1 {
		t.Errorf("Steps = %d, expected run to stop after first frame", res.Steps)
	}
	if !strings.Contains(logBuf.String(), "run failed") {
		t.Errorf("log output = %q, expected failure entry", logBuf.String())
	}
}

func TestPacingDoesNotChangeStates(t *testing.T) {
	fast := newField(t, 77)
	slow := newField(t, 77)
	noop := RendererFunc(func(ballfield.Domain, []ballfield.Ball) error { return nil })

	if _, err := New(fast, noop, Options{Steps: 25}).Run(context.Background()); err != nil {
		t.Fatalf("fast run failed: %v", err)
	}
	if _, err := New(slow, noop, Options{Steps: 25, Interval: time.Millisecond}).Run(context.Background()); err != nil {
		t.Fatalf("slow run failed: %v", err)
	}

	if fast.Snapshot().Hash() != slow.Snapshot().Hash() {
		t.Error("frame pacing changed the simulated states")
	}
}

func TestTraceRendererLines(t *testing.T) {
	sim, err := ballfield.NewWithBalls(ballfield.Domain{W: 100, H: 100}, []ballfield.Ball{
		{Pos: r2.Vec{X: 10, Y: 20}, Vel: r2.Vec{X: 1.5, Y: -2}, Radius: 5, Color: core.RGB(255, 0, 16)},
		{Pos: r2.Vec{X: 50, Y: 50}, Radius: 2},
	})
	if err != nil {
		t.Fatalf("NewWithBalls() failed: %v", err)
	}

	var buf bytes.Buffer
	tr := NewTraceRenderer(&buf, TraceLines)
	if _, err := New(sim, tr, Options{Steps: 2}).Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := strings.Join([]string{
		"1 0 11.500 18.000 1.500 -2.000 5.000 #ff0010",
		"1 1 50.000 50.000 0.000 0.000 2.000 -",
		"2 0 13.000 16.000 1.500 -2.000 5.000 #ff0010",
		"2 1 50.000 50.000 0.000 0.000 2.000 -",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("trace output:\n%s\nexpected:\n%s", buf.String(), want)
	}
}

func TestTraceRendererTable(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTraceRenderer(&buf, TraceTable)
	if _, err := New(newField(t, 3), tr, Options{Steps: 1}).Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "frame 1\n") {
		t.Errorf("output should start with frame header, got %q", out)
	}
	for _, header := range []string{"ID", "VX", "COLOR"} {
		if !strings.Contains(out, header) {
			t.Errorf("table missing header %q", header)
		}
	}
}

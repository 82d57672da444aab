package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-bounce/internal/ballfield"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test writes.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(wd); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	tests := []struct {
		id   string
		want BallsConfig
	}{
		{"balls", DefaultBallsConfig()},
		{"ball", DefaultBallConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			cfg, err := Load(tc.id, "")
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if !reflect.DeepEqual(cfg, tc.want) {
				t.Errorf("embedded config = %+v, expected %+v", cfg, tc.want)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("default config should be valid: %v", err)
			}
		})
	}
}

func TestLoadUnknownDemo(t *testing.T) {
	isolate(t)
	if _, err := Load("nope", ""); err == nil {
		t.Error("Load() of unknown demo should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	_, wd := isolate(t)
	path := filepath.Join(wd, "custom.yaml")
	writeFile(t, path, `
domain: {width: 100, height: 50}
balls: {count: 3, min_radius: 1, max_radius: 2, min_speed: 0, max_speed: 1}
timing: {pause_ms: 40}
`)

	cfg, err := Load("balls", path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Domain.Width != 100 || cfg.Balls.Count != 3 || cfg.Pause() != 40*time.Millisecond {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, wd := isolate(t)

	if _, err := Load("balls", filepath.Join(wd, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(wd, "bad.yaml")
	writeFile(t, bad, "domain: [not, a, map")
	if _, err := Load("balls", bad); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	local := filepath.Join(wd, "configs", "balls.yaml")
	writeFile(t, local, "balls: {count: 7}\n")

	cfg, err := Load("balls", "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Balls.Count != 7 {
		t.Errorf("local config not used, count = %d", cfg.Balls.Count)
	}

	user := filepath.Join(home, ".bounce", "configs", "balls.yaml")
	writeFile(t, user, "balls: {count: 9}\n")

	cfg, err = Load("balls", "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Balls.Count != 9 {
		t.Errorf("user config should win over local, count = %d", cfg.Balls.Count)
	}

	// A malformed user file falls through to the next location
	writeFile(t, user, "balls: [broken")
	cfg, err = Load("balls", "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Balls.Count != 7 {
		t.Errorf("malformed user config should fall through, count = %d", cfg.Balls.Count)
	}
}

func TestBuildExplicit(t *testing.T) {
	cfg := DefaultBallConfig()
	sim, err := cfg.Build(nil)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if sim.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", sim.Len())
	}
	b, _ := sim.Ball(0)
	if b.Pos.X != 400 || b.Pos.Y != 900 || b.Vel.X != 20 || b.Vel.Y != 30 || b.Radius != 25 {
		t.Errorf("unexpected ball %+v", b)
	}
	if b.Color != core.ColorOrange {
		t.Errorf("color = %+v, expected orange", b.Color)
	}
}

func TestBuildRandom(t *testing.T) {
	cfg := DefaultBallsConfig()
	sim, err := cfg.Build(ballfield.NewSource(3))
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if sim.Len() != 20 {
		t.Errorf("Len() = %d, expected 20", sim.Len())
	}
	if sim.Domain() != (ballfield.Domain{W: 400, H: 600}) {
		t.Errorf("Domain() = %+v", sim.Domain())
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *BallsConfig)
		isCfg  bool // error wraps ballfield.ErrInvalidConfig
	}{
		{"negative pause", func(c *BallsConfig) { c.Timing.PauseMS = -1 }, true},
		{"degenerate radius", func(c *BallsConfig) { c.Balls.MaxRadius = c.Balls.MinRadius }, true},
		{"tiny domain", func(c *BallsConfig) { c.Domain.Width = 10 }, true},
		{"bad color", func(c *BallsConfig) {
			c.Initial = []BallConfig{{X: 50, Y: 50, Radius: 5, Color: "orange"}}
		}, false},
		{"explicit ball outside", func(c *BallsConfig) {
			c.Initial = []BallConfig{{X: 1, Y: 50, Radius: 5}}
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBallsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if errors.Is(err, ballfield.ErrInvalidConfig) != tc.isCfg {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v for %v", !tc.isCfg, err)
			}
		})
	}
}

func TestSpeedPresets(t *testing.T) {
	tests := []struct {
		in   string
		want SpeedPreset
		ok   bool
	}{
		{"", SpeedNormal, true},
		{"normal", SpeedNormal, true},
		{"slow", SpeedSlow, true},
		{"fast", SpeedFast, true},
		{"ludicrous", "", false},
	}
	for _, tc := range tests {
		got, err := ParseSpeedPreset(tc.in)
		if (err == nil) != tc.ok || got != tc.want {
			t.Errorf("ParseSpeedPreset(%q) = %q, %v", tc.in, got, err)
		}
	}

	cfg := DefaultBallsConfig()
	ApplySpeedPreset(&cfg, SpeedFast)
	if cfg.Balls.MinSpeed != 4 || cfg.Balls.MaxSpeed != 20 {
		t.Errorf("fast preset speeds = [%v, %v), expected [4, 20)", cfg.Balls.MinSpeed, cfg.Balls.MaxSpeed)
	}

	single := DefaultBallConfig()
	ApplySpeedPreset(&single, SpeedSlow)
	if single.Initial[0].VX != 10 || single.Initial[0].VY != 15 {
		t.Errorf("slow preset velocity = (%v, %v), expected (10, 15)", single.Initial[0].VX, single.Initial[0].VY)
	}

	unchanged := DefaultBallsConfig()
	ApplySpeedPreset(&unchanged, SpeedNormal)
	if !reflect.DeepEqual(unchanged, DefaultBallsConfig()) {
		t.Error("normal preset should not change the config")
	}
}

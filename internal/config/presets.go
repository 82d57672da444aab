package config

import "fmt"

// SpeedPreset represents a named playback speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// ParseSpeedPreset validates a preset name. Empty means normal.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch SpeedPreset(s) {
	case "", SpeedNormal:
		return SpeedNormal, nil
	case SpeedSlow, SpeedFast:
		return SpeedPreset(s), nil
	default:
		return "", fmt.Errorf("unknown speed preset %q (want slow, normal or fast)", s)
	}
}

// SpeedMultiplier returns the velocity scale for a preset.
func SpeedMultiplier(preset SpeedPreset) float64 {
	switch preset {
	case SpeedSlow:
		return 0.5
	case SpeedFast:
		return 2.0
	default:
		return 1.0
	}
}

// ApplySpeedPreset scales every velocity in the config by the preset.
func ApplySpeedPreset(cfg *BallsConfig, preset SpeedPreset) {
	m := SpeedMultiplier(preset)
	if m == 1.0 {
		return
	}
	cfg.Balls.MinSpeed *= m
	cfg.Balls.MaxSpeed *= m
	for i := range cfg.Initial {
		cfg.Initial[i].VX *= m
		cfg.Initial[i].VY *= m
	}
}

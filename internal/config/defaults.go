package config

import (
	_ "embed"
)

//go:embed defaults/balls.yaml
var defaultBallsYAML []byte

//go:embed defaults/ball.yaml
var defaultBallYAML []byte

// DefaultBallsConfig returns the default multi-ball configuration.
func DefaultBallsConfig() BallsConfig {
	return BallsConfig{
		Domain: DomainConfig{Width: 400, Height: 600},
		Balls: FieldConfig{
			Count:     20,
			MinRadius: 5,
			MaxRadius: 10,
			MinSpeed:  2,
			MaxSpeed:  10,
		},
		Timing: TimingConfig{PauseMS: 15},
	}
}

// DefaultBallConfig returns the default single-ball configuration.
func DefaultBallConfig() BallsConfig {
	return BallsConfig{
		Domain: DomainConfig{Width: 1200, Height: 1600},
		Timing: TimingConfig{PauseMS: 95},
		Initial: []BallConfig{{
			X:      400,
			Y:      900,
			VX:     20,
			VY:     30,
			Radius: 25,
			Color:  "#f58025",
		}},
	}
}

// GetDefaultYAML returns the embedded default YAML for a demo.
func GetDefaultYAML(demoID string) []byte {
	switch demoID {
	case "balls":
		return defaultBallsYAML
	case "ball":
		return defaultBallYAML
	default:
		return nil
	}
}

// hardcodedDefault returns the compiled-in fallback for a demo.
func hardcodedDefault(demoID string) (BallsConfig, bool) {
	switch demoID {
	case "balls":
		return DefaultBallsConfig(), true
	case "ball":
		return DefaultBallConfig(), true
	default:
		return BallsConfig{}, false
	}
}

// bounce animates elastic balls bouncing inside a box, in the terminal.
//
// Usage:
//
//	bounce list               - List available demos
//	bounce play <demo>        - Animate a demo full screen
//	bounce menu               - Pick a demo interactively
//	bounce trace <demo>       - Print ball states headlessly
//
// Global flags:
//
//	--fps <rate>        - Override the demo's frame pause
//	--seed <value>      - Set RNG seed for reproducible fields
//	--config <path>     - Use a custom demo config YAML
//	--speed <preset>    - slow, normal or fast
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file (play and menu only log there)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/demos/balls"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagSpeed    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bouncing balls in your terminal",
	Long: `Bounce animates balls moving inside a box and bouncing off its walls.

Available commands:
  list     - Show all available demos
  play     - Animate a specific demo
  menu     - Interactive demo picker
  trace    - Print ball states without a UI

Examples:
  bounce list
  bounce play balls
  bounce play ball --speed fast
  bounce trace balls --steps 10 --seed 42`,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = use the demo's pause)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "normal", "Speed preset: slow, normal, fast")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(traceCmd)
}

// applyGlobalFlags validates shared flags and hands them to the demos.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS < 0 {
		return fmt.Errorf("--fps must not be negative, got %d", flagFPS)
	}
	preset, err := config.ParseSpeedPreset(flagSpeed)
	if err != nil {
		return err
	}
	balls.SetSpeedPreset(preset)
	balls.SetConfigPath(flagConfig)
	return nil
}

// resolveSeed returns the --seed value, or a time-based seed when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds the process logger. With interactive set the terminal
// belongs to Bubble Tea, so logs only go to --log-file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "bounce",
		Level:           level,
	})
	return logger, closeFn, nil
}

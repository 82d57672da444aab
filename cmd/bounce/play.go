package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/platform/tui"
	"github.com/vovakirdan/tui-bounce/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Animate a demo",
	Long: `Animate the specified demo full screen.

Controls:
  P/Space    - Pause / resume
  N          - Advance one step while paused
  R          - Restart with a new random field
  Esc        - Back (ends the demo)
  Q/Ctrl+C   - Quit

Examples:
  bounce play balls
  bounce play ball --speed slow
  bounce play balls --seed 42 --fps 30
  bounce play balls --config ./my-balls.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	demoID := args[0]

	if !registry.Exists(demoID) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", demoID)
		fmt.Fprintln(os.Stderr, "Run 'bounce list' to see available demos.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if _, err := playDemo(demoID, logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}
}

// terminalConfig builds the runtime config from the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = resolveSeed()
	return cfg
}

// playDemo creates and runs one demo, returning how the user left it.
func playDemo(demoID string, logger *log.Logger) (int, error) {
	demo, err := registry.Create(demoID)
	if err != nil {
		return tui.ExitQuit, err
	}
	return tui.Run(demo, terminalConfig(), logger)
}

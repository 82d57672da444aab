package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/ballfield"
	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/driver"
	"github.com/vovakirdan/tui-bounce/internal/registry"
)

var (
	flagSteps    uint64
	flagTable    bool
	flagInterval time.Duration
)

var traceCmd = &cobra.Command{
	Use:   "trace <demo>",
	Short: "Print ball states without a UI",
	Long: `Run a demo's simulation headlessly and print every ball after each step.

Line format (default):
  <step> <ball> <x> <y> <vx> <vy> <radius> <color>

Examples:
  bounce trace balls --steps 5 --seed 42
  bounce trace ball --steps 3 --table
  bounce trace balls --steps 0 --interval 15ms   # until Ctrl+C`,
	Args: cobra.ExactArgs(1),
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().Uint64Var(&flagSteps, "steps", 100, "Number of steps (0 = until interrupted)")
	traceCmd.Flags().BoolVar(&flagTable, "table", false, "Print each step as a table")
	traceCmd.Flags().DurationVar(&flagInterval, "interval", 0, "Delay between steps")
}

func runTrace(cmd *cobra.Command, args []string) {
	demoID := args[0]

	if !registry.Exists(demoID) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", demoID)
		fmt.Fprintln(os.Stderr, "Run 'bounce list' to see available demos.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := config.Load(demoID, flagConfig)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	preset, _ := config.ParseSpeedPreset(flagSpeed) // validated in PersistentPreRunE
	config.ApplySpeedPreset(&cfg, preset)

	seed := resolveSeed()
	sim, err := cfg.Build(ballfield.NewSource(seed))
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("field built", "demo", demoID, "seed", seed, "balls", sim.Len())

	format := driver.TraceLines
	if flagTable {
		format = driver.TraceTable
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := driver.New(sim, driver.NewTraceRenderer(os.Stdout, format), driver.Options{
		Interval: flagInterval,
		Steps:    flagSteps,
		Logger:   logger,
	})
	if _, err := d.Run(ctx); err != nil {
		stop()
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a demo interactively",
	Long: `Show a menu of all demos. Esc inside a demo returns to the menu,
Q quits.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	for {
		demoID, err := tui.RunMenu()
		if err != nil {
			closeLog()
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			os.Exit(1)
		}
		if demoID == "" {
			return
		}

		exit, err := playDemo(demoID, logger)
		if err != nil {
			closeLog()
			fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
			os.Exit(1)
		}
		if exit != tui.ExitBack {
			return
		}
	}
}

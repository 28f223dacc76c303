package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from an interactive menu",
	Long: `Start t2048 in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a board.
Esc during a game returns to the menu; Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start board
  Tab          - Scores
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --difficulty easy
  t2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("t2048")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := openStore(cfg, logger)

	runErr := tui.RunApp(tui.AppOptions{
		Config:  cfg,
		Runtime: runtimeConfig(cfg),
		Store:   store,
		Logger:  logger,
		Player:  os.Getenv("USER"),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fail("running menu: %v", runErr)
	}
}

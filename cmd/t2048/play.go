package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the specified variant (default: the configured one).

Controls:
  Arrows/WASD/hjkl - Slide tiles
  R                - New game
  P                - Pause
  Ctrl+S           - Save a screenshot to ~/.t2048/screenshots
  ?                - Toggle full help
  Esc/B, Q         - Quit

Difficulty options:
  easy   - 5% of new tiles are 4s
  normal - 10% of new tiles are 4s
  hard   - 25% of new tiles are 4s

Examples:
  t2048 play
  t2048 play mini
  t2048 play large --difficulty hard
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			fail("unknown variant %q\nRun 't2048 variants' to see available boards.", args[0])
		}
		flagVariant = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	settings, err := cfg.Resolve()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("t2048")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := openStore(cfg, logger)

	player := os.Getenv("USER")
	runErr := tui.Run(tui.GameOptions{
		Settings: settings,
		Runtime:  runtimeConfig(cfg),
		Store:    store,
		Logger:   logger,
		Player:   player,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}

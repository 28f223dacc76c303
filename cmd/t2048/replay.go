package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/session"
)

var (
	flagMoves string
	flagBoard string
)

var replayCmd = &cobra.Command{
	Use:   "replay [variant]",
	Short: "Apply a list of moves to a seeded board and print the result",
	Long: `Play a game without the TUI by applying moves in order, then print the
final board. With the same --seed and moves the result is always the same.
Moves after the game has ended are ignored. Replays are not saved.

--board starts from a fixed position instead of two random tiles; its
size overrides the variant's board size.

Examples:
  t2048 replay --seed 42 --moves left,up,right,down
  t2048 replay mini --seed 7 --moves "left up left up"
  t2048 replay --board "2,2,0,0/0,4,0,0/0,0,0,0/0,0,0,8" --moves left`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagMoves, "moves", "", "Directions to apply: up, down, left, right (comma or space separated)")
	replayCmd.Flags().StringVar(&flagBoard, "board", "", "Starting position: rows separated by /, values by commas")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			fail("unknown variant %q\nRun 't2048 variants' to see available boards.", args[0])
		}
		flagVariant = args[0]
	}

	moves, err := session.ParseMoves(flagMoves)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	settings, err := cfg.Resolve()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("t2048-replay")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	sessCfg := settings.SessionConfig(flagSeed)
	opts := []session.Option{session.WithLogger(logger)}
	if flagBoard != "" {
		board, err := session.ParseBoard(flagBoard)
		if err != nil {
			closeLog()
			fail("%v", err)
		}
		sessCfg.Dimension = len(board)
		opts = append(opts, session.WithBoard(board))
	}

	sess, err := session.Replay(sessCfg, moves, game.LogObserver{Logger: logger}, opts...)
	if err != nil {
		closeLog()
		fail("%v", err)
	}

	snap := sess.Snapshot()
	fmt.Printf("Variant: %s (%dx%d, goal %d)   Seed: %d\n",
		snap.Variant, snap.Dimension, snap.Dimension, snap.Threshold, sess.Config().Seed)
	fmt.Println()
	fmt.Print(formatBoard(snap.Board))
	fmt.Println()
	fmt.Printf("Score: %d   Max tile: %d   Moves: %d/%d   State: %s\n",
		snap.Score, snap.MaxTile, snap.Moves, len(moves), snap.State)
}

// formatBoard renders tile values as a right-aligned text grid.
func formatBoard(board [][]int) string {
	width := 1
	for _, row := range board {
		for _, v := range row {
			width = max(width, len(fmt.Sprint(v)))
		}
	}

	var b strings.Builder
	for _, row := range board {
		b.WriteString(" ")
		for _, v := range row {
			cell := "."
			if v != 0 {
				cell = fmt.Sprint(v)
			}
			fmt.Fprintf(&b, " %*s", width, cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagRecent      bool
	flagPlayer      string
	flagGameID      string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a board",
	Long: `Display the top high scores and game statistics for a variant.
Without a variant, shows a summary of every board that has been played.

Examples:
  t2048 scores
  t2048 scores classic
  t2048 scores mini --limit 20
  t2048 scores --recent
  t2048 scores --player alice
  t2048 scores --game 0b0e7c1a-...
  t2048 scores mini --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	f := scoresCmd.Flags()
	f.IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	f.BoolVar(&flagScoresClear, "clear", false, "Delete all scores and games of the given variant")
	f.BoolVar(&flagRecent, "recent", false, "Show the most recently finished games")
	f.StringVar(&flagPlayer, "player", "", "Show the games played by this player")
	f.StringVar(&flagGameID, "game", "", "Show a single game by session ID")
}

func runScores(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagGameID != "":
		printGame(store, flagGameID)
		return
	case flagPlayer != "":
		games, err := store.PlayerHistory(flagPlayer, flagScoresLimit)
		if err != nil {
			store.Close()
			fail("retrieving games: %v", err)
		}
		fmt.Printf("Games by %s\n\n", flagPlayer)
		printGames(games)
		return
	case flagRecent:
		games, err := store.RecentGames(flagScoresLimit)
		if err != nil {
			store.Close()
			fail("retrieving games: %v", err)
		}
		fmt.Printf("Recent games\n\n")
		printGames(games)
		return
	}

	if len(args) == 0 {
		if flagScoresClear {
			store.Close()
			fail("--clear needs a variant")
		}
		printSummary(store)
		return
	}

	variant := args[0]
	if flagScoresClear {
		if err := store.ClearScores(variant); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Printf("Cleared all scores for %s.\n", variant)
		return
	}

	title := variant
	if v, err := registry.Get(variant); err == nil {
		title = v.Title
	}

	scores, err := store.TopScores(variant, flagScoresLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", variant)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.GetVariantStats(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d   Best tile: %d   Games: %d   Won: %d   Average: %.0f\n",
		stats.HighScore, stats.BestTile, stats.GamesCount, stats.Wins, stats.AvgScore)
}

// printSummary prints one line of statistics per played variant.
func printSummary(store *storage.Store) {
	all, err := store.GetAllVariantStats()
	if err != nil {
		store.Close()
		fail("retrieving statistics: %v", err)
	}

	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-20s  %-6s  %-5s  %-8s  %-9s  %s\n", "Variant", "Games", "Won", "Best", "Best tile", "Last played")
	fmt.Printf("  %-20s  %-6s  %-5s  %-8s  %-9s  %s\n", "-------", "-----", "---", "----", "---------", "-----------")

	// Registered variants first, in menu order, then custom boards.
	printed := make(map[string]bool, len(all))
	printRow := func(id string) {
		s, ok := all[id]
		if !ok || printed[id] {
			return
		}
		printed[id] = true
		fmt.Printf("  %-20s  %-6d  %-5d  %-8d  %-9d  %s\n",
			id, s.GamesCount, s.Wins, s.HighScore, s.BestTile, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	for _, v := range registry.List() {
		printRow(v.ID)
	}
	for id := range all {
		printRow(id)
	}
}

// printGames prints finished games, newest or best first as queried.
func printGames(games []storage.GameRecord) {
	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-20s  %-10s  %-8s  %-8s  %-6s  %-9s  %-36s  %s\n",
		"Variant", "Player", "Score", "Tile", "Moves", "Result", "Session", "Date")
	for _, g := range games {
		player := g.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-20s  %-10s  %-8d  %-8d  %-6d  %-9s  %-36s  %s\n",
			g.Variant, player, g.Score, g.MaxTile, g.Moves, g.Result,
			g.SessionID, g.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// printGame prints every recorded field of one game.
func printGame(store *storage.Store, sessionID string) {
	g, err := store.GameBySession(sessionID)
	if err != nil {
		store.Close()
		fail("retrieving game: %v", err)
	}
	if g == nil {
		fmt.Printf("No game recorded with session %s.\n", sessionID)
		return
	}

	fmt.Printf("Session:  %s\n", g.SessionID)
	fmt.Printf("Variant:  %s\n", g.Variant)
	fmt.Printf("Player:   %s\n", g.Player)
	fmt.Printf("Result:   %s\n", g.Result)
	fmt.Printf("Score:    %d\n", g.Score)
	fmt.Printf("Max tile: %d\n", g.MaxTile)
	fmt.Printf("Moves:    %d\n", g.Moves)
	fmt.Printf("Duration: %s\n", time.Duration(g.Duration)*time.Second)
	fmt.Printf("Played:   %s\n", g.CreatedAt.Format("2006-01-02 15:04"))
}

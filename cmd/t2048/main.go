// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play [variant]     - Play a board directly
//	t2048 menu               - Pick a board interactively
//	t2048 variants           - List available boards
//	t2048 scores [variant]   - Show high scores and statistics
//	t2048 replay [variant]   - Apply moves to a seeded board and print it
//	t2048 config             - Print or install the default config
//	t2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--variant <id>       - Board variant (default: classic)
//	--difficulty <name>  - easy, normal or hard (chance of 4-tiles)
//	--seed <value>       - RNG seed for reproducible games
//	--fps <rate>         - Animation tick rate
//	--db <path>          - Scores database (default: ~/.t2048/scores.db)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagVariant    string
	flagDifficulty string
	flagSeed       int64
	flagFPS        int
	flagDBPath     string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide all tiles in one direction; equal tiles that collide merge into
their sum. Reach the winning tile before the board fills up.

Available commands:
  play      - Play a board directly
  menu      - Interactive board picker
  variants  - Show all available boards
  scores    - View high scores and statistics
  replay    - Apply a list of moves to a seeded board
  config    - Print or install the default configuration
  serve     - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play mini --difficulty hard
  t2048 menu
  t2048 serve --ssh :2222
  t2048 scores classic`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagVariant, "variant", "", "Board variant (see 't2048 variants')")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagFPS, "fps", 0, "Animation tick rate (0 = from config)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration and applies the global flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagVariant != "" {
		cfg.Game.Variant = flagVariant
	}
	if err := config.ApplyDifficultyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger returns a file logger when --log-file is set. Without it logs
// are discarded so they do not draw over the TUI. The returned close
// function is never nil.
func newLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}

// openStore opens the scores database. Games still work without it, so
// failures are only reported as a warning.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return cfg.Display.Runtime(width, height, flagSeed)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

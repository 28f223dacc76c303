package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagConfigInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration file.

With --init the file is written to ~/.t2048/configs/t2048.yaml, where it is
picked up automatically. An existing file is never overwritten.

Examples:
  t2048 config > my-2048.yaml
  t2048 config --init`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "Write the default config to ~/.t2048/configs")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigInit {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fail("finding home directory: %v", err)
	}
	path := filepath.Join(home, ".t2048", "configs", config.FileName)

	if _, err := os.Stat(path); err == nil {
		fail("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fail("creating config directory: %v", err)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		fail("writing config: %v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}

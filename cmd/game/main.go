// dungeon-chase is a tile-based dungeon chase game.
//
// Usage:
//
//	dungeon-chase                    - Play (same as "play")
//	dungeon-chase play               - Open the game window
//	dungeon-chase generate -o <file> - Generate a maze map file
//	dungeon-chase preview <file>     - Print a map in the terminal
//	dungeon-chase stages             - List configured stages
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.dungeon-chase, ./configs, built-in)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Garsondee/dungeon-chase/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dungeon-chase",
	Short: "Dungeon Chase - find the exit before the dark closes in",
	Long: `Dungeon Chase is a tile-based maze game. You see only a few tiles
around you; find the goal to clear the stage.

Available commands:
  play      - Open the game window (default)
  generate  - Generate a maze map file
  preview   - Print a map in the terminal
  stages    - List configured stages

Examples:
  dungeon-chase
  dungeon-chase --config ./my-config.yaml --log-level debug
  dungeon-chase generate --seed 7 -o maps/level2.json
  dungeon-chase preview maps/level1.json --fov-only`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(stagesCmd)
}

// setup loads the configuration and builds the root logger.
func setup() (config.Config, *log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dungeon",
	})
	res, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, logger, err
	}
	cfg := res.Config
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	lvl, err := cfg.Level()
	if err != nil {
		return config.Config{}, logger, err
	}
	logger.SetLevel(lvl)
	logger.Debug("config loaded", "source", res.Source)
	return cfg, logger, nil
}

// platformer is a tile-based side-scroller.
//
// Usage:
//
//	platformer play [level]    - Play from a level (default: config start_level)
//	platformer levels          - List bundled and on-disk levels
//	platformer scores [level]  - Show the best runs
//
// Global flags:
//
//	--config <path>  - Config file (default: search ~/.platformer, ./configs, embedded)
//	--db <path>      - Score database (default: ~/.platformer/scores.db)
//	--debug          - Debug logging and collider outlines
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/storage"
)

var (
	flagConfig string
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A tile-based side-scroller",
	Long: `Run, jump and stomp through tile levels.

Examples:
  platformer play
  platformer play 1-2 --watch
  platformer levels
  platformer scores 1-1`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and collider outlines")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDebug {
		cfg.Debug.DrawColliders = true
	}
	return cfg, nil
}

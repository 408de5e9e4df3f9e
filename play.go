package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/storage"
)

var (
	flagWatch bool
	flagScale int
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the game",
	Long: `Start a run. Without a level it continues from the last level played,
or the configured start level.

Examples:
  platformer play
  platformer play 1-2
  platformer play --watch   # reload specs, scripts and levels on save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload prefabs, scripts and levels when they change on disk")
	playCmd.Flags().IntVar(&flagScale, "scale", 0, "Window scale (default: saved setting)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	settings := config.OpenSettings("platformer")
	if flagScale > 0 {
		settings.SetScale(flagScale)
	}

	level := cfg.Game.StartLevel
	if len(args) > 0 {
		level = levels.Trim(args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Scores are optional.
		log.Warn("score database unavailable", "path", flagDBPath, "err", err)
		store = nil
	}

	game, err := NewGame(GameOptions{
		Config:   cfg,
		Settings: settings,
		Store:    store,
		Level:    level,
		Watch:    flagWatch,
	})
	if err != nil {
		if store != nil {
			store.Close()
		}
		return err
	}
	defer game.Close()

	s := settings.Settings()
	ebiten.SetWindowSize(cfg.Screen.Width*s.Scale, cfg.Screen.Height*s.Scale)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetFullscreen(s.Fullscreen)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(game)
}

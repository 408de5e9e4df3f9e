// editor is the level editor. It edits a level's tiles and entities and
// can test-play the result without saving.
//
// Usage:
//
//	editor [level]                       - Edit a level (default 1-1)
//	editor new <name> --width 120 --height 15
//
// Controls: 1-5 pick a tool, Q/E cycle tile layers, [ ] pick an entity,
// H toggles layer physics, T test-plays, Ctrl+S saves, Ctrl+Z undoes.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

var (
	flagConfig string
	flagDebug  bool
	flagWatch  bool
	flagWidth  int
	flagHeight int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "editor [level]",
	Short: "Level editor",
	Args:  cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "1-1"
		if len(args) > 0 {
			name = levels.Trim(args[0])
		}
		lvl, err := obj.LoadLevel(name)
		if err != nil {
			return err
		}
		return run(lvl)
	},
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Start a new empty level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagWidth <= 0 || flagHeight <= 0 {
			return fmt.Errorf("level size must be positive, got %dx%d", flagWidth, flagHeight)
		}
		lvl := obj.NewLevel(levels.Trim(args[0]), flagWidth, flagHeight)
		for x := 0; x < lvl.Width; x++ {
			lvl.SetTile(0, x, lvl.Height-1, 1)
			lvl.SetTile(0, x, lvl.Height-2, 1)
		}
		return run(lvl)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and collider outlines")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", true, "Reload the level and specs when they change on disk")
	newCmd.Flags().IntVar(&flagWidth, "width", 120, "Level width in tiles")
	newCmd.Flags().IntVar(&flagHeight, "height", 15, "Level height in tiles")
	rootCmd.AddCommand(newCmd)
}

func run(lvl *obj.Level) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDebug {
		cfg.Debug.DrawColliders = true
	}
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		return err
	}

	ed, err := NewEditor(cfg, catalog, lvl)
	if err != nil {
		return err
	}
	if err := ed.initUI(); err != nil {
		return err
	}
	if flagWatch {
		w, err := prefabs.NewWatcher("prefabs", levels.Dir)
		if err != nil {
			log.Warn("file watching disabled", "err", err)
		} else {
			ed.watcher = w
			defer w.Close()
		}
	}

	log.Info("editing", "level", lvl.Name, "size", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height))
	ebiten.SetWindowSize(editorWidth*2, editorHeight*2)
	ebiten.SetWindowTitle("Platformer Editor - " + lvl.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(ed)
}

package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/storage"
	"github.com/milk9111/platformer/system"
)

type GameOptions struct {
	Config   config.Config
	Settings *config.SettingsManager
	// Store is where finished runs are saved. May be nil.
	Store *storage.Store
	Level string
	// Watch reloads specs, scripts and levels when they change on disk.
	Watch bool
}

type Game struct {
	cfg      config.Config
	settings *config.SettingsManager
	store    *storage.Store
	watcher  *prefabs.Watcher

	keyboard *obj.Keyboard
	session  *system.Session
	start    string

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	saved     bool
	highScore int
}

func NewGame(opts GameOptions) (*Game, error) {
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      opts.Config,
		settings: opts.Settings,
		store:    opts.Store,
		keyboard: obj.NewKeyboard(),
		start:    opts.Level,
	}
	if g.start == "" {
		g.start = opts.Config.Game.StartLevel
	}

	if err := g.newRun(catalog); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts", levels.Dir)
		if err != nil {
			log.Warn("file watching disabled", "err", err)
		} else {
			g.watcher = w
			log.Info("watching for changes", "dirs", []string{"prefabs", "prefabs/scripts", levels.Dir})
		}
	}

	if g.store != nil {
		if best, err := g.store.HighScore(); err == nil {
			g.highScore = best
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// newRun starts a fresh run from the start level.
func (g *Game) newRun(catalog *prefabs.Catalog) error {
	world := system.NewWorld(g.cfg, catalog, system.ModePlay, g.keyboard)
	if err := world.LoadByName(g.start); err != nil {
		return err
	}
	g.session = system.NewSession(world)
	g.saved = false
	g.paused = false
	log.Info("run started", "level", g.start)
	return nil
}

func (g *Game) restart() {
	if err := g.newRun(g.session.World.Catalog()); err != nil {
		log.Error("restart", "err", err)
		g.quit = true
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.settings != nil {
		if err := g.settings.Save(); err != nil {
			log.Warn("save settings", "err", err)
		}
	}
	if g.store != nil {
		_ = g.store.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		g.saveRun()
		return ebiten.Termination
	}

	g.pollWatcher()
	g.keyboard.Update()

	if g.keyboard.PausePressed && !g.session.Finished {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.session.Finished {
		g.saveRun()
		if g.keyboard.JumpPressed {
			g.restart()
		}
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	for _, evt := range g.session.Update(dt) {
		if evt.Kind == obj.EventClear && g.settings != nil {
			g.settings.SetLastLevel(g.session.World.Stats().Level)
		}
	}
	return nil
}

// saveRun records the run once per session.
func (g *Game) saveRun() {
	if g.saved || g.store == nil {
		return
	}
	g.saved = true

	stats := g.session.World.Stats()
	player := "MARIO"
	if g.settings != nil {
		player = g.settings.Settings().PlayerName
	}
	id, err := g.store.SaveRun(storage.Run{
		Player:  player,
		Level:   stats.Level,
		Score:   stats.Score,
		Coins:   stats.Coins,
		Cleared: g.session.Finished && !stats.GameOver,
	})
	if err != nil {
		log.Error("save run", "err", err)
		return
	}
	if stats.Score > g.highScore {
		g.highScore = stats.Score
	}
	log.Info("run saved", "id", id, "score", stats.Score)
}

// pollWatcher applies file changes without blocking the frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Warn("watcher", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	world := g.session.World
	current := world.Stats().Level

	switch {
	case prefabs.IsSpecFile(path):
		catalog, err := prefabs.LoadCatalog()
		if err != nil {
			log.Error("reload specs", "path", path, "err", err)
			return
		}
		world.SetCatalog(catalog)
		log.Info("specs reloaded", "path", path)
	case prefabs.IsScriptFile(path):
		log.Info("script changed", "path", path)
	case prefabs.IsLevelFile(path):
		if levels.Trim(path) != current {
			return
		}
		log.Info("level changed", "path", path)
	default:
		return
	}

	// Triggers compile their scripts at spawn, so every change rebuilds
	// the level.
	if err := world.LoadByName(current); err != nil {
		log.Error("reload level", "level", current, "err", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(screen)

	if g.session.Finished {
		g.drawFinished(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.settings != nil && g.settings.Settings().ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f", ebiten.ActualFPS()), 4, g.cfg.Screen.Height-16)
	}
}

func (g *Game) drawFinished(screen *ebiten.Image) {
	w, h := float32(g.cfg.Screen.Width), float32(g.cfg.Screen.Height)
	vector.DrawFilledRect(screen, 0, h/2-28, w, 56, color.NRGBA{A: 200}, false)

	stats := g.session.World.Stats()
	title := "THANK YOU FOR PLAYING"
	if stats.GameOver {
		title = "GAME OVER"
	}
	x := g.cfg.Screen.Width/2 - 80
	y := g.cfg.Screen.Height/2 - 24
	ebitenutil.DebugPrintAt(screen, title, x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %06d  BEST %06d", stats.Score, max(g.highScore, stats.Score)), x, y+16)
	ebitenutil.DebugPrintAt(screen, "PRESS JUMP TO PLAY AGAIN", x, y+32)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

package system

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

// Mode selects what a world does with its level.
type Mode int

const (
	// ModePlay runs the level with a player and HUD.
	ModePlay Mode = iota
	// ModeEdit shows spawners and triggers as placed and never updates
	// entities.
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "play"
}

// World owns everything one level needs to run. It is the obj.Context
// handed to every object it builds.
type World struct {
	cfg      config.Config
	catalog  *prefabs.Catalog
	mode     Mode
	controls obj.Controls

	// source is the level as loaded; restarts rebuild from it.
	source    *obj.Level
	level     *obj.Level
	colliders *collision.Manager
	entities  *entity.Manager
	registry  *entity.Registry
	tiles     *obj.TileMap
	stats     *obj.Stats
	events    *obj.EventQueue
	player    *obj.Player
	hud       *obj.HUD
}

// NewWorld returns an empty world. controls is only read in play mode.
func NewWorld(cfg config.Config, catalog *prefabs.Catalog, mode Mode, controls obj.Controls) *World {
	w := &World{
		cfg:      cfg,
		catalog:  catalog,
		mode:     mode,
		controls: controls,
		stats:    obj.NewStats("", cfg.Game.Lives),
		events:   &obj.EventQueue{},
	}
	if controls == nil {
		w.controls = &obj.Input{}
	}
	w.reset()
	return w
}

func (w *World) Colliders() *collision.Manager { return w.colliders }
func (w *World) Entities() *entity.Manager     { return w.entities }
func (w *World) Catalog() *prefabs.Catalog     { return w.catalog }
func (w *World) Config() config.Config         { return w.cfg }
func (w *World) Stats() *obj.Stats             { return w.stats }
func (w *World) Events() *obj.EventQueue       { return w.events }
func (w *World) Player() *obj.Player           { return w.player }
func (w *World) Mode() Mode                    { return w.mode }
func (w *World) Level() *obj.Level             { return w.level }
func (w *World) TileMap() *obj.TileMap         { return w.tiles }
func (w *World) Registry() *entity.Registry    { return w.registry }
func (w *World) HUD() *obj.HUD                 { return w.hud }

func (w *World) Bounds() common.Rect {
	if w.level == nil {
		return common.Rect{}
	}
	return w.level.Bounds()
}

// SetCatalog swaps the tuning data. Objects built afterwards use it; call
// Restart to rebuild the current level with it.
func (w *World) SetCatalog(c *prefabs.Catalog) {
	if c != nil {
		w.catalog = c
	}
}

// reset drops every collider and entity and starts from fresh managers.
func (w *World) reset() {
	if w.entities != nil {
		w.entities.Clear()
	}
	w.colliders = collision.NewManager(w.cfg.Physics.CollisionIterations)
	if w.mode == ModeEdit {
		w.entities = entity.NewEditorManager()
	} else {
		w.entities = entity.NewDefaultManager()
	}
	w.registry = entity.NewRegistry()
	obj.RegisterFactories(w.registry, w)
	w.tiles = nil
	w.player = nil
	w.hud = nil
	w.events.Drain()
}

// Load makes lvl the current level, starting it fresh. Score and lives
// carry over from whatever ran before.
func (w *World) Load(lvl *obj.Level) error {
	if lvl == nil {
		return fmt.Errorf("system: load nil level")
	}
	w.stats.ResetLevel(lvl.Name)
	if err := w.build(lvl); err != nil {
		return err
	}
	w.source = lvl
	log.Debug("level loaded", "level", lvl.Name, "mode", w.mode, "entities", w.entities.Len(), "colliders", w.colliders.Len())
	return nil
}

// LoadByName loads a level from disk or the embedded set.
func (w *World) LoadByName(name string) error {
	lvl, err := obj.LoadLevel(name)
	if err != nil {
		return err
	}
	return w.Load(lvl)
}

func (w *World) build(src *obj.Level) error {
	w.reset()
	w.level = src.Clone()

	if err := w.entities.Deserialize(src.Entities, w.registry); err != nil {
		return fmt.Errorf("system: level %s: %w", src.Name, err)
	}
	w.tiles = obj.NewTileMap(w.level, w.colliders)
	w.entities.Register(w.tiles)

	if w.mode == ModePlay {
		w.player = obj.NewPlayer(w, w.controls, w.spawnPoint())
		w.hud = obj.NewHUD(w)
		w.entities.Register(w.player, w.hud)
	}
	return nil
}

// spawnPoint is the checkpoint if one was reached, else the level spawn.
func (w *World) spawnPoint() common.Vector {
	if p, ok := w.stats.Checkpoint(); ok {
		return p
	}
	return w.level.SpawnPosition(w.catalog.Player.Small.Height)
}

// Restart starts a new run of the current level: fresh stats and the
// level rebuilt from how it was loaded.
func (w *World) Restart() error {
	if w.source == nil {
		return fmt.Errorf("system: restart without a level")
	}
	w.stats = obj.NewStats(w.source.Name, w.cfg.Game.Lives)
	return w.build(w.source)
}

// respawn rebuilds the level after a death, keeping stats and any
// checkpoint.
func (w *World) respawn() error {
	if w.source == nil {
		return fmt.Errorf("system: respawn without a level")
	}
	return w.build(w.source)
}

// Update advances the simulation one step and returns what happened. In
// edit mode it only drains events.
func (w *World) Update(dt float64, view common.Rect) []obj.Event {
	if w.mode == ModePlay && w.level != nil {
		w.entities.Update(dt, view)
	}

	events := w.events.Drain()
	for _, evt := range events {
		switch evt.Kind {
		case obj.EventRespawn:
			if err := w.respawn(); err != nil {
				log.Error("respawn", "level", w.stats.Level, "err", err)
			}
		case obj.EventGameOver:
			log.Info("game over", "level", w.stats.Level, "score", w.stats.Score)
		case obj.EventClear:
			log.Info("level clear", "level", w.stats.Level, "score", w.stats.Score)
		}
	}
	return events
}

// Draw paints the background, every entity in layer order and, when
// enabled, the collider outlines.
func (w *World) Draw(screen *ebiten.Image, view common.Rect) {
	if w.level == nil {
		return
	}
	screen.Fill(w.level.BackgroundColor())
	w.entities.Draw(screen, view)
	if w.cfg.Debug.DrawColliders {
		obj.DrawColliders(screen, w.colliders, view)
	}
}

// Serialize captures the current level: its tiles plus the saved form of
// every entity.
func (w *World) Serialize() *obj.Level {
	if w.level == nil {
		return nil
	}
	out := w.level.Clone()
	out.Entities = w.entities.Serialize()
	return out
}

// Rebuild applies edits to the tiles made through Level().
func (w *World) Rebuild() {
	if w.tiles == nil {
		return
	}
	w.tiles.Build(w.colliders)
	w.level.Invalidate()
}

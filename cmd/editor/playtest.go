package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/system"
)

// StartPlay runs a copy of the edited level in a play world. Whatever
// happens during the test leaves the edited level untouched.
func (e *Editor) StartPlay() error {
	e.EndStroke()
	lvl := e.world.Serialize()
	lvl.Name = e.name

	w := system.NewWorld(e.cfg, e.catalog, system.ModePlay, e.keyboard)
	if err := w.Load(lvl); err != nil {
		return fmt.Errorf("editor: test play: %w", err)
	}
	e.play = system.NewSession(w)
	log.Info("test play", "level", e.name)
	return nil
}

func (e *Editor) StopPlay() {
	if e.play == nil {
		return
	}
	stats := e.play.World.Stats()
	log.Info("test play ended", "level", e.name, "score", stats.Score, "cleared", stats.Cleared)
	e.play = nil
}

// stepPlay advances the test session one frame and ends it on a clear or
// game over, before the session moves to another level.
func (e *Editor) stepPlay(dt float64) {
	for _, evt := range e.play.Update(dt) {
		switch evt.Kind {
		case obj.EventClear:
			e.setStatus("cleared %s", e.name)
			e.StopPlay()
			return
		case obj.EventGameOver:
			e.setStatus("game over")
			e.StopPlay()
			return
		}
	}
}

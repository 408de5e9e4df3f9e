package system

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
)

// Session drives a play world frame by frame: a camera that follows the
// player, and fades between levels.
type Session struct {
	World      *World
	Camera     *obj.Camera
	Transition *obj.Transition

	// Finished is set once the last level is cleared or the run is over.
	Finished bool
}

func NewSession(w *World) *Session {
	screen := w.Config().Screen
	s := &Session{
		World:      w,
		Camera:     obj.NewCamera(screen.Width, screen.Height),
		Transition: obj.NewTransition(20),
	}
	s.Camera.NoBacktrack = true
	s.snapCamera()
	return s
}

// View is the world rect currently on screen.
func (s *Session) View() common.Rect {
	return s.Camera.View()
}

func (s *Session) snapCamera() {
	lvl := s.World.Level()
	if lvl == nil {
		return
	}
	b := lvl.Bounds()
	s.Camera.SetWorldBounds(b.W, b.H)
	if p := s.World.Player(); p != nil {
		c := p.Center()
		s.Camera.SnapTo(c.X, c.Y)
	}
}

// Update steps the world unless a fade is running and returns the
// world's events for the frame.
func (s *Session) Update(dt float64) []obj.Event {
	if s.Transition.Update() {
		return nil
	}
	if s.Finished {
		return nil
	}

	events := s.World.Update(dt, s.View())
	for _, evt := range events {
		switch evt.Kind {
		case obj.EventRespawn:
			// The world was rebuilt around a new player.
			s.snapCamera()
		case obj.EventGameOver:
			s.Finished = true
		case obj.EventClear:
			s.advance()
		}
	}

	if p := s.World.Player(); p != nil && !p.Dead() {
		c := p.Center()
		lead := s.World.Config().Game.CameraLead * p.Velocity().X
		s.Camera.Update(c.X+lead, c.Y)
	}
	return events
}

// advance fades to the level after the current one, or finishes the run
// when there is none.
func (s *Session) advance() {
	next := NextLevel(s.World.Stats().Level)
	if next == "" {
		s.Finished = true
		return
	}
	s.Transition.Start(next, func(name string) {
		if err := s.World.LoadByName(name); err != nil {
			log.Error("load next level", "level", name, "err", err)
			s.Finished = true
			return
		}
		s.snapCamera()
	})
}

func (s *Session) Draw(screen *ebiten.Image) {
	s.World.Draw(screen, s.View())
	s.Transition.Draw(screen)
}

// NextLevel is the bundled level that follows current in name order, or
// "" after the last one.
func NextLevel(current string) string {
	names := levels.Names()
	for i, name := range names {
		if name == current && i+1 < len(names) {
			return names[i+1]
		}
	}
	return ""
}

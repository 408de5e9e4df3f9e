package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/platformer/obj"
)

func TestNextLevel(t *testing.T) {
	assert.Equal(t, "1-2", NextLevel("1-1"))
	assert.Empty(t, NextLevel("1-2"))
	assert.Empty(t, NextLevel("unknown"))
}

func TestSessionAdvancesOnClear(t *testing.T) {
	s := NewSession(newWorld(t, ModePlay, "1-1"))
	s.World.Stats().AddScore(1234)

	s.World.Events().Push(obj.Event{Kind: obj.EventClear})
	events := s.Update(frame)
	require.Contains(t, kinds(events), obj.EventClear)
	assert.True(t, s.Transition.Active())

	for range 2 * s.Transition.Duration {
		assert.Nil(t, s.Update(frame))
	}

	assert.False(t, s.Transition.Active())
	assert.Equal(t, "1-2", s.World.Level().Name)
	assert.Equal(t, "1-2", s.World.Stats().Level)
	assert.Equal(t, 1234, s.World.Stats().Score)
	assert.False(t, s.World.Stats().Cleared)
	assert.False(t, s.Finished)
}

func TestSessionFinishesAfterLastLevel(t *testing.T) {
	s := NewSession(newWorld(t, ModePlay, "1-2"))

	s.World.Events().Push(obj.Event{Kind: obj.EventClear})
	s.Update(frame)

	assert.True(t, s.Finished)
	assert.False(t, s.Transition.Active())
	assert.Nil(t, s.Update(frame))
}

func TestSessionCameraFollowsPlayer(t *testing.T) {
	in := &obj.Input{MoveX: 1, RunHeld: true}
	w := newWorld(t, ModePlay, "1-1")
	w.controls = in
	require.NoError(t, w.Restart())
	s := NewSession(w)
	start := s.View().X

	for range 90 {
		s.Update(frame)
	}

	assert.Greater(t, s.View().X, start)
	p := s.World.Player()
	assert.True(t, s.View().Intersects(p.Rect()))
}

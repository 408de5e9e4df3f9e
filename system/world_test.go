package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

const frame = 1.0 / 60

var testView = common.NewRect(0, 0, common.BaseWidth, common.BaseHeight)

func newWorld(t *testing.T, mode Mode, level string) *World {
	t.Helper()
	catalog, err := prefabs.LoadCatalog()
	require.NoError(t, err)
	w := NewWorld(config.Default(), catalog, mode, &obj.Input{})
	require.NoError(t, w.LoadByName(level))
	return w
}

func kinds(events []obj.Event) []obj.EventKind {
	var out []obj.EventKind
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestPlayWorldLoad(t *testing.T) {
	w := newWorld(t, ModePlay, "1-1")

	require.NotNil(t, w.Player())
	assert.True(t, w.Entities().IsRegistered(w.Player()))
	assert.NotNil(t, w.HUD())
	assert.Equal(t, "1-1", w.Stats().Level)
	assert.False(t, w.Entities().Recognizes(collision.Spawner))

	assert.NotEmpty(t, entity.SearchByType[*obj.FireBarRotor](w.Entities()))
	assert.NotEmpty(t, entity.SearchByType[*obj.TriggerZone](w.Entities()))
	assert.Empty(t, entity.SearchByType[*obj.FireBar](w.Entities()))

	spawn := w.Level().SpawnPosition(w.Catalog().Player.Small.Height)
	assert.Equal(t, spawn, w.Player().Position())
}

func TestPlayWorldPlayerLands(t *testing.T) {
	w := newWorld(t, ModePlay, "1-1")

	for range 60 {
		w.Update(frame, testView)
	}

	assert.True(t, w.Player().Grounded())
	assert.Equal(t, 13*common.TileSize, w.Player().Rect().Bottom())
}

func TestEditWorldNeverUpdates(t *testing.T) {
	w := newWorld(t, ModeEdit, "1-1")

	assert.Nil(t, w.Player())
	assert.NotEmpty(t, entity.SearchByType[*obj.FireBar](w.Entities()))
	assert.NotEmpty(t, entity.SearchByType[*obj.Trigger](w.Entities()))

	goombas := entity.SearchByType[*obj.Goomba](w.Entities())
	require.NotEmpty(t, goombas)
	before := goombas[0].Position()
	for range 60 {
		w.Update(frame, testView)
	}
	assert.Equal(t, before, goombas[0].Position())
	assert.False(t, goombas[0].Active())
}

func TestWorldSerializeMatchesSource(t *testing.T) {
	for _, mode := range []Mode{ModePlay, ModeEdit} {
		t.Run(mode.String(), func(t *testing.T) {
			w := newWorld(t, mode, "1-1")
			src, err := obj.LoadLevel("1-1")
			require.NoError(t, err)

			out := w.Serialize()

			assert.Equal(t, src.Entities.Len(), out.Entities.Len())
			assert.Equal(t, src.Layers, out.Layers)

			data, err := out.Marshal()
			require.NoError(t, err)
			back, err := obj.ParseLevel(data)
			require.NoError(t, err)
			assert.Equal(t, src.Entities.Len(), back.Entities.Len())
		})
	}
}

func TestEditThenPlay(t *testing.T) {
	edit := newWorld(t, ModeEdit, "1-2")
	lvl := edit.Level()
	lvl.SetTile(0, 16, 13, 1)
	lvl.SetTile(0, 17, 13, 1)
	edit.Rebuild()
	edit.Entities().Register(obj.NewGoomba(edit, common.Vec(300, 192)))

	snapshot := edit.Serialize()

	play := newWorld(t, ModePlay, "1-1")
	require.NoError(t, play.Load(snapshot))
	assert.True(t, play.Level().Solid(16, 13))
	assert.Len(t,
		entity.SearchByType[*obj.Goomba](play.Entities()),
		len(entity.SearchByType[*obj.Goomba](edit.Entities())))
}

func TestRespawnKeepsStats(t *testing.T) {
	w := newWorld(t, ModePlay, "1-1")
	w.Stats().AddScore(500)
	old := w.Player()
	old.Kill()

	var seen []obj.EventKind
	for range int(w.Config().Game.DeathDelay/frame) + 2 {
		seen = append(seen, kinds(w.Update(frame, testView))...)
	}

	assert.Contains(t, seen, obj.EventRespawn)
	assert.Equal(t, w.Config().Game.Lives-1, w.Stats().Lives)
	assert.Equal(t, 500, w.Stats().Score)
	require.NotNil(t, w.Player())
	assert.NotSame(t, old, w.Player())
	assert.False(t, w.Player().Dead())
}

func TestRespawnAtCheckpoint(t *testing.T) {
	w := newWorld(t, ModePlay, "1-1")
	cp := common.Vec(688, 192)
	w.Stats().SetCheckpoint(cp)
	w.Player().Kill()

	for range int(w.Config().Game.DeathDelay/frame) + 2 {
		w.Update(frame, testView)
	}

	// The new player may have settled for a frame.
	pos := w.Player().Position()
	assert.Equal(t, cp.X, pos.X)
	assert.InDelta(t, cp.Y, pos.Y, 1)
}

func TestLastLifeGameOver(t *testing.T) {
	w := newWorld(t, ModePlay, "1-1")
	w.Stats().Lives = 1
	w.Player().Kill()

	var seen []obj.EventKind
	for range int(w.Config().Game.DeathDelay/frame) + 2 {
		seen = append(seen, kinds(w.Update(frame, testView))...)
	}

	assert.Contains(t, seen, obj.EventGameOver)
	assert.True(t, w.Stats().GameOver)
	assert.True(t, w.Player().Dead())
}

func TestRestartResetsRun(t *testing.T) {
	w := newWorld(t, ModePlay, "1-1")
	w.Stats().AddScore(900)
	w.Stats().Lives = 1

	require.NoError(t, w.Restart())

	assert.Zero(t, w.Stats().Score)
	assert.Equal(t, w.Config().Game.Lives, w.Stats().Lives)
	assert.Equal(t, "1-1", w.Stats().Level)
}

func TestLoadErrors(t *testing.T) {
	catalog, err := prefabs.LoadCatalog()
	require.NoError(t, err)
	w := NewWorld(config.Default(), catalog, ModePlay, nil)

	assert.Error(t, w.Load(nil))
	assert.Error(t, w.LoadByName("no-such-level"))
	assert.Error(t, w.Restart())

	bad := obj.NewLevel("bad", 4, 4)
	bad.Entities.Layers = map[collision.Layer][]entity.Record{
		collision.Enemy: {{Type: "koopa"}},
	}
	assert.ErrorIs(t, w.Load(bad), entity.ErrUnknownType)
}

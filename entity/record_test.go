package entity

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
)

type preview struct {
	*probe
	children int
}

func (p *preview) Serialize() Record {
	pos := p.Position()
	return Record{Type: "preview", X: pos.X, Y: pos.Y, Props: map[string]any{"children": p.children}}
}

func (p *preview) Spawn() []Entity {
	out := make([]Entity, 0, p.children)
	for i := 0; i < p.children; i++ {
		pos := p.Position()
		out = append(out, newProbe("child", collision.Active, pos.X+float64(i*16), pos.Y))
	}
	return out
}

func testRegistry() *Registry {
	reg := NewRegistry()
	reg.Register("crate", func(rec Record) (Entity, error) {
		c := &crate{probe: newProbe("crate", collision.Block, rec.X, rec.Y), weight: rec.Int("weight", 1)}
		return c, nil
	})
	reg.Register("preview", func(rec Record) (Entity, error) {
		p := &preview{probe: newProbe("preview", collision.Spawner, rec.X, rec.Y), children: rec.Int("children", 0)}
		return p, nil
	})
	return reg
}

func TestRegistry(t *testing.T) {
	reg := testRegistry()
	assert.Equal(t, []string{"crate", "preview"}, reg.Tags())
	assert.True(t, reg.Has("crate"))
	assert.Panics(t, func() {
		reg.Register("crate", func(Record) (Entity, error) { return nil, nil })
	})

	_, err := reg.Build(Record{Type: "ghost"})
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestSerializeRoundTrip(t *testing.T) {
	src := NewDefaultManager()
	heavy := &crate{probe: newProbe("heavy", collision.Block, 32, 48), weight: 7}
	light := &crate{probe: newProbe("light", collision.Block, 64, 48), weight: 2}
	src.Register(heavy, light, newProbe("unsaved", collision.Enemy, 0, 0))

	data, err := json.Marshal(src.Serialize())
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, ManagerClass, snap.Class)
	assert.Equal(t, 2, snap.Len())

	dst := NewDefaultManager()
	require.NoError(t, dst.Deserialize(snap, testRegistry()))

	got := dst.Layer(collision.Block)
	require.Len(t, got, 2)
	assert.Equal(t, 0, dst.LayerLen(collision.Enemy))

	first := got[0].(*crate)
	second := got[1].(*crate)
	assert.Equal(t, common.Vec(32, 48), first.Position())
	assert.Equal(t, 7, first.weight)
	assert.Equal(t, common.Vec(64, 48), second.Position())
	assert.Equal(t, 2, second.weight)
}

func TestSnapshotJSONShape(t *testing.T) {
	snap := Snapshot{
		Class: ManagerClass,
		Layers: map[collision.Layer][]Record{
			collision.Block: {{Type: "crate", X: 1, Y: 2}},
		},
	}
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"__class__":"EntityManager","Block":[{"type":"crate","x":1,"y":2}]}`, string(data))

	var bad Snapshot
	assert.Error(t, json.Unmarshal([]byte(`{"Nowhere":[]}`), &bad))
}

func TestDeserializeReplacesContents(t *testing.T) {
	m := NewDefaultManager()
	old := &crate{probe: newProbe("old", collision.Block, 0, 0)}
	m.Register(old)

	snap := Snapshot{Class: ManagerClass, Layers: map[collision.Layer][]Record{
		collision.Block: {{Type: "crate", X: 16, Y: 0}},
	}}
	require.NoError(t, m.Deserialize(snap, testRegistry()))

	assert.True(t, old.destroyed)
	assert.False(t, m.IsRegistered(old))
	assert.Equal(t, 1, m.Len())
}

func TestDeserializeExpandsSpawners(t *testing.T) {
	snap := Snapshot{Class: ManagerClass, Layers: map[collision.Layer][]Record{
		collision.Spawner: {{Type: "preview", X: 0, Y: 0, Props: map[string]any{"children": 3.0}}},
	}}

	editor := NewEditorManager()
	require.NoError(t, editor.Deserialize(snap, testRegistry()))
	assert.Equal(t, 1, editor.LayerLen(collision.Spawner))
	assert.Equal(t, 0, editor.LayerLen(collision.Active))

	game := NewDefaultManager()
	require.NoError(t, game.Deserialize(snap, testRegistry()))
	assert.Equal(t, 3, game.LayerLen(collision.Active))
}

func TestDeserializeUnknownType(t *testing.T) {
	m := NewDefaultManager()
	snap := Snapshot{Class: ManagerClass, Layers: map[collision.Layer][]Record{
		collision.Block: {{Type: "ghost"}},
	}}
	err := m.Deserialize(snap, testRegistry())
	assert.ErrorIs(t, err, ErrUnknownType)

	err = m.Deserialize(Snapshot{Class: "Level"}, testRegistry())
	assert.Error(t, err)
}

func TestRecordProps(t *testing.T) {
	rec := Record{Props: map[string]any{"n": 3.0, "s": "coin", "b": true}}
	assert.Equal(t, 3, rec.Int("n", 0))
	assert.Equal(t, 9, rec.Int("missing", 9))
	assert.Equal(t, "coin", rec.Text("s", ""))
	assert.True(t, rec.Bool("b", false))
	assert.Equal(t, 1.5, rec.Float("missing", 1.5))
}

package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
)

func TestParseLevelRejectsBadData(t *testing.T) {
	cases := map[string]string{
		"not json":       `{`,
		"no size":        `{"width":0,"height":3,"layers":[]}`,
		"short layer":    `{"width":2,"height":2,"layers":[[0,0,0]]}`,
		"spawn outside":  `{"width":2,"height":2,"layers":[[0,0,0,0]],"spawn_x":5}`,
		"unknown layer":  `{"width":2,"height":2,"layers":[[0,0,0,0]],"entities":{"__class__":"EntityManager","Nope":[]}}`,
		"negative spawn": `{"width":2,"height":2,"layers":[[0,0,0,0]],"spawn_y":-1}`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLevel([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestParseLevelFillsMeta(t *testing.T) {
	lvl, err := ParseLevel([]byte(`{"width":2,"height":1,"layers":[[1,0],[0,1]]}`))
	require.NoError(t, err)

	require.Len(t, lvl.LayerMeta, 2)
	assert.False(t, lvl.LayerMeta[1].HasPhysics)
	assert.Equal(t, entity.ManagerClass, lvl.Entities.Class)
	assert.False(t, lvl.Solid(0, 0))
}

func TestLevelRoundTrip(t *testing.T) {
	lvl := NewLevel("rt", 4, 3)
	lvl.SetTile(0, 1, 2, 1)
	lvl.Entities.Layers = map[collision.Layer][]entity.Record{
		collision.Enemy: {{Type: TypeGoomba, X: 16, Y: 16}},
	}

	data, err := lvl.Marshal()
	require.NoError(t, err)
	got, err := ParseLevel(data)
	require.NoError(t, err)

	assert.Equal(t, lvl.Layers, got.Layers)
	assert.Equal(t, 1, got.Entities.Len())
	assert.True(t, got.Solid(1, 2))
	assert.False(t, got.Solid(0, 2))
}

func TestLevelTiles(t *testing.T) {
	lvl := NewLevel("tiles", 4, 3)

	assert.Zero(t, lvl.SetTile(0, 2, 1, 1))
	assert.Equal(t, 1, lvl.SetTile(0, 2, 1, 0))
	assert.Zero(t, lvl.SetTile(0, 9, 9, 1), "out of bounds is ignored")
	assert.Zero(t, lvl.TileAt(5, 0, 0))

	clone := lvl.Clone()
	clone.SetTile(0, 0, 0, 1)
	assert.Zero(t, lvl.TileAt(0, 0, 0))

	assert.Equal(t, common.NewRect(0, 0, 64, 48), lvl.Bounds())
	lvl.SpawnX, lvl.SpawnY = 1, 1
	assert.Equal(t, common.Vec(16, 16), lvl.SpawnPosition(16))
}

func TestTileMapColliders(t *testing.T) {
	lvl := NewLevel("map", 4, 3)
	for x := range 4 {
		lvl.SetTile(0, x, 2, 1)
	}
	m := collision.NewManager(3)

	tm := NewTileMap(lvl, m)
	// One merged ground strip plus the two side walls.
	assert.Len(t, tm.Colliders(), 3)
	assert.Equal(t, 3, m.Len())

	lvl.SetTile(1, 0, 0, 1)
	tm.Build(m)
	assert.Len(t, tm.Colliders(), 4)
	assert.Equal(t, 4, m.Len())

	tm.Destroy()
	assert.Zero(t, m.Len())
}

func TestBundledLevelsBuild(t *testing.T) {
	for _, name := range []string{"1-1", "1-2"} {
		t.Run(name, func(t *testing.T) {
			lvl, err := LoadLevel(name)
			require.NoError(t, err)
			require.Positive(t, lvl.Entities.Len())

			ctx := newTestCtx(t)
			ctx.level = lvl
			ctx.entities = entity.NewEditorManager()
			reg := testRegistry(ctx)

			require.NoError(t, ctx.entities.Deserialize(lvl.Entities, reg))
			assert.Equal(t, lvl.Entities.Len(), ctx.entities.Len())

			ctx.entities = entity.NewDefaultManager()
			require.NoError(t, ctx.entities.Deserialize(lvl.Entities, reg))
			assert.Zero(t, len(entity.SearchByType[*FireBar](ctx.entities)))
			assert.Zero(t, len(entity.SearchByType[*Trigger](ctx.entities)))
			assert.Equal(t,
				len(lvl.Entities.Layers[collision.Trigger]),
				len(entity.SearchByType[*TriggerZone](ctx.entities)))
		})
	}
}

func TestFactoryRejectsBadRecords(t *testing.T) {
	ctx := newTestCtx(t)
	reg := testRegistry(ctx)

	_, err := reg.Build(entity.Record{Type: TypeQuestionBlock, Props: map[string]any{"contents": "star"}})
	assert.Error(t, err)
	_, err = reg.Build(entity.Record{Type: TypeTrigger})
	assert.Error(t, err)
	_, err = reg.Build(entity.Record{Type: "koopa"})
	assert.ErrorIs(t, err, entity.ErrUnknownType)
}

func TestPaletteBuilds(t *testing.T) {
	ctx := newTestCtx(t)
	reg := testRegistry(ctx)

	for _, item := range Palette {
		rec := item.At(common.Vec(32, 48))
		e, err := reg.Build(rec)
		require.NoError(t, err, item.Label)
		assert.Equal(t, common.Vec(32, 48), e.Position(), item.Label)
	}

	rec := Palette[1].At(common.Vec(0, 0))
	rec.Props["contents"] = ContentsMushroom
	assert.Equal(t, ContentsCoin, Palette[1].Template.Props["contents"])
}

func TestSceneryDefaults(t *testing.T) {
	s := NewScenery(common.Vec(8, 8), "castle", 0, 0)
	assert.Equal(t, SceneryHill, s.Kind())
	assert.Equal(t, scenerySizes[SceneryHill].W, s.Rect().W)

	s = NewScenery(common.Vec(8, 8), SceneryCloud, 64, 0)
	assert.Equal(t, 64, s.Rect().W)
	rec := s.Serialize()
	assert.Equal(t, 64, rec.Int("width", 0))
	assert.Equal(t, SceneryCloud, rec.Text("kind", ""))
}

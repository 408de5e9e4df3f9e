package obj

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/prefabs"
)

const frame = 1.0 / 60

var testView = common.NewRect(0, 0, common.BaseWidth, common.BaseHeight)

type testCtx struct {
	colliders *collision.Manager
	entities  *entity.Manager
	catalog   *prefabs.Catalog
	cfg       config.Config
	stats     *Stats
	events    *EventQueue
	player    *Player
	level     *Level
	tiles     *TileMap
}

func (c *testCtx) Colliders() *collision.Manager { return c.colliders }
func (c *testCtx) Entities() *entity.Manager     { return c.entities }
func (c *testCtx) Catalog() *prefabs.Catalog     { return c.catalog }
func (c *testCtx) Config() config.Config         { return c.cfg }
func (c *testCtx) Stats() *Stats                 { return c.stats }
func (c *testCtx) Events() *EventQueue           { return c.events }
func (c *testCtx) Player() *Player               { return c.player }
func (c *testCtx) Bounds() common.Rect           { return c.level.Bounds() }

// newTestCtx builds a 40x15 level whose bottom two rows are solid ground,
// so the walkable surface is at y=208.
func newTestCtx(t *testing.T) *testCtx {
	t.Helper()
	catalog, err := prefabs.LoadCatalog()
	require.NoError(t, err)

	cfg := config.Default()
	lvl := NewLevel("test", 40, 15)
	for x := range lvl.Width {
		lvl.SetTile(0, x, 13, 1)
		lvl.SetTile(0, x, 14, 1)
	}

	ctx := &testCtx{
		colliders: collision.NewManager(cfg.Physics.CollisionIterations),
		entities:  entity.NewDefaultManager(),
		catalog:   catalog,
		cfg:       cfg,
		stats:     NewStats("test", cfg.Game.Lives),
		events:    &EventQueue{},
		level:     lvl,
	}
	ctx.tiles = NewTileMap(lvl, ctx.colliders)
	return ctx
}

// withPlayer adds a player standing on the ground at x.
func (c *testCtx) withPlayer(x float64, controls Controls) *Player {
	h := c.catalog.Player.Small.Height
	c.player = NewPlayer(c, controls, common.Vec(x, float64(groundY-h)))
	c.entities.Register(c.player)
	return c.player
}

const groundY = 13 * common.TileSize

func eventKinds(q *EventQueue) []EventKind {
	var kinds []EventKind
	for _, e := range q.Drain() {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func step(n int, fn func()) {
	for range n {
		fn()
	}
}

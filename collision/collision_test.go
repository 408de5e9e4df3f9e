package collision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/platformer/common"
)

type testOwner struct {
	name  string
	layer Layer
}

func (o *testOwner) Layer() Layer { return o.layer }

func newBox(m *Manager, name string, layer, mask Layer, x, y float64, w, h int) *Collider {
	owner := &testOwner{name: name, layer: layer}
	c := NewCollider(owner, m, mask, common.Vec(x, y), common.NewRect(0, 0, w, h), layer)
	m.Register(c)
	return c
}

func stationaryNames(collisions []Collision) []string {
	var names []string
	for _, c := range collisions {
		names = append(names, c.StationaryEntity.(*testOwner).name)
	}
	return names
}

func TestCanCollide(t *testing.T) {
	cases := []struct {
		name  string
		mask  Layer
		layer Layer
		want  bool
	}{
		{"single_bit", Block, Block, true},
		{"combined_mask", Block | Enemy, Enemy, true},
		{"missing_bit", Block, Enemy, false},
		{"empty_mask", None, Block, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CanCollide(c.mask, c.layer))
		})
	}
}

func TestLayerNames(t *testing.T) {
	for _, l := range AllLayers {
		parsed, err := ParseLayer(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
	assert.Equal(t, "Block|Enemy", (Block | Enemy).String())

	_, err := ParseLayer("Lava")
	assert.Error(t, err)
}

func TestNewColliderRequiresOwnerAndManager(t *testing.T) {
	m := NewManager(0)
	owner := &testOwner{layer: Block}
	assert.Panics(t, func() { NewCollider(nil, m, Block, common.Vec(0, 0), common.NewRect(0, 0, 1, 1), Block) })
	assert.Panics(t, func() { NewCollider(owner, nil, Block, common.Vec(0, 0), common.NewRect(0, 0, 1, 1), Block) })
}

func TestColliderPositionSyncsRect(t *testing.T) {
	m := NewManager(0)
	c := NewCollider(&testOwner{layer: Mario}, m, Block, common.Vec(3.7, 4.2), common.NewRect(99, 99, 16, 24), Mario)
	assert.Equal(t, common.NewRect(3, 4, 16, 24), c.Rect())

	c.SetPosition(common.Vec(-0.5, 10.99))
	assert.Equal(t, common.NewRect(-1, 10, 16, 24), c.Rect())
	assert.Equal(t, common.Vec(-0.5, 10.99), c.Position())
}

func TestManagerRegistration(t *testing.T) {
	m := NewManager(0)
	c := NewCollider(&testOwner{layer: Block}, m, None, common.Vec(0, 0), common.NewRect(0, 0, 4, 4), Block)

	m.Register(c)
	assert.True(t, m.IsRegistered(c))
	assert.Panics(t, func() { m.Register(c) }, "duplicate register")

	m.Unregister(c)
	assert.False(t, m.IsRegistered(c))
	assert.Panics(t, func() { m.Unregister(c) }, "double unregister")

	other := NewManager(0)
	assert.Panics(t, func() { other.Register(c) }, "foreign manager")
}

func TestMoveReportsEachOverlapOnce(t *testing.T) {
	m := NewManager(0)
	mover := newBox(m, "mover", Mario, Block|Enemy, 0, 0, 16, 16)
	newBox(m, "wall", Block, None, 20, 0, 16, 16)
	newBox(m, "goomba", Enemy, None, 24, 8, 16, 16)
	newBox(m, "coin", Active, None, 22, 0, 8, 8)
	newBox(m, "far", Block, None, 200, 0, 16, 16)

	collisions := mover.Move(common.Vec(18, 0))
	assert.ElementsMatch(t, []string{"wall", "goomba"}, stationaryNames(collisions))
	for _, c := range collisions {
		assert.Same(t, mover, c.MovingCollider)
		assert.Equal(t, mover.Owner(), c.MovingEntity)
	}
	assert.Equal(t, common.Vec(18, 0), mover.Position(), "move always teleports")
}

func TestMoveMaskIsOneDirectional(t *testing.T) {
	m := NewManager(0)
	blind := newBox(m, "blind", Enemy, None, 0, 0, 16, 16)
	seeing := newBox(m, "seeing", Mario, Enemy, 40, 0, 16, 16)

	assert.Empty(t, blind.Move(common.Vec(40, 0)))
	assert.Equal(t, []string{"blind"}, stationaryNames(seeing.Move(common.Vec(40, 0))))
}

func TestTryMoveRollsBackOnCollision(t *testing.T) {
	m := NewManager(0)
	mover := newBox(m, "mover", Mario, Block, 0.25, 0.75, 16, 16)
	newBox(m, "wall", Block, None, 20, 0, 16, 16)

	beforePos, beforeRect := mover.Position(), mover.Rect()
	collisions := mover.TryMove(common.Vec(10.5, 0))
	require.Len(t, collisions, 1)
	assert.Equal(t, beforePos, mover.Position())
	assert.Equal(t, beforeRect, mover.Rect())

	assert.Empty(t, mover.TryMove(common.Vec(3.5, 0)))
	assert.Equal(t, common.Vec(3.5, 0), mover.Position())
	assert.Equal(t, common.NewRect(3, 0, 16, 16), mover.Rect())
}

func TestTestNeverMutates(t *testing.T) {
	m := NewManager(0)
	probe := newBox(m, "probe", Mario, Block, 1.5, 2.5, 16, 16)
	newBox(m, "wall", Block, None, 20, 0, 16, 16)

	beforePos, beforeRect := probe.Position(), probe.Rect()
	for i := 0; i < 3; i++ {
		assert.Equal(t, []string{"wall"}, stationaryNames(probe.Test(common.Vec(12, 0))))
		assert.Empty(t, probe.Test(common.Vec(-30, 0)))
		assert.Equal(t, beforePos, probe.Position())
		assert.Equal(t, beforeRect, probe.Rect())
	}
}

func TestIterativeMove(t *testing.T) {
	t.Run("sub_pixel_delta_is_ignored", func(t *testing.T) {
		m := NewManager(0)
		c := newBox(m, "a", Mario, Block, 5, 5, 16, 16)
		assert.Empty(t, c.IterativeMove(common.Vec(5.6, 5.6)))
		assert.Equal(t, common.Vec(5, 5), c.Position())
	})

	t.Run("free_path_reaches_target", func(t *testing.T) {
		m := NewManager(0)
		c := newBox(m, "a", Mario, Block, 0, 0, 16, 16)
		newBox(m, "wall", Block, None, 100, 0, 16, 16)
		assert.Empty(t, c.IterativeMove(common.Vec(30, 40)))
		assert.InDelta(t, 30, c.Position().X, 1e-9)
		assert.InDelta(t, 40, c.Position().Y, 1e-9)
	})

	t.Run("blocked_every_round_stays_put", func(t *testing.T) {
		m := NewManager(0)
		a := newBox(m, "a", Mario, Block, 0, 0, 16, 16)
		newBox(m, "b", Block, None, 20, 0, 16, 16)

		collisions := a.IterativeMove(common.Vec(20, 0))
		assert.Equal(t, []string{"b"}, stationaryNames(collisions))
		pos := a.Position()
		assert.Less(t, pos.X, 20.0)
		assert.Equal(t, common.Vec(0, 0), pos)
		assert.False(t, math.IsNaN(pos.X) || math.IsNaN(pos.Y))
		assert.GreaterOrEqual(t, pos.X, 0.0)
	})

	t.Run("bisection_finds_partial_move", func(t *testing.T) {
		m := NewManager(0)
		a := newBox(m, "a", Mario, Block, 0, 0, 16, 16)
		newBox(m, "b", Block, None, 20, 0, 16, 16)

		// 20, 10 and 5 overlap b; 2.5 is clear.
		assert.Empty(t, a.IterativeMoveN(common.Vec(20, 0), 4))
		assert.Equal(t, common.Vec(2.5, 0), a.Position())
		assert.Equal(t, common.NewRect(2, 0, 16, 16), a.Rect())
	})

	t.Run("uses_manager_default_budget", func(t *testing.T) {
		m := NewManager(4)
		a := newBox(m, "a", Mario, Block, 0, 0, 16, 16)
		newBox(m, "b", Block, None, 20, 0, 16, 16)
		assert.Empty(t, a.IterativeMove(common.Vec(20, 0)))
		assert.Equal(t, 2.5, a.Position().X)
	})

	t.Run("ignores_layers_outside_mask", func(t *testing.T) {
		m := NewManager(0)
		a := newBox(m, "a", Mario, Block, 0, 0, 16, 16)
		newBox(m, "ghost", Enemy, None, 20, 0, 16, 16)
		assert.Empty(t, a.IterativeMove(common.Vec(20, 0)))
		assert.Equal(t, common.Vec(20, 0), a.Position())
	})

	t.Run("non_finite_target_is_ignored", func(t *testing.T) {
		m := NewManager(0)
		a := newBox(m, "a", Mario, Block, 0, 0, 16, 16)
		newBox(m, "wall", Block, None, 20, 0, 16, 16)

		for _, target := range []common.Vector{
			common.Vec(math.Inf(1), 0),
			common.Vec(0, math.Inf(-1)),
			common.Vec(math.NaN(), 0),
		} {
			assert.Empty(t, a.IterativeMove(target))
			assert.Equal(t, common.Vec(0, 0), a.Position())
			assert.Equal(t, common.NewRect(0, 0, 16, 16), a.Rect())
		}
	})
}

func TestUnregisterDuringScanIsSafe(t *testing.T) {
	m := NewManager(0)
	a := newBox(m, "a", Block, None, 0, 0, 4, 4)
	b := newBox(m, "b", Block, None, 10, 0, 4, 4)
	c := newBox(m, "c", Block, None, 20, 0, 4, 4)

	m.Unregister(a)
	assert.Equal(t, 2, m.Len())
	assert.ElementsMatch(t, []*Collider{b, c}, m.Colliders())

	m.Unregister(c)
	assert.Equal(t, []*Collider{b}, m.Colliders())
}

func TestMergeTiles(t *testing.T) {
	grid := []string{
		"##..#",
		"##..#",
		".....",
		"###..",
	}
	solid := func(x, y int) bool { return grid[y][x] == '#' }

	rects := MergeTiles(5, 4, solid)
	assert.ElementsMatch(t, []common.Rect{
		common.NewRect(0, 0, 2, 2),
		common.NewRect(4, 0, 1, 2),
		common.NewRect(0, 3, 3, 1),
	}, rects)

	covered := 0
	for _, r := range rects {
		covered += r.W * r.H
	}
	assert.Equal(t, 9, covered)

	assert.Nil(t, MergeTiles(0, 4, solid))
}

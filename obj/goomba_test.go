package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
)

func newGroundGoomba(ctx *testCtx, x float64) *Goomba {
	g := NewGoomba(ctx, common.Vec(x, float64(groundY-ctx.catalog.Goomba.Size.Height)))
	ctx.entities.Register(g)
	return g
}

func TestGoombaWaitsForView(t *testing.T) {
	ctx := newTestCtx(t)
	g := newGroundGoomba(ctx, 560)

	g.Update(frame, testView)
	assert.False(t, g.Active())
	assert.Equal(t, 560.0, g.Position().X)

	near := common.NewRect(200, 0, common.BaseWidth, common.BaseHeight)
	g.Update(frame, near)
	assert.True(t, g.Active())
	assert.Less(t, g.Position().X, 560.0)
}

func TestGoombaTurnsAtWall(t *testing.T) {
	ctx := newTestCtx(t)
	ctx.level.SetTile(0, 3, 12, 1)
	ctx.tiles.Build(ctx.colliders)
	g := newGroundGoomba(ctx, 70)

	step(60, func() { g.Update(frame, testView) })

	assert.Greater(t, g.velocity.X, 0.0)
	assert.GreaterOrEqual(t, g.Rect().X, 64)
	assert.True(t, g.grounded)
}

func TestGoombasTurnAtEachOther(t *testing.T) {
	ctx := newTestCtx(t)
	left := newGroundGoomba(ctx, 100)
	right := newGroundGoomba(ctx, 140)
	step(2, func() { ctx.entities.Update(frame, testView) })
	left.velocity.X = ctx.catalog.Goomba.Speed

	step(90, func() { ctx.entities.Update(frame, testView) })

	assert.Less(t, left.velocity.X, 0.0)
	assert.LessOrEqual(t, left.Rect().Right(), right.Rect().X)
}

func TestGoombaStomp(t *testing.T) {
	ctx := newTestCtx(t)
	g := newGroundGoomba(ctx, 100)
	p := NewPlayer(ctx, &Input{}, common.Vec(102, 180))
	ctx.player = p
	p.velocity.Y = 100

	g.Update(frame, testView)

	require.True(t, g.Dead())
	assert.False(t, p.Dead())
	assert.Equal(t, -ctx.catalog.Player.StompBounce, p.Velocity().Y)
	assert.Equal(t, ctx.catalog.Goomba.Points, ctx.stats.Score)
	assert.Contains(t, eventKinds(ctx.events), EventStomp)
	assert.Equal(t, 1, ctx.entities.LayerLen(collision.Overlay), "floaty points")

	// The squashed body stays for a moment, then goes away.
	assert.True(t, ctx.entities.IsRegistered(g))
	step(int(ctx.catalog.Goomba.SquashTime/frame)+2, func() { g.Update(frame, testView) })
	assert.False(t, ctx.entities.IsRegistered(g))
}

func TestGoombaHurtsFromSide(t *testing.T) {
	ctx := newTestCtx(t)
	g := newGroundGoomba(ctx, 100)
	p := ctx.withPlayer(108, &Input{})

	g.Update(frame, testView)

	assert.False(t, g.Dead())
	assert.True(t, p.Dead())
}

func TestGoombaKnockedByBlockBump(t *testing.T) {
	ctx := newTestCtx(t)
	block := NewQuestionBlock(ctx, common.Vec(96, 144), ContentsCoin)
	ctx.entities.Register(block)
	g := NewGoomba(ctx, common.Vec(98, 144-float64(ctx.catalog.Goomba.Size.Height)))
	ctx.entities.Register(g)
	p := ctx.withPlayer(96, &Input{})

	block.Bump(p)

	assert.True(t, g.Dead())
	assert.False(t, ctx.entities.IsRegistered(g))
	assert.Equal(t, ctx.catalog.Goomba.Points+ctx.catalog.QuestionBlock.CoinPoints, ctx.stats.Score)
}

func TestGoombaSerializesStart(t *testing.T) {
	ctx := newTestCtx(t)
	g := newGroundGoomba(ctx, 100)
	step(30, func() { g.Update(frame, testView) })

	rec := g.Serialize()
	assert.Equal(t, TypeGoomba, rec.Type)
	assert.Equal(t, 100.0, rec.X)
}

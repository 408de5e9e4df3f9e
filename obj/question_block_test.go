package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
)

func TestQuestionBlockCoinOnce(t *testing.T) {
	ctx := newTestCtx(t)
	b := NewQuestionBlock(ctx, common.Vec(64, 144), ContentsCoin)
	p := ctx.withPlayer(64, &Input{})

	b.Bump(p)
	b.Bump(p)

	assert.True(t, b.Used())
	assert.Equal(t, 1, ctx.stats.Coins)
	assert.Equal(t, ctx.catalog.QuestionBlock.CoinPoints, ctx.stats.Score)
	assert.Equal(t, []EventKind{EventCoin}, eventKinds(ctx.events))
}

func TestQuestionBlockHundredthCoinIsALife(t *testing.T) {
	ctx := newTestCtx(t)
	ctx.stats.Coins = CoinsPerLife - 1
	b := NewQuestionBlock(ctx, common.Vec(64, 144), ContentsCoin)

	b.Bump(nil)

	assert.Zero(t, ctx.stats.Coins)
	assert.Equal(t, ctx.cfg.Game.Lives+1, ctx.stats.Lives)
	assert.Equal(t, []EventKind{EventOneUp, EventCoin}, eventKinds(ctx.events))
}

func TestQuestionBlockBumpAnimation(t *testing.T) {
	ctx := newTestCtx(t)
	b := NewQuestionBlock(ctx, common.Vec(64, 144), ContentsCoin)
	b.Bump(nil)

	b.Update(ctx.catalog.QuestionBlock.BumpTime/2, testView)
	assert.Positive(t, b.offset())

	b.Update(ctx.catalog.QuestionBlock.BumpTime, testView)
	assert.Zero(t, b.offset())
	assert.Equal(t, 144, b.Rect().Y, "collider never moves")
}

func TestQuestionBlockMushroom(t *testing.T) {
	ctx := newTestCtx(t)
	b := NewQuestionBlock(ctx, common.Vec(64, 144), ContentsMushroom)

	b.Bump(nil)

	mushrooms := entity.SearchByType[*Mushroom](ctx.entities)
	require.Len(t, mushrooms, 1)
	m := mushrooms[0]
	assert.True(t, m.Emerging())
	assert.Zero(t, ctx.stats.Score)

	step(70, func() { m.Update(frame, testView) })

	assert.False(t, m.Emerging())
	assert.Greater(t, m.Position().X, 64.0)
	assert.Equal(t, 144, m.Rect().Bottom())
}

func TestMushroomPowersUpPlayer(t *testing.T) {
	ctx := newTestCtx(t)
	p := ctx.withPlayer(64, &Input{})
	m := NewMushroom(ctx, common.Vec(60, 192))
	ctx.entities.Register(m)

	m.Update(frame, testView)

	assert.True(t, p.Big())
	assert.False(t, ctx.entities.IsRegistered(m))
	assert.Equal(t, ctx.catalog.Mushroom.Points, ctx.stats.Score)
	assert.Equal(t, []EventKind{EventPowerUp, EventCollect}, eventKinds(ctx.events))
	assert.Equal(t, 1, ctx.entities.LayerLen(collision.Overlay))
}

func TestMushroomIgnoresEnemies(t *testing.T) {
	ctx := newTestCtx(t)
	g := newGroundGoomba(ctx, 100)
	m := NewMushroom(ctx, common.Vec(80, 192))
	ctx.entities.Register(m)

	step(60, func() { m.Update(frame, testView) })

	assert.Greater(t, m.Position().X, 100.0, "walks through the goomba")
	assert.False(t, g.Dead())
}

func TestQuestionBlockSerialize(t *testing.T) {
	ctx := newTestCtx(t)
	b := NewQuestionBlock(ctx, common.Vec(64, 144), ContentsMushroom)

	rec := b.Serialize()

	assert.Equal(t, TypeQuestionBlock, rec.Type)
	assert.Equal(t, ContentsMushroom, rec.Text("contents", ""))
	assert.Equal(t, 64.0, rec.X)
	assert.Equal(t, 144.0, rec.Y)
}

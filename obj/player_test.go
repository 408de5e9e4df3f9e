package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
)

func TestPlayerFallsOntoGround(t *testing.T) {
	ctx := newTestCtx(t)
	p := NewPlayer(ctx, &Input{}, common.Vec(32, 120))

	step(120, func() { p.Update(frame, testView) })

	assert.True(t, p.Grounded())
	assert.Equal(t, groundY, p.Rect().Bottom())
	assert.Zero(t, p.Velocity().Y)
}

func TestPlayerWalksRight(t *testing.T) {
	ctx := newTestCtx(t)
	in := &Input{MoveX: 1}
	p := ctx.withPlayer(32, in)

	step(60, func() { p.Update(frame, testView) })

	assert.Greater(t, p.Position().X, 80.0)
	assert.LessOrEqual(t, p.Velocity().X, ctx.catalog.Player.WalkSpeed)
	assert.True(t, p.Grounded())
}

func TestPlayerCannotWalkBehindView(t *testing.T) {
	ctx := newTestCtx(t)
	in := &Input{MoveX: -1}
	p := ctx.withPlayer(120, in)
	view := common.NewRect(100, 0, common.BaseWidth, common.BaseHeight)

	step(60, func() { p.Update(frame, view) })

	assert.Equal(t, 100, p.Rect().X)
}

func TestPlayerJumpBumpsBlock(t *testing.T) {
	ctx := newTestCtx(t)
	block := NewQuestionBlock(ctx, common.Vec(64, 144), ContentsCoin)
	ctx.entities.Register(block)
	in := &Input{}
	p := ctx.withPlayer(66, in)
	p.Update(frame, testView)
	require.True(t, p.Grounded())

	in.JumpPressed, in.JumpHeld = true, true
	p.Update(frame, testView)
	require.False(t, p.Grounded())
	in.JumpPressed = false

	step(90, func() { p.Update(frame, testView) })

	assert.True(t, block.Used())
	assert.Equal(t, 1, ctx.stats.Coins)
	assert.Equal(t, ctx.catalog.QuestionBlock.CoinPoints, ctx.stats.Score)
	assert.Contains(t, eventKinds(ctx.events), EventBump)
	assert.True(t, p.Grounded())
}

func TestPlayerPowerUpAndHurt(t *testing.T) {
	ctx := newTestCtx(t)
	p := ctx.withPlayer(32, &Input{})
	bottom := p.Rect().Bottom()

	p.PowerUp()
	require.True(t, p.Big())
	assert.Equal(t, ctx.catalog.Player.Big.Height, p.Rect().H)
	assert.Equal(t, bottom, p.Rect().Bottom())

	p.Hurt()
	assert.False(t, p.Big())
	assert.False(t, p.Dead())
	assert.Equal(t, bottom, p.Rect().Bottom())

	// Invulnerable right after shrinking.
	p.Hurt()
	assert.False(t, p.Dead())

	assert.Equal(t, []EventKind{EventPowerUp, EventHurt}, eventKinds(ctx.events))
}

func TestPlayerKillStartsDeathSequence(t *testing.T) {
	ctx := newTestCtx(t)
	p := ctx.withPlayer(32, &Input{})

	p.Hurt()

	assert.True(t, p.Dead())
	assert.False(t, p.Enabled())
	seqs := ctx.entities.Layer(collision.Overlay)
	require.Len(t, seqs, 1)
	assert.IsType(t, &DeathSequence{}, seqs[0])
	assert.Equal(t, []EventKind{EventDeath}, eventKinds(ctx.events))

	// Disabled entities are skipped by the manager.
	pos := p.Position()
	ctx.entities.Update(frame, testView)
	assert.Equal(t, pos, p.Position())
}

func TestDeathSequenceSpendsLife(t *testing.T) {
	ctx := newTestCtx(t)
	p := ctx.withPlayer(32, &Input{})
	p.Kill()
	ctx.events.Drain()

	frames := int(ctx.cfg.Game.DeathDelay/frame) + 2
	step(frames, func() { ctx.entities.Update(frame, testView) })

	assert.Equal(t, ctx.cfg.Game.Lives-1, ctx.stats.Lives)
	assert.False(t, ctx.stats.GameOver)
	assert.Zero(t, ctx.entities.LayerLen(collision.Overlay))
	assert.Equal(t, []EventKind{EventRespawn}, eventKinds(ctx.events))
}

func TestDeathSequenceLastLifeIsGameOver(t *testing.T) {
	ctx := newTestCtx(t)
	ctx.stats.Lives = 1
	p := ctx.withPlayer(32, &Input{})
	p.Kill()
	ctx.events.Drain()

	frames := int(ctx.cfg.Game.DeathDelay/frame) + 2
	step(frames, func() { ctx.entities.Update(frame, testView) })

	assert.Zero(t, ctx.stats.Lives)
	assert.True(t, ctx.stats.GameOver)
	assert.Equal(t, []EventKind{EventGameOver}, eventKinds(ctx.events))
}

func TestPlayerFallingOutDies(t *testing.T) {
	ctx := newTestCtx(t)
	for x := range ctx.level.Width {
		ctx.level.SetTile(0, x, 13, 0)
		ctx.level.SetTile(0, x, 14, 0)
	}
	ctx.tiles.Build(ctx.colliders)
	p := ctx.withPlayer(32, &Input{})

	step(120, func() { p.Update(frame, testView) })

	assert.True(t, p.Dead())
}

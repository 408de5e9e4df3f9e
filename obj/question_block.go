package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/prefabs"
)

// Block contents.
const (
	ContentsCoin     = "coin"
	ContentsMushroom = "mushroom"
)

// QuestionBlock is a solid block that gives up its contents once when the
// player hits it from below.
type QuestionBlock struct {
	ctx      Context
	spec     prefabs.BlockSpec
	body     *collision.Collider
	contents string

	used     bool
	bumpTime float64
}

func NewQuestionBlock(ctx Context, pos common.Vector, contents string) *QuestionBlock {
	if contents != ContentsMushroom {
		contents = ContentsCoin
	}
	b := &QuestionBlock{ctx: ctx, spec: ctx.Catalog().QuestionBlock, contents: contents}
	b.body = collision.NewCollider(b, ctx.Colliders(), collision.None, pos,
		common.NewRect(0, 0, common.TileSize, common.TileSize), collision.Block)
	ctx.Colliders().Register(b.body)
	return b
}

func (b *QuestionBlock) Layer() collision.Layer  { return collision.Block }
func (b *QuestionBlock) Position() common.Vector { return b.body.Position() }
func (b *QuestionBlock) Rect() common.Rect       { return b.body.Rect() }
func (b *QuestionBlock) Used() bool              { return b.used }
func (b *QuestionBlock) Contents() string        { return b.contents }

func (b *QuestionBlock) Update(dt float64, view common.Rect) {
	if b.bumpTime > 0 {
		b.bumpTime -= dt
	}
}

// Bump releases the contents, knocks out enemies standing on top and
// leaves the block used.
func (b *QuestionBlock) Bump(p *Player) {
	if b.used {
		return
	}
	b.used = true
	b.bumpTime = b.spec.BumpTime

	r := b.Rect()
	above := common.NewRect(r.X, r.Y-1, r.W, 1)
	for _, e := range b.ctx.Entities().EntitiesInRegion(above) {
		if g, ok := e.(*Goomba); ok {
			g.Knock()
		}
	}

	switch b.contents {
	case ContentsMushroom:
		b.ctx.Entities().Register(NewEmergingMushroom(b.ctx, b.Position()))
	default:
		stats := b.ctx.Stats()
		stats.AddScore(b.spec.CoinPoints)
		if stats.AddCoin() {
			b.ctx.Events().Push(Event{Kind: EventOneUp, Position: b.Position()})
		}
		ShowPoints(b.ctx, b.spec.CoinPoints, b.Position())
		b.ctx.Events().Push(Event{Kind: EventCoin, Position: b.Position(), Points: b.spec.CoinPoints})
	}
}

// offset is the upward draw offset of the bump animation.
func (b *QuestionBlock) offset() int {
	if b.bumpTime <= 0 || b.spec.BumpTime <= 0 {
		return 0
	}
	t := 1 - b.bumpTime/b.spec.BumpTime
	return int(math.Sin(t*math.Pi) * b.spec.BumpHeight)
}

func (b *QuestionBlock) Draw(screen *ebiten.Image, view common.Rect) {
	r := b.Rect()
	r.Y -= b.offset()

	tile := assets.TileQuestion
	clr := b.spec.Color.Or(colornames.Gold)
	if b.used {
		tile = assets.TileUsed
		clr = b.spec.UsedColor.Or(colornames.Saddlebrown)
	}
	if img := assets.Tile(tile, common.TileSize); img != nil && screen != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(r.X-view.X), float64(r.Y-view.Y))
		screen.DrawImage(img, op)
		return
	}
	fillRect(screen, r, view, clr)
}

func (b *QuestionBlock) Serialize() entity.Record {
	pos := b.Position()
	return entity.Record{
		Type:  TypeQuestionBlock,
		X:     pos.X,
		Y:     pos.Y,
		Props: map[string]any{"contents": b.contents},
	}
}

func (b *QuestionBlock) Destroy() {
	unregisterCollider(b.body)
}

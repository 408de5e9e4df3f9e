package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/prefabs"
)

// stompTolerance is how far into an enemy the player's feet may sink and
// still count as landing on it.
const stompTolerance = 8

// Goomba walks toward the player once it comes near the view, turns at
// walls and other enemies, and dies when stomped.
type Goomba struct {
	walker
	ctx    Context
	spec   prefabs.WalkerSpec
	hitbox *Interactive
	start  common.Vector

	active   bool
	squashed float64
	dead     bool
}

func NewGoomba(ctx Context, pos common.Vector) *Goomba {
	spec := ctx.Catalog().Goomba
	g := &Goomba{ctx: ctx, spec: spec, start: pos}
	m := ctx.Colliders()
	g.body = collision.NewCollider(g, m, collision.Block|collision.Enemy, pos,
		common.NewRect(0, 0, spec.Size.Width, spec.Size.Height), collision.Enemy)
	m.Register(g.body)
	g.hitbox = newInteractive(g, m, common.Vector{}, spec.Size.Width, spec.Size.Height, g.touch)
	return g
}

func (g *Goomba) Layer() collision.Layer  { return collision.Enemy }
func (g *Goomba) Position() common.Vector { return g.body.Position() }
func (g *Goomba) Rect() common.Rect       { return g.body.Rect() }
func (g *Goomba) Active() bool            { return g.active }
func (g *Goomba) Dead() bool              { return g.dead }

func (g *Goomba) Update(dt float64, view common.Rect) {
	if g.dead {
		g.squashed -= dt
		if g.squashed <= 0 {
			remove(g.ctx, g)
		}
		return
	}
	if !g.active {
		margin := g.ctx.Config().Game.ActivationMargin
		if !view.Inflate(margin, margin).Intersects(g.Rect()) {
			return
		}
		g.active = true
		g.velocity.X = -g.spec.Speed
	}

	g.walker.update(g.ctx, dt)
	g.hitbox.Update(g.Position())

	if fellOut(g.ctx, g.Rect()) {
		remove(g.ctx, g)
	}
}

func (g *Goomba) touch(p *Player) {
	if g.dead || p.Dead() {
		return
	}
	if p.Velocity().Y > 0 && p.Rect().Bottom() <= g.Rect().Y+stompTolerance {
		g.Stomp(p)
		return
	}
	p.Hurt()
}

// Stomp flattens the goomba and bounces the player off it.
func (g *Goomba) Stomp(p *Player) {
	g.die(g.spec.SquashTime)
	p.Bounce()
	g.ctx.Events().Push(Event{Kind: EventStomp, Position: g.Position(), Points: g.spec.Points})
}

// Knock kills the goomba from below, e.g. by bumping the block it stands on.
func (g *Goomba) Knock() {
	if g.dead {
		return
	}
	g.die(0)
}

func (g *Goomba) die(squash float64) {
	g.dead = true
	g.squashed = squash
	unregisterCollider(g.body)
	g.hitbox.Destroy()
	g.ctx.Stats().AddScore(g.spec.Points)
	ShowPoints(g.ctx, g.spec.Points, g.Position())
	if squash <= 0 {
		remove(g.ctx, g)
	}
}

func (g *Goomba) Draw(screen *ebiten.Image, view common.Rect) {
	r := g.Rect()
	clr := g.spec.Color.Or(colornames.Sienna)
	if g.dead {
		flat := common.NewRect(r.X, r.Bottom()-r.H/3, r.W, r.H/3)
		fillRect(screen, flat, view, clr)
		return
	}
	fillRect(screen, common.NewRect(r.X+1, r.Y, r.W-2, r.H-4), view, clr)
	fillRect(screen, common.NewRect(r.X, r.Bottom()-4, r.W/2-1, 4), view, colornames.Black)
	fillRect(screen, common.NewRect(r.X+r.W/2+1, r.Bottom()-4, r.W/2-1, 4), view, colornames.Black)
	fillRect(screen, common.NewRect(r.X+4, r.Y+4, 2, 4), view, colornames.White)
	fillRect(screen, common.NewRect(r.Right()-6, r.Y+4, 2, 4), view, colornames.White)
}

func (g *Goomba) Serialize() entity.Record {
	return entity.Record{Type: TypeGoomba, X: g.start.X, Y: g.start.Y}
}

func (g *Goomba) Destroy() {
	unregisterCollider(g.body)
	g.hitbox.Destroy()
}

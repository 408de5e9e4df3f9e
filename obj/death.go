package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
)

// deathPause is how long the player hangs in the air before dropping.
const deathPause = 0.5

// DeathSequence plays the death hop on the overlay while the real player
// is disabled, then spends a life.
type DeathSequence struct {
	ctx      Context
	player   *Player
	pos      common.Vector
	size     common.Rect
	vy       float64
	elapsed  float64
	finished bool
}

func NewDeathSequence(ctx Context, p *Player) *DeathSequence {
	r := p.Rect()
	return &DeathSequence{
		ctx:    ctx,
		player: p,
		pos:    p.Position(),
		size:   common.NewRect(0, 0, r.W, r.H),
		vy:     -p.spec.DeathHop,
	}
}

func (d *DeathSequence) Layer() collision.Layer  { return collision.Overlay }
func (d *DeathSequence) Position() common.Vector { return d.pos }
func (d *DeathSequence) Rect() common.Rect       { return d.size.At(d.pos) }

func (d *DeathSequence) Update(dt float64, view common.Rect) {
	if d.finished {
		return
	}
	d.elapsed += dt
	if d.elapsed > deathPause {
		d.vy += d.ctx.Config().Physics.Gravity * dt
		d.pos.Y += d.vy * dt
	}
	if d.elapsed < d.ctx.Config().Game.DeathDelay {
		return
	}

	d.finished = true
	remove(d.ctx, d)

	stats := d.ctx.Stats()
	stats.Lives--
	if stats.Lives > 0 {
		d.ctx.Events().Push(Event{Kind: EventRespawn})
		return
	}
	stats.GameOver = true
	d.ctx.Events().Push(Event{Kind: EventGameOver})
}

func (d *DeathSequence) Draw(screen *ebiten.Image, view common.Rect) {
	r := d.Rect()
	fillRect(screen, r, view, d.player.spec.Color.Or(colornames.Red))
	fillRect(screen, common.NewRect(r.X+2, r.Y+4, 2, 2), view, colornames.Black)
	fillRect(screen, common.NewRect(r.X+r.W-4, r.Y+4, 2, 2), view, colornames.Black)
}

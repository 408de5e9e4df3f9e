package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/prefabs"
)

// emergeSpeed is how fast a mushroom rises out of its block, in pixels per
// second.
const emergeSpeed = 16

// Mushroom walks away from where it appeared and powers up the player on
// contact.
type Mushroom struct {
	walker
	ctx    Context
	spec   prefabs.WalkerSpec
	pickup *Interactive
	start  common.Vector

	// emerge is how many pixels are left to rise before it starts walking.
	emerge float64
}

func NewMushroom(ctx Context, pos common.Vector) *Mushroom {
	spec := ctx.Catalog().Mushroom
	m := &Mushroom{ctx: ctx, spec: spec, start: pos}
	cm := ctx.Colliders()
	// Blocks only, so it passes through enemies.
	m.body = collision.NewCollider(m, cm, collision.Block, pos,
		common.NewRect(0, 0, spec.Size.Width, spec.Size.Height), collision.Active)
	cm.Register(m.body)
	m.pickup = newInteractive(m, cm, common.Vector{}, spec.Size.Width, spec.Size.Height, m.collect)
	m.velocity.X = spec.Speed
	return m
}

// NewEmergingMushroom starts inside a block at blockPos and rises out of
// its top before walking.
func NewEmergingMushroom(ctx Context, blockPos common.Vector) *Mushroom {
	m := NewMushroom(ctx, blockPos)
	m.emerge = float64(m.spec.Size.Height)
	return m
}

func (m *Mushroom) Layer() collision.Layer  { return collision.Active }
func (m *Mushroom) Position() common.Vector { return m.body.Position() }
func (m *Mushroom) Rect() common.Rect       { return m.body.Rect() }
func (m *Mushroom) Emerging() bool          { return m.emerge > 0 }

func (m *Mushroom) Update(dt float64, view common.Rect) {
	if m.emerge > 0 {
		step := min(emergeSpeed*dt, m.emerge)
		m.emerge -= step
		pos := m.Position()
		m.body.SetPosition(common.Vec(pos.X, pos.Y-step))
		return
	}

	m.walker.update(m.ctx, dt)
	m.pickup.Update(m.Position())

	if fellOut(m.ctx, m.Rect()) {
		remove(m.ctx, m)
	}
}

func (m *Mushroom) collect(p *Player) {
	if p.Dead() || !m.ctx.Entities().IsRegistered(m) {
		return
	}
	remove(m.ctx, m)
	m.ctx.Stats().AddScore(m.spec.Points)
	p.PowerUp()
	ShowPoints(m.ctx, m.spec.Points, m.Position())
	m.ctx.Events().Push(Event{Kind: EventCollect, Position: m.Position(), Points: m.spec.Points})
}

func (m *Mushroom) Draw(screen *ebiten.Image, view common.Rect) {
	r := m.Rect()
	if m.emerge > 0 {
		// Only the part above the block is visible.
		visible := int(float64(r.H) - m.emerge)
		if visible <= 0 {
			return
		}
		r = common.NewRect(r.X, r.Y, r.W, visible)
	}
	capH := min(r.H, 9)
	fillRect(screen, common.NewRect(r.X, r.Y, r.W, capH), view, m.spec.Color.Or(colornames.Red))
	fillRect(screen, common.NewRect(r.X+4, r.Y+2, 3, 3), view, colornames.White)
	fillRect(screen, common.NewRect(r.Right()-7, r.Y+2, 3, 3), view, colornames.White)
	if r.H > capH {
		fillRect(screen, common.NewRect(r.X+3, r.Y+capH, r.W-6, r.H-capH), view, colornames.Wheat)
	}
}

func (m *Mushroom) Serialize() entity.Record {
	return entity.Record{Type: TypeMushroom, X: m.start.X, Y: m.start.Y}
}

func (m *Mushroom) Destroy() {
	unregisterCollider(m.body)
	m.pickup.Destroy()
}

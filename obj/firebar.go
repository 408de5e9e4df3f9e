package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/prefabs"
)

// FireBar marks where a rotating bar of fire sits. It only exists in the
// editor; a running level gets the rotor it spawns.
type FireBar struct {
	entity.Body
	ctx   Context
	spec  prefabs.FireBarSpec
	links int
	// angle is the starting angle in degrees, clockwise from the right.
	angle float64
	// dir is 1 for clockwise and -1 for counter-clockwise.
	dir float64
}

func NewFireBar(ctx Context, pos common.Vector, links int, angle, dir float64) *FireBar {
	spec := ctx.Catalog().FireBar
	if links <= 0 {
		links = spec.Links
	}
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	f := &FireBar{
		Body:  entity.NewBody(common.NewRect(0, 0, common.TileSize, common.TileSize)),
		ctx:   ctx,
		spec:  spec,
		links: links,
		angle: angle,
		dir:   dir,
	}
	f.SetPosition(pos)
	return f
}

func (f *FireBar) Layer() collision.Layer { return collision.Spawner }
func (f *FireBar) Links() int             { return f.links }

func (f *FireBar) Update(dt float64, view common.Rect) {}

// Draw shows the bar at its starting angle.
func (f *FireBar) Draw(screen *ebiten.Image, view common.Rect) {
	r := f.Rect()
	strokeRect(screen, r, view, colornames.Orange)
	rad := f.angle * math.Pi / 180
	for i := range f.links {
		c := linkCenter(f.pivot(), rad, i, f.spec.LinkSize)
		fillCircle(screen, c, float64(f.spec.LinkSize)/2, view, f.spec.Color.Or(colornames.Orange))
	}
}

func (f *FireBar) pivot() common.Vector {
	r := f.Rect()
	return common.Vec(float64(r.X)+float64(r.W)/2, float64(r.Y)+float64(r.H)/2)
}

func (f *FireBar) Serialize() entity.Record {
	pos := f.Position()
	return entity.Record{
		Type: TypeFireBar,
		X:    pos.X,
		Y:    pos.Y,
		Props: map[string]any{
			"links": f.links,
			"angle": f.angle,
			"dir":   f.dir,
		},
	}
}

// Spawn returns the rotor that runs the bar in a level.
func (f *FireBar) Spawn() []entity.Entity {
	return []entity.Entity{newFireBarRotor(f)}
}

// linkCenter places link i along the bar. Link 0 sits on the pivot.
func linkCenter(pivot common.Vector, rad float64, i, size int) common.Vector {
	d := float64(i * size)
	return common.Vec(pivot.X+math.Cos(rad)*d, pivot.Y+math.Sin(rad)*d)
}

// FireBarRotor turns the bar and owns its links.
type FireBarRotor struct {
	source *FireBar
	ctx    Context
	angle  float64
	links  []*FireLink
	placed bool
}

func newFireBarRotor(f *FireBar) *FireBarRotor {
	r := &FireBarRotor{source: f, ctx: f.ctx, angle: f.angle * math.Pi / 180}
	for range f.links {
		r.links = append(r.links, newFireLink(f.ctx, f.spec))
	}
	r.place()
	return r
}

func (r *FireBarRotor) Layer() collision.Layer  { return collision.Active }
func (r *FireBarRotor) Position() common.Vector { return r.source.Position() }
func (r *FireBarRotor) Rect() common.Rect       { return r.source.Rect() }
func (r *FireBarRotor) Angle() float64          { return r.angle }
func (r *FireBarRotor) Links() []*FireLink      { return r.links }

func (r *FireBarRotor) Update(dt float64, view common.Rect) {
	if !r.placed {
		// Links join the manager on the first pass; they start updating on
		// the next one.
		r.ctx.Entities().Register(linkEntities(r.links)...)
		r.placed = true
	}
	r.angle = math.Mod(r.angle+r.source.dir*r.source.spec.RadiansPerSecond*dt, 2*math.Pi)
	r.place()
}

func (r *FireBarRotor) place() {
	pivot := r.source.pivot()
	for i, l := range r.links {
		l.center = linkCenter(pivot, r.angle, i, r.source.spec.LinkSize)
	}
}

func (r *FireBarRotor) Draw(screen *ebiten.Image, view common.Rect) {}

// Serialize records the bar as it was placed so a saved run rebuilds it.
func (r *FireBarRotor) Serialize() entity.Record {
	return r.source.Serialize()
}

func (r *FireBarRotor) Destroy() {
	for _, l := range r.links {
		remove(r.ctx, l)
	}
}

func linkEntities(links []*FireLink) []entity.Entity {
	out := make([]entity.Entity, len(links))
	for i, l := range links {
		out[i] = l
	}
	return out
}

// FireLink is one ball of fire on a bar. Touching it hurts the player.
type FireLink struct {
	ctx    Context
	spec   prefabs.FireBarSpec
	center common.Vector
	hitbox *Interactive
}

func newFireLink(ctx Context, spec prefabs.FireBarSpec) *FireLink {
	l := &FireLink{ctx: ctx, spec: spec}
	// The hitbox is a little smaller than the drawn ball.
	size := max(spec.LinkSize-2, 1)
	l.hitbox = newInteractive(l, ctx.Colliders(), common.Vector{}, size, size, l.touch)
	return l
}

func (l *FireLink) Layer() collision.Layer  { return collision.Active }
func (l *FireLink) Position() common.Vector { return l.center }
func (l *FireLink) Rect() common.Rect       { return l.hitbox.Rect() }

func (l *FireLink) Update(dt float64, view common.Rect) {
	half := float64(max(l.spec.LinkSize-2, 1)) / 2
	l.hitbox.Update(common.Vec(l.center.X-half, l.center.Y-half))
}

func (l *FireLink) touch(p *Player) {
	if !p.Dead() {
		p.Hurt()
	}
}

func (l *FireLink) Draw(screen *ebiten.Image, view common.Rect) {
	fillCircle(screen, l.center, float64(l.spec.LinkSize)/2, view, l.spec.Color.Or(colornames.Orange))
	fillCircle(screen, l.center, float64(l.spec.LinkSize)/4, view, colornames.Yellow)
}

func (l *FireLink) Destroy() {
	l.hitbox.Destroy()
}

package obj

import (
	"math"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
)

// stepTo moves c toward target. Sub-pixel steps are a single try; anything
// longer bisects so fast movers still get close to what they hit.
func stepTo(c *collision.Collider, target common.Vector) []collision.Collision {
	if c.Position().DistanceSq(target) < 1 {
		return c.TryMove(target)
	}
	return c.IterativeMove(target)
}

// moveAxes moves c horizontally then vertically by delta and reports which
// axes were blocked, with the collisions that blocked them.
func moveAxes(c *collision.Collider, delta common.Vector) (hitX, hitY []collision.Collision) {
	if delta.X != 0 {
		pos := c.Position()
		hitX = stepTo(c, common.Vec(pos.X+delta.X, pos.Y))
	}
	if delta.Y != 0 {
		pos := c.Position()
		hitY = stepTo(c, common.Vec(pos.X, pos.Y+delta.Y))
	}
	return hitX, hitY
}

// onGround probes one pixel below c.
func onGround(c *collision.Collider) bool {
	pos := c.Position()
	return len(c.Test(common.Vec(pos.X, pos.Y+1))) > 0
}

// fall applies gravity and clamps to the terminal speed.
func fall(vy, gravity, maxFall, dt float64) float64 {
	return math.Min(vy+gravity*dt, maxFall)
}

// walker is the shared movement of things that walk until they hit a wall
// and then turn around.
type walker struct {
	body     *collision.Collider
	velocity common.Vector
	grounded bool
}

func (w *walker) update(ctx Context, dt float64) {
	phys := ctx.Config().Physics
	w.velocity.Y = fall(w.velocity.Y, phys.Gravity, phys.MaxFallSpeed, dt)

	hitX, hitY := moveAxes(w.body, w.velocity.Mult(dt))
	if len(hitX) > 0 {
		w.velocity.X = -w.velocity.X
	}
	w.grounded = false
	if len(hitY) > 0 {
		if w.velocity.Y > 0 {
			w.grounded = true
		}
		w.velocity.Y = 0
	} else if w.velocity.Y >= 0 && onGround(w.body) {
		w.grounded = true
	}
}

// Interactive is a collider that reports overlaps with the player each
// frame. It follows its owner's position plus an offset.
type Interactive struct {
	collider *collision.Collider
	offset   common.Vector
	onTouch  func(p *Player)
}

func newInteractive(owner collision.Owner, m *collision.Manager, offset common.Vector, w, h int, onTouch func(p *Player)) *Interactive {
	c := collision.NewCollider(owner, m, collision.Mario, offset, common.NewRect(0, 0, w, h), collision.Active)
	m.Register(c)
	return &Interactive{collider: c, offset: offset, onTouch: onTouch}
}

// Update moves the hitbox to follow pos and reports the player if they
// overlap. It returns whether the player was touched.
func (i *Interactive) Update(pos common.Vector) bool {
	target := pos.Add(i.offset)
	touched := false
	for _, col := range i.collider.Move(target) {
		if p, ok := col.StationaryEntity.(*Player); ok {
			touched = true
			if i.onTouch != nil {
				i.onTouch(p)
			}
		}
	}
	return touched
}

func (i *Interactive) Rect() common.Rect {
	return i.collider.Rect()
}

func (i *Interactive) Destroy() {
	unregisterCollider(i.collider)
}

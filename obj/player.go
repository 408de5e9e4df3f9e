package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/prefabs"
)

// Bumpable blocks react to the player hitting them from below.
type Bumpable interface {
	Bump(p *Player)
}

// Player is the character under input control. It only collides with
// blocks itself; enemies and pickups find the player through their own
// hitboxes.
type Player struct {
	ctx      Context
	controls Controls
	spec     prefabs.PlayerSpec
	body     *collision.Collider

	velocity  common.Vector
	facing    float64
	grounded  bool
	jumpTimer float64

	big          bool
	invulnerable float64
	enabled      bool
	dead         bool
}

func NewPlayer(ctx Context, controls Controls, pos common.Vector) *Player {
	p := &Player{
		ctx:      ctx,
		controls: controls,
		spec:     ctx.Catalog().Player,
		facing:   1,
		enabled:  true,
	}
	size := p.spec.Small
	p.body = collision.NewCollider(p, ctx.Colliders(), collision.Block, pos,
		common.NewRect(0, 0, size.Width, size.Height), collision.Mario)
	ctx.Colliders().Register(p.body)
	return p
}

func (p *Player) Layer() collision.Layer        { return collision.Mario }
func (p *Player) Position() common.Vector       { return p.body.Position() }
func (p *Player) Rect() common.Rect             { return p.body.Rect() }
func (p *Player) Enabled() bool                 { return p.enabled }
func (p *Player) Velocity() common.Vector       { return p.velocity }
func (p *Player) Grounded() bool                { return p.grounded }
func (p *Player) Big() bool                     { return p.big }
func (p *Player) Dead() bool                    { return p.dead }
func (p *Player) Collider() *collision.Collider { return p.body }

// Center is the middle of the player's rect.
func (p *Player) Center() common.Vector {
	r := p.Rect()
	return common.Vec(float64(r.X)+float64(r.W)/2, float64(r.Y)+float64(r.H)/2)
}

func (p *Player) Update(dt float64, view common.Rect) {
	if p.dead {
		return
	}
	in := p.controls.State()
	phys := p.ctx.Config().Physics

	maxSpeed := p.spec.WalkSpeed
	if in.RunHeld {
		maxSpeed = p.spec.RunSpeed
	}
	accel := p.spec.Acceleration
	if !p.grounded {
		accel *= p.spec.AirControl
	}
	if in.MoveX != 0 {
		p.velocity.X = common.Approach(p.velocity.X, in.MoveX*maxSpeed, accel*dt)
		p.facing = math.Copysign(1, in.MoveX)
	} else if p.grounded {
		p.velocity.X = common.Approach(p.velocity.X, 0, p.spec.Deceleration*dt)
	}

	if in.JumpPressed && p.grounded {
		p.velocity.Y = -p.spec.JumpSpeed
		p.jumpTimer = p.spec.JumpHoldTime
		p.grounded = false
	}

	gravity := phys.Gravity
	if p.velocity.Y < 0 && in.JumpHeld && p.jumpTimer > 0 {
		gravity *= p.spec.JumpHoldScale
		p.jumpTimer -= dt
	} else {
		p.jumpTimer = 0
	}
	p.velocity.Y = fall(p.velocity.Y, gravity, phys.MaxFallSpeed, dt)

	hitX, hitY := moveAxes(p.body, p.velocity.Mult(dt))
	if len(hitX) > 0 {
		p.velocity.X = 0
	}

	p.grounded = false
	if len(hitY) > 0 {
		if p.velocity.Y < 0 {
			p.bumpHead(hitY)
			p.jumpTimer = 0
		} else {
			p.grounded = true
		}
		p.velocity.Y = 0
	} else if p.velocity.Y >= 0 && onGround(p.body) {
		p.grounded = true
	}

	// The camera never scrolls back, so neither may the player.
	if r := p.Rect(); r.X < view.X && view.W > 0 {
		pos := p.Position()
		p.body.TryMove(common.Vec(float64(view.X), pos.Y))
		p.velocity.X = math.Max(p.velocity.X, 0)
	}

	if p.invulnerable > 0 {
		p.invulnerable -= dt
	}

	if fellOut(p.ctx, p.Rect()) {
		p.Kill()
	}
}

// bumpHead bumps the block closest to the player's center.
func (p *Player) bumpHead(hits []collision.Collision) {
	center := p.Center().X
	var (
		best     Bumpable
		bestDist = math.Inf(1)
	)
	for _, h := range hits {
		b, ok := h.StationaryEntity.(Bumpable)
		if !ok {
			continue
		}
		r := h.StationaryCollider.Rect()
		d := math.Abs(float64(r.X) + float64(r.W)/2 - center)
		if d < bestDist {
			best, bestDist = b, d
		}
	}
	if best != nil {
		best.Bump(p)
	}
	p.ctx.Events().Push(Event{Kind: EventBump, Position: p.Position()})
}

func (p *Player) Draw(screen *ebiten.Image, view common.Rect) {
	if p.invulnerable > 0 && int(p.invulnerable*10)%2 == 0 {
		return
	}
	r := p.Rect()
	clr := p.spec.Color.Or(colornames.Red)
	if p.big {
		clr = p.spec.BigColor.Or(colornames.Orangered)
	}
	fillRect(screen, r, view, clr)

	// cap and eye
	fillRect(screen, common.NewRect(r.X, r.Y, r.W, 4), view, colornames.Darkred)
	eyeX := r.X + r.W/2 + int(p.facing*3) - 1
	fillRect(screen, common.NewRect(eyeX, r.Y+5, 2, 3), view, colornames.Black)
}

// PowerUp makes the player big.
func (p *Player) PowerUp() {
	if p.dead || p.big {
		return
	}
	p.setBig(true)
	p.ctx.Events().Push(Event{Kind: EventPowerUp, Position: p.Position()})
}

// Hurt shrinks a big player and kills a small one. Hits during the
// invulnerability window are ignored.
func (p *Player) Hurt() {
	if p.dead || p.invulnerable > 0 {
		return
	}
	if p.big {
		p.setBig(false)
		p.invulnerable = p.ctx.Config().Game.InvulnerableTime
		p.ctx.Events().Push(Event{Kind: EventHurt, Position: p.Position()})
		return
	}
	p.Kill()
}

// Kill disables the player and hands over to the death sequence, which
// decides between a respawn and game over.
func (p *Player) Kill() {
	if p.dead {
		return
	}
	p.dead = true
	p.enabled = false
	p.velocity = common.Vector{}
	p.ctx.Events().Push(Event{Kind: EventDeath, Position: p.Position()})
	p.ctx.Entities().Register(NewDeathSequence(p.ctx, p))
}

// Bounce launches the player up after a stomp. Holding jump bounces
// higher.
func (p *Player) Bounce() {
	p.velocity.Y = -p.spec.StompBounce
	if p.controls.State().JumpHeld {
		p.jumpTimer = p.spec.JumpHoldTime
	}
}

func (p *Player) setBig(big bool) {
	from, to := p.spec.Small, p.spec.Big
	if !big {
		from, to = to, from
	}
	pos := p.Position()
	p.big = big
	p.body.SetSize(to.Width, to.Height)
	p.body.SetPosition(common.Vec(pos.X, pos.Y+float64(from.Height-to.Height)))
}

func (p *Player) Destroy() {
	unregisterCollider(p.body)
}

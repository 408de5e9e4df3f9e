package obj

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
)

// Trigger is an editor region that runs a script when the player walks
// into it.
type Trigger struct {
	entity.Body
	ctx    Context
	script string
	// repeat lets the zone fire again every time the player re-enters.
	repeat bool
}

func NewTrigger(ctx Context, pos common.Vector, w, h int, script string, repeat bool) *Trigger {
	if w <= 0 {
		w = common.TileSize
	}
	if h <= 0 {
		h = common.TileSize
	}
	t := &Trigger{
		Body:   entity.NewBody(common.NewRect(0, 0, w, h)),
		ctx:    ctx,
		script: script,
		repeat: repeat,
	}
	t.SetPosition(pos)
	return t
}

func (t *Trigger) Layer() collision.Layer { return collision.Trigger }
func (t *Trigger) Script() string         { return t.script }
func (t *Trigger) Repeat() bool           { return t.repeat }

func (t *Trigger) Update(dt float64, view common.Rect) {}

func (t *Trigger) Draw(screen *ebiten.Image, view common.Rect) {
	if screen == nil {
		return
	}
	r := t.Rect()
	strokeRect(screen, r, view, colornames.Magenta)
	ebitenutil.DebugPrintAt(screen, t.script, r.X-view.X+2, r.Y-view.Y+2)
}

func (t *Trigger) Serialize() entity.Record {
	pos := t.Position()
	r := t.Rect()
	props := map[string]any{
		"script": t.script,
		"width":  r.W,
		"height": r.H,
	}
	if t.repeat {
		props["repeat"] = true
	}
	return entity.Record{Type: TypeTrigger, X: pos.X, Y: pos.Y, Props: props}
}

func (t *Trigger) Spawn() []entity.Entity {
	return []entity.Entity{newTriggerZone(t)}
}

// TriggerZone is the running form of a Trigger.
type TriggerZone struct {
	source  *Trigger
	ctx     Context
	hitbox  *Interactive
	runtime *ScriptRuntime

	inside bool
	fired  int
}

func newTriggerZone(t *Trigger) *TriggerZone {
	z := &TriggerZone{source: t, ctx: t.ctx}
	r := t.Rect()
	z.hitbox = newInteractive(z, t.ctx.Colliders(), common.Vector{}, r.W, r.H, nil)
	rt, err := CompileScript(t.script)
	if err != nil {
		log.Error("trigger script", "script", t.script, "err", err)
	}
	z.runtime = rt
	return z
}

func (z *TriggerZone) Layer() collision.Layer  { return collision.Active }
func (z *TriggerZone) Position() common.Vector { return z.source.Position() }
func (z *TriggerZone) Rect() common.Rect       { return z.source.Rect() }
func (z *TriggerZone) Fired() int              { return z.fired }

func (z *TriggerZone) Update(dt float64, view common.Rect) {
	touched := z.hitbox.Update(z.Position())
	entered := touched && !z.inside
	z.inside = touched
	if !entered || z.runtime == nil {
		return
	}
	if err := z.fire(); err != nil {
		log.Error("trigger", "script", z.source.script, "err", err)
	}
	if !z.source.repeat {
		remove(z.ctx, z)
	}
}

func (z *TriggerZone) fire() error {
	z.fired++
	return z.runtime.RunEnter(z.ctx)
}

func (z *TriggerZone) Draw(screen *ebiten.Image, view common.Rect) {}

func (z *TriggerZone) Serialize() entity.Record {
	return z.source.Serialize()
}

func (z *TriggerZone) Destroy() {
	z.hitbox.Destroy()
}

package obj

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
)

const (
	floatyLifetime = 0.8
	floatySpeed    = 40
)

// FloatyPoints is the score number that drifts up from whatever earned it.
type FloatyPoints struct {
	ctx  Context
	text string
	pos  common.Vector
	age  float64
}

// ShowPoints registers a FloatyPoints at pos.
func ShowPoints(ctx Context, points int, pos common.Vector) {
	if points <= 0 {
		return
	}
	ctx.Entities().Register(&FloatyPoints{ctx: ctx, text: strconv.Itoa(points), pos: pos})
}

func (f *FloatyPoints) Layer() collision.Layer  { return collision.Overlay }
func (f *FloatyPoints) Position() common.Vector { return f.pos }
func (f *FloatyPoints) Text() string            { return f.text }

func (f *FloatyPoints) Rect() common.Rect {
	return common.RectAt(f.pos, len(f.text)*6, 16)
}

func (f *FloatyPoints) Update(dt float64, view common.Rect) {
	f.age += dt
	f.pos.Y -= floatySpeed * dt
	if f.age >= floatyLifetime {
		remove(f.ctx, f)
	}
}

func (f *FloatyPoints) Draw(screen *ebiten.Image, view common.Rect) {
	if screen == nil {
		return
	}
	x, y := common.Floor(f.pos)
	ebitenutil.DebugPrintAt(screen, f.text, x-view.X, y-view.Y)
}

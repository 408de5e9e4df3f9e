package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
)

// fillRect draws a world-space rect relative to view.
func fillRect(screen *ebiten.Image, r common.Rect, view common.Rect, clr color.Color) {
	if screen == nil || r.Empty() {
		return
	}
	vector.DrawFilledRect(screen,
		float32(r.X-view.X), float32(r.Y-view.Y),
		float32(r.W), float32(r.H),
		clr, false)
}

func strokeRect(screen *ebiten.Image, r common.Rect, view common.Rect, clr color.Color) {
	if screen == nil || r.Empty() {
		return
	}
	vector.StrokeRect(screen,
		float32(r.X-view.X)+0.5, float32(r.Y-view.Y)+0.5,
		float32(r.W)-1, float32(r.H)-1,
		1, clr, false)
}

func fillCircle(screen *ebiten.Image, center common.Vector, radius float64, view common.Rect, clr color.Color) {
	if screen == nil {
		return
	}
	vector.DrawFilledCircle(screen,
		float32(center.X-float64(view.X)), float32(center.Y-float64(view.Y)),
		float32(radius), clr, true)
}

var layerDebugColors = map[collision.Layer]color.Color{
	collision.Block:  color.RGBA{R: 0x40, G: 0x80, B: 0xff, A: 0xff},
	collision.Mario:  color.RGBA{R: 0x40, G: 0xff, B: 0x40, A: 0xff},
	collision.Enemy:  color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff},
	collision.Active: color.RGBA{R: 0xff, G: 0xff, B: 0x40, A: 0xff},
}

// DrawColliders outlines every registered collider, colored by layer.
func DrawColliders(screen *ebiten.Image, m *collision.Manager, view common.Rect) {
	for _, c := range m.Colliders() {
		if !c.Rect().Intersects(view) {
			continue
		}
		clr, ok := layerDebugColors[c.Layer()]
		if !ok {
			clr = color.White
		}
		strokeRect(screen, c.Rect(), view, clr)
	}
}

// Package entity holds the entity capability interfaces and the
// layer-ordered manager that updates and draws them.
package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
)

// Entity is anything that lives on a layer and is updated and drawn each
// frame. Entities are compared by identity, so implementations should use
// pointer receivers.
type Entity interface {
	Position() common.Vector
	Rect() common.Rect
	Layer() collision.Layer
	Update(dt float64, view common.Rect)
	Draw(screen *ebiten.Image, view common.Rect)
}

// Toggleable entities are skipped by Update and Draw while disabled.
type Toggleable interface {
	Enabled() bool
}

// Serializable entities are saved with the level.
type Serializable interface {
	Serialize() Record
}

// Destroyable entities release what they hold (colliders, child entities)
// when the manager clears them.
type Destroyable interface {
	Destroy()
}

// Spawner is an editor placeholder that expands into runtime entities when
// it is loaded into a manager that does not handle its layer.
type Spawner interface {
	Spawn() []Entity
}

// Body is a float position with an integer rect kept at floor(position).
// Embed it to get Position, SetPosition and Rect.
type Body struct {
	position common.Vector
	rect     common.Rect
}

// NewBody places a body at the origin of r.
func NewBody(r common.Rect) Body {
	return Body{position: r.Origin(), rect: r}
}

func (b *Body) Position() common.Vector {
	return b.position
}

func (b *Body) SetPosition(p common.Vector) {
	b.position = p
	b.rect = b.rect.At(p)
}

func (b *Body) Rect() common.Rect {
	return b.rect
}

func (b *Body) SetSize(w, h int) {
	b.rect.W, b.rect.H = w, h
}

// ToScreen converts a world position to screen space for the given view.
func ToScreen(p common.Vector, view common.Rect) common.Vector {
	return common.Vec(p.X-float64(view.X), p.Y-float64(view.Y))
}

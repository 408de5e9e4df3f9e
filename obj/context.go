package obj

import (
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/prefabs"
)

// Context is the simulation state every object is built against. It is
// passed down explicitly; nothing here is global.
type Context interface {
	Colliders() *collision.Manager
	Entities() *entity.Manager
	Catalog() *prefabs.Catalog
	Config() config.Config
	Stats() *Stats
	Events() *EventQueue
	// Player is nil while editing.
	Player() *Player
	// Bounds is the level in world pixels.
	Bounds() common.Rect
}

// remove unregisters e if it is still registered and destroys it.
func remove(ctx Context, e entity.Entity) {
	if ctx.Entities().IsRegistered(e) {
		ctx.Entities().Unregister(e)
	}
	if d, ok := e.(entity.Destroyable); ok {
		d.Destroy()
	}
}

// unregisterCollider is safe to call on colliders that were never
// registered or were already removed.
func unregisterCollider(c *collision.Collider) {
	if c != nil && c.Manager().IsRegistered(c) {
		c.Manager().Unregister(c)
	}
}

// fellOut reports whether r has dropped past the bottom of the level.
func fellOut(ctx Context, r common.Rect) bool {
	return float64(r.Y) > float64(ctx.Bounds().Bottom())+ctx.Config().Physics.FallOutMargin
}

package collision

import (
	"fmt"

	"github.com/milk9111/platformer/common"
)

// Owner is the entity a collider reports collisions on behalf of.
type Owner interface {
	Layer() Layer
}

// Placed is an owner that also has a position and rect to copy from.
type Placed interface {
	Owner
	Position() common.Vector
	Rect() common.Rect
}

// Collision is one overlapping pair found by a movement or probe.
type Collision struct {
	MovingEntity       Owner
	StationaryEntity   Owner
	MovingCollider     *Collider
	StationaryCollider *Collider
}

func newCollision(moved, hit *Collider) Collision {
	return Collision{
		MovingEntity:       moved.owner,
		StationaryEntity:   hit.owner,
		MovingCollider:     moved,
		StationaryCollider: hit,
	}
}

// Collider is a movable rect controlled by its owning entity. The float
// position is the source of truth; rect origin is always floor(position).
type Collider struct {
	// Mask is the set of layers this collider reports collisions against.
	Mask Layer

	owner    Owner
	manager  *Manager
	layer    Layer
	position common.Vector
	rect     common.Rect
}

// NewCollider creates a collider. It is not registered with manager; the
// owner does that when it wants to be visible to other colliders.
func NewCollider(owner Owner, manager *Manager, mask Layer, position common.Vector, rect common.Rect, layer Layer) *Collider {
	if owner == nil {
		panic("collision: collider requires an owner")
	}
	if manager == nil {
		panic("collision: collider requires a manager")
	}
	c := &Collider{
		Mask:    mask,
		owner:   owner,
		manager: manager,
		layer:   layer,
		rect:    rect,
	}
	c.SetPosition(position)
	return c
}

// FromEntity creates a collider sized and placed like owner, on owner's layer.
func FromEntity(owner Placed, manager *Manager, mask Layer) *Collider {
	if owner == nil {
		panic("collision: collider requires an owner")
	}
	return NewCollider(owner, manager, mask, owner.Position(), owner.Rect(), owner.Layer())
}

func (c *Collider) Owner() Owner      { return c.owner }
func (c *Collider) Manager() *Manager { return c.manager }
func (c *Collider) Layer() Layer      { return c.layer }
func (c *Collider) SetLayer(l Layer)  { c.layer = l }
func (c *Collider) Rect() common.Rect { return c.rect }

func (c *Collider) Position() common.Vector {
	return c.position
}

// SetPosition teleports the collider without checking for collisions.
func (c *Collider) SetPosition(p common.Vector) {
	c.position = p
	c.rect = c.rect.At(p)
}

func (c *Collider) SetSize(w, h int) {
	c.rect.W, c.rect.H = w, h
}

func (c *Collider) Move(target common.Vector) []Collision {
	return c.manager.Move(c, target)
}

func (c *Collider) TryMove(target common.Vector) []Collision {
	return c.manager.TryMove(c, target)
}

func (c *Collider) Test(target common.Vector) []Collision {
	return c.manager.Test(c, target)
}

// IterativeMove moves toward target using the manager's default round budget.
func (c *Collider) IterativeMove(target common.Vector) []Collision {
	return c.manager.IterativeMove(c, target, 0)
}

func (c *Collider) IterativeMoveN(target common.Vector, iterations int) []Collision {
	return c.manager.IterativeMove(c, target, iterations)
}

func (c *Collider) String() string {
	return fmt.Sprintf("collider(%s %v mask=%s)", c.layer, c.rect, c.Mask)
}

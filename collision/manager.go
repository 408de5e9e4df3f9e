package collision

import (
	"fmt"
	"math"

	"github.com/milk9111/platformer/common"
)

// DefaultIterations is the iterative move round budget used when a manager
// is created without one.
const DefaultIterations = 3

// Manager owns the colliders of one level and answers movement requests
// against them. Hit testing is a linear scan over every registered collider.
type Manager struct {
	// Iterations is the default round budget for IterativeMove.
	Iterations int

	colliders colliderSet
}

func NewManager(iterations int) *Manager {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &Manager{Iterations: iterations}
}

// Register makes c visible to every other collider's movement queries.
func (m *Manager) Register(c *Collider) {
	if c == nil {
		panic("collision: register nil collider")
	}
	if c.manager != m {
		panic(fmt.Sprintf("collision: %v belongs to another manager", c))
	}
	if !m.colliders.add(c) {
		panic(fmt.Sprintf("collision: %v already registered", c))
	}
}

func (m *Manager) Unregister(c *Collider) {
	if c == nil || !m.colliders.remove(c) {
		panic(fmt.Sprintf("collision: %v is not registered", c))
	}
}

func (m *Manager) IsRegistered(c *Collider) bool {
	return m.colliders.has(c)
}

func (m *Manager) Len() int {
	return m.colliders.len()
}

// Colliders returns a copy of the registered colliders.
func (m *Manager) Colliders() []*Collider {
	out := make([]*Collider, len(m.colliders.dense))
	copy(out, m.colliders.dense)
	return out
}

// Move teleports c to target and returns every collision it has there. The
// move always happens, even when it results in collisions.
func (m *Manager) Move(c *Collider, target common.Vector) []Collision {
	c.SetPosition(target)

	var collisions []Collision
	for _, other := range m.colliders.dense {
		if other == c || !CanCollide(c.Mask, other.layer) {
			continue
		}
		if c.rect.Intersects(other.rect) {
			collisions = append(collisions, newCollision(c, other))
		}
	}
	return collisions
}

// TryMove moves c to target only if nothing is hit there. The collisions
// are returned either way.
func (m *Manager) TryMove(c *Collider, target common.Vector) []Collision {
	prevPos, prevRect := c.position, c.rect

	collisions := m.Move(c, target)
	if len(collisions) > 0 {
		c.position, c.rect = prevPos, prevRect
	}
	return collisions
}

// Test reports the collisions c would have at target without moving it.
func (m *Manager) Test(c *Collider, target common.Vector) []Collision {
	prevPos, prevRect := c.position, c.rect

	collisions := m.Move(c, target)
	c.position, c.rect = prevPos, prevRect
	return collisions
}

// IterativeMove approximates a swept move toward target. Each round
// teleports from the starting position; a blocked round halves the distance
// for the next one. The result is the last round's collisions, so a
// non-empty result means every round was blocked and c did not move.
func (m *Manager) IterativeMove(c *Collider, target common.Vector, iterations int) []Collision {
	if iterations <= 0 {
		iterations = m.Iterations
	}

	initial := c.position
	if !common.IsFinite(target) {
		return nil
	}
	dsq := initial.DistanceSq(target)
	if dsq < 1 {
		return nil
	}

	dist := math.Sqrt(dsq)
	direction := target.Sub(initial).Mult(1 / dist)

	var collisions []Collision
	for i := 0; i < iterations; i++ {
		collisions = m.TryMove(c, initial.Add(direction.Mult(dist)))
		if len(collisions) == 0 {
			break
		}
		dist *= 0.5
	}
	return collisions
}

package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
)

// DefaultOrder is the gameplay layer ordering, back to front.
var DefaultOrder = []collision.Layer{
	collision.Background,
	collision.Block,
	collision.Enemy,
	collision.Mario,
	collision.Active,
	collision.Interface,
	collision.Overlay,
}

// EditorOrder adds the placeholder layers the editor shows but gameplay
// never runs.
var EditorOrder = []collision.Layer{
	collision.Background,
	collision.Block,
	collision.Spawner,
	collision.Trigger,
	collision.Enemy,
	collision.Mario,
	collision.Active,
	collision.Interface,
	collision.Overlay,
}

// Manager keeps entities in per-layer registration order and drives them
// layer by layer in the order it was built with.
type Manager struct {
	order  []collision.Layer
	layers map[collision.Layer][]Entity
}

// NewManager builds a manager that recognizes exactly the given layers and
// traverses them in that order.
func NewManager(order ...collision.Layer) *Manager {
	if len(order) == 0 {
		panic("entity: manager needs at least one layer")
	}
	m := &Manager{
		order:  make([]collision.Layer, 0, len(order)),
		layers: make(map[collision.Layer][]Entity, len(order)),
	}
	for _, l := range order {
		if _, dup := m.layers[l]; dup {
			panic(fmt.Sprintf("entity: layer %s listed twice", l))
		}
		m.order = append(m.order, l)
		m.layers[l] = nil
	}
	return m
}

func NewDefaultManager() *Manager {
	return NewManager(DefaultOrder...)
}

func NewEditorManager() *Manager {
	return NewManager(EditorOrder...)
}

// Order returns a copy of the traversal order.
func (m *Manager) Order() []collision.Layer {
	return append([]collision.Layer(nil), m.order...)
}

// Recognizes reports whether l is part of the ordering.
func (m *Manager) Recognizes(l collision.Layer) bool {
	_, ok := m.layers[l]
	return ok
}

// Register appends each entity to the end of its layer.
func (m *Manager) Register(entities ...Entity) {
	for _, e := range entities {
		if e == nil {
			panic("entity: register nil entity")
		}
		l := e.Layer()
		list, ok := m.layers[l]
		if !ok {
			panic(fmt.Sprintf("entity: layer %s not recognized by this manager", l))
		}
		if indexOf(list, e) >= 0 {
			panic(fmt.Sprintf("entity: %T already registered on %s", e, l))
		}
		m.layers[l] = append(list, e)
	}
}

// Unregister removes each entity from its layer, keeping the order of the
// rest.
func (m *Manager) Unregister(entities ...Entity) {
	for _, e := range entities {
		if e == nil {
			panic("entity: unregister nil entity")
		}
		l := e.Layer()
		list := m.layers[l]
		i := indexOf(list, e)
		if i < 0 {
			panic(fmt.Sprintf("entity: %T is not registered on %s", e, l))
		}
		copy(list[i:], list[i+1:])
		list[len(list)-1] = nil
		m.layers[l] = list[:len(list)-1]
	}
}

func (m *Manager) IsRegistered(e Entity) bool {
	if e == nil {
		return false
	}
	return indexOf(m.layers[e.Layer()], e) >= 0
}

func (m *Manager) Len() int {
	n := 0
	for _, list := range m.layers {
		n += len(list)
	}
	return n
}

func (m *Manager) LayerLen(l collision.Layer) int {
	return len(m.layers[l])
}

// Layer returns a copy of one layer's entities in registration order.
func (m *Manager) Layer(l collision.Layer) []Entity {
	return append([]Entity(nil), m.layers[l]...)
}

// Update steps every enabled entity. Each layer is copied before it is
// walked, so entities registered during the pass run from the next one.
func (m *Manager) Update(dt float64, view common.Rect) {
	for _, l := range m.order {
		for _, e := range m.Layer(l) {
			if !enabled(e) {
				continue
			}
			e.Update(dt, view)
		}
	}
}

// Draw renders every enabled entity back to front.
func (m *Manager) Draw(screen *ebiten.Image, view common.Rect) {
	for _, l := range m.order {
		for _, e := range m.Layer(l) {
			if !enabled(e) {
				continue
			}
			e.Draw(screen, view)
		}
	}
}

// Search returns every entity matching pred, in no particular order.
func (m *Manager) Search(pred func(Entity) bool) []Entity {
	var out []Entity
	for _, l := range m.order {
		for _, e := range m.layers[l] {
			if pred(e) {
				out = append(out, e)
			}
		}
	}
	return out
}

// SearchByType returns every registered entity that is a T.
func SearchByType[T any](m *Manager) []T {
	var out []T
	for _, l := range m.order {
		for _, e := range m.layers[l] {
			if t, ok := e.(T); ok {
				out = append(out, t)
			}
		}
	}
	return out
}

// First returns the first registered T in traversal order.
func First[T any](m *Manager) (T, bool) {
	for _, l := range m.order {
		for _, e := range m.layers[l] {
			if t, ok := e.(T); ok {
				return t, true
			}
		}
	}
	var zero T
	return zero, false
}

// EntitiesInRegion returns the entities whose position lies in r or whose
// rect overlaps it. Each entity appears once.
func (m *Manager) EntitiesInRegion(r common.Rect) []Entity {
	var out []Entity
	for _, l := range m.order {
		for _, e := range m.layers[l] {
			if r.ContainsPoint(e.Position()) || r.Intersects(e.Rect()) {
				out = append(out, e)
			}
		}
	}
	return out
}

// Clear unregisters everything, calling Destroy on entities that have it.
func (m *Manager) Clear() {
	for _, l := range m.order {
		list := m.layers[l]
		m.layers[l] = nil
		for _, e := range list {
			if d, ok := e.(Destroyable); ok {
				d.Destroy()
			}
		}
	}
}

// Serialize captures the serializable entities of every layer in
// registration order. Layers with nothing to save are left out.
func (m *Manager) Serialize() Snapshot {
	snap := Snapshot{Class: ManagerClass, Layers: make(map[collision.Layer][]Record)}
	for _, l := range m.order {
		for _, e := range m.layers[l] {
			if s, ok := e.(Serializable); ok {
				snap.Layers[l] = append(snap.Layers[l], s.Serialize())
			}
		}
	}
	return snap
}

// Deserialize replaces the manager's contents with the entities described
// by snap. A spawner built for a layer this manager does not run is
// replaced by what it spawns. On error the manager keeps whatever was
// built before the failing record.
func (m *Manager) Deserialize(snap Snapshot, reg *Registry) error {
	if snap.Class != "" && snap.Class != ManagerClass {
		return fmt.Errorf("entity: snapshot class %q, want %q", snap.Class, ManagerClass)
	}
	m.Clear()

	for _, l := range collision.AllLayers {
		for _, rec := range snap.Layers[l] {
			e, err := reg.Build(rec)
			if err != nil {
				return err
			}
			if !m.Recognizes(e.Layer()) {
				if sp, ok := e.(Spawner); ok {
					m.Register(sp.Spawn()...)
					continue
				}
			}
			m.Register(e)
		}
	}
	return nil
}

func enabled(e Entity) bool {
	t, ok := e.(Toggleable)
	return !ok || t.Enabled()
}

func indexOf(list []Entity, e Entity) int {
	for i, x := range list {
		if x == e {
			return i
		}
	}
	return -1
}

package collision

import (
	"fmt"
	"strings"
)

// Layer is the category an entity or collider belongs to. Layers double as
// bits in a collision mask.
type Layer uint16

const (
	Background Layer = 1 << iota
	Block
	Mario
	Enemy
	Active
	Interface
	Overlay
	Spawner
	Trigger
)

// None is the empty mask.
const None Layer = 0

// AllLayers lists every layer in declaration order.
var AllLayers = []Layer{Background, Block, Mario, Enemy, Active, Interface, Overlay, Spawner, Trigger}

var layerNames = map[Layer]string{
	Background: "Background",
	Block:      "Block",
	Mario:      "Mario",
	Enemy:      "Enemy",
	Active:     "Active",
	Interface:  "Interface",
	Overlay:    "Overlay",
	Spawner:    "Spawner",
	Trigger:    "Trigger",
}

// CanCollide reports whether a collider with mask cares about colliders on
// layer. The test is one-directional.
func CanCollide(mask, layer Layer) bool {
	return mask&layer != 0
}

func (l Layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	if l == None {
		return "None"
	}
	var parts []string
	for _, single := range AllLayers {
		if l&single != 0 {
			parts = append(parts, layerNames[single])
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Layer(%d)", uint16(l))
	}
	return strings.Join(parts, "|")
}

// ParseLayer is the inverse of String for single layers.
func ParseLayer(name string) (Layer, error) {
	for l, n := range layerNames {
		if strings.EqualFold(n, name) {
			return l, nil
		}
	}
	return None, fmt.Errorf("collision: unknown layer %q", name)
}

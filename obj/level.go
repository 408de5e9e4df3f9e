package obj

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/levels"
)

// Level represents a simple tile map stored as JSON, plus the entities
// placed on it.
type Level struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	// Layers holds one flat row-major array of Width*Height tiles per
	// layer. Layer 0 is drawn first. Any non-zero tile is filled.
	Layers [][]int `json:"layers"`
	// LayerMeta holds per-layer metadata such as whether tiles on the layer
	// have physics and the display color for that layer's tiles.
	LayerMeta []LayerMeta `json:"layer_meta"`

	// player spawn in tile coordinates; the player stands on the tile below
	SpawnX int `json:"spawn_x"`
	SpawnY int `json:"spawn_y"`

	Background string          `json:"background,omitempty"`
	Entities   entity.Snapshot `json:"entities"`

	layers []*TileLayer
}

type LayerMeta struct {
	Name       string `json:"name,omitempty"`
	HasPhysics bool   `json:"has_physics"`
	Color      string `json:"color"`
	// Tile picks a tile from the tileset; nil fills cells with Color.
	Tile *int `json:"tile,omitempty"`
}

const defaultLayerColor = "#3c78ff"

// NewLevel returns an empty level with one solid ground layer and one
// decoration layer.
func NewLevel(name string, width, height int) *Level {
	ground, bricks := 0, 1
	l := &Level{
		Name:   name,
		Width:  width,
		Height: height,
		Layers: [][]int{make([]int, width*height), make([]int, width*height)},
		LayerMeta: []LayerMeta{
			{Name: "ground", HasPhysics: true, Color: "#c84c0c", Tile: &ground},
			{Name: "bricks", HasPhysics: true, Color: "#9c4a00", Tile: &bricks},
		},
		SpawnX:     2,
		SpawnY:     height - 3,
		Background: "#5c94fc",
		Entities:   entity.Snapshot{Class: entity.ManagerClass},
	}
	return l
}

// LoadLevel reads a level by name from disk or the embedded set.
func LoadLevel(name string) (*Level, error) {
	data, err := levels.Load(name)
	if err != nil {
		return nil, err
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return lvl, nil
}

func ParseLevel(b []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, err
	}

	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("invalid level dimensions: %dx%d", lvl.Width, lvl.Height)
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("layer %d has %d tiles, want %d", i, len(layer), lvl.Width*lvl.Height)
		}
	}
	if lvl.SpawnX < 0 || lvl.SpawnX >= lvl.Width || lvl.SpawnY < 0 || lvl.SpawnY >= lvl.Height {
		return nil, fmt.Errorf("spawn (%d,%d) outside %dx%d level", lvl.SpawnX, lvl.SpawnY, lvl.Width, lvl.Height)
	}

	// Ensure layer meta exists for each layer.
	if len(lvl.LayerMeta) < len(lvl.Layers) {
		meta := make([]LayerMeta, len(lvl.Layers))
		copy(meta, lvl.LayerMeta)
		for i := len(lvl.LayerMeta); i < len(meta); i++ {
			meta[i] = LayerMeta{Color: defaultLayerColor}
		}
		lvl.LayerMeta = meta
	}
	lvl.LayerMeta = lvl.LayerMeta[:len(lvl.Layers)]
	if lvl.Entities.Class == "" {
		lvl.Entities.Class = entity.ManagerClass
	}

	return &lvl, nil
}

// Marshal encodes the level the way the editor saves it.
func (l *Level) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Clone deep-copies the tile data. Entities are shared; snapshots are
// never mutated in place.
func (l *Level) Clone() *Level {
	c := *l
	c.Layers = make([][]int, len(l.Layers))
	for i, layer := range l.Layers {
		c.Layers[i] = append([]int(nil), layer...)
	}
	c.LayerMeta = append([]LayerMeta(nil), l.LayerMeta...)
	c.layers = nil
	return &c
}

// Bounds is the level in world pixels.
func (l *Level) Bounds() common.Rect {
	return common.NewRect(0, 0, l.Width*common.TileSize, l.Height*common.TileSize)
}

// SpawnPosition is the player's top-left for a body of height h standing on
// the spawn tile.
func (l *Level) SpawnPosition(h int) common.Vector {
	return common.Vec(
		float64(l.SpawnX*common.TileSize),
		float64((l.SpawnY+1)*common.TileSize-h),
	)
}

func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Width && y < l.Height
}

func (l *Level) TileAt(layer, x, y int) int {
	if layer < 0 || layer >= len(l.Layers) || !l.InBounds(x, y) {
		return 0
	}
	return l.Layers[layer][y*l.Width+x]
}

// SetTile changes one cell and returns the previous value.
func (l *Level) SetTile(layer, x, y, v int) int {
	if layer < 0 || layer >= len(l.Layers) || !l.InBounds(x, y) {
		return 0
	}
	idx := y*l.Width + x
	prev := l.Layers[layer][idx]
	l.Layers[layer][idx] = v
	return prev
}

// Solid reports whether any physics layer has a tile at (x, y).
func (l *Level) Solid(x, y int) bool {
	for i := range l.Layers {
		if l.LayerMeta[i].HasPhysics && l.TileAt(i, x, y) != 0 {
			return true
		}
	}
	return false
}

func (l *Level) BackgroundColor() color.Color {
	if l.Background == "" {
		return color.Black
	}
	return parseHexColor(l.Background)
}

// Draw renders the tile layers visible in view.
func (l *Level) Draw(screen *ebiten.Image, view common.Rect) {
	if l == nil {
		return
	}
	if len(l.layers) != len(l.Layers) {
		l.buildLayers()
	}
	for _, ly := range l.layers {
		ly.Draw(screen, view)
	}
}

// Invalidate drops cached layer art after layers or their meta change.
func (l *Level) Invalidate() {
	l.layers = nil
}

func (l *Level) buildLayers() {
	l.layers = make([]*TileLayer, len(l.Layers))
	for i := range l.Layers {
		l.layers[i] = NewTileLayer(l, i)
	}
}

// parseHexColor parses a color in the form #rrggbb. Returns opaque blue if parse fails.
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8 = 0x00, 0x00, 0xff
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			r = uint8(ri)
			g = uint8(gi)
			b = uint8(bi)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

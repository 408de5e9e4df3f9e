package obj

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
)

// TileMap owns the static colliders of a level: merged solid tiles plus
// walls at the left and right edges. Registered as a Block entity it also
// draws the level's tiles, after the background and before everything
// else.
type TileMap struct {
	level     *Level
	colliders []*collision.Collider
}

func NewTileMap(level *Level, m *collision.Manager) *TileMap {
	tm := &TileMap{level: level}
	tm.Build(m)
	return tm
}

func (tm *TileMap) Layer() collision.Layer  { return collision.Block }
func (tm *TileMap) Position() common.Vector { return common.Vector{} }
func (tm *TileMap) Rect() common.Rect       { return tm.level.Bounds() }
func (tm *TileMap) Level() *Level           { return tm.level }

func (tm *TileMap) Update(dt float64, view common.Rect) {}

func (tm *TileMap) Draw(screen *ebiten.Image, view common.Rect) {
	tm.level.Draw(screen, view)
}

// Build registers the static colliders with m, replacing any from an
// earlier build.
func (tm *TileMap) Build(m *collision.Manager) {
	tm.Destroy()
	l := tm.level

	rects := collision.MergeTiles(l.Width, l.Height, l.Solid)
	for _, r := range rects {
		px := common.NewRect(0, 0, r.W*common.TileSize, r.H*common.TileSize)
		pos := common.Vec(float64(r.X*common.TileSize), float64(r.Y*common.TileSize))
		tm.add(m, pos, px)
	}

	// Side walls reach well above the level so nothing can jump around them.
	h := l.Height * common.TileSize
	wall := common.NewRect(0, 0, common.TileSize, h*3)
	tm.add(m, common.Vec(-common.TileSize, float64(-h*2)), wall)
	tm.add(m, common.Vec(float64(l.Width*common.TileSize), float64(-h*2)), wall)
}

func (tm *TileMap) add(m *collision.Manager, pos common.Vector, r common.Rect) {
	c := collision.NewCollider(tm, m, collision.None, pos, r, collision.Block)
	m.Register(c)
	tm.colliders = append(tm.colliders, c)
}

func (tm *TileMap) Colliders() []*collision.Collider {
	return tm.colliders
}

func (tm *TileMap) Destroy() {
	for _, c := range tm.colliders {
		unregisterCollider(c)
	}
	tm.colliders = nil
}

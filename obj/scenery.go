package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
)

// Scenery kinds.
const (
	SceneryHill  = "hill"
	SceneryCloud = "cloud"
	SceneryBush  = "bush"
)

var scenerySizes = map[string]common.Rect{
	SceneryHill:  common.NewRect(0, 0, 80, 35),
	SceneryCloud: common.NewRect(0, 0, 48, 24),
	SceneryBush:  common.NewRect(0, 0, 48, 16),
}

// Scenery is background decoration with no collision.
type Scenery struct {
	entity.Body
	kind string
}

// NewScenery places a decoration. A non-positive w or h takes the kind's
// default size.
func NewScenery(pos common.Vector, kind string, w, h int) *Scenery {
	size, ok := scenerySizes[kind]
	if !ok {
		kind = SceneryHill
		size = scenerySizes[kind]
	}
	if w > 0 {
		size.W = w
	}
	if h > 0 {
		size.H = h
	}
	s := &Scenery{Body: entity.NewBody(size), kind: kind}
	s.SetPosition(pos)
	return s
}

func (s *Scenery) Layer() collision.Layer { return collision.Background }
func (s *Scenery) Kind() string           { return s.kind }

func (s *Scenery) Update(dt float64, view common.Rect) {}

func (s *Scenery) Draw(screen *ebiten.Image, view common.Rect) {
	r := s.Rect()
	if !r.Intersects(view) {
		return
	}
	switch s.kind {
	case SceneryCloud:
		for i := range max(r.W/16, 1) {
			c := common.Vec(float64(r.X+12+i*12), float64(r.Y+12-(i%2)*4))
			fillCircle(screen, c, 10, view, colornames.White)
		}
	case SceneryBush:
		for i := range max(r.W/16, 1) {
			c := common.Vec(float64(r.X+12+i*12), float64(r.Bottom()-4))
			fillCircle(screen, c, 10, view, colornames.Limegreen)
		}
	default:
		c := common.Vec(float64(r.X+r.W/2), float64(r.Bottom()))
		fillCircle(screen, c, float64(r.H), view, colornames.Forestgreen)
	}
}

func (s *Scenery) Serialize() entity.Record {
	pos := s.Position()
	r := s.Rect()
	return entity.Record{
		Type:  TypeScenery,
		X:     pos.X,
		Y:     pos.Y,
		Props: map[string]any{"kind": s.kind, "width": r.W, "height": r.H},
	}
}

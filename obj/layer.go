package obj

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
)

// TileLayer draws one layer of a Level.
type TileLayer struct {
	Index int
	Level *Level

	tileImg *ebiten.Image
}

// NewTileLayer picks the layer's tile art: a tileset tile when the meta
// names one, else a square of the layer color.
func NewTileLayer(l *Level, idx int) *TileLayer {
	ly := &TileLayer{Index: idx, Level: l}
	if idx < len(l.LayerMeta) {
		meta := l.LayerMeta[idx]
		if meta.Tile != nil {
			ly.tileImg = assets.Tile(*meta.Tile, common.TileSize)
		}
		if ly.tileImg == nil {
			ly.tileImg = ebiten.NewImage(common.TileSize, common.TileSize)
			ly.tileImg.Fill(parseHexColor(meta.Color))
		}
	}
	return ly
}

// Draw draws the cells of this layer that fall inside view.
func (ly *TileLayer) Draw(screen *ebiten.Image, view common.Rect) {
	if ly == nil || ly.Level == nil || ly.tileImg == nil || screen == nil {
		return
	}
	l := ly.Level
	minX, minY, maxX, maxY := tileSpan(l, view)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if l.TileAt(ly.Index, x, y) == 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*common.TileSize-view.X), float64(y*common.TileSize-view.Y))
			screen.DrawImage(ly.tileImg, op)
		}
	}
}

// tileSpan returns the inclusive tile range covering r, clamped to l.
func tileSpan(l *Level, r common.Rect) (minX, minY, maxX, maxY int) {
	minX = floorDiv(r.X, common.TileSize)
	minY = floorDiv(r.Y, common.TileSize)
	maxX = floorDiv(r.Right()-1, common.TileSize)
	maxY = floorDiv(r.Bottom()-1, common.TileSize)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= l.Width {
		maxX = l.Width - 1
	}
	if maxY >= l.Height {
		maxY = l.Height - 1
	}
	return minX, minY, maxX, maxY
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

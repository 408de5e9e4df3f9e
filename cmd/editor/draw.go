package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/common"
)

var (
	gridColor   = color.RGBA{255, 255, 255, 40}
	cursorColor = color.RGBA{255, 255, 255, 160}
	boundsColor = colornames.Yellow
	spawnColor  = color.RGBA{255, 0, 0, 160}
)

func (e *Editor) Draw(screen *ebiten.Image) {
	if e.play != nil {
		e.drawPlay(screen)
		return
	}

	view := e.view()
	e.world.Draw(screen, view)
	e.drawGrid(screen, view)
	e.drawSpawn(screen, view)
	e.drawCursor(screen, view)

	if e.ui != nil {
		e.ui.Draw(screen)
	}
	e.drawStatus(screen)
}

func (e *Editor) drawGrid(screen *ebiten.Image, view common.Rect) {
	b := e.Level().Bounds()
	ox, oy := float32(-view.X), float32(-view.Y)
	for x := 0; x <= b.W; x += common.TileSize {
		sx := ox + float32(x)
		if sx < 0 || sx > float32(view.W) {
			continue
		}
		vector.StrokeLine(screen, sx, oy, sx, oy+float32(b.H), 1, gridColor, false)
	}
	for y := 0; y <= b.H; y += common.TileSize {
		sy := oy + float32(y)
		if sy < 0 || sy > float32(view.H) {
			continue
		}
		vector.StrokeLine(screen, ox, sy, ox+float32(b.W), sy, 1, gridColor, false)
	}
	vector.StrokeRect(screen, ox, oy, float32(b.W), float32(b.H), 1, boundsColor, false)
}

func (e *Editor) drawSpawn(screen *ebiten.Image, view common.Rect) {
	lvl := e.Level()
	cx := float32(lvl.SpawnX*common.TileSize + common.TileSize/2 - view.X)
	cy := float32(lvl.SpawnY*common.TileSize + common.TileSize/2 - view.Y)
	vector.DrawFilledCircle(screen, cx, cy, common.TileSize/2-2, spawnColor, true)
}

func (e *Editor) drawCursor(screen *ebiten.Image, view common.Rect) {
	pos, ok := e.cursor()
	if !ok {
		return
	}
	tx, ty := TileAt(pos)
	if !e.Level().InBounds(tx, ty) {
		return
	}
	x := float32(tx*common.TileSize - view.X)
	y := float32(ty*common.TileSize - view.Y)
	vector.StrokeRect(screen, x, y, common.TileSize, common.TileSize, 1, cursorColor, false)
	if e.tool == ToolEntity {
		ebitenutil.DebugPrintAt(screen, e.Item().Label, int(x), int(y)-14)
	}
}

func (e *Editor) drawStatus(screen *ebiten.Image) {
	lvl := e.Level()
	mark := ""
	if e.dirty {
		mark = "*"
	}
	line := fmt.Sprintf("%s%s  layer %d/%d %s  tool %s  item %s",
		e.name, mark, e.layer+1, len(lvl.Layers), lvl.LayerMeta[e.layer].Name, e.tool, e.Item().Label)
	if pos, ok := e.cursor(); ok {
		tx, ty := TileAt(pos)
		line += fmt.Sprintf("  (%d,%d)", tx, ty)
	}
	vector.DrawFilledRect(screen, 0, editorHeight-32, editorWidth, 32, color.RGBA{0, 0, 0, 180}, false)
	ebitenutil.DebugPrintAt(screen, line, paletteWidth+4, editorHeight-30)
	if e.statusT > 0 {
		ebitenutil.DebugPrintAt(screen, e.status, paletteWidth+4, editorHeight-16)
	} else {
		ebitenutil.DebugPrintAt(screen, "1-5 tools  Q/E layer  [ ] item  H physics  T play  ^S save  ^Z undo", paletteWidth+4, editorHeight-16)
	}
}

// drawPlay renders the test session at game resolution and scales it to
// fit the editor window.
func (e *Editor) drawPlay(screen *ebiten.Image) {
	sw, sh := e.cfg.Screen.Width, e.cfg.Screen.Height
	if e.playImg == nil || e.playImg.Bounds().Dx() != sw || e.playImg.Bounds().Dy() != sh {
		e.playImg = ebiten.NewImage(sw, sh)
	}
	e.playImg.Clear()
	e.play.Draw(e.playImg)

	scale := min(float64(editorWidth)/float64(sw), float64(editorHeight)/float64(sh))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((editorWidth-float64(sw)*scale)/2, (editorHeight-float64(sh)*scale)/2)
	op.Filter = ebiten.FilterNearest
	screen.Fill(color.Black)
	screen.DrawImage(e.playImg, op)
	ebitenutil.DebugPrintAt(screen, "TEST PLAY  esc/T to return", 4, 4)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return editorWidth, editorHeight
}

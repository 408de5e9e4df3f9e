package main

import (
	"github.com/charmbracelet/log"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

func (e *Editor) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if e.statusT > 0 {
		e.statusT -= dt
	}
	e.pollWatcher()

	if e.play != nil {
		e.keyboard.Update()
		if e.keyboard.PausePressed || inpututil.IsKeyJustPressed(ebiten.KeyT) {
			e.StopPlay()
			return nil
		}
		e.stepPlay(dt)
		return nil
	}

	if e.ui != nil {
		e.ui.Update()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	e.handleKeys()
	e.handleMouse()
	return nil
}

func (e *Editor) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl {
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			e.saveWithStatus()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
			e.Undo()
		}
		return
	}

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if inpututil.IsKeyJustPressed(key) {
			e.SetTool(Tools[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		e.CycleLayer(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		e.CycleLayer(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		e.SetItem((e.item - 1 + len(obj.Palette)) % len(obj.Palette))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		e.SetItem((e.item + 1) % len(obj.Palette))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		e.TogglePhysics()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		e.playWithStatus()
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		e.Pan(-panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		e.Pan(panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		e.Pan(0, -panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		e.Pan(0, panStep)
	}
}

// Pan scrolls the canvas, keeping some of the level in view.
func (e *Editor) Pan(dx, dy float64) {
	b := e.Level().Bounds()
	e.camX = common.Clamp(e.camX+dx, -paletteWidth, float64(b.W)-common.TileSize*4)
	e.camY = common.Clamp(e.camY+dy, -toolbarHeight, float64(b.H)-common.TileSize*4)
}

func (e *Editor) view() common.Rect {
	return common.NewRect(int(e.camX), int(e.camY), editorWidth, editorHeight)
}

// cursor is the world position under the mouse, or false when the mouse
// is over a panel.
func (e *Editor) cursor() (common.Vector, bool) {
	mx, my := ebiten.CursorPosition()
	if ebuiinput.UIHovered || mx < paletteWidth || my < toolbarHeight || mx >= editorWidth || my >= editorHeight {
		return common.Vector{}, false
	}
	return common.Vec(float64(mx)+e.camX, float64(my)+e.camY), true
}

func (e *Editor) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		e.EndStroke()
	}

	mx, my := ebiten.CursorPosition()
	lastX, lastY := e.lastMX, e.lastMY
	e.lastMX, e.lastMY = mx, my
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		e.Pan(float64(lastX-mx), float64(lastY-my))
		return
	}

	pos, ok := e.cursor()
	if !ok {
		return
	}
	tx, ty := TileAt(pos)
	leftDown := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	rightDown := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	switch e.tool {
	case ToolBrush:
		if leftDown {
			e.BeginStroke(1)
		} else if rightDown {
			e.BeginStroke(0)
		}
		if (left || right) && e.stroke != nil {
			e.Paint(tx, ty)
		}
	case ToolErase:
		if leftDown {
			if e.EntityAt(pos) != nil {
				e.Erase(pos)
			} else {
				e.BeginStroke(0)
			}
		}
		if left && e.stroke != nil {
			e.Paint(tx, ty)
		}
	case ToolFill:
		if leftDown {
			e.Fill(tx, ty, 1)
		} else if rightDown {
			e.Fill(tx, ty, 0)
		}
	case ToolEntity:
		if leftDown {
			if _, err := e.Place(pos); err != nil {
				e.setStatus("%v", err)
			}
		} else if rightDown {
			e.Erase(pos)
		}
	case ToolSpawn:
		if leftDown {
			e.SetSpawn(tx, ty)
		}
	}
}

// pollWatcher reloads the level when its file is saved outside the editor
// and picks up new prefab specs.
func (e *Editor) pollWatcher() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-e.watcher.Events:
			if !ok {
				e.watcher = nil
				return
			}
			switch {
			case prefabs.IsSpecFile(path):
				catalog, err := prefabs.LoadCatalog()
				if err != nil {
					log.Error("reload specs", "path", path, "err", err)
					continue
				}
				e.catalog = catalog
				e.world.SetCatalog(catalog)
				e.setStatus("specs reloaded")
			case prefabs.IsLevelFile(path) && levels.Trim(path) == levels.Trim(e.name):
				if err := e.Reload(); err != nil {
					log.Error("reload level", "path", path, "err", err)
				}
			}
		case err, ok := <-e.watcher.Errors:
			if ok {
				log.Warn("watcher", "err", err)
			}
		default:
			return
		}
	}
}

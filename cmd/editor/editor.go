package main

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/system"
)

// Editor edits one level through an edit-mode world. Every operation here
// works without a window; input and drawing live in input.go and draw.go.
type Editor struct {
	cfg     config.Config
	catalog *prefabs.Catalog
	world   *system.World
	name    string
	dirty   bool

	tool  Tool
	layer int
	item  int

	history *History
	stroke  *TileDelta
	strokeV int

	camX, camY     float64
	lastMX, lastMY int

	keyboard *obj.Keyboard
	play     *system.Session
	playImg  *ebiten.Image

	ui      *ebitenui.UI
	toolbar *ToolBar
	palette *ToolBar
	status  string
	statusT float64

	watcher *prefabs.Watcher
}

// NewEditor opens lvl for editing.
func NewEditor(cfg config.Config, catalog *prefabs.Catalog, lvl *obj.Level) (*Editor, error) {
	e := &Editor{
		cfg:      cfg,
		catalog:  catalog,
		history:  NewHistory(100),
		keyboard: obj.NewKeyboard(),
	}
	e.world = system.NewWorld(cfg, catalog, system.ModeEdit, nil)
	if err := e.load(lvl); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Editor) load(lvl *obj.Level) error {
	if err := e.world.Load(lvl); err != nil {
		return err
	}
	e.name = lvl.Name
	e.dirty = false
	e.history.Reset()
	e.stroke = nil
	if e.layer >= len(lvl.Layers) {
		e.layer = 0
	}
	return nil
}

func (e *Editor) Level() *obj.Level    { return e.world.Level() }
func (e *Editor) World() *system.World { return e.world }
func (e *Editor) Name() string         { return e.name }
func (e *Editor) Dirty() bool          { return e.dirty }
func (e *Editor) Tool() Tool           { return e.tool }
func (e *Editor) CurrentLayer() int    { return e.layer }
func (e *Editor) Playing() bool        { return e.play != nil }

func (e *Editor) SetTool(t Tool) {
	e.tool = t
	if e.toolbar != nil {
		e.toolbar.SetActive(int(t))
	}
}

// SetItem picks the palette entry the entity tool places.
func (e *Editor) SetItem(i int) {
	if i < 0 || i >= len(obj.Palette) {
		return
	}
	e.item = i
	if e.palette != nil {
		e.palette.SetActive(i)
	}
}

func (e *Editor) Item() obj.PaletteItem {
	return obj.Palette[e.item]
}

// CycleLayer moves the tile layer selection by d, wrapping around.
func (e *Editor) CycleLayer(d int) {
	n := len(e.Level().Layers)
	if n == 0 {
		return
	}
	e.layer = ((e.layer+d)%n + n) % n
	e.setStatus("layer %d: %s", e.layer, e.Level().LayerMeta[e.layer].Name)
}

// TileAt converts a world position to tile coordinates.
func TileAt(p common.Vector) (int, int) {
	return int(math.Floor(p.X / common.TileSize)), int(math.Floor(p.Y / common.TileSize))
}

// SnapToTile is the top-left of the tile under p.
func SnapToTile(p common.Vector) common.Vector {
	tx, ty := TileAt(p)
	return common.Vec(float64(tx*common.TileSize), float64(ty*common.TileSize))
}

// BeginStroke starts a brush or erase drag that paints v on the current
// layer. The whole drag undoes as one step.
func (e *Editor) BeginStroke(v int) {
	e.EndStroke()
	e.stroke = &TileDelta{Layer: e.layer, Changes: make(map[int]int)}
	e.strokeV = v
}

// Paint sets the tile at (tx, ty) to the stroke value, or to 1 when no
// stroke is active.
func (e *Editor) Paint(tx, ty int) bool {
	lvl := e.Level()
	if !lvl.InBounds(tx, ty) {
		return false
	}
	own := e.stroke == nil
	if own {
		e.BeginStroke(1)
	}
	defer func() {
		if own {
			e.EndStroke()
		}
	}()
	if lvl.TileAt(e.stroke.Layer, tx, ty) == e.strokeV {
		return false
	}
	idx := ty*lvl.Width + tx
	prev := lvl.SetTile(e.stroke.Layer, tx, ty, e.strokeV)
	if _, seen := e.stroke.Changes[idx]; !seen {
		e.stroke.Changes[idx] = prev
	}
	e.world.Rebuild()
	e.dirty = true
	return true
}

func (e *Editor) EndStroke() {
	if e.stroke == nil {
		return
	}
	e.history.Push(UndoSnapshot{Tiles: e.stroke})
	e.stroke = nil
}

// Fill flood-fills the 4-connected region around (tx, ty) that shares its
// value with v. Returns the number of cells changed.
func (e *Editor) Fill(tx, ty, v int) int {
	lvl := e.Level()
	if !lvl.InBounds(tx, ty) {
		return 0
	}
	target := lvl.TileAt(e.layer, tx, ty)
	if target == v {
		return 0
	}

	delta := &TileDelta{Layer: e.layer, Changes: make(map[int]int)}
	stack := [][2]int{{tx, ty}}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := c[0], c[1]
		if !lvl.InBounds(x, y) || lvl.TileAt(e.layer, x, y) != target {
			continue
		}
		delta.Changes[y*lvl.Width+x] = lvl.SetTile(e.layer, x, y, v)
		stack = append(stack, [2]int{x + 1, y}, [2]int{x - 1, y}, [2]int{x, y + 1}, [2]int{x, y - 1})
	}

	e.history.Push(UndoSnapshot{Tiles: delta})
	e.world.Rebuild()
	e.dirty = true
	return len(delta.Changes)
}

// Place builds the selected palette item at the tile under pos.
func (e *Editor) Place(pos common.Vector) (entity.Entity, error) {
	item := e.Item()
	rec := item.At(SnapToTile(pos))
	ent, err := e.world.Registry().Build(rec)
	if err != nil {
		return nil, fmt.Errorf("editor: place %s: %w", item.Label, err)
	}
	if !e.world.Entities().Recognizes(ent.Layer()) {
		if d, ok := ent.(entity.Destroyable); ok {
			d.Destroy()
		}
		return nil, fmt.Errorf("editor: place %s: layer %s not editable", item.Label, ent.Layer())
	}

	e.checkpoint()
	e.world.Entities().Register(ent)
	e.dirty = true
	return ent, nil
}

// EntityAt is the topmost saved entity under pos.
func (e *Editor) EntityAt(pos common.Vector) entity.Entity {
	found := e.world.Entities().EntitiesInRegion(common.RectAt(pos, 1, 1))
	for i := len(found) - 1; i >= 0; i-- {
		if _, ok := found[i].(entity.Serializable); ok {
			return found[i]
		}
	}
	return nil
}

// Erase removes the topmost entity under pos, or clears the tile there on
// the current layer when there is none.
func (e *Editor) Erase(pos common.Vector) bool {
	if ent := e.EntityAt(pos); ent != nil {
		e.checkpoint()
		e.world.Entities().Unregister(ent)
		if d, ok := ent.(entity.Destroyable); ok {
			d.Destroy()
		}
		e.dirty = true
		return true
	}
	tx, ty := TileAt(pos)
	if e.Level().TileAt(e.layer, tx, ty) == 0 {
		return false
	}
	e.BeginStroke(0)
	changed := e.Paint(tx, ty)
	e.EndStroke()
	return changed
}

// SetSpawn moves the player spawn to tile (tx, ty).
func (e *Editor) SetSpawn(tx, ty int) bool {
	lvl := e.Level()
	if !lvl.InBounds(tx, ty) || (lvl.SpawnX == tx && lvl.SpawnY == ty) {
		return false
	}
	e.checkpoint()
	lvl.SpawnX, lvl.SpawnY = tx, ty
	e.dirty = true
	return true
}

// TogglePhysics flips whether the current layer's tiles are solid.
func (e *Editor) TogglePhysics() bool {
	e.checkpoint()
	meta := &e.Level().LayerMeta[e.layer]
	meta.HasPhysics = !meta.HasPhysics
	e.world.Rebuild()
	e.dirty = true
	e.setStatus("layer %s physics %v", meta.Name, meta.HasPhysics)
	return meta.HasPhysics
}

// checkpoint saves the whole level before an edit tile deltas can't
// express.
func (e *Editor) checkpoint() {
	e.EndStroke()
	e.history.Push(UndoSnapshot{Level: e.world.Serialize()})
}

// Undo reverts the last edit.
func (e *Editor) Undo() bool {
	e.EndStroke()
	snap, ok := e.history.Pop()
	if !ok {
		return false
	}
	if snap.Level != nil {
		if err := e.world.Load(snap.Level); err != nil {
			log.Error("undo", "err", err)
			return false
		}
	}
	if d := snap.Tiles; d != nil {
		lvl := e.Level()
		for idx, v := range d.Changes {
			lvl.SetTile(d.Layer, idx%lvl.Width, idx/lvl.Width, v)
		}
		e.world.Rebuild()
	}
	e.dirty = true
	return true
}

func (e *Editor) setStatus(format string, args ...any) {
	e.status = fmt.Sprintf(format, args...)
	e.statusT = statusTime
	log.Debug(e.status)
}

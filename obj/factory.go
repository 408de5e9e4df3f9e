package obj

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/prefabs"
)

// Record type tags.
const (
	TypeGoomba        = "goomba"
	TypeMushroom      = "mushroom"
	TypeQuestionBlock = "question_block"
	TypeFireBar       = "firebar"
	TypeTrigger       = "trigger"
	TypeScenery       = "scenery"
)

// RegisterFactories teaches reg how to build every level object against
// ctx.
func RegisterFactories(reg *entity.Registry, ctx Context) {
	reg.Register(TypeGoomba, func(rec entity.Record) (entity.Entity, error) {
		return NewGoomba(ctx, recordPos(rec)), nil
	})
	reg.Register(TypeMushroom, func(rec entity.Record) (entity.Entity, error) {
		return NewMushroom(ctx, recordPos(rec)), nil
	})
	reg.Register(TypeQuestionBlock, func(rec entity.Record) (entity.Entity, error) {
		contents := rec.Text("contents", ContentsCoin)
		if contents != ContentsCoin && contents != ContentsMushroom {
			return nil, fmt.Errorf("unknown contents %q", contents)
		}
		return NewQuestionBlock(ctx, recordPos(rec), contents), nil
	})
	reg.Register(TypeFireBar, func(rec entity.Record) (entity.Entity, error) {
		return NewFireBar(ctx, recordPos(rec),
			rec.Int("links", 0), rec.Float("angle", 0), rec.Float("dir", 1)), nil
	})
	reg.Register(TypeTrigger, func(rec entity.Record) (entity.Entity, error) {
		script := rec.Text("script", "")
		if script == "" {
			return nil, fmt.Errorf("trigger without script")
		}
		if _, err := prefabs.LoadScript(script); err != nil {
			return nil, fmt.Errorf("trigger script %q: %w", script, err)
		}
		return NewTrigger(ctx, recordPos(rec),
			rec.Int("width", common.TileSize), rec.Int("height", common.TileSize),
			script, rec.Bool("repeat", false)), nil
	})
	reg.Register(TypeScenery, func(rec entity.Record) (entity.Entity, error) {
		return NewScenery(recordPos(rec), rec.Text("kind", SceneryHill),
			rec.Int("width", 0), rec.Int("height", 0)), nil
	})
}

func recordPos(rec entity.Record) common.Vector {
	return common.Vec(rec.X, rec.Y)
}

// PaletteItem is one placeable object in the editor.
type PaletteItem struct {
	Label    string
	Template entity.Record
}

// At returns the template placed at pos.
func (p PaletteItem) At(pos common.Vector) entity.Record {
	rec := p.Template
	rec.X, rec.Y = pos.X, pos.Y
	if p.Template.Props != nil {
		rec.Props = make(map[string]any, len(p.Template.Props))
		for k, v := range p.Template.Props {
			rec.Props[k] = v
		}
	}
	return rec
}

// Palette lists the objects the editor can place, in menu order.
var Palette = []PaletteItem{
	{Label: "Goomba", Template: entity.Record{Type: TypeGoomba}},
	{Label: "? Coin", Template: entity.Record{Type: TypeQuestionBlock, Props: map[string]any{"contents": ContentsCoin}}},
	{Label: "? Mushroom", Template: entity.Record{Type: TypeQuestionBlock, Props: map[string]any{"contents": ContentsMushroom}}},
	{Label: "Mushroom", Template: entity.Record{Type: TypeMushroom}},
	{Label: "Fire bar", Template: entity.Record{Type: TypeFireBar, Props: map[string]any{"dir": 1.0}}},
	{Label: "Goal", Template: entity.Record{Type: TypeTrigger, Props: map[string]any{"script": "goal", "width": 16, "height": 240}}},
	{Label: "1UP", Template: entity.Record{Type: TypeTrigger, Props: map[string]any{"script": "one_up"}}},
	{Label: "Checkpoint", Template: entity.Record{Type: TypeTrigger, Props: map[string]any{"script": "checkpoint", "width": 16, "height": 240}}},
	{Label: "Hill", Template: entity.Record{Type: TypeScenery, Props: map[string]any{"kind": SceneryHill}}},
	{Label: "Cloud", Template: entity.Record{Type: TypeScenery, Props: map[string]any{"kind": SceneryCloud}}},
	{Label: "Bush", Template: entity.Record{Type: TypeScenery, Props: map[string]any{"kind": SceneryBush}}},
}

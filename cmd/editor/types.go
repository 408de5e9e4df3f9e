package main

// Tool is what a left click on the canvas does.
type Tool int

const (
	ToolBrush Tool = iota
	ToolErase
	ToolFill
	ToolEntity
	ToolSpawn
)

// Tools lists every tool in toolbar order.
var Tools = []Tool{ToolBrush, ToolErase, ToolFill, ToolEntity, ToolSpawn}

func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "Brush"
	case ToolErase:
		return "Erase"
	case ToolFill:
		return "Fill"
	case ToolEntity:
		return "Entity"
	case ToolSpawn:
		return "Spawn"
	default:
		return "Unknown"
	}
}

const (
	editorWidth   = 640
	editorHeight  = 400
	toolbarHeight = 28
	paletteWidth  = 96
	panStep       = 4
	statusTime    = 3.0
)

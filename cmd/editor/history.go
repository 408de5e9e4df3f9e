package main

import (
	"github.com/milk9111/platformer/obj"
)

// TileDelta holds the previous values of the cells one stroke changed on a
// single layer.
type TileDelta struct {
	Layer   int
	Changes map[int]int // cell index -> previous value
}

// UndoSnapshot is either a tile delta or a full copy of the level taken
// before an entity, spawn or layer edit.
type UndoSnapshot struct {
	Tiles *TileDelta
	Level *obj.Level
}

// History is a bounded undo stack.
type History struct {
	stack []UndoSnapshot
	max   int
}

func NewHistory(max int) *History {
	if max <= 0 {
		max = 100
	}
	return &History{max: max}
}

func (h *History) Push(s UndoSnapshot) {
	if s.Tiles != nil && len(s.Tiles.Changes) == 0 {
		return
	}
	h.stack = append(h.stack, s)
	if len(h.stack) > h.max {
		h.stack = h.stack[1:]
	}
}

func (h *History) Pop() (UndoSnapshot, bool) {
	n := len(h.stack)
	if n == 0 {
		return UndoSnapshot{}, false
	}
	s := h.stack[n-1]
	h.stack = h.stack[:n-1]
	return s, true
}

func (h *History) Len() int {
	return len(h.stack)
}

func (h *History) Reset() {
	h.stack = nil
}

package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
)

// HUD draws the run stats in screen space.
type HUD struct {
	ctx Context
	// Time is the seconds spent in the level.
	Time float64
}

func NewHUD(ctx Context) *HUD {
	return &HUD{ctx: ctx}
}

func (h *HUD) Layer() collision.Layer  { return collision.Interface }
func (h *HUD) Position() common.Vector { return common.Vector{} }

func (h *HUD) Rect() common.Rect {
	cfg := h.ctx.Config().Screen
	return common.NewRect(0, 0, cfg.Width, 32)
}

func (h *HUD) Update(dt float64, view common.Rect) {
	stats := h.ctx.Stats()
	stats.Tick(dt)
	if !stats.Cleared && !stats.GameOver {
		h.Time += dt
	}
}

// Lines returns the HUD text, one entry per row.
func (h *HUD) Lines() []string {
	s := h.ctx.Stats()
	lines := []string{
		fmt.Sprintf("SCORE %06d  COINS %02d  WORLD %s  LIVES %d  TIME %03d",
			s.Score, s.Coins, s.Level, s.Lives, int(h.Time)),
	}
	switch {
	case s.GameOver:
		lines = append(lines, "GAME OVER")
	case s.Message() != "":
		lines = append(lines, s.Message())
	}
	return lines
}

func (h *HUD) Draw(screen *ebiten.Image, view common.Rect) {
	if screen == nil {
		return
	}
	for i, line := range h.Lines() {
		ebitenutil.DebugPrintAt(screen, line, 4, 4+i*14)
	}
}

package obj

import (
	"math"

	"github.com/milk9111/platformer/common"
)

// Camera tracks a world-space center point and produces the view rect that
// is passed through update and draw.
type Camera struct {
	PosX float64
	PosY float64

	// NoBacktrack stops the camera from scrolling left, like the classic
	// side-scrollers.
	NoBacktrack bool

	screenW int
	screenH int

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size.
func NewCamera(screenW, screenH int) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, smooth: 0.15}
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

func (c *Camera) SetSmooth(f float64) {
	if f < 0 {
		f = 0
	}
	c.smooth = f
}

// View returns the visible world rect.
func (c *Camera) View() common.Rect {
	x := math.Floor(c.PosX - float64(c.screenW)/2.0)
	y := math.Floor(c.PosY - float64(c.screenH)/2.0)
	return common.NewRect(int(x), int(y), c.screenW, c.screenH)
}

// Update moves the camera toward the target world coordinate. Call from the
// fixed-rate Update loop to get consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	prevX := c.PosX
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX += (targetX - c.PosX) * c.smooth
		c.PosY += (targetY - c.PosY) * c.smooth
	}
	if c.NoBacktrack && c.PosX < prevX {
		c.PosX = prevX
	}
	c.clamp()
}

// SnapTo immediately sets the camera center to the given world coordinates
// and applies the same clamping as Update. Use this after a level load or a
// respawn.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.clamp()
}

func (c *Camera) clamp() {
	c.PosX = math.Round(c.PosX)
	c.PosY = math.Round(c.PosY)

	halfW := float64(c.screenW) / 2.0
	halfH := float64(c.screenH) / 2.0
	if c.worldW > 0 {
		c.PosX = clampAxis(c.PosX, halfW, c.worldW-halfW, c.worldW/2.0)
	}
	if c.worldH > 0 {
		c.PosY = clampAxis(c.PosY, halfH, c.worldH-halfH, c.worldH/2.0)
	}
}

// clampAxis centers on the world when it is smaller than the view.
func clampAxis(v, lo, hi, center float64) float64 {
	if hi < lo {
		return center
	}
	return common.Clamp(v, lo, hi)
}

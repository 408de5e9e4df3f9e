package common

import "math"

const (
	// TileSize is the edge length of one level tile in world pixels.
	TileSize = 16

	BaseWidth  = 320
	BaseHeight = 240
)

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves v toward target by at most step.
func Approach(v, target, step float64) float64 {
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}

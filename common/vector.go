package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vector is a 2D float position or displacement in world pixels.
type Vector = cp.Vector

func Vec(x, y float64) Vector {
	return cp.Vector{X: x, Y: y}
}

// Floor returns the integer pixel the vector falls in.
func Floor(v Vector) (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// IsFinite reports whether both components are neither NaN nor infinite.
func IsFinite(v Vector) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

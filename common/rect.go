package common

// Rect is an axis-aligned integer rectangle. Positions are tracked as
// Vectors; a Rect is the floored integer view of one.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt returns a w×h rect whose origin is pos floored.
func RectAt(pos Vector, w, h int) Rect {
	x, y := Floor(pos)
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// At returns r moved so its origin is pos floored.
func (r Rect) At(pos Vector) Rect {
	r.X, r.Y = Floor(pos)
	return r
}

// Intersects reports whether r and other overlap. Rects that only share an
// edge do not intersect, and empty rects never intersect anything.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// ContainsPoint reports whether p lies in the half-open area of r.
func (r Rect) ContainsPoint(p Vector) bool {
	return p.X >= float64(r.X) && p.X < float64(r.Right()) &&
		p.Y >= float64(r.Y) && p.Y < float64(r.Bottom())
}

// Inflate grows r by dx on the left and right and dy on the top and bottom.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}

func (r Rect) Origin() Vector {
	return Vec(float64(r.X), float64(r.Y))
}

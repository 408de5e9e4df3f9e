package collision

import "github.com/milk9111/platformer/common"

// MergeTiles covers every solid cell of a width×height grid with as few
// rectangles as a greedy row-major sweep finds. Each rectangle grows right
// as far as it can, then down while the whole row below is solid. Results
// are in tile coordinates.
func MergeTiles(width, height int, solid func(x, y int) bool) []common.Rect {
	if width <= 0 || height <= 0 || solid == nil {
		return nil
	}

	processed := make([]bool, width*height)
	open := func(x, y int) bool {
		return !processed[y*width+x] && solid(x, y)
	}

	var rects []common.Rect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !open(x, y) {
				processed[y*width+x] = true
				continue
			}

			w := 1
			for x+w < width && open(x+w, y) {
				w++
			}

			h := 1
		heightLoop:
			for y+h < height {
				for xi := x; xi < x+w; xi++ {
					if !open(xi, y+h) {
						break heightLoop
					}
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*width+xx] = true
				}
			}
			rects = append(rects, common.NewRect(x, y, w, h))
		}
	}
	return rects
}

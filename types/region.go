package types

// Region is a display rectangle in pixels, origin top-left.
type Region struct {
	X, Y int16
	W, H int16
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether (x, y) lies inside the region.
func (r Region) Contains(x, y int16) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Clip returns r limited to a width x height surface.
func (r Region) Clip(width, height int16) Region {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.W, width), min(r.Y+r.H, height)
	if x1 <= x0 || y1 <= y0 {
		return Region{X: x0, Y: y0}
	}
	return Region{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

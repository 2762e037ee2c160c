package draw

import "math"

// RotatedRect fills dst with the four corners of a w×h rectangle centered at
// (cx, cy) and rotated by angle radians. dst must hold at least 4 points.
func RotatedRect(dst []Point, cx, cy, w, h, angle float64) []Point {
	hw, hh := w/2, h/2
	return rotate(dst[:4], cx, cy, angle,
		Point{-hw, -hh}, Point{hw, -hh}, Point{hw, hh}, Point{-hw, hh})
}

// Diamond fills dst with a rhombus of the given size centered at (cx, cy).
func Diamond(dst []Point, cx, cy, size, angle float64) []Point {
	r := size / 2
	return rotate(dst[:4], cx, cy, angle,
		Point{0, -r}, Point{r, 0}, Point{0, r}, Point{-r, 0})
}

// Ship fills dst with a triangle pointing along angle, sized to fit a
// size×size box centered at (cx, cy).
func Ship(dst []Point, cx, cy, size, angle float64) []Point {
	r := size / 2
	return rotate(dst[:3], cx, cy, angle,
		Point{r, 0}, Point{-r, -r * 0.7}, Point{-r, r * 0.7})
}

func rotate(dst []Point, cx, cy, angle float64, pts ...Point) []Point {
	sin, cos := math.Sincos(angle)
	for i, p := range pts {
		dst[i] = Point{
			X: cx + p.X*cos - p.Y*sin,
			Y: cy + p.X*sin + p.Y*cos,
		}
	}
	return dst
}

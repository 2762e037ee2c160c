// Package physics provides collision detection and the small amount of
// vector math the simulation needs.
package physics

import "math"

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether two rectangles intersect. Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Speed returns the magnitude of a velocity vector.
func Speed(vx, vy float64) float64 {
	return math.Sqrt(vx*vx + vy*vy)
}

// ClampSpeed scales (vx, vy) down so its magnitude does not exceed max.
func ClampSpeed(vx, vy, max float64) (float64, float64) {
	speed := Speed(vx, vy)
	if speed > max && speed > 0 {
		vx = vx / speed * max
		vy = vy / speed * max
	}
	return vx, vy
}

// Direction returns the unit vector from (x1, y1) towards (x2, y2) and the
// distance between them. ok is false when the points coincide.
func Direction(x1, y1, x2, y2 float64) (ux, uy, dist float64, ok bool) {
	dx := x2 - x1
	dy := y2 - y1
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist <= 0 {
		return 0, 0, 0, false
	}
	return dx / dist, dy / dist, dist, true
}

// Wrap moves a coordinate to the opposite edge once the entity of the given
// extent has fully left [0, limit]. The result always stays in
// [-extent, limit+extent], and a wrapped value never wraps back on the next call.
func Wrap(pos, extent, limit float64) float64 {
	if pos < -extent {
		return limit
	}
	if pos > limit+extent {
		return -extent
	}
	return pos
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

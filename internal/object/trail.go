package object

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Trail keeps the most recent player positions, oldest first.
type Trail struct {
	points []Point
	max    int
}

// NewTrail creates a trail holding at most max points.
func NewTrail(max int) *Trail {
	if max < 1 {
		max = 1
	}
	return &Trail{points: make([]Point, 0, max+1), max: max}
}

// Push appends a position and evicts the oldest once the trail is full.
func (t *Trail) Push(x, y float64) {
	t.points = append(t.points, Point{X: x, Y: y})
	if len(t.points) > t.max {
		copy(t.points, t.points[1:])
		t.points = t.points[:t.max]
	}
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns a copy of the trail, oldest first.
func (t *Trail) Points() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}

// Reset drops every point.
func (t *Trail) Reset() {
	t.points = t.points[:0]
}

package object

import "math/rand"

// Star is background decoration. Stars are recycled, never removed.
type Star struct {
	X, Y    float64
	Size    float64
	Speed   float64
	Opacity float64
}

// NewStar places a star at a random position in the viewport.
func NewStar(rng *rand.Rand, screen Screen) *Star {
	return &Star{
		X:       rng.Float64() * screen.Width,
		Y:       rng.Float64() * screen.Height,
		Size:    rng.Float64()*2 + 0.5,
		Speed:   rng.Float64()*0.5 + 0.1,
		Opacity: rng.Float64()*0.8 + 0.2,
	}
}

// Update scrolls the star down; past the bottom edge it reappears just above
// the top at a new random column.
func (s *Star) Update(ctx UpdateContext) bool {
	s.Y += s.Speed
	if s.Y > ctx.Screen.Height {
		s.Y = -s.Size
		if ctx.Rand != nil {
			s.X = ctx.Rand.Float64() * ctx.Screen.Width
		}
	}
	return false
}

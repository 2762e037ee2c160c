package object

import (
	"math/rand"

	"github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/physics"
)

// Asteroid is a drifting, spinning rock. Its velocity never changes after spawn.
type Asteroid struct {
	X, Y          float64 // Position (rectangle origin)
	W, H          float64
	VX, VY        float64
	Rotation      float64 // Current rotation angle
	RotationSpeed float64 // Radians per tick
	destroyed     bool
}

// NewAsteroid creates an asteroid at a uniformly random position in the
// viewport, with size, drift and spin drawn from the rules' bands.
func NewAsteroid(rng *rand.Rand, screen Screen, r *config.Rules) *Asteroid {
	return &Asteroid{
		X:             rng.Float64() * screen.Width,
		Y:             rng.Float64() * screen.Height,
		W:             between(rng, r.AsteroidSize),
		H:             between(rng, r.AsteroidSize),
		VX:            centered(rng, r.AsteroidSpeed),
		VY:            centered(rng, r.AsteroidSpeed),
		RotationSpeed: centered(rng, r.AsteroidSpin),
	}
}

// Update moves the asteroid and handles rotation.
func (a *Asteroid) Update(ctx UpdateContext) bool {
	a.X += a.VX
	a.Y += a.VY
	a.Rotation += a.RotationSpeed

	ctx.Screen.WrapRect(&a.X, &a.Y, a.W, a.H)

	return false
}

// MarkDestroyed marks the asteroid for removal (implements Destructible).
func (a *Asteroid) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction (implements Destructible).
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}

// Bounds returns the collision rectangle.
func (a *Asteroid) Bounds() physics.Rect {
	return physics.Rect{X: a.X, Y: a.Y, W: a.W, H: a.H}
}

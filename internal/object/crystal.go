package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/physics"
)

// Crystal is a stationary pickup. Rotation and pulse only affect rendering.
type Crystal struct {
	X, Y          float64
	W, H          float64
	Rotation      float64
	RotationSpeed float64
	Pulse         float64
	pulseStep     float64
	destroyed     bool
}

// NewCrystal places a crystal at a uniformly random position in the viewport.
func NewCrystal(rng *rand.Rand, screen Screen, r *config.Rules) *Crystal {
	return &Crystal{
		X:             rng.Float64() * screen.Width,
		Y:             rng.Float64() * screen.Height,
		W:             r.CrystalSize,
		H:             r.CrystalSize,
		RotationSpeed: r.CrystalSpin,
		pulseStep:     r.CrystalPulse,
	}
}

// Update advances rotation and pulse phase.
func (c *Crystal) Update(_ UpdateContext) bool {
	c.Rotation += c.RotationSpeed
	c.Pulse += c.pulseStep
	return false
}

// Alpha is the rendering opacity derived from the pulse phase.
func (c *Crystal) Alpha() float64 {
	return 0.8 + math.Sin(c.Pulse)*0.2
}

// MarkDestroyed marks the crystal as collected.
func (c *Crystal) MarkDestroyed() {
	c.destroyed = true
}

// IsDestroyed returns true once the crystal has been collected.
func (c *Crystal) IsDestroyed() bool {
	return c.destroyed
}

// Bounds returns the collision rectangle.
func (c *Crystal) Bounds() physics.Rect {
	return physics.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

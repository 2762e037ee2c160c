package object

import (
	"math"

	"github.com/tomz197/starfield/internal/physics"
)

// Player is the ship steered by the held direction keys and aimed at the pointer.
type Player struct {
	X, Y   float64 // Position (rectangle origin)
	VX, VY float64 // Velocity (momentum)
	W, H   float64 // Fixed size
	Angle  float64 // Facing, radians, towards the pointer

	Trail *Trail
}

// NewPlayer creates a ship at rest at the given position.
func NewPlayer(x, y, size float64, trailLength int) *Player {
	return &Player{
		X:     x,
		Y:     y,
		W:     size,
		H:     size,
		Trail: NewTrail(trailLength),
	}
}

// Update applies thrust, friction, the speed cap, movement and wrapping, then
// turns the ship towards the pointer and records the trail.
func (p *Player) Update(ctx UpdateContext) bool {
	r := ctx.Rules

	if ctx.Input.Up {
		p.VY -= r.PlayerAccel
	}
	if ctx.Input.Down {
		p.VY += r.PlayerAccel
	}
	if ctx.Input.Left {
		p.VX -= r.PlayerAccel
	}
	if ctx.Input.Right {
		p.VX += r.PlayerAccel
	}

	p.VX *= r.PlayerFriction
	p.VY *= r.PlayerFriction

	p.VX, p.VY = physics.ClampSpeed(p.VX, p.VY, r.PlayerMaxSpeed)

	p.X += p.VX
	p.Y += p.VY

	ctx.Screen.WrapRect(&p.X, &p.Y, p.W, p.H)

	p.Angle = math.Atan2(ctx.Input.PointerY-p.Y, ctx.Input.PointerX-p.X)

	p.Trail.Push(p.X, p.Y)

	return false
}

// Speed returns the current velocity magnitude.
func (p *Player) Speed() float64 {
	return physics.Speed(p.VX, p.VY)
}

// Stop zeroes the velocity.
func (p *Player) Stop() {
	p.VX = 0
	p.VY = 0
}

// Bounds returns the collision rectangle.
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// GetPosition returns the ship position.
func (p *Player) GetPosition() (float64, float64) {
	return p.X, p.Y
}

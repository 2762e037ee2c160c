package object

import (
	"github.com/tomz197/starfield/internal/physics"
)

// Bullet is a projectile fired by the player or, when Hostile, by an enemy.
type Bullet struct {
	X, Y      float64 // Position
	VX, VY    float64 // Velocity
	W, H      float64
	Life      int  // Ticks remaining before removal
	Hostile   bool // Fired by an enemy
	destroyed bool // Marked for destruction
}

// NewBullet creates a bullet at (x, y) travelling towards (tx, ty).
// ok is false when the target coincides with the origin and no direction exists.
func NewBullet(x, y, tx, ty, speed float64, life int, size float64, hostile bool) (b *Bullet, ok bool) {
	ux, uy, _, ok := physics.Direction(x, y, tx, ty)
	if !ok {
		return nil, false
	}
	return &Bullet{
		X:       x,
		Y:       y,
		VX:      ux * speed,
		VY:      uy * speed,
		W:       size,
		H:       size,
		Life:    life,
		Hostile: hostile,
	}, true
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// Update moves the bullet and counts down its life. Bullets do not wrap:
// leaving the viewport removes them.
func (b *Bullet) Update(ctx UpdateContext) bool {
	b.X += b.VX
	b.Y += b.VY
	b.Life--

	return b.Life <= 0 || !ctx.Screen.Contains(b.X, b.Y)
}

// Bounds returns the collision rectangle.
func (b *Bullet) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

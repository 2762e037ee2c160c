package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/physics"
)

// Enemy hunts the player and fires at it when in range.
type Enemy struct {
	X, Y       float64
	VX, VY     float64
	W, H       float64
	Angle      float64
	Health     int
	ShootTimer int // Ticks since the last shot
	ShootDelay int // Ticks to wait before the next shot
	destroyed  bool
}

// NewEnemy spawns an enemy at a random position with full health and a
// randomized shoot delay.
func NewEnemy(rng *rand.Rand, screen Screen, r *config.Rules) *Enemy {
	return &Enemy{
		X:          rng.Float64() * screen.Width,
		Y:          rng.Float64() * screen.Height,
		VX:         centered(rng, r.EnemyMaxSpeed),
		VY:         centered(rng, r.EnemyMaxSpeed),
		W:          r.EnemySize,
		H:          r.EnemySize,
		Health:     r.EnemyHealth,
		ShootDelay: shootDelay(rng, r),
	}
}

func shootDelay(rng *rand.Rand, r *config.Rules) int {
	return int(math.Round(between(rng, r.EnemyShootDelay)))
}

// Update steers towards the player, caps speed, moves, wraps and handles the
// shoot cooldown.
func (e *Enemy) Update(ctx UpdateContext) bool {
	r := ctx.Rules

	ux, uy, dist, ok := physics.Direction(e.X, e.Y, ctx.PlayerX, ctx.PlayerY)
	if ok {
		e.VX += ux * r.EnemyAccel
		e.VY += uy * r.EnemyAccel
	}

	e.VX, e.VY = physics.ClampSpeed(e.VX, e.VY, r.EnemyMaxSpeed)

	e.X += e.VX
	e.Y += e.VY

	ctx.Screen.WrapRect(&e.X, &e.Y, e.W, e.H)

	e.Angle = math.Atan2(ctx.PlayerY-e.Y, ctx.PlayerX-e.X)

	// Shooting
	e.ShootTimer++
	if e.ShootTimer >= e.ShootDelay && ctx.Spawner != nil {
		dist = physics.Distance(e.X, e.Y, ctx.PlayerX, ctx.PlayerY)
		if dist > 0 && dist < r.EnemyRange {
			if b, ok := NewBullet(e.X, e.Y, ctx.PlayerX, ctx.PlayerY,
				r.EnemyBulletSpeed, r.EnemyBulletLife, r.EnemyBulletSize, true); ok {
				ctx.Spawner.Spawn(b)
			}
			e.ShootTimer = 0
			if ctx.Rand != nil {
				e.ShootDelay = shootDelay(ctx.Rand, r)
			}
		}
	}

	return false
}

// Hit takes one point of health and reports whether the enemy is now dead.
func (e *Enemy) Hit() bool {
	if e.Health > 0 {
		e.Health--
	}
	return e.Health <= 0
}

// Speed returns the current velocity magnitude.
func (e *Enemy) Speed() float64 {
	return physics.Speed(e.VX, e.VY)
}

// MarkDestroyed marks the enemy for removal.
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy is marked for destruction.
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}

// Bounds returns the collision rectangle.
func (e *Enemy) Bounds() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Package object defines the simulation entities and their per-tick update rules.
package object

import (
	"math/rand"

	"github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is the held-keys set and pointer position for one tick.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	PointerX float64
	PointerY float64

	Shoot bool // fire one bullet towards the pointer this tick
	Start bool // start action on the instructions screen
}

// Screen is the logical viewport.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the middle of the viewport.
func (s Screen) Center() (float64, float64) {
	return s.Width / 2, s.Height / 2
}

// Contains reports whether a point lies inside the viewport (edges inclusive).
func (s Screen) Contains(x, y float64) bool {
	return x >= 0 && x <= s.Width && y >= 0 && y <= s.Height
}

// WrapRect wraps a rectangle's origin around the viewport edges (Asteroids-style).
func (s Screen) WrapRect(x, y *float64, w, h float64) {
	*x = physics.Wrap(*x, w, s.Width)
	*y = physics.Wrap(*y, h, s.Height)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Input   Input
	Screen  Screen
	Rules   *config.Rules
	Rand    *rand.Rand
	Spawner Spawner

	// Player position, used by enemies for steering and aiming.
	PlayerX, PlayerY float64
}

// Object is an updatable game entity.
type Object interface {
	// Update advances the object one tick. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)
}

// Collider is implemented by objects that take part in rectangle collision tests.
type Collider interface {
	Bounds() physics.Rect
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the end of the collision pass.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// Collide reports whether two colliders overlap.
func Collide(a, b Collider) bool {
	return physics.Overlaps(a.Bounds(), b.Bounds())
}

// between returns a uniform random value in [b.Min, b.Max).
func between(rng *rand.Rand, b config.Band) float64 {
	return b.Min + rng.Float64()*(b.Max-b.Min)
}

// centered returns a uniform random value in [-width/2, width/2).
func centered(rng *rand.Rand, width float64) float64 {
	return (rng.Float64() - 0.5) * width
}

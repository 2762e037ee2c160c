package game

import (
	"time"

	"github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/object"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the live game.
type Snapshot struct {
	Variant config.Variant
	Width   float64
	Height  float64

	State
	IdleLimit          int
	ResetRemaining     time.Duration
	AutoStartRemaining time.Duration

	Player       object.Player
	Trail        []object.Point
	Stars        []object.Star
	Asteroids    []object.Asteroid
	Crystals     []object.Crystal
	Enemies      []object.Enemy
	Bullets      []object.Bullet
	EnemyBullets []object.Bullet
	Particles    []object.Particle
}

// Snapshot copies the current game state.
func (g *Game) Snapshot() *Snapshot {
	s := &Snapshot{
		Variant:            g.Rules.Variant,
		Width:              g.Screen.Width,
		Height:             g.Screen.Height,
		State:              g.State,
		IdleLimit:          g.Rules.IdleLimit,
		ResetRemaining:     g.ResetRemaining(),
		AutoStartRemaining: g.AutoStartRemaining(),
		Player:             *g.Player,
		Trail:              g.Player.Trail.Points(),
		Stars:              copyPool(g.Stars),
		Asteroids:          copyPool(g.Asteroids),
		Crystals:           copyPool(g.Crystals),
		Enemies:            copyPool(g.Enemies),
		Bullets:            copyPool(g.Bullets),
		EnemyBullets:       copyPool(g.EnemyBullets),
		Particles:          copyPool(g.Particles),
	}
	s.Player.Trail = nil
	return s
}

func copyPool[T any](pool []*T) []T {
	out := make([]T, len(pool))
	for i, p := range pool {
		out[i] = *p
	}
	return out
}

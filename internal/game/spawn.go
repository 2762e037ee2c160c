package game

import (
	"github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/object"
)

// fillInitial fills every pool to its initial target for the current level.
func (g *Game) fillInitial() {
	lvl := g.Level
	g.Asteroids = fillTo(g.Asteroids, g.Rules.Asteroids.Initial.At(lvl), g.newAsteroid)
	g.Crystals = fillTo(g.Crystals, g.Rules.Crystals.Initial.At(lvl), g.newCrystal)
	if g.Rules.EnemiesEnabled() {
		g.Enemies = fillTo(g.Enemies, g.Rules.Enemies.Initial.At(lvl), g.newEnemy)
	}
}

// replenish tops up every pool that fell below its replenish threshold.
func (g *Game) replenish() {
	lvl := g.Level
	g.Asteroids = replenishPool(g.Asteroids, g.Rules.Asteroids, lvl, g.newAsteroid)
	g.Crystals = replenishPool(g.Crystals, g.Rules.Crystals, lvl, g.newCrystal)
	if g.Rules.EnemiesEnabled() {
		g.Enemies = replenishPool(g.Enemies, g.Rules.Enemies, lvl, g.newEnemy)
	}
}

func (g *Game) newAsteroid() *object.Asteroid {
	return object.NewAsteroid(g.rng, g.Screen, &g.Rules)
}

func (g *Game) newCrystal() *object.Crystal {
	return object.NewCrystal(g.rng, g.Screen, &g.Rules)
}

func (g *Game) newEnemy() *object.Enemy {
	return object.NewEnemy(g.rng, g.Screen, &g.Rules)
}

// replenishPool refills a pool to its initial target once it drops below
// the replenish threshold.
func replenishPool[T any](pool []T, target config.PoolTarget, level int, create func() T) []T {
	if len(pool) >= target.Replenish.At(level) {
		return pool
	}
	return fillTo(pool, target.Initial.At(level), create)
}

// fillTo appends new entities until the pool holds n.
func fillTo[T any](pool []T, n int, create func() T) []T {
	for len(pool) < n {
		pool = append(pool, create())
	}
	return pool
}

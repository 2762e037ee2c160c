package game

import (
	"github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/object"
)

// resolveCollisions tests every relevant pool pair and applies the effects.
//
// Resolution is two-phase: matched entities are marked destroyed during the
// scan and skipped by later tests, then every pool is compacted once. Within
// a pairing the first unmarked match in pool order wins. Once the run ends,
// the remaining pairings are skipped.
func (g *Game) resolveCollisions() {
	g.checkPlayerAsteroidCollisions()
	g.checkPlayerEnemyCollisions()
	g.checkPlayerEnemyBulletCollisions()
	g.checkPlayerCrystalCollisions()
	g.checkBulletAsteroidCollisions()
	g.checkBulletEnemyCollisions()

	g.Asteroids = sweep(g.Asteroids)
	g.Crystals = sweep(g.Crystals)
	g.Enemies = sweep(g.Enemies)
	g.Bullets = sweep(g.Bullets)
	g.EnemyBullets = sweep(g.EnemyBullets)

	g.FlushSpawned()
}

func (g *Game) running() bool {
	return g.Phase == PhaseRunning
}

// checkPlayerAsteroidCollisions costs health per asteroid hit, or kills
// outright under instant-death rules.
func (g *Game) checkPlayerAsteroidCollisions() {
	for _, a := range g.Asteroids {
		if !g.running() {
			return
		}
		if a.IsDestroyed() || !object.Collide(g.Player, a) {
			continue
		}
		if g.Rules.InstantDeath {
			g.killPlayer(CauseAsteroid)
			return
		}

		a.MarkDestroyed()
		g.damage(g.Rules.AsteroidDamage)
		object.SpawnExplosion(a.X, a.Y, config.ExplosionParticles, config.ColorAsteroidHit, g.rng, &g.World)
		if g.Health <= 0 {
			g.gameOver(CauseAsteroid)
		}
	}
}

func (g *Game) checkPlayerEnemyCollisions() {
	for _, e := range g.Enemies {
		if !g.running() {
			return
		}
		if !e.IsDestroyed() && object.Collide(g.Player, e) {
			g.killPlayer(CauseEnemy)
			return
		}
	}
}

func (g *Game) checkPlayerEnemyBulletCollisions() {
	for _, b := range g.EnemyBullets {
		if !g.running() {
			return
		}
		if !b.IsDestroyed() && object.Collide(g.Player, b) {
			b.MarkDestroyed()
			g.killPlayer(CauseEnemyBullet)
			return
		}
	}
}

// checkPlayerCrystalCollisions collects every crystal the player touches.
func (g *Game) checkPlayerCrystalCollisions() {
	for _, c := range g.Crystals {
		if !g.running() {
			return
		}
		if c.IsDestroyed() || !object.Collide(g.Player, c) {
			continue
		}

		c.MarkDestroyed()
		g.CrystalsCollected++
		g.Score += g.Rules.CrystalScore
		if g.Rules.TrackEnergy {
			g.Energy = min(config.MaxEnergy, g.Energy+g.Rules.CrystalEnergy)
		}
		if g.Rules.CrystalHeal > 0 {
			g.heal(g.Rules.CrystalHeal)
		}
		object.SpawnExplosion(c.X, c.Y, config.ExplosionParticles, config.ColorCrystalHit, g.rng, &g.World)
	}
}

// checkBulletAsteroidCollisions destroys each bullet together with the first
// asteroid it overlaps.
func (g *Game) checkBulletAsteroidCollisions() {
	for _, b := range g.Bullets {
		if !g.running() {
			return
		}
		if b.IsDestroyed() {
			continue
		}
		for _, a := range g.Asteroids {
			if a.IsDestroyed() || !object.Collide(b, a) {
				continue
			}
			b.MarkDestroyed()
			a.MarkDestroyed()
			g.Score += g.Rules.AsteroidScore
			object.SpawnExplosion(a.X, a.Y, config.ExplosionParticles, config.ColorRockBlast, g.rng, &g.World)
			break
		}
	}
}

// checkBulletEnemyCollisions lets each bullet damage the first enemy it
// overlaps. An enemy at zero health is destroyed and scores.
func (g *Game) checkBulletEnemyCollisions() {
	for _, b := range g.Bullets {
		if !g.running() {
			return
		}
		if b.IsDestroyed() {
			continue
		}
		for _, e := range g.Enemies {
			if e.IsDestroyed() || !object.Collide(b, e) {
				continue
			}
			b.MarkDestroyed()
			object.SpawnExplosion(e.X, e.Y, config.SmallExplosionParticles, config.ColorEnemyHit, g.rng, &g.World)
			if e.Hit() {
				e.MarkDestroyed()
				g.Score += g.Rules.EnemyScore
				object.SpawnExplosion(e.X, e.Y, config.ExplosionParticles, config.ColorEnemy, g.rng, &g.World)
			}
			break
		}
	}
}

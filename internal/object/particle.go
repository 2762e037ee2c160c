package object

import (
	"image/color"
	"math/rand"
	"sync"

	"github.com/tomz197/starfield/internal/game/config"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y    float64 // Position
	VX, VY  float64 // Velocity
	Life    int     // Ticks remaining
	MaxLife int     // Initial life (for fade calculation)
	Alpha   float64
	Color   color.RGBA
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy float64, life int, c color.RGBA) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Life = life
	p.MaxLife = life
	p.Alpha = 1
	p.Color = c
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion emits a burst of count particles at (x, y) with random
// velocities and a fixed life.
func SpawnExplosion(x, y float64, count int, c color.RGBA, rng *rand.Rand, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < count; i++ {
		vx := centered(rng, config.ParticleSpread)
		vy := centered(rng, config.ParticleSpread)
		spawner.Spawn(NewParticle(x, y, vx, vy, config.ParticleLife, c))
	}
}

// Update moves the particle and fades it out over its life.
func (p *Particle) Update(_ UpdateContext) bool {
	p.X += p.VX
	p.Y += p.VY
	p.Life--
	if p.MaxLife > 0 {
		p.Alpha = float64(p.Life) / float64(p.MaxLife)
	}

	return p.Life <= 0
}

package game

import (
	"github.com/tomz197/starfield/internal/object"
)

// Phase is the game-state machine position.
type Phase int

const (
	PhaseNotStarted Phase = iota // Instructions / start screen
	PhaseRunning                 // Active gameplay
	PhaseGameOver                // Waiting for the reset delay
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State holds the scalar game fields.
type State struct {
	Phase             Phase
	Score             int
	CrystalsCollected int
	Health            int // Always within [0, MaxHealth]
	Level             int // Starts at 1, only increases within a session
	Energy            int // Explorer variant only
	IdleTicks         int // Consecutive ticks below the idle speed (survival variant)
	HighScore         int
	Status            string
	Ticks             uint64 // Running ticks since the session started
}

// World holds the entity pools. Pool order only matters for which of several
// overlapping entities is matched first during collision resolution.
type World struct {
	Player       *object.Player
	Stars        []*object.Star
	Asteroids    []*object.Asteroid
	Crystals     []*object.Crystal
	Enemies      []*object.Enemy
	Bullets      []*object.Bullet
	EnemyBullets []*object.Bullet
	Particles    []*object.Particle

	toSpawn []object.Object // Objects to add after the current update phase
}

// Spawn queues an object to be added after the current update phase.
// Implements object.Spawner interface.
func (w *World) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// FlushSpawned moves queued objects into their pools and clears the queue.
func (w *World) FlushSpawned() {
	for _, obj := range w.toSpawn {
		switch o := obj.(type) {
		case *object.Particle:
			w.Particles = append(w.Particles, o)
		case *object.Bullet:
			if o.Hostile {
				w.EnemyBullets = append(w.EnemyBullets, o)
			} else {
				w.Bullets = append(w.Bullets, o)
			}
		case *object.Asteroid:
			w.Asteroids = append(w.Asteroids, o)
		case *object.Crystal:
			w.Crystals = append(w.Crystals, o)
		case *object.Enemy:
			w.Enemies = append(w.Enemies, o)
		}
	}
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// clearTransient empties every pool except the player and the stars.
func (w *World) clearTransient() {
	for _, p := range w.Particles {
		p.Release()
	}
	w.Asteroids = w.Asteroids[:0]
	w.Crystals = w.Crystals[:0]
	w.Enemies = w.Enemies[:0]
	w.Bullets = w.Bullets[:0]
	w.EnemyBullets = w.EnemyBullets[:0]
	w.Particles = w.Particles[:0]
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// updatePool updates every object and drops the ones that ask for removal,
// returning pooled objects for reuse.
func updatePool[T object.Object](pool []T, ctx object.UpdateContext) []T {
	kept := pool[:0] // reuse backing array
	for _, obj := range pool {
		if obj.Update(ctx) {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(pool[len(kept):])
	return kept
}

// sweep compacts a pool, dropping everything marked destroyed.
func sweep[T object.Destructible](pool []T) []T {
	kept := pool[:0]
	for _, obj := range pool {
		if !obj.IsDestroyed() {
			kept = append(kept, obj)
		}
	}
	clear(pool[len(kept):])
	return kept
}

// Package game runs the simulation: integration, spawning, collision
// resolution and the NotStarted → Running → GameOver state machine.
//
// A Game is not safe for concurrent use. The owner calls Tick once per frame.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/object"
)

// Status messages shown by the UI.
const (
	StatusReady   = "Ready for launch..."
	StatusStarted = "Mission started! Collect crystals and avoid asteroids!"
)

// Options configures a new Game.
type Options struct {
	Rand      *rand.Rand // Source of randomness; seeded from the clock when nil
	HighScore int        // Previously persisted high score
}

// Game is the simulation context owned by the driving loop.
type Game struct {
	Rules  config.Rules
	Screen object.Screen

	World
	State

	rng            *rand.Rand
	resetTimer     time.Duration // Remaining real time before GameOver resets
	autoStartTimer time.Duration // Remaining real time before NotStarted auto-starts
	events         []Event
}

// New creates a game on the start screen with a full starfield.
func New(rules config.Rules, opts Options) *Game {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		Rules:  rules,
		Screen: object.Screen{Width: rules.Width, Height: rules.Height},
		rng:    rng,
	}
	g.HighScore = opts.HighScore

	cx, cy := g.Screen.Center()
	g.Player = object.NewPlayer(cx, cy, rules.PlayerSize, rules.TrailLength)

	g.Stars = make([]*object.Star, config.StarCount)
	for i := range g.Stars {
		g.Stars[i] = object.NewStar(rng, g.Screen)
	}

	g.resetCounters()
	g.Status = StatusReady
	g.autoStartTimer = rules.AutoStartDelay
	return g
}

// Tick advances the game by one frame. delta is the wall-clock time since the
// previous tick and only drives the start and reset timers. Movement is
// counted in ticks. The returned events are owned by the caller.
func (g *Game) Tick(in object.Input, delta time.Duration) []Event {
	g.events = nil

	switch g.Phase {
	case PhaseNotStarted:
		if in.Start {
			g.Start()
		} else if g.Rules.AutoStartDelay > 0 {
			g.autoStartTimer -= delta
			if g.autoStartTimer <= 0 {
				g.Start()
			}
		}
	case PhaseGameOver:
		g.resetTimer -= delta
		if g.resetTimer <= 0 {
			g.reset()
		}
	}

	if g.Phase == PhaseRunning {
		g.step(in)
	}

	return g.events
}

// Start begins a run from the start screen. It cancels a pending auto start
// and reports whether the game was actually started.
func (g *Game) Start() bool {
	if g.Phase != PhaseNotStarted {
		return false
	}
	g.Phase = PhaseRunning
	g.autoStartTimer = 0
	g.Status = StatusStarted

	g.fillInitial()

	g.emit(Event{Kind: EventStarted, Level: g.Level})
	return true
}

// step runs one simulation tick in the fixed order: integrate, idle check,
// spawn, collide, level check.
func (g *Game) step(in object.Input) {
	g.Ticks++

	if in.Shoot {
		g.shoot(in.PointerX, in.PointerY)
	}

	g.integrate(in)

	if g.checkIdle() {
		return
	}

	g.replenish()

	g.resolveCollisions()
	if g.Phase != PhaseRunning {
		return
	}

	g.checkLevelUp()
}

// integrate advances every entity by one tick.
func (g *Game) integrate(in object.Input) {
	ctx := object.UpdateContext{
		Input:   in,
		Screen:  g.Screen,
		Rules:   &g.Rules,
		Rand:    g.rng,
		Spawner: &g.World,
	}

	g.Player.Update(ctx)
	ctx.PlayerX, ctx.PlayerY = g.Player.GetPosition()

	for _, s := range g.Stars {
		s.Update(ctx)
	}
	g.Asteroids = updatePool(g.Asteroids, ctx)
	g.Crystals = updatePool(g.Crystals, ctx)
	g.Enemies = updatePool(g.Enemies, ctx)
	g.Bullets = updatePool(g.Bullets, ctx)
	g.EnemyBullets = updatePool(g.EnemyBullets, ctx)
	g.Particles = updatePool(g.Particles, ctx)

	// Add any newly spawned objects (enemy fire)
	g.FlushSpawned()
}

// shoot fires a player bullet towards the pointer.
func (g *Game) shoot(tx, ty float64) {
	x, y := g.Player.GetPosition()
	b, ok := object.NewBullet(x, y, tx, ty, g.Rules.BulletSpeed, g.Rules.BulletLife, g.Rules.BulletSize, false)
	if ok {
		g.Bullets = append(g.Bullets, b)
	}
}

// checkIdle advances the idle death timer and ends the run once the player
// has been too slow for longer than the limit. Returns true if the run ended.
func (g *Game) checkIdle() bool {
	if g.Rules.IdleLimit <= 0 {
		return false
	}
	if g.Player.Speed() < g.Rules.IdleSpeed {
		g.IdleTicks++
	} else {
		g.IdleTicks = 0
	}
	if g.IdleTicks <= g.Rules.IdleLimit {
		return false
	}
	g.killPlayer(CauseIdle)
	return true
}

// checkLevelUp raises the level by one when enough crystals are collected.
func (g *Game) checkLevelUp() {
	if g.CrystalsCollected < g.Level*g.Rules.LevelCrystals {
		return
	}
	g.Level++
	g.Status = fmt.Sprintf("Level %d! Difficulty increased!", g.Level)
	g.emit(Event{Kind: EventLevelUp, Score: g.Score, Level: g.Level})
}

// damage lowers health, clamped at zero.
func (g *Game) damage(n int) {
	g.Health -= n
	if g.Health < 0 {
		g.Health = 0
	}
}

// heal raises health, clamped at MaxHealth.
func (g *Game) heal(n int) {
	g.Health += n
	if g.Health > config.MaxHealth {
		g.Health = config.MaxHealth
	}
}

// killPlayer is instant death: health drops to zero, the ship explodes and
// the run ends.
func (g *Game) killPlayer(cause DeathCause) {
	g.Health = 0
	x, y := g.Player.GetPosition()
	object.SpawnExplosion(x, y, config.ExplosionParticles, config.ColorPlayerDeath, g.rng, &g.World)
	g.FlushSpawned()
	g.gameOver(cause)
}

// gameOver ends the run and starts the reset delay. Only the first call per
// run has any effect.
func (g *Game) gameOver(cause DeathCause) {
	if g.Phase != PhaseRunning {
		return
	}
	g.Phase = PhaseGameOver
	g.resetTimer = g.Rules.ResetDelay
	g.Status = fmt.Sprintf("Game Over! Final Score: %d", g.Score)
	g.emit(Event{Kind: EventGameOver, Score: g.Score, Level: g.Level, Cause: cause})

	if g.Rules.TrackHighScore && g.Score > g.HighScore {
		g.HighScore = g.Score
		g.emit(Event{Kind: EventHighScore, Score: g.Score, Level: g.Level})
	}
}

// reset clears the run and returns to the start screen.
func (g *Game) reset() {
	g.resetCounters()
	g.clearTransient()

	g.Player.Stop()
	g.Player.Trail.Reset()
	g.Player.X, g.Player.Y = g.Screen.Center()

	g.Phase = PhaseNotStarted
	g.Status = StatusReady
	g.autoStartTimer = g.Rules.AutoStartDelay
	g.emit(Event{Kind: EventReset})
}

func (g *Game) resetCounters() {
	g.Score = 0
	g.CrystalsCollected = 0
	g.Health = config.MaxHealth
	g.Level = 1
	g.Energy = config.MaxEnergy
	g.IdleTicks = 0
}

// ResetRemaining returns the time left before a finished game resets.
func (g *Game) ResetRemaining() time.Duration {
	if g.Phase != PhaseGameOver {
		return 0
	}
	return max(g.resetTimer, 0)
}

// AutoStartRemaining returns the time left before the start screen starts
// the game on its own, or zero when no auto start is pending.
func (g *Game) AutoStartRemaining() time.Duration {
	if g.Phase != PhaseNotStarted || g.Rules.AutoStartDelay <= 0 {
		return 0
	}
	return max(g.autoStartTimer, 0)
}

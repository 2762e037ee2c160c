package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/object"
)

const frame = config.TargetFrameTime

// quiet disables all spawning so tests control every pool.
func quiet(r config.Rules) config.Rules {
	r.Asteroids = config.PoolTarget{}
	r.Crystals = config.PoolTarget{}
	r.Enemies = config.PoolTarget{}
	return r
}

func newGame(r config.Rules, opts Options) *Game {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(7))
	}
	return New(r, opts)
}

func startedGame(t *testing.T, r config.Rules) *Game {
	t.Helper()
	g := newGame(r, Options{})
	if !g.Start() {
		t.Fatal("Start() = false on a fresh game")
	}
	return g
}

func rock(x, y, size float64) *object.Asteroid {
	return &object.Asteroid{X: x, Y: y, W: size, H: size}
}

func findEvent(events []Event, kind EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestNewGame(t *testing.T) {
	for _, r := range []config.Rules{config.ExplorerRules(), config.SurvivalRules()} {
		g := newGame(r, Options{HighScore: 42})

		if g.Phase != PhaseNotStarted {
			t.Errorf("%s: phase = %v, want not_started", r.Variant, g.Phase)
		}
		if len(g.Stars) != config.StarCount {
			t.Errorf("%s: stars = %d, want %d", r.Variant, len(g.Stars), config.StarCount)
		}
		if g.Health != config.MaxHealth || g.Level != 1 || g.Score != 0 {
			t.Errorf("%s: health/level/score = %d/%d/%d", r.Variant, g.Health, g.Level, g.Score)
		}
		if g.HighScore != 42 {
			t.Errorf("%s: high score = %d, want 42", r.Variant, g.HighScore)
		}
		if g.Status != StatusReady {
			t.Errorf("%s: status = %q", r.Variant, g.Status)
		}
		if g.Player.X != 400 || g.Player.Y != 300 {
			t.Errorf("%s: player at (%f, %f), want center", r.Variant, g.Player.X, g.Player.Y)
		}
	}
}

func TestStartFillsPools(t *testing.T) {
	tests := []struct {
		rules                       config.Rules
		asteroids, crystals, enemies int
	}{
		{config.ExplorerRules(), 4, 5, 0},
		{config.SurvivalRules(), 4, 4, 2},
	}

	for _, tt := range tests {
		g := newGame(tt.rules, Options{})
		g.Start()

		if len(g.Asteroids) != tt.asteroids {
			t.Errorf("%s: asteroids = %d, want %d", tt.rules.Variant, len(g.Asteroids), tt.asteroids)
		}
		if len(g.Crystals) != tt.crystals {
			t.Errorf("%s: crystals = %d, want %d", tt.rules.Variant, len(g.Crystals), tt.crystals)
		}
		if len(g.Enemies) != tt.enemies {
			t.Errorf("%s: enemies = %d, want %d", tt.rules.Variant, len(g.Enemies), tt.enemies)
		}
		if g.Status != StatusStarted {
			t.Errorf("%s: status = %q", tt.rules.Variant, g.Status)
		}
		if g.Start() {
			t.Errorf("%s: second Start() = true", tt.rules.Variant)
		}
	}
}

func TestNothingMovesBeforeStart(t *testing.T) {
	g := newGame(config.ExplorerRules(), Options{})
	before := g.Snapshot()

	for i := 0; i < 10; i++ {
		g.Tick(object.Input{Right: true}, frame)
	}

	after := g.Snapshot()
	if after.Ticks != 0 {
		t.Errorf("ticks = %d, want 0", after.Ticks)
	}
	if after.Player.X != before.Player.X {
		t.Errorf("player moved before start")
	}
	for i := range before.Stars {
		if before.Stars[i] != after.Stars[i] {
			t.Fatalf("star %d moved before start", i)
		}
	}
}

func TestExplorerAsteroidHit(t *testing.T) {
	g := startedGame(t, quiet(config.ExplorerRules()))
	g.Asteroids = append(g.Asteroids, rock(400, 300, 30))

	events := g.Tick(object.Input{}, frame)

	if g.Health != 90 {
		t.Errorf("health = %d, want 90", g.Health)
	}
	if len(g.Asteroids) != 0 {
		t.Errorf("asteroids = %d, want 0", len(g.Asteroids))
	}
	if len(g.Particles) != config.ExplosionParticles {
		t.Fatalf("particles = %d, want %d", len(g.Particles), config.ExplosionParticles)
	}
	for _, p := range g.Particles {
		if p.X != 400 || p.Y != 300 {
			t.Errorf("particle at (%f, %f), want (400, 300)", p.X, p.Y)
		}
		if p.Color != config.ColorAsteroidHit {
			t.Errorf("particle color = %v, want %v", p.Color, config.ColorAsteroidHit)
		}
	}
	if g.Phase != PhaseRunning || len(events) != 0 {
		t.Errorf("phase = %v, events = %v", g.Phase, events)
	}
}

func TestExplorerHealthClampsAtZero(t *testing.T) {
	g := startedGame(t, quiet(config.ExplorerRules()))
	g.Health = 15
	g.Asteroids = append(g.Asteroids, rock(400, 300, 30), rock(400, 300, 30), rock(400, 300, 30))

	events := g.Tick(object.Input{}, frame)

	if g.Health != 0 {
		t.Errorf("health = %d, want 0", g.Health)
	}
	if g.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, want game_over", g.Phase)
	}
	// Processing stops at the killing hit; the third rock is untouched.
	if len(g.Asteroids) != 1 {
		t.Errorf("asteroids = %d, want 1", len(g.Asteroids))
	}
	if n := countEvents(events, EventGameOver); n != 1 {
		t.Errorf("game over events = %d, want 1", n)
	}
	if e, _ := findEvent(events, EventGameOver); e.Cause != CauseAsteroid {
		t.Errorf("cause = %q, want asteroid", e.Cause)
	}
	// Explorer does not track high scores.
	if _, ok := findEvent(events, EventHighScore); ok {
		t.Error("unexpected high score event")
	}
}

func TestSurvivalInstantDeath(t *testing.T) {
	tests := []struct {
		name  string
		place func(g *Game)
		cause DeathCause
	}{
		{"asteroid", func(g *Game) {
			g.Asteroids = append(g.Asteroids, rock(410, 310, 20))
		}, CauseAsteroid},
		{"enemy", func(g *Game) {
			g.Enemies = append(g.Enemies, &object.Enemy{X: 405, Y: 305, W: 25, H: 25, Health: 2, ShootDelay: 1000})
		}, CauseEnemy},
		{"enemy bullet", func(g *Game) {
			g.EnemyBullets = append(g.EnemyBullets, &object.Bullet{X: 410, Y: 310, W: 5, H: 5, Life: 90, Hostile: true})
		}, CauseEnemyBullet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startedGame(t, quiet(config.SurvivalRules()))
			g.Health = 60
			tt.place(g)

			events := g.Tick(object.Input{}, frame)

			if g.Health != 0 {
				t.Errorf("health = %d, want 0", g.Health)
			}
			if g.Phase != PhaseGameOver {
				t.Fatalf("phase = %v, want game_over", g.Phase)
			}
			e, ok := findEvent(events, EventGameOver)
			if !ok || e.Cause != tt.cause {
				t.Errorf("game over event = %+v, want cause %q", e, tt.cause)
			}
			if len(g.Particles) != config.ExplosionParticles {
				t.Fatalf("particles = %d, want %d", len(g.Particles), config.ExplosionParticles)
			}
			for _, p := range g.Particles {
				if p.X != g.Player.X || p.Y != g.Player.Y {
					t.Errorf("particle at (%f, %f), want player position", p.X, p.Y)
				}
			}
		})
	}
}

func TestSurvivalAsteroidSurvivesKill(t *testing.T) {
	g := startedGame(t, quiet(config.SurvivalRules()))
	g.Asteroids = append(g.Asteroids, rock(400, 300, 30))

	g.Tick(object.Input{}, frame)

	if len(g.Asteroids) != 1 {
		t.Errorf("asteroids = %d, want 1", len(g.Asteroids))
	}
}

func TestCrystalPickup(t *testing.T) {
	t.Run("explorer", func(t *testing.T) {
		g := startedGame(t, quiet(config.ExplorerRules()))
		g.Energy = 50
		g.Crystals = append(g.Crystals, &object.Crystal{X: 400, Y: 300, W: 15, H: 15})

		g.Tick(object.Input{}, frame)

		if g.CrystalsCollected != 1 || g.Score != 100 || g.Energy != 60 {
			t.Errorf("collected/score/energy = %d/%d/%d, want 1/100/60", g.CrystalsCollected, g.Score, g.Energy)
		}
		if len(g.Crystals) != 0 {
			t.Errorf("crystals = %d, want 0", len(g.Crystals))
		}
		if len(g.Particles) != config.ExplosionParticles {
			t.Errorf("particles = %d, want %d", len(g.Particles), config.ExplosionParticles)
		}
	})

	t.Run("explorer energy cap", func(t *testing.T) {
		g := startedGame(t, quiet(config.ExplorerRules()))
		g.Energy = 95
		g.Crystals = append(g.Crystals, &object.Crystal{X: 400, Y: 300, W: 15, H: 15})

		g.Tick(object.Input{}, frame)

		if g.Energy != config.MaxEnergy {
			t.Errorf("energy = %d, want %d", g.Energy, config.MaxEnergy)
		}
	})

	t.Run("survival heal", func(t *testing.T) {
		g := startedGame(t, quiet(config.SurvivalRules()))
		g.Health = 50
		g.Crystals = append(g.Crystals, &object.Crystal{X: 400, Y: 300, W: 15, H: 15})

		g.Tick(object.Input{}, frame)

		if g.Health != 75 || g.Score != 100 || g.CrystalsCollected != 1 {
			t.Errorf("health/score/collected = %d/%d/%d, want 75/100/1", g.Health, g.Score, g.CrystalsCollected)
		}
	})

	t.Run("survival heal cap", func(t *testing.T) {
		g := startedGame(t, quiet(config.SurvivalRules()))
		g.Health = 90
		g.Crystals = append(g.Crystals, &object.Crystal{X: 400, Y: 300, W: 15, H: 15})

		g.Tick(object.Input{}, frame)

		if g.Health != config.MaxHealth {
			t.Errorf("health = %d, want %d", g.Health, config.MaxHealth)
		}
	})
}

func TestBulletLifetime(t *testing.T) {
	r := quiet(config.ExplorerRules())
	r.BulletSpeed = 1
	g := startedGame(t, r)

	g.Tick(object.Input{Shoot: true, PointerX: 700, PointerY: 300}, frame)
	if len(g.Bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(g.Bullets))
	}

	for tick := 2; tick < 60; tick++ {
		g.Tick(object.Input{PointerX: 700, PointerY: 300}, frame)
		if len(g.Bullets) != 1 {
			t.Fatalf("tick %d: bullets = %d, want 1", tick, len(g.Bullets))
		}
	}

	g.Tick(object.Input{PointerX: 700, PointerY: 300}, frame)
	if len(g.Bullets) != 0 {
		t.Errorf("tick 60: bullets = %d, want 0", len(g.Bullets))
	}
}

func TestShootAtShipDoesNothing(t *testing.T) {
	g := startedGame(t, quiet(config.ExplorerRules()))

	g.Tick(object.Input{Shoot: true, PointerX: 400, PointerY: 300}, frame)

	if len(g.Bullets) != 0 {
		t.Errorf("bullets = %d, want 0", len(g.Bullets))
	}
}

func TestBulletHitsFirstAsteroidOnly(t *testing.T) {
	t.Run("two bullets one asteroid", func(t *testing.T) {
		g := startedGame(t, quiet(config.ExplorerRules()))
		g.Asteroids = append(g.Asteroids, rock(100, 100, 40))
		first := &object.Bullet{X: 110, Y: 110, W: 4, H: 4, Life: 60}
		second := &object.Bullet{X: 120, Y: 120, W: 4, H: 4, Life: 60}
		g.Bullets = append(g.Bullets, first, second)

		g.Tick(object.Input{}, frame)

		if len(g.Asteroids) != 0 {
			t.Errorf("asteroids = %d, want 0", len(g.Asteroids))
		}
		if len(g.Bullets) != 1 || g.Bullets[0] != second {
			t.Errorf("surviving bullets = %v, want only the second", g.Bullets)
		}
		if g.Score != 50 {
			t.Errorf("score = %d, want 50", g.Score)
		}
		if len(g.Particles) != config.ExplosionParticles {
			t.Errorf("particles = %d, want %d", len(g.Particles), config.ExplosionParticles)
		}
	})

	t.Run("one bullet two asteroids", func(t *testing.T) {
		g := startedGame(t, quiet(config.ExplorerRules()))
		survivor := rock(105, 105, 40)
		g.Asteroids = append(g.Asteroids, rock(100, 100, 40), survivor)
		g.Bullets = append(g.Bullets, &object.Bullet{X: 110, Y: 110, W: 4, H: 4, Life: 60})

		g.Tick(object.Input{}, frame)

		if len(g.Asteroids) != 1 || g.Asteroids[0] != survivor {
			t.Errorf("asteroids = %v, want only the second", g.Asteroids)
		}
		if g.Score != 50 {
			t.Errorf("score = %d, want 50", g.Score)
		}
	})
}

func TestBulletKillsEnemyInTwoHits(t *testing.T) {
	g := startedGame(t, quiet(config.SurvivalRules()))
	g.Enemies = append(g.Enemies, &object.Enemy{X: 100, Y: 100, W: 25, H: 25, Health: 2, ShootDelay: 1000})

	g.Bullets = append(g.Bullets, &object.Bullet{X: 110, Y: 110, W: 4, H: 4, Life: 60})
	g.Tick(object.Input{}, frame)

	if len(g.Enemies) != 1 || g.Enemies[0].Health != 1 {
		t.Fatalf("after first hit: enemies = %d", len(g.Enemies))
	}
	if len(g.Bullets) != 0 {
		t.Errorf("bullets = %d, want 0", len(g.Bullets))
	}
	if g.Score != 0 {
		t.Errorf("score = %d, want 0", g.Score)
	}
	if len(g.Particles) != config.SmallExplosionParticles {
		t.Errorf("particles = %d, want %d", len(g.Particles), config.SmallExplosionParticles)
	}

	g.Bullets = append(g.Bullets, &object.Bullet{X: 110, Y: 110, W: 4, H: 4, Life: 60})
	g.Tick(object.Input{}, frame)

	if len(g.Enemies) != 0 {
		t.Errorf("enemies = %d, want 0", len(g.Enemies))
	}
	if g.Score != 200 {
		t.Errorf("score = %d, want 200", g.Score)
	}
	want := 2*config.SmallExplosionParticles + config.ExplosionParticles
	if len(g.Particles) != want {
		t.Errorf("particles = %d, want %d", len(g.Particles), want)
	}
}

func TestIdleDeath(t *testing.T) {
	g := startedGame(t, quiet(config.SurvivalRules()))

	for tick := 1; tick <= 120; tick++ {
		g.Tick(object.Input{}, frame)
		if g.Phase != PhaseRunning {
			t.Fatalf("tick %d: phase = %v, want running", tick, g.Phase)
		}
	}
	if g.IdleTicks != 120 {
		t.Errorf("idle ticks = %d, want 120", g.IdleTicks)
	}

	events := g.Tick(object.Input{}, frame)

	if g.Phase != PhaseGameOver || g.Health != 0 {
		t.Fatalf("phase/health = %v/%d, want game_over/0", g.Phase, g.Health)
	}
	e, ok := findEvent(events, EventGameOver)
	if !ok || e.Cause != CauseIdle {
		t.Errorf("game over event = %+v, want idle", e)
	}

	// Game over is reported once.
	if events := g.Tick(object.Input{}, frame); countEvents(events, EventGameOver) != 0 {
		t.Error("game over reported twice")
	}
}

func TestIdleTimerResetsOnMovement(t *testing.T) {
	g := startedGame(t, quiet(config.SurvivalRules()))

	for i := 0; i < 50; i++ {
		g.Tick(object.Input{}, frame)
	}
	if g.IdleTicks != 50 {
		t.Fatalf("idle ticks = %d, want 50", g.IdleTicks)
	}

	// One tick of thrust leaves the ship at 0.475, still below the idle speed.
	g.Tick(object.Input{Right: true}, frame)
	if g.IdleTicks != 51 {
		t.Errorf("idle ticks = %d, want 51", g.IdleTicks)
	}

	g.Tick(object.Input{Right: true}, frame)
	if g.IdleTicks != 0 {
		t.Errorf("idle ticks = %d, want 0", g.IdleTicks)
	}
}

func TestExplorerHasNoIdleDeath(t *testing.T) {
	g := startedGame(t, quiet(config.ExplorerRules()))

	for i := 0; i < 500; i++ {
		g.Tick(object.Input{}, frame)
	}

	if g.Phase != PhaseRunning {
		t.Errorf("phase = %v, want running", g.Phase)
	}
}

func TestLevelUpOncePerTick(t *testing.T) {
	g := startedGame(t, quiet(config.ExplorerRules()))
	g.CrystalsCollected = 25

	events := g.Tick(object.Input{}, frame)
	if g.Level != 2 {
		t.Fatalf("level = %d, want 2", g.Level)
	}
	e, ok := findEvent(events, EventLevelUp)
	if !ok || e.Level != 2 {
		t.Errorf("level up event = %+v", e)
	}
	if g.Status != "Level 2! Difficulty increased!" {
		t.Errorf("status = %q", g.Status)
	}

	g.Tick(object.Input{}, frame)
	if g.Level != 3 {
		t.Fatalf("level = %d, want 3", g.Level)
	}

	g.Tick(object.Input{}, frame)
	if g.Level != 3 {
		t.Errorf("level = %d, want 3", g.Level)
	}
}

func TestResetAfterDelay(t *testing.T) {
	g := startedGame(t, quiet(config.ExplorerRules()))
	g.Health = 5
	g.Score = 500
	g.CrystalsCollected = 12
	g.Level = 2
	g.Player.VX = 3
	g.Asteroids = append(g.Asteroids, rock(400, 300, 30), rock(10, 10, 30))

	g.Tick(object.Input{}, frame)
	if g.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, want game_over", g.Phase)
	}
	if g.Status != "Game Over! Final Score: 500" {
		t.Errorf("status = %q", g.Status)
	}

	g.Tick(object.Input{}, 2*time.Second)
	if g.Phase != PhaseGameOver {
		t.Fatalf("phase = %v before the delay elapsed", g.Phase)
	}
	if got := g.ResetRemaining(); got != time.Second {
		t.Errorf("reset remaining = %v, want 1s", got)
	}

	events := g.Tick(object.Input{}, time.Second)
	if _, ok := findEvent(events, EventReset); !ok {
		t.Error("missing reset event")
	}
	if g.Phase != PhaseNotStarted {
		t.Fatalf("phase = %v, want not_started", g.Phase)
	}
	if g.Score != 0 || g.CrystalsCollected != 0 || g.Level != 1 || g.Health != config.MaxHealth {
		t.Errorf("score/collected/level/health = %d/%d/%d/%d", g.Score, g.CrystalsCollected, g.Level, g.Health)
	}
	if len(g.Asteroids)+len(g.Crystals)+len(g.Enemies)+len(g.Bullets)+len(g.EnemyBullets)+len(g.Particles) != 0 {
		t.Error("pools not cleared")
	}
	if g.Player.Speed() != 0 || g.Player.Trail.Len() != 0 {
		t.Errorf("player speed %f, trail %d", g.Player.Speed(), g.Player.Trail.Len())
	}
	if len(g.Stars) != config.StarCount {
		t.Errorf("stars = %d, want %d", len(g.Stars), config.StarCount)
	}
	if g.Status != StatusReady {
		t.Errorf("status = %q", g.Status)
	}
}

func TestAutoStart(t *testing.T) {
	t.Run("survival starts on its own", func(t *testing.T) {
		g := newGame(quiet(config.SurvivalRules()), Options{})

		g.Tick(object.Input{}, 4*time.Second)
		if g.Phase != PhaseNotStarted {
			t.Fatalf("phase = %v, want not_started", g.Phase)
		}
		if got := g.AutoStartRemaining(); got != time.Second {
			t.Errorf("auto start remaining = %v, want 1s", got)
		}

		events := g.Tick(object.Input{}, time.Second)
		if g.Phase != PhaseRunning {
			t.Fatalf("phase = %v, want running", g.Phase)
		}
		if _, ok := findEvent(events, EventStarted); !ok {
			t.Error("missing started event")
		}
		if g.Ticks != 1 {
			t.Errorf("ticks = %d, want 1", g.Ticks)
		}
	})

	t.Run("start input cancels the timer", func(t *testing.T) {
		g := newGame(quiet(config.SurvivalRules()), Options{})

		g.Tick(object.Input{Start: true}, frame)
		if g.Phase != PhaseRunning {
			t.Fatalf("phase = %v, want running", g.Phase)
		}
		if got := g.AutoStartRemaining(); got != 0 {
			t.Errorf("auto start remaining = %v, want 0", got)
		}
	})

	t.Run("explorer waits for input", func(t *testing.T) {
		g := newGame(config.ExplorerRules(), Options{})

		g.Tick(object.Input{}, time.Hour)
		if g.Phase != PhaseNotStarted {
			t.Errorf("phase = %v, want not_started", g.Phase)
		}
	})
}

func TestHighScore(t *testing.T) {
	t.Run("beaten", func(t *testing.T) {
		g := newGame(quiet(config.SurvivalRules()), Options{HighScore: 100})
		g.Start()
		g.Score = 300
		g.Asteroids = append(g.Asteroids, rock(400, 300, 30))

		events := g.Tick(object.Input{}, frame)

		e, ok := findEvent(events, EventHighScore)
		if !ok || e.Score != 300 {
			t.Errorf("high score event = %+v", e)
		}
		if g.HighScore != 300 {
			t.Errorf("high score = %d, want 300", g.HighScore)
		}
	})

	t.Run("not beaten", func(t *testing.T) {
		g := newGame(quiet(config.SurvivalRules()), Options{HighScore: 100})
		g.Start()
		g.Score = 50
		g.Asteroids = append(g.Asteroids, rock(400, 300, 30))

		events := g.Tick(object.Input{}, frame)

		if _, ok := findEvent(events, EventHighScore); ok {
			t.Error("unexpected high score event")
		}
		if g.HighScore != 100 {
			t.Errorf("high score = %d, want 100", g.HighScore)
		}
	})
}

func TestReplenishPool(t *testing.T) {
	target := config.PoolTarget{
		Initial:   config.LevelCount{Base: 3, Divisor: 1},
		Replenish: config.LevelCount{Base: 2, Divisor: 1},
	}
	create := func() int { return 0 }

	tests := []struct {
		have, level, want int
	}{
		{3, 1, 3}, // at threshold, untouched
		{2, 1, 4}, // below threshold, refilled to initial
		{0, 1, 4},
		{4, 3, 6}, // threshold grows with level
		{5, 3, 5},
	}

	for _, tt := range tests {
		pool := make([]int, tt.have)
		got := replenishPool(pool, target, tt.level, create)
		if len(got) != tt.want {
			t.Errorf("replenish(%d at level %d) = %d, want %d", tt.have, tt.level, len(got), tt.want)
		}
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	g := startedGame(t, config.ExplorerRules())
	g.Tick(object.Input{Right: true}, frame)

	snap := g.Snapshot()
	if snap.Phase != PhaseRunning || snap.Variant != config.Explorer {
		t.Fatalf("snapshot phase/variant = %v/%s", snap.Phase, snap.Variant)
	}
	if len(snap.Trail) != 1 {
		t.Fatalf("trail = %d, want 1", len(snap.Trail))
	}

	x := g.Asteroids[0].X
	snap.Asteroids[0].X = -999
	snap.Trail[0].X = -999
	snap.Player.X = -999

	if g.Asteroids[0].X != x {
		t.Error("snapshot asteroid shares memory with game")
	}
	if g.Player.Trail.Points()[0].X == -999 {
		t.Error("snapshot trail shares memory with game")
	}
	if g.Player.X == -999 {
		t.Error("snapshot player shares memory with game")
	}
}

// TestInvariantsUnderRandomPlay drives both variants with random input and
// checks the bounds that must hold after every tick.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	for _, r := range []config.Rules{config.ExplorerRules(), config.SurvivalRules()} {
		t.Run(string(r.Variant), func(t *testing.T) {
			g := newGame(r, Options{Rand: rand.New(rand.NewSource(99))})
			in := rand.New(rand.NewSource(3))
			level := g.Level

			for tick := 0; tick < 2000; tick++ {
				input := object.Input{
					Up:       in.Intn(3) == 0,
					Down:     in.Intn(3) == 0,
					Left:     in.Intn(3) == 0,
					Right:    in.Intn(3) == 0,
					PointerX: in.Float64() * r.Width,
					PointerY: in.Float64() * r.Height,
					Shoot:    in.Intn(10) == 0,
					Start:    true,
				}
				events := g.Tick(input, 500*time.Millisecond)

				if g.Health < 0 || g.Health > config.MaxHealth {
					t.Fatalf("tick %d: health %d out of range", tick, g.Health)
				}
				if len(g.Stars) != config.StarCount {
					t.Fatalf("tick %d: stars = %d", tick, len(g.Stars))
				}
				if s := g.Player.Speed(); s > r.PlayerMaxSpeed+1e-9 {
					t.Fatalf("tick %d: player speed %f", tick, s)
				}
				for _, e := range g.Enemies {
					if s := e.Speed(); s > r.EnemyMaxSpeed+1e-9 {
						t.Fatalf("tick %d: enemy speed %f", tick, s)
					}
				}
				if g.Player.X < -g.Player.W || g.Player.X > r.Width+g.Player.W {
					t.Fatalf("tick %d: player x %f outside wrap bounds", tick, g.Player.X)
				}
				if _, ok := findEvent(events, EventReset); ok {
					level = 1
				}
				if g.Level < level {
					t.Fatalf("tick %d: level dropped from %d to %d", tick, level, g.Level)
				}
				level = g.Level
			}
		})
	}
}

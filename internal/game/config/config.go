// Package config centralizes all tunable game parameters.
//
// The two game variants share one simulation; everything that differs between
// them (collision effects, spawn tables, the idle death timer) lives in Rules.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Variant selects a rule set.
type Variant string

const (
	// Explorer is the peaceful variant: asteroid hits cost health, crystals restore energy.
	Explorer Variant = "explorer"
	// Survival is the instant-death variant with enemies and an idle death timer.
	Survival Variant = "survival"
)

var (
	ErrUnknownVariant = errors.New("unknown game variant")
	ErrInvalidRules   = errors.New("invalid rules")
)

// Viewport - logical playfield size. Renderers scale to fit.
const (
	ViewWidth  = 800
	ViewHeight = 600
)

// Health and energy bounds
const (
	MaxHealth = 100
	MaxEnergy = 100
)

// Stars
const (
	StarCount = 200
)

// Explosions
const (
	ExplosionParticles      = 10
	SmallExplosionParticles = 5
	ParticleLife            = 30
	ParticleSpread          = 10.0 // velocity band width, centered on zero
)

// Simulation rate
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Palette
var (
	ColorStar        = colornames.White
	ColorPlayer      = colornames.Cyan
	ColorTrail       = colornames.Darkcyan
	ColorAsteroid    = colornames.Dimgray
	ColorCrystal     = colornames.Cyan
	ColorBullet      = colornames.Yellow
	ColorEnemy       = colornames.Magenta
	ColorEnemyBullet = colornames.Orangered

	ColorAsteroidHit = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}
	ColorCrystalHit  = colornames.Cyan
	ColorRockBlast   = color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff}
	ColorEnemyHit    = colornames.Violet
	ColorPlayerDeath = colornames.Red
)

// LevelCount is a count that grows with level: Base + Level/Divisor.
// A zero Divisor makes the count constant.
type LevelCount struct {
	Base    int `yaml:"base"`
	Divisor int `yaml:"divisor"`
}

// At returns the count for the given level.
func (c LevelCount) At(level int) int {
	if c.Divisor <= 0 {
		return c.Base
	}
	return c.Base + level/c.Divisor
}

// PoolTarget controls how a pool is filled. Once the pool drops below
// Replenish it is topped back up to Initial.
type PoolTarget struct {
	Initial   LevelCount `yaml:"initial"`
	Replenish LevelCount `yaml:"replenish"`
}

// Band is a half-open random range [Min, Max).
type Band struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Rules holds every variant-dependent tunable.
type Rules struct {
	Variant Variant `yaml:"variant"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Player
	PlayerSize     float64 `yaml:"player_size"`
	PlayerAccel    float64 `yaml:"player_accel"`
	PlayerFriction float64 `yaml:"player_friction"`
	PlayerMaxSpeed float64 `yaml:"player_max_speed"`
	TrailLength    int     `yaml:"trail_length"`

	// Player bullets
	BulletSpeed float64 `yaml:"bullet_speed"`
	BulletLife  int     `yaml:"bullet_life"`
	BulletSize  float64 `yaml:"bullet_size"`

	// Spawn tables
	Asteroids PoolTarget `yaml:"asteroids"`
	Crystals  PoolTarget `yaml:"crystals"`
	Enemies   PoolTarget `yaml:"enemies"`

	AsteroidSize  Band    `yaml:"asteroid_size"`
	AsteroidSpeed float64 `yaml:"asteroid_speed"`
	AsteroidSpin  float64 `yaml:"asteroid_spin"`
	CrystalSize   float64 `yaml:"crystal_size"`
	CrystalSpin   float64 `yaml:"crystal_spin"`
	CrystalPulse  float64 `yaml:"crystal_pulse"`

	// Collision effects
	InstantDeath   bool `yaml:"instant_death"`
	AsteroidDamage int  `yaml:"asteroid_damage"`
	AsteroidScore  int  `yaml:"asteroid_score"`
	CrystalScore   int  `yaml:"crystal_score"`
	CrystalHeal    int  `yaml:"crystal_heal"`
	CrystalEnergy  int  `yaml:"crystal_energy"`
	TrackEnergy    bool `yaml:"track_energy"`
	EnemyScore     int  `yaml:"enemy_score"`

	// Enemies
	EnemySize        float64 `yaml:"enemy_size"`
	EnemyHealth      int     `yaml:"enemy_health"`
	EnemyAccel       float64 `yaml:"enemy_accel"`
	EnemyMaxSpeed    float64 `yaml:"enemy_max_speed"`
	EnemyRange       float64 `yaml:"enemy_range"`
	EnemyShootDelay  Band    `yaml:"enemy_shoot_delay"` // ticks
	EnemyBulletSpeed float64 `yaml:"enemy_bullet_speed"`
	EnemyBulletLife  int     `yaml:"enemy_bullet_life"`
	EnemyBulletSize  float64 `yaml:"enemy_bullet_size"`

	// Idle death timer. IdleLimit of zero disables it.
	IdleLimit int     `yaml:"idle_limit"`
	IdleSpeed float64 `yaml:"idle_speed"`

	LevelCrystals int `yaml:"level_crystals"`

	// Real-time UI delays. AutoStartDelay of zero disables auto start.
	ResetDelay     time.Duration `yaml:"reset_delay"`
	AutoStartDelay time.Duration `yaml:"auto_start_delay"`

	TrackHighScore bool `yaml:"track_high_score"`
}

// base returns the values both variants share.
func base() Rules {
	return Rules{
		Width:  ViewWidth,
		Height: ViewHeight,

		PlayerSize:     30,
		PlayerAccel:    0.5,
		PlayerFriction: 0.95,
		PlayerMaxSpeed: 5,
		TrailLength:    10,

		BulletSpeed: 8,
		BulletLife:  60,
		BulletSize:  4,

		AsteroidSize:  Band{Min: 20, Max: 50},
		AsteroidSpeed: 2,
		AsteroidSpin:  0.1,
		CrystalSize:   15,
		CrystalSpin:   0.05,
		CrystalPulse:  0.1,

		AsteroidDamage: 10,
		AsteroidScore:  50,
		CrystalScore:   100,

		LevelCrystals: 10,
		ResetDelay:    3 * time.Second,
	}
}

// ExplorerRules returns the peaceful variant.
func ExplorerRules() Rules {
	r := base()
	r.Variant = Explorer
	r.Asteroids = PoolTarget{
		Initial:   LevelCount{Base: 3, Divisor: 1},
		Replenish: LevelCount{Base: 2, Divisor: 1},
	}
	r.Crystals = PoolTarget{
		Initial:   LevelCount{Base: 5},
		Replenish: LevelCount{Base: 3},
	}
	r.CrystalEnergy = 10
	r.TrackEnergy = true
	return r
}

// SurvivalRules returns the instant-death variant.
func SurvivalRules() Rules {
	r := base()
	r.Variant = Survival
	r.Asteroids = PoolTarget{
		Initial:   LevelCount{Base: 3, Divisor: 1},
		Replenish: LevelCount{Base: 3, Divisor: 1},
	}
	r.Crystals = PoolTarget{
		Initial:   LevelCount{Base: 4},
		Replenish: LevelCount{Base: 3},
	}
	r.Enemies = PoolTarget{
		Initial:   LevelCount{Base: 2, Divisor: 2},
		Replenish: LevelCount{Base: 1, Divisor: 2},
	}
	r.InstantDeath = true
	r.CrystalHeal = 25
	r.EnemyScore = 200

	r.EnemySize = 25
	r.EnemyHealth = 2
	r.EnemyAccel = 0.1
	r.EnemyMaxSpeed = 2
	r.EnemyRange = 300
	r.EnemyShootDelay = Band{Min: 60, Max: 120}
	r.EnemyBulletSpeed = 5
	r.EnemyBulletLife = 90
	r.EnemyBulletSize = 5

	r.IdleLimit = 120
	r.IdleSpeed = 0.5

	r.AutoStartDelay = 5 * time.Second
	r.TrackHighScore = true
	return r
}

// ForVariant returns the default rules for a variant name.
func ForVariant(v Variant) (Rules, error) {
	switch v {
	case Explorer, "":
		return ExplorerRules(), nil
	case Survival:
		return SurvivalRules(), nil
	default:
		return Rules{}, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
}

// Load returns the rules for a variant, overlaid with the YAML file at path
// when path is not empty.
func Load(v Variant, path string) (Rules, error) {
	r, err := ForVariant(v)
	if err != nil {
		return Rules{}, err
	}
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("parse rules %s: %w", path, err)
	}
	// The file may not switch variants underneath the caller.
	r.Variant = v
	if v == "" {
		r.Variant = Explorer
	}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: viewport %vx%v", ErrInvalidRules, r.Width, r.Height)
	case r.PlayerSize <= 0:
		return fmt.Errorf("%w: player_size must be positive", ErrInvalidRules)
	case r.PlayerMaxSpeed <= 0:
		return fmt.Errorf("%w: player_max_speed must be positive", ErrInvalidRules)
	case r.PlayerFriction <= 0 || r.PlayerFriction > 1:
		return fmt.Errorf("%w: player_friction must be in (0, 1]", ErrInvalidRules)
	case r.TrailLength < 1:
		return fmt.Errorf("%w: trail_length must be at least 1", ErrInvalidRules)
	case r.BulletLife <= 0:
		return fmt.Errorf("%w: bullet_life must be positive", ErrInvalidRules)
	case r.AsteroidSize.Min <= 0 || r.AsteroidSize.Max < r.AsteroidSize.Min:
		return fmt.Errorf("%w: asteroid_size band %v", ErrInvalidRules, r.AsteroidSize)
	case r.EnemyShootDelay.Max < r.EnemyShootDelay.Min:
		return fmt.Errorf("%w: enemy_shoot_delay band %v", ErrInvalidRules, r.EnemyShootDelay)
	case r.LevelCrystals <= 0:
		return fmt.Errorf("%w: level_crystals must be positive", ErrInvalidRules)
	case r.ResetDelay < 0 || r.AutoStartDelay < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidRules)
	}
	if r.Enemies.Initial.At(1) > 0 && (r.EnemyHealth <= 0 || r.EnemySize <= 0) {
		return fmt.Errorf("%w: enemies enabled without enemy_health/enemy_size", ErrInvalidRules)
	}
	return nil
}

// EnemiesEnabled reports whether this rule set spawns enemies at all.
func (r Rules) EnemiesEnabled() bool {
	return r.Enemies.Initial.Base > 0 || r.Enemies.Initial.Divisor > 0
}

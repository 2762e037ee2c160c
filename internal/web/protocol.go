package web

import (
	"fmt"
	"image/color"

	"github.com/tomz197/starfield/internal/game"
	"github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/object"
)

// Message types sent to the browser.
const (
	msgHello = "hello"
	msgFrame = "frame"
)

// inputMessage is the browser's current input. Shoot and Start are one-shot
// actions; the rest is held state.
type inputMessage struct {
	Up       bool    `json:"up"`
	Down     bool    `json:"down"`
	Left     bool    `json:"left"`
	Right    bool    `json:"right"`
	PointerX float64 `json:"pointerX"`
	PointerY float64 `json:"pointerY"`
	Shoot    bool    `json:"shoot"`
	Start    bool    `json:"start"`
}

func (m inputMessage) toInput() object.Input {
	return object.Input{
		Up:       m.Up,
		Down:     m.Down,
		Left:     m.Left,
		Right:    m.Right,
		PointerX: m.PointerX,
		PointerY: m.PointerY,
		Shoot:    m.Shoot,
		Start:    m.Start,
	}
}

// helloMessage is sent once per connection.
type helloMessage struct {
	Type    string            `json:"type"`
	Variant string            `json:"variant"`
	Width   float64           `json:"width"`
	Height  float64           `json:"height"`
	Palette map[string]string `json:"palette"`
}

func newHello(r config.Rules) helloMessage {
	return helloMessage{
		Type:    msgHello,
		Variant: string(r.Variant),
		Width:   r.Width,
		Height:  r.Height,
		Palette: map[string]string{
			"star":        hex(config.ColorStar),
			"player":      hex(config.ColorPlayer),
			"trail":       hex(config.ColorTrail),
			"asteroid":    hex(config.ColorAsteroid),
			"crystal":     hex(config.ColorCrystal),
			"bullet":      hex(config.ColorBullet),
			"enemy":       hex(config.ColorEnemy),
			"enemyBullet": hex(config.ColorEnemyBullet),
		},
	}
}

// body is the wire form of any drawn entity. Unused fields are omitted.
type body struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	W        float64 `json:"w,omitempty"`
	H        float64 `json:"h,omitempty"`
	Angle    float64 `json:"a,omitempty"`
	Alpha    float64 `json:"o,omitempty"`
	Color    string  `json:"c,omitempty"`
	Hostile  bool    `json:"hostile,omitempty"`
	Lifetime int     `json:"life,omitempty"`
}

// frameMessage is one rendered frame.
type frameMessage struct {
	Type  string `json:"type"`
	Tick  uint64 `json:"tick"`
	Phase string `json:"phase"`

	Score       int     `json:"score"`
	Collected   int     `json:"collected"`
	Health      int     `json:"health"`
	Level       int     `json:"level"`
	Energy      int     `json:"energy"`
	IdleTicks   int     `json:"idleTicks"`
	IdleLimit   int     `json:"idleLimit"`
	HighScore   int     `json:"highScore"`
	Status      string  `json:"status"`
	ResetIn     float64 `json:"resetIn"`
	AutoStartIn float64 `json:"autoStartIn"`

	Player    body   `json:"player"`
	Trail     []body `json:"trail"`
	Stars     []body `json:"stars"`
	Asteroids []body `json:"asteroids"`
	Crystals  []body `json:"crystals"`
	Enemies   []body `json:"enemies"`
	Bullets   []body `json:"bullets"`
	Particles []body `json:"particles"`
}

func newFrame(s *game.Snapshot) frameMessage {
	f := frameMessage{
		Type:        msgFrame,
		Tick:        s.Ticks,
		Phase:       s.Phase.String(),
		Score:       s.Score,
		Collected:   s.CrystalsCollected,
		Health:      s.Health,
		Level:       s.Level,
		Energy:      s.Energy,
		IdleTicks:   s.IdleTicks,
		IdleLimit:   s.IdleLimit,
		HighScore:   s.HighScore,
		Status:      s.Status,
		ResetIn:     s.ResetRemaining.Seconds(),
		AutoStartIn: s.AutoStartRemaining.Seconds(),
		Player:      body{X: s.Player.X, Y: s.Player.Y, W: s.Player.W, H: s.Player.H, Angle: s.Player.Angle},
	}

	f.Trail = make([]body, len(s.Trail))
	for i, p := range s.Trail {
		f.Trail[i] = body{X: p.X, Y: p.Y}
	}
	f.Stars = make([]body, len(s.Stars))
	for i, st := range s.Stars {
		f.Stars[i] = body{X: st.X, Y: st.Y, W: st.Size, H: st.Size, Alpha: st.Opacity}
	}
	f.Asteroids = make([]body, len(s.Asteroids))
	for i, a := range s.Asteroids {
		f.Asteroids[i] = body{X: a.X, Y: a.Y, W: a.W, H: a.H, Angle: a.Rotation}
	}
	f.Crystals = make([]body, len(s.Crystals))
	for i := range s.Crystals {
		c := &s.Crystals[i]
		f.Crystals[i] = body{X: c.X, Y: c.Y, W: c.W, H: c.H, Angle: c.Rotation, Alpha: c.Alpha()}
	}
	f.Enemies = make([]body, len(s.Enemies))
	for i, e := range s.Enemies {
		f.Enemies[i] = body{X: e.X, Y: e.Y, W: e.W, H: e.H, Angle: e.Angle}
	}
	f.Bullets = make([]body, 0, len(s.Bullets)+len(s.EnemyBullets))
	for _, b := range s.Bullets {
		f.Bullets = append(f.Bullets, body{X: b.X, Y: b.Y, W: b.W, H: b.H, Lifetime: b.Life})
	}
	for _, b := range s.EnemyBullets {
		f.Bullets = append(f.Bullets, body{X: b.X, Y: b.Y, W: b.W, H: b.H, Lifetime: b.Life, Hostile: true})
	}
	f.Particles = make([]body, len(s.Particles))
	for i, p := range s.Particles {
		f.Particles[i] = body{X: p.X, Y: p.Y, Alpha: p.Alpha, Color: hex(p.Color)}
	}
	return f
}

// hex formats a color as #rrggbb.
func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

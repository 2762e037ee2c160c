package client

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tomz197/starfield/internal/draw"
	"github.com/tomz197/starfield/internal/game"
	"github.com/tomz197/starfield/internal/game/config"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On phase or inactivity transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	if c.game.Phase != c.prevPhase || c.isInactive != c.wasInactive {
		c.chunkWriter.Clear()
		c.canvas.ForceRedraw()
		c.prevPhase = c.game.Phase
		c.wasInactive = c.isInactive
	}

	snap := c.game.Snapshot()

	c.canvas.Clear()
	c.drawWorld(snap)

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(snap)

	return c.chunkWriter.Flush()
}

// drawWorld paints every entity of the snapshot onto the canvas, back to front.
func (c *Client) drawWorld(s *game.Snapshot) {
	cv := c.canvas

	for _, st := range s.Stars {
		cv.FillRect(st.X, st.Y, st.Size, st.Size, draw.Fade(config.ColorStar, st.Opacity))
	}

	for i, p := range s.Trail {
		alpha := float64(i+1) / float64(len(s.Trail)) * 0.5
		size := s.Player.W / 3
		cv.FillRect(p.X+(s.Player.W-size)/2, p.Y+(s.Player.H-size)/2, size, size, draw.Fade(config.ColorTrail, alpha))
	}

	for i := range s.Crystals {
		cr := &s.Crystals[i]
		pts := draw.Diamond(cv.BorrowPoints(4), cr.X+cr.W/2, cr.Y+cr.H/2, cr.W, cr.Rotation)
		cv.DrawPolygon(pts, draw.Fade(config.ColorCrystal, cr.Alpha()), true)
	}

	for _, a := range s.Asteroids {
		pts := draw.RotatedRect(cv.BorrowPoints(4), a.X+a.W/2, a.Y+a.H/2, a.W, a.H, a.Rotation)
		cv.DrawPolygon(pts, config.ColorAsteroid, true)
	}

	for _, e := range s.Enemies {
		pts := draw.Ship(cv.BorrowPoints(3), e.X+e.W/2, e.Y+e.H/2, e.W, e.Angle)
		cv.DrawPolygon(pts, config.ColorEnemy, true)
	}

	for _, b := range s.Bullets {
		cv.FillRect(b.X, b.Y, b.W, b.H, config.ColorBullet)
	}
	for _, b := range s.EnemyBullets {
		cv.FillRect(b.X, b.Y, b.W, b.H, config.ColorEnemyBullet)
	}

	for _, p := range s.Particles {
		cv.FillRect(p.X, p.Y, 3, 3, draw.Fade(p.Color, p.Alpha))
	}

	if s.Phase != game.PhaseGameOver {
		pl := s.Player
		pts := draw.Ship(cv.BorrowPoints(3), pl.X+pl.W/2, pl.Y+pl.H/2, pl.W, pl.Angle)
		cv.DrawPolygon(pts, config.ColorPlayer, true)
	}

	if s.Phase == game.PhaseRunning {
		c.drawReticle()
	}
}

// drawReticle draws a small cross at the pointer.
func (c *Client) drawReticle() {
	const arm = 8
	x, y := c.pointerX, c.pointerY
	col := draw.Fade(config.ColorStar, 0.7)
	c.canvas.DrawLine(draw.Point{X: x - arm, Y: y}, draw.Point{X: x + arm, Y: y}, col)
	c.canvas.DrawLine(draw.Point{X: x, Y: y - arm}, draw.Point{X: x, Y: y + arm}, col)
}

// drawUI draws the text overlay for the current phase.
func (c *Client) drawUI(s *game.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch s.Phase {
	case game.PhaseNotStarted:
		c.drawStartScreen(centerX, centerY, s)
	case game.PhaseRunning:
		c.drawPlayingHUD(termWidth, termHeight, s)
	case game.PhaseGameOver:
		c.drawGameOverScreen(centerX, centerY, s)
	}
}

// text writes s at the 1-based canvas position and marks the cells so the
// canvas repaints them next frame.
func (c *Client) text(col, row int, s string) {
	if row < 1 || row > c.canvas.TerminalHeight() {
		return
	}
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, utf8.RuneCountInString(stripANSI(s)))
}

// centered writes s centered on centerX.
func (c *Client) centered(centerX, row int, s string) {
	c.text(centerX-utf8.RuneCountInString(stripANSI(s))/2, row, s)
}

// stripANSI removes SGR sequences so only visible runes are measured.
func stripANSI(s string) string {
	if !strings.Contains(s, "\033[") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

var titleArt = []string{
	` ___ _____ _   ___ ___ ___ ___ _    ___  `,
	`/ __|_   _/_\ | _ \ __|_ _| __| |  |   \ `,
	`\__ \ | |/ _ \|   / _| | || _|| |__| |) |`,
	`|___/ |_/_/ \_\_|_\_| |___|___|____|___/ `,
}

var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___  `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
}

// drawStartScreen draws the title and instructions.
func (c *Client) drawStartScreen(centerX, centerY int, s *game.Snapshot) {
	titleStartY := centerY - 8
	for i, line := range titleArt {
		c.centered(centerX, titleStartY+i, line)
	}

	subtitle := "~ Explorer ~"
	if s.Variant == config.Survival {
		subtitle = "~ Survival ~"
	}
	c.centered(centerX, titleStartY+len(titleArt)+1, subtitle)

	controlsY := titleStartY + len(titleArt) + 3
	c.centered(centerX, controlsY, "Controls")

	controlLines := []string{
		"W A S D / arrows . . .  Thrust",
		"Mouse / I J K L  . . . .  Aim",
		"Click / SPACE  . . . .  Shoot",
		"Q  . . . . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		c.centered(centerX, controlsY+1+i, line)
	}

	goal := "Collect crystals and avoid asteroids!"
	if s.Variant == config.Survival {
		goal = "One hit is fatal. Keep moving or die!"
	}
	c.centered(centerX, controlsY+len(controlLines)+2, goal)

	// Blinking start prompt
	promptY := controlsY + len(controlLines) + 4
	if time.Now().UnixMilli()/600%2 == 0 {
		c.centered(centerX, promptY, ">>  Press ENTER to Start  <<")
	} else {
		c.centered(centerX, promptY, strings.Repeat(" ", 28))
	}

	if s.AutoStartRemaining > 0 {
		auto := fmt.Sprintf("Launching in %.1f seconds...", s.AutoStartRemaining.Seconds())
		c.centered(centerX, promptY+2, auto)
	}
	if s.HighScore > 0 {
		c.centered(centerX, promptY+3, fmt.Sprintf("High score: %d", s.HighScore))
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, s *game.Snapshot) {
	c.text(2, 1, fmt.Sprintf("Score: %-8d Crystals: %-5d Level: %-3d", s.Score, s.CrystalsCollected, s.Level))

	health := fmt.Sprintf("Health: %-3d", s.Health)
	if s.Health <= 30 {
		health = draw.ColorRed + health + draw.ColorReset
	}
	c.text(termWidth-utf8.RuneCountInString(stripANSI(health))-1, 1, health)

	if s.Variant == config.Explorer {
		c.text(2, termHeight, "Energy "+bar(s.Energy, config.MaxEnergy, 20))
	} else {
		c.text(2, termHeight, fmt.Sprintf("High: %-8d", s.HighScore))
		if s.IdleLimit > 0 {
			c.text(termWidth-27, termHeight, "Idle "+bar(s.IdleTicks, s.IdleLimit, 20))
		}
	}

	status := fmt.Sprintf("%-60s", s.Status)
	c.centered(termWidth/2, termHeight-1, status)
}

// bar renders a fixed-width gauge like [#####     ].
func bar(value, maxValue, width int) string {
	filled := 0
	if maxValue > 0 {
		filled = min(max(value*width/maxValue, 0), width)
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(" ", width-filled) + "]"
}

// drawGameOverScreen draws the final score and the reset countdown.
func (c *Client) drawGameOverScreen(centerX, centerY int, s *game.Snapshot) {
	titleStartY := centerY - 5
	for i, line := range gameOverArt {
		c.centered(centerX, titleStartY+i, line)
	}

	y := titleStartY + len(gameOverArt) + 1
	c.centered(centerX, y, fmt.Sprintf("Final Score: %d", s.Score))
	c.centered(centerX, y+1, fmt.Sprintf("Crystals: %d   Level: %d", s.CrystalsCollected, s.Level))
	if s.Variant == config.Survival {
		best := fmt.Sprintf("High score: %d", s.HighScore)
		if s.Score > 0 && s.Score == s.HighScore {
			best = draw.ColorYellow + "New high score!" + draw.ColorReset
		}
		c.centered(centerX, y+3, best)
	}
	c.centered(centerX, y+5, fmt.Sprintf("Restarting in %.1f seconds...", s.ResetRemaining.Seconds()))
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.centered(centerX, centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	c.centered(centerX, centerY, msg)
	c.centered(centerX, centerY+2, "Press any key to continue")
}

// Package client runs one terminal session: it reads keys and mouse reports,
// ticks a private Game and renders it with the half-block canvas.
package client

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/starfield/internal/draw"
	"github.com/tomz197/starfield/internal/game"
	"github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/input"
	"github.com/tomz197/starfield/internal/object"
	"github.com/tomz197/starfield/internal/score"
)

// Terminal render limits. Larger terminals get a centered, bordered canvas.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 75
)

// Inactivity limits, in seconds without any input byte.
const (
	InactivityWarnUser       = 90
	InactivityDisconnectUser = 120
)

// aimStep is how far one frame of IJKL moves the reticle, in logical units.
const aimStep = 8.0

// Client handles rendering and input for a single terminal.
type Client struct {
	game   *game.Game
	store  score.Store
	logger *log.Logger

	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc

	input     input.Input // This frame's raw input
	pointerX  float64     // Reticle, logical coordinates
	pointerY  float64
	running   bool
	lastInput time.Time

	prevPhase   game.Phase
	isInactive  bool
	wasInactive bool
}

// Options configures the client.
type Options struct {
	Rules        config.Rules
	Store        score.Store // Optional; high scores are not persisted when nil
	Logger       *log.Logger
	TermSizeFunc draw.TermSizeFunc
	Rand         *rand.Rand
}

// New creates a client reading from r and drawing to w.
func New(r *bufio.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	highScore := 0
	if opts.Store != nil {
		best, err := opts.Store.Load()
		if err != nil {
			logger.Error("load high score", "err", err)
		}
		highScore = best
	}

	g := game.New(opts.Rules, game.Options{Rand: opts.Rand, HighScore: highScore})

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc.Size()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, g.Screen.Width, g.Screen.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	px, py := g.Screen.Center()
	return &Client{
		game:         g,
		store:        opts.Store,
		logger:       logger,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		pointerX:     px + 100,
		pointerY:     py,
		running:      true,
		lastInput:    time.Now(),
		prevPhase:    g.Phase,
	}
}

// Run starts the client loop. Blocks until the player quits, the input
// closes or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	if err := draw.EnterScreen(c.writer, input.EnableMouse); err != nil {
		return err
	}
	defer draw.LeaveScreen(c.writer, input.DisableMouse)

	lastTime := time.Now()

	for c.running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		select {
		case <-ctx.Done():
			c.running = false
			continue
		default:
		}

		c.processInput()

		events := c.game.Tick(c.gameInput(), delta)
		c.handleEvents(events)

		c.updateScreen()

		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	return nil
}

// processInput reads this frame's input and tracks inactivity.
func (c *Client) processInput() {
	c.input = input.ReadInput(c.inputStream)

	if len(c.input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive player")
		c.running = false
	} else if time.Since(c.lastInput).Seconds() > InactivityWarnUser {
		c.isInactive = true
	}

	if c.input.Quit {
		c.running = false
	}
}

// gameInput moves the reticle and translates terminal input for the game.
func (c *Client) gameInput() object.Input {
	in := c.input

	if in.Mouse {
		c.pointerX, c.pointerY = c.canvas.TerminalToLogical(in.MouseCol, in.MouseRow)
	}
	if in.AimLeft {
		c.pointerX -= aimStep
	}
	if in.AimRight {
		c.pointerX += aimStep
	}
	if in.AimUp {
		c.pointerY -= aimStep
	}
	if in.AimDown {
		c.pointerY += aimStep
	}
	c.pointerX = min(max(c.pointerX, 0), c.game.Screen.Width)
	c.pointerY = min(max(c.pointerY, 0), c.game.Screen.Height)

	out := object.Input{
		Up:       in.Up,
		Down:     in.Down,
		Left:     in.Left,
		Right:    in.Right,
		PointerX: c.pointerX,
		PointerY: c.pointerY,
	}
	switch c.game.Phase {
	case game.PhaseNotStarted:
		out.Start = in.Start || in.Shoot
		if out.Start {
			input.ResetKeyInput(c.inputStream)
		}
	case game.PhaseRunning:
		out.Shoot = in.Shoot
	}
	return out
}

// handleEvents logs game events and persists new high scores.
func (c *Client) handleEvents(events []game.Event) {
	for _, e := range events {
		switch e.Kind {
		case game.EventStarted:
			c.logger.Info("run started", "variant", c.game.Rules.Variant)
		case game.EventLevelUp:
			c.logger.Info("level up", "level", e.Level, "score", e.Score)
		case game.EventGameOver:
			c.logger.Info("game over", "score", e.Score, "level", e.Level, "cause", e.Cause)
		case game.EventHighScore:
			c.logger.Info("new high score", "score", e.Score)
			if c.store == nil {
				continue
			}
			if _, err := c.store.Submit(e.Score); err != nil {
				c.logger.Error("save high score", "err", err)
			}
		case game.EventReset:
			c.refreshHighScore()
		}
	}
}

// refreshHighScore picks up scores saved by other sessions sharing the store.
func (c *Client) refreshHighScore() {
	if c.store == nil {
		return
	}
	best, err := c.store.Load()
	if err != nil {
		c.logger.Error("load high score", "err", err)
		return
	}
	c.game.HighScore = max(c.game.HighScore, best)
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc.Size()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.Clear()
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = max(min(termWidth, MaxTermWidth), 1)
	renderHeight = max(min(termHeight, MaxTermHeight), 1)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

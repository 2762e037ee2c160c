package web

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/tomz197/starfield/internal/game"
	"github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/object"
	"github.com/tomz197/starfield/internal/score"
)

// session runs one browser's game. The tick loop is the only writer on the
// connection; the read loop only updates the latest input.
type session struct {
	conn   *websocket.Conn
	game   *game.Game
	store  score.Store
	logger *log.Logger

	mu    sync.Mutex
	input inputMessage
	shoot bool // Latched until the next tick
	start bool
}

func newSession(conn *websocket.Conn, rules config.Rules, store score.Store, logger *log.Logger) *session {
	highScore := 0
	if store != nil {
		best, err := store.Load()
		if err != nil {
			logger.Error("load high score", "err", err)
		}
		highScore = best
	}

	return &session{
		conn:   conn,
		game:   game.New(rules, game.Options{HighScore: highScore}),
		store:  store,
		logger: logger,
	}
}

// run ticks the game at the target frame rate and streams frames until the
// browser leaves or ctx is cancelled.
func (s *session) run(ctx context.Context) error {
	defer s.conn.Close()

	s.conn.SetReadLimit(readLimit)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	readErr := make(chan error, 1)
	go func() { readErr <- s.readLoop() }()

	if err := s.write(newHello(s.game.Rules)); err != nil {
		return err
	}

	ticker := time.NewTicker(config.TargetFrameTime)
	defer ticker.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return nil

		case err := <-readErr:
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err

		case <-ping.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}

		case now := <-ticker.C:
			events := s.game.Tick(s.takeInput(), now.Sub(last))
			last = now
			s.handleEvents(events)

			if err := s.write(newFrame(s.game.Snapshot())); err != nil {
				return err
			}
		}
	}
}

// readLoop decodes input messages until the connection fails.
func (s *session) readLoop() error {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return err
		}

		var m inputMessage
		if err := json.Unmarshal(data, &m); err != nil {
			s.logger.Debug("bad input message", "err", err)
			continue
		}

		s.mu.Lock()
		s.input = m
		s.shoot = s.shoot || m.Shoot
		s.start = s.start || m.Start
		s.mu.Unlock()
	}
}

// takeInput returns the held input plus any one-shot actions since the last tick.
func (s *session) takeInput() object.Input {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := s.input.toInput()
	in.Shoot = s.shoot
	in.Start = s.start
	s.shoot, s.start = false, false
	return in
}

func (s *session) write(v any) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(v)
}

// handleEvents logs game events and persists new high scores.
func (s *session) handleEvents(events []game.Event) {
	for _, e := range events {
		switch e.Kind {
		case game.EventStarted:
			s.logger.Info("run started", "variant", s.game.Rules.Variant)
		case game.EventLevelUp:
			s.logger.Info("level up", "level", e.Level, "score", e.Score)
		case game.EventGameOver:
			s.logger.Info("game over", "score", e.Score, "level", e.Level, "cause", e.Cause)
		case game.EventHighScore:
			s.logger.Info("new high score", "score", e.Score)
			if s.store == nil {
				continue
			}
			if _, err := s.store.Submit(e.Score); err != nil {
				s.logger.Error("save high score", "err", err)
			}
		}
	}
}

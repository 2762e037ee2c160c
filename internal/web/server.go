// Package web serves the game to browsers: an embedded canvas page and a
// websocket endpoint where every connection plays its own game.
package web

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/score"
)

// Connection timing.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
	readLimit  = 4 << 10
)

//go:embed static
var staticFiles embed.FS

// Server owns the HTTP handlers and tracks live sessions.
type Server struct {
	rules    config.Rules
	store    score.Store
	logger   *log.Logger
	upgrader websocket.Upgrader

	ctx    context.Context
	nextID atomic.Uint64
	wg     sync.WaitGroup
}

// NewServer creates a server. Sessions end when ctx is cancelled.
func NewServer(ctx context.Context, rules config.Rules, store score.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		rules:  rules,
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 << 10,
			// The page is served from the same origin; other origins are refused
			// by the default check.
		},
		ctx: ctx,
	}
}

// Handler returns the HTTP routes: the page at / and the socket at /ws.
func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err) // embedded directory always exists
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(static)))
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

// Wait blocks until every session has ended.
func (s *Server) Wait() {
	s.wg.Wait()
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", "err", err, "remote", r.RemoteAddr)
		return
	}

	id := s.nextID.Add(1)
	logger := s.logger.With("session", id)
	logger.Info("browser connected", "remote", r.RemoteAddr)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		sess := newSession(conn, s.rules, s.store, logger)
		if err := sess.run(s.ctx); err != nil {
			logger.Warn("session ended", "err", err)
			return
		}
		logger.Info("browser disconnected")
	}()
}

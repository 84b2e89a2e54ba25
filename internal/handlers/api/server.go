package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/KirkDiggler/mafiad/internal/services/mafia"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
)

// Server exposes the mafia service over HTTP and WebSocket
type Server struct {
	mafiaService mafia.Service
	logger       *slog.Logger
	upgrader     websocket.Upgrader
	handler      http.Handler
	http         *http.Server
	config       *Config
}

// Config holds the configuration for the server
type Config struct {
	// Address to listen on
	Addr string

	// Origins allowed by CORS; empty allows any
	CORSAllow []string

	// Mafia service
	MafiaService mafia.Service

	// Metrics is served at /metrics when set
	Metrics http.Handler

	// Logger is optional; slog.Default() is used when nil
	Logger *slog.Logger
}

// New creates a new server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.MafiaService == nil {
		return nil, errors.New("mafia service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		mafiaService: cfg.MafiaService,
		logger:       logger,
		config:       cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// CORS governs browsers; any origin may stream
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.handler = s.routes()

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Health / metrics
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	if s.config.Metrics != nil {
		mux.Handle("GET /metrics", s.config.Metrics)
	}

	// Rooms
	mux.HandleFunc("POST /rooms", s.handleCreateRoom)
	mux.HandleFunc("GET /rooms/{roomID}", s.handleGetRoom)
	mux.HandleFunc("POST /rooms/{roomID}/join", s.handleJoinRoom)
	mux.HandleFunc("POST /rooms/{roomID}/leave", s.handleLeaveRoom)
	mux.HandleFunc("POST /rooms/{roomID}/ready", s.handleReady)
	mux.HandleFunc("POST /rooms/{roomID}/night", s.handleNight)
	mux.HandleFunc("POST /rooms/{roomID}/kill", s.handleKill)
	mux.HandleFunc("POST /rooms/{roomID}/check", s.handleIsKiller)
	mux.HandleFunc("POST /rooms/{roomID}/day", s.handleDay)
	mux.HandleFunc("GET /rooms/{roomID}/notifications", s.handleNotifications)

	// Archive
	mux.HandleFunc("GET /games", s.handleListGames)
	mux.HandleFunc("GET /games/{roomID}", s.handleGetGame)

	allow := s.config.CORSAllow
	if len(allow) == 0 {
		allow = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allow,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(mux)
}

// Handler returns the routed handler with middleware applied
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start binds the listener and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}

	go func() {
		s.logger.Info("server.listening", "addr", ln.Addr().String())
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server.crash", "err", err)
		}
	}()

	return nil
}

// Stop gracefully shuts the server down
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

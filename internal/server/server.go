// Package server provides the HTTP API for fatiao.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lawkit/fatiao/internal/config"
	"github.com/lawkit/fatiao/internal/dispatch"
	"github.com/lawkit/fatiao/internal/index"
	"github.com/lawkit/fatiao/internal/retrieval"
	"github.com/lawkit/fatiao/internal/storage"
)

// Server is the HTTP server for the fatiao API.
type Server struct {
	dispatcher *dispatch.Dispatcher
	retriever  *retrieval.Retriever
	handle     *index.Handle
	store      *storage.Store
	config     *config.Config
	logger     *zap.Logger
	server     *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	dispatcher *dispatch.Dispatcher,
	retriever *retrieval.Retriever,
	handle *index.Handle,
	store *storage.Store,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		dispatcher: dispatcher,
		retriever:  retriever,
		handle:     handle,
		store:      store,
		config:     cfg,
		logger:     logger,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/ask", s.handleAsk)
	r.Post("/api/v1/retrieve", s.handleRetrieve)
	r.Post("/api/v1/sessions", s.handleCreateSession)
	r.Get("/api/v1/sessions/{id}/history", s.handleSessionHistory)
	r.Delete("/api/v1/sessions/{id}", s.handleDeleteSession)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

package status

import (
	"context"
	"errors"
	"net/http"

	"github.com/rudism/pushover-to-gotify/internal/config"
	"github.com/rudism/pushover-to-gotify/internal/logger"
)

// Server serves the status endpoint on the configured address.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

func NewServer(handler *Handler, cfg config.Status, logger *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:    cfg.Address,
			Handler: handler.Init(),
		},
		logger: logger,
	}
}

// RunServer starts serving and blocks until the server stops.
func (s *Server) RunServer() {
	s.logger.Info().Str("address", s.server.Addr).Msg("status server listening")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error().Err(err).Msg("status server stopped")
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() {
	if err := s.server.Shutdown(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("status server shutdown")
	}
}

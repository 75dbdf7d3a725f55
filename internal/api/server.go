package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/wonny/euroquote/pkg/config"
	"github.com/wonny/euroquote/pkg/logger"
)

const (
	readTimeout = 15 * time.Second
	idleTimeout = 60 * time.Second

	// writeMargin leaves room to encode the reply after a fetch that used its whole timeout
	writeMargin = 5 * time.Second
)

// Server serves the quote API. Handlers fetch from Euronext synchronously, so the
// write deadline is derived from the upstream timeout.
// ⭐ SSOT: API 서버 설정은 이 파일에서만
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// New creates a new API server listening on cfg.Port
func New(cfg *config.Config, log *logger.Logger, router http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      router,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout(cfg.Euronext),
			IdleTimeout:  idleTimeout,
		},
		logger: log,
	}
}

// writeTimeout outlasts one upstream fetch so its 502 or quote still reaches the client
func writeTimeout(cfg config.EuronextConfig) time.Duration {
	return cfg.Timeout + writeMargin
}

// Start blocks until the server stops; a graceful shutdown returns nil
func (s *Server) Start() error {
	s.logger.WithFields(map[string]interface{}{
		"addr":          s.httpServer.Addr,
		"write_timeout": s.httpServer.WriteTimeout,
	}).Info("Starting API server")

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
}

// Shutdown waits for in-flight quote requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown API server: %w", err)
	}
	return nil
}

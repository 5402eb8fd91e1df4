// Package server wires the site handlers into an HTTP server with request
// logging and graceful shutdown.
package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

type Timeouts struct {
	Read  time.Duration
	Write time.Duration
}

func New(addr string, handler *Handler, logger *zap.Logger, timeouts Timeouts) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      withRequestLog(handler.Routes(), logger),
			ReadTimeout:  timeouts.Read,
			WriteTimeout: timeouts.Write,
		},
		logger: logger,
	}
}

// ListenAndServe blocks until the server stops. http.ErrServerClosed is
// the normal shutdown signal and is not returned as an error.
func (s *Server) ListenAndServe() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.httpServer.Shutdown(ctx)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func withRequestLog(next http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The websocket route hijacks the connection; wrapping its
		// ResponseWriter would break the upgrade.
		if r.URL.Path == "/ws/search" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Info("Request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// Package server exposes the translation service over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/valpere/transedge/internal"
	"github.com/valpere/transedge/internal/config"
	"github.com/valpere/transedge/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Options struct {
	MaxBodyBytes int64
	Version      string
	Logger       *zap.Logger
}

// NewRouter registers the translate route on "/" together with the health
// and language listing routes and wraps them in the middleware chain.
func NewRouter(svc *service.TranslationService, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "version": opts.Version})
	})
	mux.HandleFunc("GET /languages", func(w http.ResponseWriter, r *http.Request) {
		entries := svc.Languages().Entries()
		out := make([]internal.LanguageInfo, 0, len(entries))
		for _, e := range entries {
			out = append(out, internal.LanguageInfo{Code: e.Code, Name: e.Name})
		}
		writeJSON(w, http.StatusOK, map[string]any{"languages": out})
	})
	mux.Handle("/", &translateHandler{svc: svc, maxBodyBytes: maxBody, logger: logger})

	return Chain(mux, CORS, Recover(logger), RequestID, AccessLog(logger))
}

type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

func New(cfg config.ServerConfig, handler http.Handler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			ErrorLog:          zap.NewStdLog(logger.Named("http")),
		},
		logger: logger,
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", ln.Addr().String()))
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

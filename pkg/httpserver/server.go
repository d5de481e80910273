package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/dmitrymomot/postapi/pkg/logger"
)

// Server runs an http.Server until its context ends or the process receives
// SIGINT or SIGTERM, then drains in-flight requests.
type Server struct {
	cfg     *config
	started chan struct{}

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener

	draining     atomic.Bool
	shutdownOnce sync.Once
	shutdownErr  error
}

// New returns a Server listening on :8080 with a 5s shutdown timeout unless
// options say otherwise.
func New(opts ...Option) *Server {
	cfg := &config{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Server{cfg: cfg, started: make(chan struct{})}
}

// Run listens and serves handler, blocking until shutdown completes.
// Listen and serve failures are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRun)
	}

	ln, err := net.Listen("tcp", s.cfg.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  s.cfg.readTimeout,
		WriteTimeout: s.cfg.writeTimeout,
		IdleTimeout:  s.cfg.idleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv = srv
	s.listener = ln
	s.mu.Unlock()

	s.cfg.logger.InfoContext(ctx, "http server started",
		slog.String("addr", ln.Addr().String()),
		logger.Component("httpserver"),
	)
	close(s.started)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runErr error
	select {
	case <-sigCtx.Done():
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			s.cfg.logger.ErrorContext(ctx, "http server shutdown failed",
				logger.Error(err),
				logger.Component("httpserver"),
			)
		}
		runErr = <-errCh
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

// Shutdown stops accepting connections and waits up to the shutdown timeout
// for in-flight requests. Repeated calls return the first result. Calling it
// before Run is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.shutdownOnce.Do(func() {
		s.draining.Store(true)
		start := time.Now()

		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.shutdownErr = errors.Join(ErrShutdown, err)
		}

		s.cfg.logger.InfoContext(ctx, "http server stopped",
			logger.Duration(time.Since(start)),
			logger.Component("httpserver"),
		)
	})

	return s.shutdownErr
}

// Started is closed once the server is listening.
func (s *Server) Started() <-chan struct{} {
	return s.started
}

// Addr returns the bound address once the server is listening, and the
// configured address before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.cfg.addr
}

// Ready reports ErrShuttingDown once shutdown has begun. It is meant as a
// readiness check so load balancers stop routing before the listener closes.
func (s *Server) Ready(context.Context) error {
	if s.draining.Load() {
		return ErrShuttingDown
	}
	return nil
}

package httpserver

import "errors"

var (
	ErrStart        = errors.New("failed to start HTTP server")
	ErrShutdown     = errors.New("failed to shutdown HTTP server gracefully")
	ErrAlreadyRun   = errors.New("server already running")
	ErrShuttingDown = errors.New("server is shutting down")
)

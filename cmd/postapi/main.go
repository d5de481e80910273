package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/postapi/pkg/config"
	"github.com/dmitrymomot/postapi/pkg/environment"
	"github.com/dmitrymomot/postapi/pkg/httpserver"
	"github.com/dmitrymomot/postapi/pkg/logger"
	"github.com/dmitrymomot/postapi/pkg/requestid"
)

func main() {
	if err := run(); err != nil {
		slog.Error("postapi stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(level),
		logger.WithEnvironment(environment.Parse(cfg.AppEnv), cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))

	return srv.Run(ctx, newRouter(routerDeps{
		cfg:      cfg,
		log:      log,
		registry: reg,
		ready:    srv.Ready,
	}))
}

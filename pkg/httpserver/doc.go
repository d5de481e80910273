// Package httpserver runs the service's HTTP listener with graceful shutdown.
//
// Run blocks until its context is canceled or the process receives SIGINT
// or SIGTERM, then calls Shutdown, which stops accepting connections and
// gives in-flight requests up to the shutdown timeout to finish. Once
// shutdown starts, Server.Ready fails so a ReadinessHandler using it reports
// NOT_READY while the server drains.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	r.Get("/health/live", httpserver.LivenessHandler())
//	r.Get("/health/ready", httpserver.ReadinessHandler(log, srv.Ready))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
package httpserver

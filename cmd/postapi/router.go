package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/postapi/handler"
	"github.com/dmitrymomot/postapi/modules/post"
	"github.com/dmitrymomot/postapi/pkg/environment"
	"github.com/dmitrymomot/postapi/pkg/filter"
	"github.com/dmitrymomot/postapi/pkg/httpserver"
	"github.com/dmitrymomot/postapi/pkg/metrics"
	"github.com/dmitrymomot/postapi/pkg/requestid"
)

const metricsNamespace = "postapi"

type routerDeps struct {
	cfg      Config
	log      *slog.Logger
	registry *prometheus.Registry
	ready    httpserver.Check
	posts    []post.Option
}

func newRouter(d routerDeps) http.Handler {
	validators := filter.NewRegistry()
	post.RegisterValidators(validators)

	m := metrics.NewHTTP(d.registry, metricsNamespace)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(environment.Parse(d.cfg.AppEnv)),
		m.Middleware,
		handler.Recoverer(d.log),
		middleware.CleanPath,
		cors.Handler(cors.Options{
			AllowedOrigins: d.cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", requestid.Header},
			ExposedHeaders: []string{requestid.Header},
			MaxAge:         300,
		}),
	)

	notFound := handler.JSONError(handler.ErrNotFound)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = notFound.Render(w, r)
	})
	notAllowed := handler.JSONError(handler.ErrMethodNotAllowed)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = notAllowed.Render(w, r)
	})

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(d.log, d.ready))
	r.Handle("/metrics", metrics.Handler(d.registry))

	opts := append([]post.Option{post.WithLookup(validators), post.WithLogger(d.log)}, d.posts...)
	post.NewService(opts...).Routes(r)

	return r
}

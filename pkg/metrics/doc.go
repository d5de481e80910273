// Package metrics provides Prometheus HTTP instrumentation.
//
//	reg := prometheus.NewRegistry()
//	m := metrics.NewHTTP(reg, "postapi")
//	r.Use(m.Middleware)
//	r.Handle("/metrics", metrics.Handler(reg))
package metrics

// Package middleware provides HTTP middleware for the componentx style server.
//
// This package includes:
//   - OpenTelemetry tracing middleware
//   - Prometheus request metrics middleware
//
// # OpenTelemetry Middleware
//
// Every request gets a server span named after its method and chi route
// pattern. The tracer comes from the global provider:
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("styles")))
//
// # Prometheus Metrics
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r.Use(m.Handler)
//
// Metrics collected:
//   - componentx_http_requests_total{route, method, status}
//   - componentx_http_request_duration_seconds{route, method}
//
// Routes are labelled with the chi pattern (e.g. /styles/{name}.css), not
// the raw path, to keep label cardinality bounded.
package middleware

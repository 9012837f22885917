package handlers

import (
	"net/http"

	"role-explorer/pkg/config"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// TracingMiddleware creates HTTP tracing middleware using OpenTelemetry.
// It is a passthrough when telemetry is disabled.
func TracingMiddleware(serviceName string) func(http.Handler) http.Handler {
	if !config.IsTelemetryEnabled() {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return otelhttp.NewMiddleware(
		serviceName,
		otelhttp.WithTracerProvider(otel.GetTracerProvider()),
		otelhttp.WithPropagators(otel.GetTextMapPropagator()),
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

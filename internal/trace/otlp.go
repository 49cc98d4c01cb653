// Package trace records roller transitions as OpenTelemetry spans.
package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// NewProvider creates a tracer provider exporting to the URL in
// OTEL_EXPORTER_OTLP_ENDPOINT (e.g. http://localhost:4318). Returns nil when
// the endpoint is not configured (tracing disabled).
func NewProvider(ctx context.Context) (*sdktrace.TracerProvider, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return nil, nil // Disabled
	}

	// The exporter reads the endpoint URL (scheme, host, optional path) and
	// OTEL_EXPORTER_OTLP_HEADERS itself; an http:// scheme disables TLS.
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "rollpanel"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

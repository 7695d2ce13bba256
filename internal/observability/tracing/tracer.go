// Package tracing provides OpenTelemetry tracing integration for the HTTP
// layer: span creation per request, W3C trace-context propagation and trace
// ID exposure for log correlation.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the knowledge hub service.
var tracer = otel.Tracer("knowledge-hub")

// GetTracer returns the tracer for creating spans.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}

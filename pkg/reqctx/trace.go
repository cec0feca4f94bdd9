package reqctx

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TraceInfo is the part of an OpenTelemetry span context worth logging.
type TraceInfo struct {
	// TraceID is a 32-character hex string.
	TraceID string

	// SpanID is a 16-character hex string.
	SpanID string

	Sampled bool
}

// TraceFromContext reads the active span. Returns nil, false when ctx carries
// no valid span, e.g. with tracing disabled.
func TraceFromContext(ctx context.Context) (*TraceInfo, bool) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil, false
	}
	return &TraceInfo{
		TraceID: sc.TraceID().String(),
		SpanID:  sc.SpanID().String(),
		Sampled: sc.IsSampled(),
	}, true
}

// TraceIDFromContext returns the trace ID, or empty string if not set.
func TraceIDFromContext(ctx context.Context) string {
	info, ok := TraceFromContext(ctx)
	if !ok {
		return ""
	}
	return info.TraceID
}

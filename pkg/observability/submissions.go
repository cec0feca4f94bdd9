package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Submission outcomes, used as the "outcome" attribute.
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
)

// SubmissionRecorder counts contact submissions by outcome.
type SubmissionRecorder struct {
	counter metric.Int64Counter
}

// NewSubmissionRecorder uses the global meter provider, which is a no-op
// until InitTelemetry installs one.
func NewSubmissionRecorder() *SubmissionRecorder {
	counter, _ := otel.Meter(instrumentationName).Int64Counter(
		"contact_submissions_total",
		metric.WithDescription("Contact form submissions by outcome"),
		metric.WithUnit("{submission}"),
	)
	return &SubmissionRecorder{counter: counter}
}

// Record adds one submission with outcome and service type.
func (r *SubmissionRecorder) Record(ctx context.Context, outcome, serviceType string) {
	if r == nil || r.counter == nil {
		return
	}
	r.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("service_type", serviceType),
	))
}

// Package reqctx carries request-scoped data through context.Context.
//
// The HTTP request id middleware stores a RequestMeta on every request;
// services and the logging handler read it back without depending on fiber:
//
//	meta, ok := reqctx.RequestMetaFromContext(ctx)
//	rid := reqctx.RequestIDFromContext(ctx)
//
// Trace ids come from the active OpenTelemetry span, when there is one.
package reqctx

package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrSessionID  = "session.id"
	AttrCollection = "regdesk.collection"
	AttrSize       = "regdesk.size"
	AttrTab        = "regdesk.tab"
	AttrRule       = "regdesk.rule"
	AttrError      = "error.message"
)

// Span names.
const (
	SpanCommit      = "store.commit"
	SpanReject      = "store.reject"
	SpanConfigApply = "config.apply"
)

// Event names.
const (
	EventRejected = "validation.rejected"
)

// StartCommit opens a span for replacing one collection.
func StartCommit(ctx context.Context, tracer trace.Tracer, collection string, size int, tab string) (context.Context, trace.Span) {
	return tracer.Start(ctx, SpanCommit,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String(AttrCollection, collection),
			attribute.Int(AttrSize, size),
			attribute.String(AttrTab, tab),
		),
	)
}

// RecordRejection adds a validation event to the span in ctx, if any.
func RecordRejection(ctx context.Context, rule string) {
	trace.SpanFromContext(ctx).AddEvent(EventRejected,
		trace.WithAttributes(attribute.String(AttrRule, rule)),
	)
}

// RecordRejected emits a span for a mutation refused by a validation rule.
func RecordRejected(ctx context.Context, tracer trace.Tracer, collection, rule string) {
	ctx, span := tracer.Start(ctx, SpanReject,
		trace.WithAttributes(attribute.String(AttrCollection, collection)),
	)
	RecordRejection(ctx, rule)
	span.End()
}

// RecordError marks span as failed.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attribute.String(AttrError, err.Error()))
}

package trace

import (
	"context"

	"rollpanel/internal/roller"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Span and attribute names.
const (
	SpanMove       = "roller.move"
	EventQueued    = "roller.move.queued"
	AttrMoveID     = "rollpanel.move.id"
	AttrFlow       = "rollpanel.move.flow"
	AttrDurationMS = "rollpanel.move.duration_ms"
	AttrDataBytes  = "rollpanel.move.data_bytes"
	AttrQueueDepth = "rollpanel.queue.depth"
	AttrQueuedID   = "rollpanel.queued.id"
)

// Observer is a roller.Observer that opens a span when a move starts and
// ends it when the move settles. Moves queued meanwhile are recorded as span
// events on the running move.
type Observer struct {
	tracer oteltrace.Tracer
	ctx    context.Context
	span   oteltrace.Span
}

var _ roller.Observer = (*Observer)(nil)

// NewObserver creates an observer using tp. A nil tp records nothing.
func NewObserver(ctx context.Context, tp oteltrace.TracerProvider) *Observer {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	return &Observer{
		tracer: tp.Tracer("rollpanel/roller"),
		ctx:    ctx,
	}
}

// MoveQueued implements roller.Observer.
func (o *Observer) MoveQueued(req roller.MoveRequest, depth int) {
	if o.span == nil {
		return
	}
	o.span.AddEvent(EventQueued, oteltrace.WithAttributes(
		attribute.String(AttrQueuedID, req.ID),
		attribute.Int(AttrQueueDepth, depth),
	))
}

// MoveStarted implements roller.Observer.
func (o *Observer) MoveStarted(req roller.MoveRequest, flow roller.Flow) {
	_, o.span = o.tracer.Start(o.ctx, SpanMove, oteltrace.WithAttributes(
		attribute.String(AttrMoveID, req.ID),
		attribute.String(AttrFlow, string(flow)),
		attribute.Int64(AttrDurationMS, req.Duration.Milliseconds()),
		attribute.Int(AttrDataBytes, len(req.Data)),
	))
}

// MoveFinished implements roller.Observer.
func (o *Observer) MoveFinished(req roller.MoveRequest, flow roller.Flow) {
	if o.span == nil {
		return
	}
	o.span.End()
	o.span = nil
}

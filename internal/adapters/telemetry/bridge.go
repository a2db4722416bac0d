package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SpanObserver receives the outcome of every finished span.
type SpanObserver interface {
	ObserveSpan(name string, elapsed time.Duration, failed bool)
}

// Bridge implements sdktrace.SpanProcessor and reports finished spans to a SpanObserver.
type Bridge struct {
	observer SpanObserver
}

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// NewBridge returns a new Bridge.
func NewBridge(observer SpanObserver) *Bridge {
	return &Bridge{observer: observer}
}

// NewProvider creates a tracer provider whose only processor is a Bridge to observer.
func NewProvider(observer SpanObserver) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewBridge(observer)))
}

// OnStart does nothing.
func (b *Bridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.observer == nil || !s.SpanContext().IsValid() {
		return
	}
	b.observer.ObserveSpan(s.Name(), s.EndTime().Sub(s.StartTime()), s.Status().Code == codes.Error)
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error {
	return nil
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(context.Context) error {
	return nil
}

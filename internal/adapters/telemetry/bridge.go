package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"go.gauntlet.dev/gauntlet/internal/core/ports"
)

// LoggerBridge implements sdktrace.SpanProcessor to surface span lifecycle
// as log lines. It is installed as the global tracer provider so the
// OTelTracer has somewhere to record to even without an exporter endpoint.
type LoggerBridge struct {
	logger ports.Logger
}

// NewLoggerBridge returns a new LoggerBridge.
func NewLoggerBridge(logger ports.Logger) *LoggerBridge {
	return &LoggerBridge{logger: logger}
}

// Install registers a tracer provider backed by this bridge as the global
// OTel provider and returns its shutdown function.
func (b *LoggerBridge) Install() func(context.Context) error {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(b))
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}

// OnStart is called when a span starts.
func (b *LoggerBridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	b.logger.Info("step started: " + s.Name())
}

// OnEnd is called when a span ends.
func (b *LoggerBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	if s.Status().Code == codes.Error {
		b.logger.Warn("step failed: " + s.Name() + " (" + elapsed.String() + ")")
		return
	}
	b.logger.Info("step finished: " + s.Name() + " (" + elapsed.String() + ")")
}

// ForceFlush does nothing.
func (b *LoggerBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LoggerBridge) Shutdown(_ context.Context) error {
	return nil
}

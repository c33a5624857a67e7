package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	progrocktracer "go.gauntlet.dev/gauntlet/internal/adapters/telemetry/progrock"
	"go.trai.ch/zerr"
)

func TestTracer_SpanLifecycle(t *testing.T) {
	tracer := progrocktracer.New()
	defer func() { _ = tracer.Close() }()

	_, span := tracer.Start(context.Background(), "stable/verify")
	require.NotNil(t, span)

	n, err := span.Write([]byte("running 12 tests\n"))
	require.NoError(t, err)
	assert.Equal(t, 17, n)

	span.SetAttribute("skipped", false)
	span.End()
}

func TestTracer_FailedSpan(t *testing.T) {
	tracer := progrocktracer.New()
	defer func() { _ = tracer.Close() }()

	_, span := tracer.Start(context.Background(), "nightly/verify")
	span.RecordError(zerr.New("exit status 101"))
	span.End()
}

package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.gauntlet.dev/gauntlet/internal/adapters/telemetry"
	"go.gauntlet.dev/gauntlet/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "noop")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	n, err := span.Write([]byte("discarded"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	span.SetAttribute("key", "value")
	span.RecordError(zerr.New("ignored"))
	span.End()
	tracer.EmitPlan(ctx, []string{"fetch", "verify"})
}

// The bridge surfaces span lifecycle as log lines: start, then finished or
// failed depending on the recorded status.
func TestLoggerBridge_SpanLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("step started: stable/fetch").Times(1)
	mockLogger.EXPECT().Info(newStringPrefixMatcher("step finished: stable/fetch")).Times(1)
	mockLogger.EXPECT().Info("step started: stable/verify").Times(1)
	mockLogger.EXPECT().Warn(newStringPrefixMatcher("step failed: stable/verify")).Times(1)

	shutdown := telemetry.NewLoggerBridge(mockLogger).Install()
	defer func() { _ = shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test")

	_, passed := tracer.Start(context.Background(), "stable/fetch")
	passed.End()

	_, failed := tracer.Start(context.Background(), "stable/verify")
	failed.RecordError(zerr.New("cargo test exited 101"))
	failed.End()
}

type stringPrefixMatcher struct {
	prefix string
}

func newStringPrefixMatcher(prefix string) gomock.Matcher {
	return stringPrefixMatcher{prefix: prefix}
}

func (m stringPrefixMatcher) Matches(x any) bool {
	s, ok := x.(string)
	return ok && len(s) >= len(m.prefix) && s[:len(m.prefix)] == m.prefix
}

func (m stringPrefixMatcher) String() string {
	return "has prefix " + m.prefix
}

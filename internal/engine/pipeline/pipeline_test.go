package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.gauntlet.dev/gauntlet/internal/adapters/telemetry"
	"go.gauntlet.dev/gauntlet/internal/core/ports"
	"go.gauntlet.dev/gauntlet/internal/core/ports/mocks"
	"go.gauntlet.dev/gauntlet/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func step(name string, order *[]string, err error) pipeline.Step {
	return pipeline.Step{
		Name: name,
		Run: func(_ context.Context, _ ports.Span) error {
			*order = append(*order, name)
			return err
		},
	}
}

func TestPipeline_Run_Order(t *testing.T) {
	var order []string

	p := pipeline.New("stable", newLogger(t), telemetry.NewNoOpTracer(),
		step("fetch", &order, nil),
		step("provision", &order, nil),
		step("toolchain", &order, nil),
		step("snapshot", &order, nil),
		step("verify", &order, nil),
	)

	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, []string{"fetch", "provision", "toolchain", "snapshot", "verify"}, order)
}

// The first failing step aborts the run; later steps never execute.
func TestPipeline_Run_FailFast(t *testing.T) {
	var order []string
	boom := zerr.New("clone refused")

	p := pipeline.New("stable", newLogger(t), telemetry.NewNoOpTracer(),
		step("fetch", &order, boom),
		step("provision", &order, nil),
		step("verify", &order, nil),
	)

	err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"fetch"}, order)
}

func TestPipeline_Run_SkipGuard(t *testing.T) {
	var order []string

	skipped := pipeline.Step{
		Name: "fetch",
		Skip: func(_ context.Context) (bool, string, error) {
			return true, "no remote configured", nil
		},
		Run: func(_ context.Context, _ ports.Span) error {
			order = append(order, "fetch")
			return nil
		},
	}

	p := pipeline.New("stable", newLogger(t), telemetry.NewNoOpTracer(),
		skipped,
		step("verify", &order, nil),
	)

	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, []string{"verify"}, order, "skipped step must not run, later steps must")
}

func TestPipeline_Run_SkipGuardError(t *testing.T) {
	var order []string
	boom := zerr.New("cannot stat checkout")

	guarded := pipeline.Step{
		Name: "fetch",
		Skip: func(_ context.Context) (bool, string, error) {
			return false, "", boom
		},
		Run: func(_ context.Context, _ ports.Span) error {
			order = append(order, "fetch")
			return nil
		},
	}

	p := pipeline.New("stable", newLogger(t), telemetry.NewNoOpTracer(),
		guarded,
		step("verify", &order, nil),
	)

	err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, order)
}

func TestPipeline_Run_Cancellation(t *testing.T) {
	var order []string
	ctx, cancel := context.WithCancel(context.Background())

	cancelling := pipeline.Step{
		Name: "fetch",
		Run: func(_ context.Context, _ ports.Span) error {
			order = append(order, "fetch")
			cancel()
			return nil
		},
	}

	p := pipeline.New("stable", newLogger(t), telemetry.NewNoOpTracer(),
		cancelling,
		step("verify", &order, nil),
	)

	err := p.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"fetch"}, order)
}

func TestPipeline_Run_StepContextAttached(t *testing.T) {
	var order []string
	boom := zerr.New("exit status 101")

	p := pipeline.New("nightly", newLogger(t), telemetry.NewNoOpTracer(),
		step("verify", &order, boom),
	)

	err := p.Run(context.Background())
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "verify", zErr.Metadata()["step"])
}

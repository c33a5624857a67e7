// Package pipeline implements the ordered step sequence of a verification run.
package pipeline

import (
	"context"

	"go.gauntlet.dev/gauntlet/internal/core/ports"
	"go.trai.ch/zerr"
)

// Step is one named stage of a run. Steps execute strictly in order; the
// first failure terminates the run with no retry.
type Step struct {
	// Name identifies the step in logs and spans.
	Name string

	// Skip, when set, is the step's precondition guard. It reports whether
	// the step should be skipped and why. A guard error is a step failure.
	Skip func(ctx context.Context) (bool, string, error)

	// Run executes the step. Output belongs on the span, which streams it
	// to whatever renderer is active.
	Run func(ctx context.Context, span ports.Span) error
}

// Pipeline is a linear, fail-fast sequence of steps for one matrix entry.
type Pipeline struct {
	name   string
	steps  []Step
	logger ports.Logger
	tracer ports.Tracer
}

// New creates a Pipeline. The name scopes span names, one pipeline per
// matrix entry.
func New(name string, logger ports.Logger, tracer ports.Tracer, steps ...Step) *Pipeline {
	return &Pipeline{
		name:   name,
		steps:  steps,
		logger: logger,
		tracer: tracer,
	}
}

// Run executes the steps in order. The first failing step aborts the run
// and its error is returned with step context attached; later steps never
// execute. Cancellation of ctx aborts before the next step starts.
func (p *Pipeline) Run(ctx context.Context) error {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name
	}
	p.tracer.EmitPlan(ctx, names)

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.runStep(ctx, step); err != nil {
			return zerr.With(zerr.Wrap(err, "step failed"), "step", step.Name)
		}
	}
	return nil
}

func (p *Pipeline) runStep(ctx context.Context, step Step) error {
	stepCtx, span := p.tracer.Start(ctx, p.name+"/"+step.Name)
	defer span.End()

	if step.Skip != nil {
		skip, reason, err := step.Skip(stepCtx)
		if err != nil {
			span.RecordError(err)
			return err
		}
		if skip {
			span.SetAttribute("skipped", true)
			span.SetAttribute("reason", reason)
			p.logger.Info("skipping " + step.Name + ": " + reason)
			return nil
		}
	}

	if err := step.Run(stepCtx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

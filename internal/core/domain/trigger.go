package domain

import "go.trai.ch/zerr"

// TriggerEvent is the kind of integration event that started a pipeline run.
type TriggerEvent string

const (
	// TriggerPush is an integration event on the primary branch.
	TriggerPush TriggerEvent = "push"
	// TriggerPullRequest is a proposed-change review event.
	TriggerPullRequest TriggerEvent = "pull_request"
)

// Trigger describes what started the run. It is consumed only at the CLI
// boundary (logging and span attributes); the pipeline steps never see it.
type Trigger struct {
	Event TriggerEvent
	Ref   string
}

// ParseTriggerEvent validates an event name supplied on the command line.
func ParseTriggerEvent(s string) (TriggerEvent, error) {
	switch TriggerEvent(s) {
	case TriggerPush, TriggerPullRequest:
		return TriggerEvent(s), nil
	default:
		return "", zerr.With(ErrUnknownTrigger, "event", s)
	}
}

package domain_test

import (
	"errors"
	"testing"

	"go.gauntlet.dev/gauntlet/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseTriggerEvent(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.TriggerEvent
		wantErr bool
	}{
		{input: "push", want: domain.TriggerPush},
		{input: "pull_request", want: domain.TriggerPullRequest},
		{input: "schedule", wantErr: true},
		{input: "", wantErr: true},
		{input: "Push", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseTriggerEvent(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnknownTrigger) {
					t.Fatalf("expected ErrUnknownTrigger, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseTriggerEvent_Metadata(t *testing.T) {
	_, err := domain.ParseTriggerEvent("schedule")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if event, ok := meta["event"].(string); !ok || event != "schedule" {
		t.Errorf("expected metadata event=schedule, got %v", meta["event"])
	}
}

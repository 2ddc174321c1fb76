package model_test

import (
	"testing"
	"time"

	"smart-task-scheduler/internal/model"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		status   model.Status
		resolved bool
		valid    bool
	}{
		{status: model.StatusPending, resolved: false, valid: true},
		{status: model.StatusCompleted, resolved: true, valid: true},
		{status: model.StatusMissed, resolved: true, valid: true},
		{status: model.Status("archived"), resolved: false, valid: false},
	}

	for _, tt := range tests {
		if got := tt.status.IsResolved(); got != tt.resolved {
			t.Errorf("%q.IsResolved() = %v, want %v", tt.status, got, tt.resolved)
		}
		if got := tt.status.IsValid(); got != tt.valid {
			t.Errorf("%q.IsValid() = %v, want %v", tt.status, got, tt.valid)
		}
	}
}

func TestKindOf(t *testing.T) {
	idx := 0
	child := model.Event{ID: "c", SegmentOf: "p", SegmentIndex: &idx}
	parent := model.Event{ID: "p"}

	if got := model.KindOf(child, 0); got != model.KindChild {
		t.Errorf("expected child, got %s", got)
	}
	if got := model.KindOf(parent, 3); got != model.KindParent {
		t.Errorf("expected parent, got %s", got)
	}
	if got := model.KindOf(parent, 0); got != model.KindStandalone {
		t.Errorf("expected standalone, got %s", got)
	}
	if child.Index() != 0 || parent.Index() != -1 {
		t.Errorf("unexpected indexes: child=%d parent=%d", child.Index(), parent.Index())
	}
}

func TestDurationMinutes(t *testing.T) {
	start := time.Date(2026, 11, 12, 14, 0, 0, 0, time.UTC)
	e := model.Event{Start: start, End: start.Add(200*time.Minute + 30*time.Second)}
	if got := e.DurationMinutes(); got != 200 {
		t.Errorf("DurationMinutes() = %d, want 200", got)
	}
}

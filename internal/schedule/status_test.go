package schedule

import (
	"errors"
	"testing"
	"time"

	"smart-task-scheduler/internal/model"
)

func children(statuses ...model.Status) []model.Event {
	out := make([]model.Event, len(statuses))
	for i, s := range statuses {
		idx := i
		out[i] = model.Event{ID: string(rune('a' + i)), SegmentOf: "p", SegmentIndex: &idx, Status: s}
	}
	return out
}

func TestFinalize(t *testing.T) {
	tests := []struct {
		name     string
		children []model.Event
		want     model.Status
		wantOK   bool
	}{
		{"missed beats completed", children(model.StatusCompleted, model.StatusCompleted, model.StatusMissed), model.StatusMissed, true},
		{"all completed", children(model.StatusCompleted, model.StatusCompleted, model.StatusCompleted), model.StatusCompleted, true},
		{"partial does not finalize", children(model.StatusCompleted, model.StatusPending, model.StatusMissed), model.StatusPending, false},
		{"no children", nil, model.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Finalize(tt.children)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Finalize() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name        string
		current     model.Status
		requested   model.Status
		want        model.Status
		wantChanged bool
	}{
		{"pending to completed", model.StatusPending, model.StatusCompleted, model.StatusCompleted, true},
		{"pending to missed", model.StatusPending, model.StatusMissed, model.StatusMissed, true},
		{"re-mark is a no-op", model.StatusCompleted, model.StatusCompleted, model.StatusCompleted, false},
		{"resolved is not overwritten", model.StatusMissed, model.StatusCompleted, model.StatusMissed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Transition(tt.current, tt.requested)
			if got != tt.want || changed != tt.wantChanged {
				t.Errorf("Transition() = %q, %v; want %q, %v", got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestPolicyValidate(t *testing.T) {
	now := time.Date(2025, 11, 12, 12, 0, 0, 0, time.UTC)
	past := model.Event{Start: now.Add(-2 * time.Hour), End: now.Add(-time.Hour)}
	future := model.Event{Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)}

	tests := []struct {
		name    string
		policy  Policy
		event   model.Event
		status  model.Status
		wantErr error
	}{
		{"completed in the past", DefaultPolicy(), past, model.StatusCompleted, nil},
		{"completed in the future", DefaultPolicy(), future, model.StatusCompleted, ErrCompletionInFuture},
		{"missed in the future", DefaultPolicy(), future, model.StatusMissed, nil},
		{"future allowed by policy", Policy{}, future, model.StatusCompleted, nil},
		{"pending is not a mark", DefaultPolicy(), past, model.StatusPending, ErrInvalidStatus},
		{"unknown status", DefaultPolicy(), past, model.Status("skipped"), ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.policy.Validate(tt.event, tt.status, now); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCascadeTargets(t *testing.T) {
	kids := children(model.StatusPending, model.StatusMissed, model.StatusPending)

	if got := DefaultPolicy().CascadeTargets(model.StatusCompleted, kids); len(got) != 2 {
		t.Errorf("completed cascade targets = %d, want 2", len(got))
	}
	if got := DefaultPolicy().CascadeTargets(model.StatusMissed, kids); len(got) != 0 {
		t.Errorf("missed cascade without flag = %d, want 0", len(got))
	}
	if got := (Policy{CascadeMissed: true}).CascadeTargets(model.StatusMissed, kids); len(got) != 2 {
		t.Errorf("missed cascade with flag = %d, want 2", len(got))
	}
}

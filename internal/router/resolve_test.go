package router

import (
	"testing"
	"time"

	"smart-task-scheduler/internal/model"
)

func TestResolveTarget(t *testing.T) {
	t0 := time.Date(2025, 11, 12, 9, 0, 0, 0, time.UTC)
	events := []model.Event{
		{ID: "old", Title: "Study React", Start: t0},
		{ID: "new", Title: "Study React", Start: t0.Add(48 * time.Hour)},
		{ID: "hooks", Title: "Study React hooks deeply", Start: t0.Add(72 * time.Hour)},
		{ID: "gym", Title: "Gym", Start: t0},
	}

	tests := []struct {
		name   string
		phrase string
		want   string
		wantOK bool
	}{
		{"exact match beats a later partial", "study react", "new", true},
		{"substring", "hooks", "hooks", true},
		{"token and", "react deeply", "hooks", true},
		{"case folded", "GYM", "gym", true},
		{"no match", "swimming", "", false},
		{"empty phrase", "  ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveTarget(events, tt.phrase)
			if ok != tt.wantOK || got.ID != tt.want {
				t.Errorf("ResolveTarget(%q) = %q, %v; want %q, %v", tt.phrase, got.ID, ok, tt.want, tt.wantOK)
			}
		})
	}
}

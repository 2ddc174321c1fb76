package router

import (
	"strings"
	"testing"

	"smart-task-scheduler/internal/model"
)

func TestExtractAttributes(t *testing.T) {
	tests := []struct {
		text           string
		wantImportance model.Importance
		wantUrgency    model.Urgency
		wantDifficulty model.Difficulty
	}{
		{"study react urgent", model.ImportanceLow, model.UrgencyHigh, model.DifficultyMedium},
		{"tax return important hard", model.ImportanceHigh, model.UrgencyLow, model.DifficultyHard},
		{"call mom somewhat important", model.ImportanceLow, model.UrgencyLow, model.DifficultyMedium},
		{"walk dog easy urgently", model.ImportanceLow, model.UrgencyHigh, model.DifficultyEasy},
		{"Essay IMPORTANT difficult", model.ImportanceHigh, model.UrgencyLow, model.DifficultyHard},
		{"plain task", model.ImportanceLow, model.UrgencyLow, model.DifficultyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ExtractAttributes(tt.text)
			if got.Importance != tt.wantImportance || got.Urgency != tt.wantUrgency || got.Difficulty != tt.wantDifficulty {
				t.Errorf("ExtractAttributes() = %+v", got)
			}
		})
	}
}

func TestAttributesApply(t *testing.T) {
	e := model.Event{Importance: model.ImportanceHigh, Urgency: model.UrgencyHigh, Difficulty: model.DifficultyHard}

	ExtractAttributes("change essay to not urgent").Apply(&e)
	if e.Urgency != model.UrgencyLow {
		t.Errorf("urgency = %q, want low", e.Urgency)
	}
	if e.Importance != model.ImportanceHigh || e.Difficulty != model.DifficultyHard {
		t.Errorf("unnamed attributes changed: %+v", e)
	}
}

func TestExtractTitle(t *testing.T) {
	strip := func(s string) string {
		s = strings.Replace(s, "november 12", "", 1)
		return strings.Replace(s, "2-4pm", "", 1)
	}

	tests := []struct {
		text string
		want string
	}{
		{"add task study react november 12 2-4pm urgent", "Study react"},
		{"create a new event Team sync on november 12 2-4pm", "Team sync"},
		{"add task november 12 2-4pm urgent important", UntitledTask},
		{"add gym with friends at 2-4pm hard", "Gym with friends"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ExtractTitle(tt.text, strip); got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/router"
	"smart-task-scheduler/internal/schedule"
)

func day(d, h, m int) time.Time {
	return time.Date(2025, 11, d, h, m, 0, 0, time.UTC)
}

func TestHandleCommand_Add(t *testing.T) {
	f := newFixture(t, schedule.DefaultPolicy())

	out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "add task study react november 12 2-4pm urgent"})
	if err != nil {
		t.Fatalf("HandleCommand() error: %v", err)
	}
	if out.Intent != router.IntentAddTask || !out.Success {
		t.Fatalf("HandleCommand() = %s success=%v: %s", out.Intent, out.Success, out.Message)
	}

	e := out.Payload.Event
	if e == nil {
		t.Fatal("expected created event in payload")
	}
	if !e.Start.Equal(day(12, 14, 0)) || !e.End.Equal(day(12, 16, 0)) {
		t.Errorf("interval = %v - %v", e.Start, e.End)
	}
	if e.Urgency != model.UrgencyHigh || e.Importance != model.ImportanceLow || e.Difficulty != model.DifficultyMedium {
		t.Errorf("attributes = %s/%s/%s", e.Importance, e.Urgency, e.Difficulty)
	}
	if e.Title != "Study react" {
		t.Errorf("title = %q", e.Title)
	}

	stored := f.repo.events[e.ID]
	if stored.ExternalID != "gcal-"+e.ID {
		t.Errorf("calendar id not stored: %q", stored.ExternalID)
	}
}

func TestHandleCommand_AddConflict(t *testing.T) {
	f := newFixture(t, schedule.DefaultPolicy())
	f.seed("Gym", day(12, 14, 0), 120)

	out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "add task study react november 12 2-4pm"})
	if err != nil {
		t.Fatalf("HandleCommand() error: %v", err)
	}
	if out.Intent != router.IntentAddTaskConflict || out.Success {
		t.Fatalf("HandleCommand() = %s success=%v", out.Intent, out.Success)
	}
	if len(out.Payload.Conflicts) != 1 || out.Payload.Conflicts[0].Title != "Gym" {
		t.Errorf("conflicts = %+v", out.Payload.Conflicts)
	}
	if len(out.Payload.Suggestions) != 3 || !out.Payload.Suggestions[0].Start.Equal(day(12, 16, 0)) {
		t.Errorf("suggestions = %+v", out.Payload.Suggestions)
	}
	if out.Payload.Candidate == nil || out.Payload.Candidate.Title != "Study react" {
		t.Errorf("candidate = %+v", out.Payload.Candidate)
	}
	if len(f.repo.events) != 1 {
		t.Errorf("conflict must not create an event, have %d", len(f.repo.events))
	}
}

func TestHandleCommand_Recoverable(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantIntent router.Intent
		wantInMsg  string
	}{
		{"past start", "add task standup today 7-8am", router.IntentAddTask, "already passed"},
		{"no time range", "add task study react", router.IntentAddTask, "time range"},
		{"unknown title", "delete swimming", router.IntentDeleteTask, `"swimming"`},
		{"split without count", "split gym", router.IntentSplitTask, "How many segments"},
		{"unknown command", "hello there", router.IntentUnknown, "I didn't understand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, schedule.DefaultPolicy())
			f.seed("Gym", day(12, 9, 0), 60)

			out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: tt.text})
			if err != nil {
				t.Fatalf("HandleCommand() error: %v", err)
			}
			if out.Intent != tt.wantIntent || out.Success {
				t.Errorf("HandleCommand() = %s success=%v", out.Intent, out.Success)
			}
			if !strings.Contains(out.Message, tt.wantInMsg) {
				t.Errorf("message %q does not mention %q", out.Message, tt.wantInMsg)
			}
		})
	}
}

func TestHandleCommand_Errors(t *testing.T) {
	f := newFixture(t, schedule.DefaultPolicy())

	if _, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "   "}); err != event.ErrEmptyCommand {
		t.Errorf("empty text error = %v", err)
	}
	if _, err := f.uc.HandleCommand(context.Background(), model.Scope{}, event.CommandInput{Text: "add x"}); err != event.ErrMissingOwner {
		t.Errorf("missing owner error = %v", err)
	}

	f.repo.listErr = context.DeadlineExceeded
	if _, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "delete gym"}); err == nil {
		t.Errorf("storage failure should surface as an error")
	}
}

func TestHandleCommand_Edit(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		text      string
		wantStart time.Time
		wantEnd   time.Time
		check     func(t *testing.T, e model.Event)
	}{
		{
			name:      "new day and time",
			text:      "reschedule study react to nov 14 3-5pm",
			wantStart: day(14, 15, 0),
			wantEnd:   day(14, 17, 0),
		},
		{
			name:      "time only stays on the event's day",
			text:      "move study react to 5-6pm",
			wantStart: day(12, 17, 0),
			wantEnd:   day(12, 18, 0),
		},
		{
			name:      "rename",
			text:      "rename study react to Reading group",
			wantStart: day(12, 14, 0),
			wantEnd:   day(12, 16, 0),
			check: func(t *testing.T, e model.Event) {
				if e.Title != "Reading group" {
					t.Errorf("title = %q", e.Title)
				}
			},
		},
		{
			name:      "attribute only",
			text:      "change study react to urgent",
			wantStart: day(12, 14, 0),
			wantEnd:   day(12, 16, 0),
			check: func(t *testing.T, e model.Event) {
				if e.Urgency != model.UrgencyHigh {
					t.Errorf("urgency = %q", e.Urgency)
				}
			},
		},
		{
			name:      "range inside the title is not a new time",
			title:     "Read chapters 3-5",
			text:      "edit read chapters 3-5 urgent",
			wantStart: day(12, 14, 0),
			wantEnd:   day(12, 16, 0),
			check: func(t *testing.T, e model.Event) {
				if e.Urgency != model.UrgencyHigh {
					t.Errorf("urgency = %q", e.Urgency)
				}
			},
		},
		{
			name:      "range inside the title with a new range",
			title:     "Read chapters 3-5",
			text:      "move read chapters 3-5 to 6-7pm",
			wantStart: day(12, 18, 0),
			wantEnd:   day(12, 19, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, schedule.DefaultPolicy())
			title := tt.title
			if title == "" {
				title = "Study react"
			}
			seeded := f.seed(title, day(12, 14, 0), 120)

			out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: tt.text})
			if err != nil {
				t.Fatalf("HandleCommand() error: %v", err)
			}
			if out.Intent != router.IntentEditTask || !out.Success {
				t.Fatalf("HandleCommand() = %s success=%v: %s", out.Intent, out.Success, out.Message)
			}

			got := f.repo.events[seeded.ID]
			if !got.Start.Equal(tt.wantStart) || !got.End.Equal(tt.wantEnd) {
				t.Errorf("interval = %v - %v, want %v - %v", got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestHandleCommand_EditWithoutRange(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"clock time", "move gym to 5pm"},
		{"clock time after reschedule", "reschedule gym to 3pm"},
		{"noon", "move gym to noon"},
		{"day and clock time", "move gym to tomorrow at 5pm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, schedule.DefaultPolicy())
			seeded := f.seed("Gym", day(12, 14, 0), 60)

			out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: tt.text})
			if err != nil {
				t.Fatalf("HandleCommand() error: %v", err)
			}
			if out.Intent != router.IntentEditTask || out.Success {
				t.Errorf("HandleCommand() = %s success=%v: %s", out.Intent, out.Success, out.Message)
			}
			if !strings.Contains(out.Message, "time range") {
				t.Errorf("message = %q", out.Message)
			}
			if got := f.repo.events[seeded.ID]; !got.Start.Equal(seeded.Start) || !got.End.Equal(seeded.End) {
				t.Errorf("event moved to %v - %v", got.Start, got.End)
			}
		})
	}
}

func TestHandleCommand_EditConflict(t *testing.T) {
	f := newFixture(t, schedule.DefaultPolicy())
	seeded := f.seed("Study react", day(12, 14, 0), 120)
	f.seed("Gym", day(14, 15, 0), 120)

	out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "reschedule study react to nov 14 3-5pm"})
	if err != nil {
		t.Fatalf("HandleCommand() error: %v", err)
	}
	if out.Intent != router.IntentEditTaskConflict {
		t.Fatalf("intent = %s", out.Intent)
	}
	if len(out.Payload.Suggestions) != 3 {
		t.Errorf("suggestions = %d", len(out.Payload.Suggestions))
	}
	if got := f.repo.events[seeded.ID]; !got.Start.Equal(day(12, 14, 0)) {
		t.Errorf("conflicting edit moved the event to %v", got.Start)
	}
}

func TestHandleCommand_DeleteAndSegments(t *testing.T) {
	t.Run("delete parent removes segments", func(t *testing.T) {
		f := newFixture(t, schedule.DefaultPolicy())
		f.seedFamily("Essay", day(12, 9, 0), model.StatusPending, model.StatusPending, model.StatusPending)

		out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "delete essay"})
		if err != nil {
			t.Fatalf("HandleCommand() error: %v", err)
		}
		if out.Intent != router.IntentDeleteTask || len(out.Payload.DeletedIDs) != 4 {
			t.Errorf("HandleCommand() = %s deleted=%v", out.Intent, out.Payload.DeletedIDs)
		}
		if len(f.repo.events) != 0 {
			t.Errorf("%d events left", len(f.repo.events))
		}
	})

	t.Run("delete segments keeps parent", func(t *testing.T) {
		f := newFixture(t, schedule.DefaultPolicy())
		parent, _ := f.seedFamily("Essay", day(12, 9, 0), model.StatusPending, model.StatusPending, model.StatusPending)

		out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "delete segments of essay"})
		if err != nil {
			t.Fatalf("HandleCommand() error: %v", err)
		}
		if out.Intent != router.IntentDeleteSegments || len(out.Payload.DeletedIDs) != 3 {
			t.Errorf("HandleCommand() = %s deleted=%v", out.Intent, out.Payload.DeletedIDs)
		}
		if _, ok := f.repo.events[parent.ID]; !ok || len(f.repo.events) != 1 {
			t.Errorf("parent should remain alone, have %d events", len(f.repo.events))
		}
	})

	t.Run("numbered segment deletes only that segment", func(t *testing.T) {
		f := newFixture(t, schedule.DefaultPolicy())
		parent, children := f.seedFamily("Study react", day(12, 9, 0), model.StatusPending, model.StatusPending, model.StatusPending)

		out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "delete segment 2 of study react"})
		if err != nil {
			t.Fatalf("HandleCommand() error: %v", err)
		}
		if out.Intent != router.IntentDeleteTask || !out.Success {
			t.Fatalf("HandleCommand() = %s success=%v: %s", out.Intent, out.Success, out.Message)
		}
		if len(out.Payload.DeletedIDs) != 1 || out.Payload.DeletedIDs[0] != children[1].ID {
			t.Errorf("deleted = %v, want [%s]", out.Payload.DeletedIDs, children[1].ID)
		}
		for _, id := range []string{parent.ID, children[0].ID, children[2].ID} {
			if _, ok := f.repo.events[id]; !ok {
				t.Errorf("event %s was deleted", id)
			}
		}
	})

	tests := []struct {
		name      string
		text      string
		wantInMsg string
	}{
		{"segment out of range", "delete segment 5 of study react", "no segment 5"},
		{"segment without number", "delete the segment of study react", "Which segment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, schedule.DefaultPolicy())
			f.seedFamily("Study react", day(12, 9, 0), model.StatusPending, model.StatusPending, model.StatusPending)

			out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: tt.text})
			if err != nil {
				t.Fatalf("HandleCommand() error: %v", err)
			}
			if out.Success || !strings.Contains(out.Message, tt.wantInMsg) {
				t.Errorf("HandleCommand() = success=%v %q", out.Success, out.Message)
			}
			if len(f.repo.events) != 4 {
				t.Errorf("%d events left, want 4", len(f.repo.events))
			}
		})
	}
}

func TestHandleCommand_SplitScenario(t *testing.T) {
	f := newFixture(t, schedule.DefaultPolicy())
	f.seed("Essay", day(12, 10, 0), 200)

	out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "split essay into 3 with 10m breaks"})
	if err != nil {
		t.Fatalf("HandleCommand() error: %v", err)
	}
	if out.Intent != router.IntentSplitTask || !out.Success {
		t.Fatalf("HandleCommand() = %s success=%v: %s", out.Intent, out.Success, out.Message)
	}

	segs := out.Payload.Segments
	if len(segs) != 3 {
		t.Fatalf("segments = %d", len(segs))
	}
	for i, s := range segs {
		if s.DurationMinutes() != 60 {
			t.Errorf("segment %d lasts %d minutes", i, s.DurationMinutes())
		}
		if i > 0 && s.Start.Sub(segs[i-1].End) != 10*time.Minute {
			t.Errorf("break before segment %d = %v", i, s.Start.Sub(segs[i-1].End))
		}
	}
	if !segs[2].End.Equal(day(12, 13, 20)) {
		t.Errorf("last segment ends at %v", segs[2].End)
	}
}

func TestHandleCommand_MarkScenario(t *testing.T) {
	f := newFixture(t, schedule.DefaultPolicy())
	parent, _ := f.seedFamily("Essay", time.Date(2025, 10, 30, 9, 0, 0, 0, time.UTC),
		model.StatusCompleted, model.StatusCompleted, model.StatusPending)

	out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "mark segment 3 of essay missed"})
	if err != nil {
		t.Fatalf("HandleCommand() error: %v", err)
	}
	if out.Intent != router.IntentMarkSegment || !out.Success {
		t.Fatalf("HandleCommand() = %s success=%v: %s", out.Intent, out.Success, out.Message)
	}

	st := out.Payload.Status
	if st == nil || !st.Finalized || !st.ParentUpdated {
		t.Fatalf("status payload = %+v", st)
	}
	if st.Parent == nil || st.Parent.Status != model.StatusMissed {
		t.Errorf("parent = %+v", st.Parent)
	}
	if f.repo.events[parent.ID].Status != model.StatusMissed {
		t.Errorf("stored parent status = %q", f.repo.events[parent.ID].Status)
	}
}

func TestHandleCommand_MarkMessages(t *testing.T) {
	f := newFixture(t, schedule.DefaultPolicy())
	f.seed("Gym", day(12, 9, 0), 60)
	done := f.seed("Run", day(1, 6, 0), 60)
	done.Status = model.StatusCompleted
	f.repo.events[done.ID] = done

	out, _ := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "mark gym completed"})
	if out.Success || !strings.Contains(out.Message, "hasn't ended") {
		t.Errorf("future completion = %v %q", out.Success, out.Message)
	}

	out, _ = f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "mark run done"})
	if !out.Success || out.Payload.Status == nil || out.Payload.Status.Changed {
		t.Errorf("re-mark = %+v", out)
	}
	if !strings.Contains(out.Message, "already completed") {
		t.Errorf("re-mark message = %q", out.Message)
	}

	out, _ = f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "mark segment 4 of gym done"})
	if out.Success || out.Intent != router.IntentMarkSegment {
		t.Errorf("missing segment = %+v", out)
	}
}

func TestHandleCommand_Productivity(t *testing.T) {
	f := newFixture(t, schedule.DefaultPolicy())
	a := f.seed("Read", time.Date(2025, 10, 28, 9, 0, 0, 0, time.UTC), 60)
	b := f.seed("Gym", time.Date(2025, 10, 30, 9, 0, 0, 0, time.UTC), 60)
	a.Status, b.Status = model.StatusCompleted, model.StatusMissed
	f.repo.events[a.ID], f.repo.events[b.ID] = a, b

	out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "what's my productivity"})
	if err != nil {
		t.Fatalf("HandleCommand() error: %v", err)
	}
	if out.Intent != router.IntentProductivity || out.Payload.Weekly == nil {
		t.Fatalf("HandleCommand() = %+v", out)
	}
	w := out.Payload.Weekly
	if !w.WeekStart.Equal(time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("week start = %v", w.WeekStart)
	}
	if w.Days[1].Completed != 1 || w.Days[3].Missed != 1 {
		t.Errorf("buckets = %+v", w.Days)
	}
	if !strings.Contains(out.Message, "50% completion") {
		t.Errorf("message = %q", out.Message)
	}
}

func TestHandleCommand_Schedule(t *testing.T) {
	f := newFixture(t, schedule.DefaultPolicy())
	late := f.seed("Late", day(2, 18, 0), 60)
	early := f.seed("Early", day(2, 8, 0), 60)
	f.seed("Other day", day(3, 8, 0), 60)
	late.Importance, late.Urgency = model.ImportanceHigh, model.UrgencyHigh
	f.repo.events[late.ID] = late

	out, err := f.uc.HandleCommand(context.Background(), testScope, event.CommandInput{Text: "what do I have tomorrow?"})
	if err != nil {
		t.Fatalf("HandleCommand() error: %v", err)
	}
	if out.Intent != router.IntentSchedule {
		t.Fatalf("intent = %s", out.Intent)
	}
	events := out.Payload.Events
	if len(events) != 2 || events[0].ID != late.ID || events[1].ID != early.ID {
		t.Errorf("ranked events = %+v", events)
	}
}

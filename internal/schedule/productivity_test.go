package schedule

import (
	"testing"
	"time"

	"smart-task-scheduler/internal/model"
)

func TestWeeklyBuckets(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	now := time.Date(2025, 11, 13, 10, 0, 0, 0, loc) // Thursday

	at := func(day, hour int) time.Time { return time.Date(2025, 11, day, hour, 0, 0, 0, loc) }
	idx := 0
	events := []model.Event{
		{ID: "mon", Start: at(10, 9), Status: model.StatusCompleted},
		{ID: "mon-late", Start: at(10, 23), Status: model.StatusMissed},
		{ID: "sun", Start: at(16, 8), Status: model.StatusCompleted},
		{ID: "prev-week", Start: at(9, 22), Status: model.StatusCompleted},
		{ID: "next-week", Start: at(17, 1), Status: model.StatusCompleted},
		{ID: "pending", Start: at(12, 9)},
		{ID: "parent", Start: at(12, 9), Status: model.StatusCompleted},
		{ID: "child", Start: at(12, 9), Status: model.StatusCompleted, SegmentOf: "parent", SegmentIndex: &idx},
	}

	got := WeeklyBuckets(events, now, loc)
	if len(got) != 7 {
		t.Fatalf("WeeklyBuckets() returned %d buckets", len(got))
	}
	if got[0].Day != "Mon" || !got[0].Date.Equal(at(10, 0)) {
		t.Errorf("first bucket = %s %v", got[0].Day, got[0].Date)
	}
	if got[0].Completed != 1 || got[0].Missed != 1 {
		t.Errorf("monday = %+v", got[0])
	}
	if got[2].Completed != 1 {
		t.Errorf("wednesday counts parent and child: %+v", got[2])
	}
	if got[6].Day != "Sun" || got[6].Completed != 1 {
		t.Errorf("sunday = %+v", got[6])
	}

	sum := Summarize(got, CountPending(events, now, loc))
	if sum.Completed != 3 || sum.Missed != 1 || sum.Pending != 1 {
		t.Errorf("Summarize() = %+v", sum)
	}
	if sum.CompletionRate != 0.75 {
		t.Errorf("CompletionRate = %v", sum.CompletionRate)
	}
}

func TestRank(t *testing.T) {
	t0 := time.Date(2025, 11, 12, 9, 0, 0, 0, time.UTC)
	events := []model.Event{
		{ID: "neither", Start: t0},
		{ID: "urgent", Urgency: model.UrgencyHigh, Start: t0},
		{ID: "both-late", Importance: model.ImportanceHigh, Urgency: model.UrgencyHigh, Start: t0.Add(time.Hour)},
		{ID: "important", Importance: model.ImportanceHigh, Start: t0},
		{ID: "both-early", Importance: model.ImportanceHigh, Urgency: model.UrgencyHigh, Start: t0},
	}

	want := []string{"both-early", "both-late", "important", "urgent", "neither"}
	for i, e := range Rank(events) {
		if e.ID != want[i] {
			t.Errorf("rank %d = %q, want %q", i, e.ID, want[i])
		}
	}
}

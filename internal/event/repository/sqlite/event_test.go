package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-task-scheduler/internal/event/repository"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/pkg/log"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return New(log.NewNop(), db).(*implRepository)
}

var t0 = time.Date(2025, 11, 12, 14, 0, 0, 0, time.UTC)

func createOpt(owner, title string, start time.Time, minutes int) repository.CreateEventOptions {
	return repository.CreateEventOptions{
		Title:      title,
		Start:      start,
		End:        start.Add(time.Duration(minutes) * time.Minute),
		Importance: model.ImportanceLow,
		Urgency:    model.UrgencyHigh,
		Difficulty: model.DifficultyMedium,
		OwnerID:    owner,
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created, err := repo.CreateEvent(ctx, createOpt("u1", "Study react", t0, 120))
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("CreateEvent() did not assign an id")
	}

	got, err := repo.GetOneEvent(ctx, repository.GetOneEventOptions{ID: created.ID, OwnerID: "u1"})
	if err != nil {
		t.Fatalf("GetOneEvent() error: %v", err)
	}
	if got.Title != "Study react" || !got.Start.Equal(t0) || got.Urgency != model.UrgencyHigh {
		t.Errorf("GetOneEvent() = %+v", got)
	}
	if got.Status != model.StatusPending || got.SegmentIndex != nil {
		t.Errorf("new event should be pending and unsegmented: %+v", got)
	}

	other, err := repo.GetOneEvent(ctx, repository.GetOneEventOptions{ID: created.ID, OwnerID: "u2"})
	if err != nil || other.ID != "" {
		t.Errorf("GetOneEvent() for another owner = %+v, %v", other, err)
	}
}

func TestCreateEventsAndList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	parent, _ := repo.CreateEvent(ctx, createOpt("u1", "Essay", t0, 200))
	opts := make([]repository.CreateEventOptions, 0, 3)
	for i := 0; i < 3; i++ {
		idx := i
		opt := createOpt("u1", "Essay part", t0.Add(time.Duration(i)*70*time.Minute), 60)
		opt.SegmentOf, opt.SegmentIndex = parent.ID, &idx
		opts = append(opts, opt)
	}
	children, err := repo.CreateEvents(ctx, opts)
	if err != nil {
		t.Fatalf("CreateEvents() error: %v", err)
	}
	if len(children) != 3 {
		t.Fatalf("CreateEvents() = %d events", len(children))
	}

	segs, err := repo.ListEvents(ctx, repository.ListEventsOptions{OwnerID: "u1", SegmentOf: parent.ID})
	if err != nil {
		t.Fatalf("ListEvents() error: %v", err)
	}
	for i, s := range segs {
		if s.Index() != i {
			t.Errorf("segment %d has index %d", i, s.Index())
		}
	}

	exact, _ := repo.ListEvents(ctx, repository.ListEventsOptions{OwnerID: "u1", Start: t0, End: t0.Add(200 * time.Minute)})
	if len(exact) != 1 || exact[0].ID != parent.ID {
		t.Errorf("exact interval query = %+v", exact)
	}

	window, _ := repo.ListEvents(ctx, repository.ListEventsOptions{OwnerID: "u1", From: t0.Add(time.Minute), To: t0.Add(3 * time.Hour)})
	if len(window) != 2 {
		t.Errorf("window query returned %d events, want 2", len(window))
	}
}

func TestUpdateStatusOnlyIfPending(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	e, _ := repo.CreateEvent(ctx, createOpt("u1", "Gym", t0, 60))

	changed, err := repo.UpdateStatus(ctx, repository.UpdateStatusOptions{ID: e.ID, OwnerID: "u1", Status: model.StatusMissed, OnlyIfPending: true})
	if err != nil || !changed {
		t.Fatalf("first UpdateStatus() = %v, %v", changed, err)
	}

	changed, err = repo.UpdateStatus(ctx, repository.UpdateStatusOptions{ID: e.ID, OwnerID: "u1", Status: model.StatusCompleted, OnlyIfPending: true})
	if err != nil || changed {
		t.Fatalf("second UpdateStatus() = %v, %v; want no change", changed, err)
	}

	got, _ := repo.GetOneEvent(ctx, repository.GetOneEventOptions{ID: e.ID})
	if got.Status != model.StatusMissed {
		t.Errorf("status = %q, want missed", got.Status)
	}
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	e, _ := repo.CreateEvent(ctx, createOpt("u1", "Gym", t0, 60))

	got, err := repo.UpdateEvent(ctx, repository.UpdateEventOptions{
		ID:         e.ID,
		OwnerID:    "u1",
		Title:      "Swim",
		Start:      t0.Add(time.Hour),
		End:        t0.Add(2 * time.Hour),
		Importance: model.ImportanceHigh,
		Urgency:    model.UrgencyLow,
		Difficulty: model.DifficultyHard,
	})
	if err != nil {
		t.Fatalf("UpdateEvent() error: %v", err)
	}
	if got.Title != "Swim" || !got.Start.Equal(t0.Add(time.Hour)) || got.Difficulty != model.DifficultyHard {
		t.Errorf("UpdateEvent() = %+v", got)
	}

	missing, err := repo.UpdateEvent(ctx, repository.UpdateEventOptions{ID: "nope", OwnerID: "u1", Start: t0, End: t0.Add(time.Hour)})
	if err != nil || missing.ID != "" {
		t.Errorf("UpdateEvent() on missing id = %+v, %v", missing, err)
	}
}

func TestDeleteEvents(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	parent, _ := repo.CreateEvent(ctx, createOpt("u1", "Essay", t0, 200))
	idx := 0
	opt := createOpt("u1", "Essay (1/1)", t0, 60)
	opt.SegmentOf, opt.SegmentIndex = parent.ID, &idx
	_, _ = repo.CreateEvents(ctx, []repository.CreateEventOptions{opt})

	n, err := repo.DeleteEvents(ctx, repository.DeleteEventsOptions{OwnerID: "u1", SegmentOf: parent.ID})
	if err != nil || n != 1 {
		t.Fatalf("DeleteEvents(segments) = %d, %v", n, err)
	}

	n, err = repo.DeleteEvents(ctx, repository.DeleteEventsOptions{OwnerID: "u1", IDs: []string{parent.ID}})
	if err != nil || n != 1 {
		t.Fatalf("DeleteEvents(ids) = %d, %v", n, err)
	}

	if _, err := repo.DeleteEvents(ctx, repository.DeleteEventsOptions{OwnerID: "u1"}); !errors.Is(err, repository.ErrMissingFilter) {
		t.Errorf("DeleteEvents() without filter error = %v", err)
	}
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"smart-task-scheduler/internal/event/repository"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/router"
	"smart-task-scheduler/internal/schedule"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository keeping events in memory
type mockRepo struct {
	events  map[string]model.Event
	nextID  int
	listErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{events: make(map[string]model.Event)}
}

func (m *mockRepo) insert(opt repository.CreateEventOptions) model.Event {
	m.nextID++
	e := model.Event{
		ID:           fmt.Sprintf("evt-%d", m.nextID),
		Title:        opt.Title,
		Start:        opt.Start,
		End:          opt.End,
		Importance:   opt.Importance,
		Urgency:      opt.Urgency,
		Difficulty:   opt.Difficulty,
		OwnerID:      opt.OwnerID,
		SegmentOf:    opt.SegmentOf,
		SegmentIndex: opt.SegmentIndex,
		IsRecurring:  opt.IsRecurring,
		ExternalID:   opt.ExternalID,
	}
	m.events[e.ID] = e
	return e
}

func (m *mockRepo) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	return m.insert(opt), nil
}

func (m *mockRepo) CreateEvents(ctx context.Context, opts []repository.CreateEventOptions) ([]model.Event, error) {
	out := make([]model.Event, 0, len(opts))
	for _, opt := range opts {
		out = append(out, m.insert(opt))
	}
	return out, nil
}

func (m *mockRepo) GetOneEvent(ctx context.Context, opt repository.GetOneEventOptions) (model.Event, error) {
	e, ok := m.events[opt.ID]
	if !ok || (opt.OwnerID != "" && e.OwnerID != opt.OwnerID) {
		return model.Event{}, nil
	}
	return e, nil
}

func (m *mockRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]model.Event, 0)
	for _, e := range m.events {
		switch {
		case opt.OwnerID != "" && e.OwnerID != opt.OwnerID:
		case opt.SegmentOf != "" && e.SegmentOf != opt.SegmentOf:
		case !opt.From.IsZero() && e.Start.Before(opt.From):
		case !opt.To.IsZero() && !e.Start.Before(opt.To):
		case !opt.Start.IsZero() && !e.Start.Equal(opt.Start):
		case !opt.End.IsZero() && !e.End.Equal(opt.End):
		default:
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].Index() < out[j].Index()
	})
	return out, nil
}

func (m *mockRepo) UpdateEvent(ctx context.Context, opt repository.UpdateEventOptions) (model.Event, error) {
	e, ok := m.events[opt.ID]
	if !ok || (opt.OwnerID != "" && e.OwnerID != opt.OwnerID) {
		return model.Event{}, nil
	}
	e.Title, e.Start, e.End = opt.Title, opt.Start, opt.End
	e.Importance, e.Urgency, e.Difficulty = opt.Importance, opt.Urgency, opt.Difficulty
	e.ExternalID = opt.ExternalID
	m.events[e.ID] = e
	return e, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, opt repository.UpdateStatusOptions) (bool, error) {
	e, ok := m.events[opt.ID]
	if !ok || (opt.OwnerID != "" && e.OwnerID != opt.OwnerID) {
		return false, nil
	}
	if opt.OnlyIfPending && e.Status != model.StatusPending {
		return false, nil
	}
	e.Status = opt.Status
	m.events[e.ID] = e
	return true, nil
}

func (m *mockRepo) DeleteEvents(ctx context.Context, opt repository.DeleteEventsOptions) (int, error) {
	n := 0
	for _, id := range opt.IDs {
		if _, ok := m.events[id]; ok {
			delete(m.events, id)
			n++
		}
	}
	if opt.SegmentOf != "" {
		for id, e := range m.events {
			if e.SegmentOf == opt.SegmentOf {
				delete(m.events, id)
				n++
			}
		}
	}
	return n, nil
}

// Mock calendar recording mirrored calls
type mockCalendar struct {
	created []gcalendar.CreateEventRequest
	deleted []string
	err     error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "gcal-" + req.SourceID}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return m.err
}

// testNow is Saturday Nov 1 2025, 09:00 UTC.
var testNow = time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)

var testScope = model.Scope{UserID: "user-1"}

type fixture struct {
	uc       *implUseCase
	repo     *mockRepo
	calendar *mockCalendar
}

func newFixture(t *testing.T, policy schedule.Policy) fixture {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser() error: %v", err)
	}
	repo := newMockRepo()
	cal := &mockCalendar{}
	l := &mockLogger{}
	uc := New(l, repo, parser, router.New(l), cal, Config{
		Policy:              policy,
		DefaultBreakMinutes: 0,
		CalendarID:          "primary",
		Clock:               func() time.Time { return testNow },
	}).(*implUseCase)
	return fixture{uc: uc, repo: repo, calendar: cal}
}

// seed stores an event for the test user starting at start and lasting minutes.
func (f fixture) seed(title string, start time.Time, minutes int) model.Event {
	return f.repo.insert(repository.CreateEventOptions{
		Title:      title,
		Start:      start,
		End:        start.Add(time.Duration(minutes) * time.Minute),
		Importance: model.ImportanceLow,
		Urgency:    model.UrgencyLow,
		Difficulty: model.DifficultyMedium,
		OwnerID:    testScope.UserID,
	})
}

// seedFamily stores a parent with one segment per status, back to back from start.
func (f fixture) seedFamily(title string, start time.Time, statuses ...model.Status) (model.Event, []model.Event) {
	parent := f.seed(title, start, 60*len(statuses))
	children := make([]model.Event, 0, len(statuses))
	for i, s := range statuses {
		idx := i
		c := f.repo.insert(repository.CreateEventOptions{
			Title:        fmt.Sprintf("%s (%d/%d)", title, i+1, len(statuses)),
			Start:        start.Add(time.Duration(i) * time.Hour),
			End:          start.Add(time.Duration(i+1) * time.Hour),
			OwnerID:      testScope.UserID,
			SegmentOf:    parent.ID,
			SegmentIndex: &idx,
		})
		c.Status = s
		f.repo.events[c.ID] = c
		children = append(children, c)
	}
	return parent, children
}

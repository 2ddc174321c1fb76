package usecase

import (
	"context"
	"time"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/event/repository"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/router"
	"smart-task-scheduler/internal/schedule"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/gcalendar"
	pkgLog "smart-task-scheduler/pkg/log"
)

// CalendarMirror copies created events to an external calendar and removes
// them again on delete. *gcalendar.Client satisfies it.
type CalendarMirror interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Config holds the scheduling policy knobs.
type Config struct {
	Policy              schedule.Policy
	DefaultBreakMinutes int
	CalendarID          string
	// Clock returns the current time; nil means time.Now.
	Clock func() time.Time
}

type commandHandler func(ctx context.Context, sc model.Scope, cmd command) (event.CommandOutput, error)

type implUseCase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	dateMath     *datemath.Parser
	router       router.Router
	calendar     CalendarMirror
	calendarID   string
	policy       schedule.Policy
	defaultBreak int
	clock        func() time.Time
	handlers     map[router.Intent]commandHandler
}

var _ event.UseCase = (*implUseCase)(nil)

// New creates a new event UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
	r router.Router,
	calendar CalendarMirror,
	cfg Config,
) event.UseCase {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	uc := &implUseCase{
		l:            l,
		repo:         repo,
		dateMath:     dateMath,
		router:       r,
		calendar:     calendar,
		calendarID:   cfg.CalendarID,
		policy:       cfg.Policy,
		defaultBreak: cfg.DefaultBreakMinutes,
		clock:        clock,
	}
	uc.handlers = map[router.Intent]commandHandler{
		router.IntentProductivity:   uc.handleProductivity,
		router.IntentAddTask:        uc.handleAdd,
		router.IntentEditTask:       uc.handleEdit,
		router.IntentMark:           uc.handleMark,
		router.IntentDeleteSegments: uc.handleDeleteSegments,
		router.IntentDeleteTask:     uc.handleDelete,
		router.IntentSplitTask:      uc.handleSplit,
		router.IntentSchedule:       uc.handleSchedule,
	}
	return uc
}

func (uc *implUseCase) now() time.Time {
	return uc.clock().In(uc.dateMath.Location())
}

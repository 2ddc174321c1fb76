package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/event/repository"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/router"
	"smart-task-scheduler/internal/schedule"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/gcalendar"
)

// getEvent loads an event of the owner in scope or returns ErrEventNotFound.
func (uc *implUseCase) getEvent(ctx context.Context, sc model.Scope, id string) (model.Event, error) {
	e, err := uc.repo.GetOneEvent(ctx, repository.GetOneEventOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		return model.Event{}, err
	}
	if e.ID == "" {
		return model.Event{}, event.ErrEventNotFound
	}
	return e, nil
}

func (uc *implUseCase) children(ctx context.Context, sc model.Scope, parentID string) ([]model.Event, error) {
	return uc.repo.ListEvents(ctx, repository.ListEventsOptions{OwnerID: sc.UserID, SegmentOf: parentID})
}

// conflictsFor returns the owner's events occupying exactly [start, end), minus excludeID.
func (uc *implUseCase) conflictsFor(ctx context.Context, sc model.Scope, start, end time.Time, excludeID string) ([]model.Event, error) {
	existing, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{OwnerID: sc.UserID, Start: start, End: end})
	if err != nil {
		return nil, err
	}
	return schedule.FindConflicts(existing, schedule.Candidate{
		OwnerID:   sc.UserID,
		Start:     start,
		End:       end,
		ExcludeID: excludeID,
	}), nil
}

func (uc *implUseCase) suggest(conflicts []model.Event, duration time.Duration) []schedule.Suggestion {
	return schedule.Suggest(conflicts, duration, uc.now(), uc.dateMath.Location())
}

func (uc *implUseCase) label(start, end time.Time) string {
	return schedule.Label(start, end, uc.dateMath.Location())
}

// resolveTarget finds the event a title phrase names. Top-level events are
// tried first so "study react" does not land on one of its segments.
func (uc *implUseCase) resolveTarget(ctx context.Context, sc model.Scope, phrase string) (model.Event, bool, error) {
	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{OwnerID: sc.UserID})
	if err != nil {
		return model.Event{}, false, err
	}

	topLevel := make([]model.Event, 0, len(events))
	for _, e := range events {
		if !e.IsSegment() {
			topLevel = append(topLevel, e)
		}
	}
	if e, ok := router.ResolveTarget(topLevel, phrase); ok {
		return e, true, nil
	}
	e, ok := router.ResolveTarget(events, phrase)
	return e, ok, nil
}

// familyParent returns e itself, or its parent when e is a segment.
func (uc *implUseCase) familyParent(ctx context.Context, sc model.Scope, e model.Event) (model.Event, error) {
	if !e.IsSegment() {
		return e, nil
	}
	return uc.getEvent(ctx, sc, e.SegmentOf)
}

func validAttributes(imp model.Importance, urg model.Urgency, diff model.Difficulty) bool {
	okImp := imp == model.ImportanceHigh || imp == model.ImportanceLow
	okUrg := urg == model.UrgencyHigh || urg == model.UrgencyLow
	okDiff := diff == model.DifficultyEasy || diff == model.DifficultyMedium || diff == model.DifficultyHard
	return okImp && okUrg && okDiff
}

// clarify turns a recoverable error into a message for the user. ok is false
// for errors that must surface as failures.
func clarify(err error) (string, bool) {
	switch {
	case errors.Is(err, datemath.ErrNoTimeRange):
		return `I couldn't find a time range. Try something like "tomorrow 2-4pm".`, true
	case errors.Is(err, datemath.ErrInvalidRange), errors.Is(err, schedule.ErrInvalidInterval):
		return "The end time must be after the start time.", true
	case errors.Is(err, datemath.ErrInvalidDate):
		return "That date doesn't exist.", true
	case errors.Is(err, datemath.ErrStartInPast):
		return "That time has already passed. Pick a start time in the future.", true
	case errors.Is(err, schedule.ErrNothingToSplit):
		return "A split needs at least 2 segments.", true
	case errors.Is(err, schedule.ErrBelowSegmentFloor):
		return fmt.Sprintf("Only events of at least %d minutes can be split.", schedule.MinSegmentableMinutes), true
	case errors.Is(err, schedule.ErrBreaksTooLarge):
		return "The breaks are too long for this event. Use fewer segments or shorter breaks.", true
	case errors.Is(err, schedule.ErrNegativeBreak):
		return "Breaks can't be negative.", true
	case errors.Is(err, schedule.ErrCompletionInFuture):
		return "That event hasn't ended yet, so it can't be marked completed. You can mark it missed.", true
	case errors.Is(err, schedule.ErrInvalidStatus):
		return "Status must be completed or missed.", true
	case errors.Is(err, event.ErrEventNotFound):
		return "I couldn't find that event.", true
	case errors.Is(err, event.ErrAlreadySegmented):
		return "That event is already split. Delete its segments first to split it again.", true
	case errors.Is(err, event.ErrSplitSegment):
		return "A segment can't be split again.", true
	case errors.Is(err, event.ErrNoSegments):
		return "That event has no segments.", true
	case errors.Is(err, event.ErrEmptyTitle):
		return "The title can't be empty.", true
	case errors.Is(err, event.ErrInvalidAttribute):
		return "Importance and urgency are high or low; difficulty is easy, medium or hard.", true
	}
	return "", false
}

func (uc *implUseCase) colorFor(e model.Event) string {
	switch schedule.QuadrantOf(e) {
	case schedule.QuadrantDoFirst:
		return gcalendar.ColorTomato
	case schedule.QuadrantSchedule:
		return gcalendar.ColorBanana
	case schedule.QuadrantDelegate:
		return gcalendar.ColorPeacock
	default:
		return gcalendar.ColorGraphite
	}
}

// tryMirrorCreate copies e to the external calendar and returns the remote id,
// or "" when no calendar is configured or the call fails (graceful degradation).
func (uc *implUseCase) tryMirrorCreate(ctx context.Context, e model.Event) string {
	if uc.calendar == nil {
		return ""
	}

	created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     e.Title,
		Description: fmt.Sprintf("Quadrant: %s\nDifficulty: %s", schedule.QuadrantOf(e), e.Difficulty),
		StartTime:   e.Start,
		EndTime:     e.End,
		Timezone:    uc.dateMath.Location().String(),
		ColorID:     uc.colorFor(e),
		SourceID:    e.ID,
	})
	if err != nil {
		uc.l.Warnf(ctx, "event.usecase.tryMirrorCreate: calendar mirror failed for %q (non-fatal): %v", e.Title, err)
		return ""
	}
	return created.ID
}

func (uc *implUseCase) tryMirrorDelete(ctx context.Context, events []model.Event) {
	if uc.calendar == nil {
		return
	}
	for _, e := range events {
		if e.ExternalID == "" {
			continue
		}
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, e.ExternalID); err != nil {
			uc.l.Warnf(ctx, "event.usecase.tryMirrorDelete: calendar delete failed for %q (non-fatal): %v", e.Title, err)
		}
	}
}

func quote(title string) string {
	return `"` + strings.TrimSpace(title) + `"`
}

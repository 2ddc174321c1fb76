package usecase

import (
	"context"
	"strings"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/schedule"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/metrics"
)

// Update applies a partial change. A moved interval must start in the future
// unless AllowPast is set, and is conflict-checked against everything but itself.
// Moving a parent does not move its segments.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input event.UpdateInput) (event.UpdateOutput, error) {
	e, err := uc.getEvent(ctx, sc, input.ID)
	if err != nil {
		return event.UpdateOutput{}, err
	}

	if input.Title != nil {
		e.Title = strings.TrimSpace(*input.Title)
		if e.Title == "" {
			return event.UpdateOutput{}, event.ErrEmptyTitle
		}
	}
	if input.Importance != nil {
		e.Importance = *input.Importance
	}
	if input.Urgency != nil {
		e.Urgency = *input.Urgency
	}
	if input.Difficulty != nil {
		e.Difficulty = *input.Difficulty
	}
	if !validAttributes(e.Importance, e.Urgency, e.Difficulty) {
		return event.UpdateOutput{}, event.ErrInvalidAttribute
	}

	moved := false
	if input.Start != nil && !input.Start.Equal(e.Start) {
		e.Start, moved = *input.Start, true
	}
	if input.End != nil && !input.End.Equal(e.End) {
		e.End, moved = *input.End, true
	}
	if !e.End.After(e.Start) {
		return event.UpdateOutput{}, schedule.ErrInvalidInterval
	}

	if moved {
		if !input.AllowPast && !e.Start.After(uc.now()) {
			return event.UpdateOutput{}, datemath.ErrStartInPast
		}
		if !input.AllowDouble {
			conflicts, err := uc.conflictsFor(ctx, sc, e.Start, e.End, e.ID)
			if err != nil {
				uc.l.Errorf(ctx, "event.usecase.Update.conflictsFor: %v", err)
				return event.UpdateOutput{}, err
			}
			if len(conflicts) > 0 {
				metrics.ConflictDetected()
				return event.UpdateOutput{
					Event:       e,
					Conflicts:   conflicts,
					Suggestions: uc.suggest(conflicts, e.Duration()),
				}, event.ErrConflict
			}
		}
	}

	updated, err := uc.repo.UpdateEvent(ctx, updateOptions(e))
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Update.UpdateEvent: %v", err)
		return event.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return event.UpdateOutput{}, event.ErrEventNotFound
	}
	return event.UpdateOutput{Event: updated}, nil
}

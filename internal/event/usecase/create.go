package usecase

import (
	"context"
	"strings"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/event/repository"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/schedule"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/metrics"
)

// Create validates and stores a standalone event. An exact-interval conflict
// returns ErrConflict together with the conflicts and three suggestions.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (event.CreateOutput, error) {
	if sc.UserID == "" {
		return event.CreateOutput{}, event.ErrMissingOwner
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return event.CreateOutput{}, event.ErrEmptyTitle
	}
	if input.Importance == "" {
		input.Importance = model.ImportanceLow
	}
	if input.Urgency == "" {
		input.Urgency = model.UrgencyLow
	}
	if input.Difficulty == "" {
		input.Difficulty = model.DifficultyMedium
	}
	if !validAttributes(input.Importance, input.Urgency, input.Difficulty) {
		return event.CreateOutput{}, event.ErrInvalidAttribute
	}
	if !input.End.After(input.Start) {
		return event.CreateOutput{}, schedule.ErrInvalidInterval
	}
	if !input.AllowPast && !input.Start.After(uc.now()) {
		return event.CreateOutput{}, datemath.ErrStartInPast
	}

	if !input.AllowDouble {
		conflicts, err := uc.conflictsFor(ctx, sc, input.Start, input.End, "")
		if err != nil {
			uc.l.Errorf(ctx, "event.usecase.Create.conflictsFor: %v", err)
			return event.CreateOutput{}, err
		}
		if len(conflicts) > 0 {
			metrics.ConflictDetected()
			return event.CreateOutput{
				Conflicts:   conflicts,
				Suggestions: uc.suggest(conflicts, input.End.Sub(input.Start)),
			}, event.ErrConflict
		}
	}

	e, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{
		Title:      input.Title,
		Start:      input.Start,
		End:        input.End,
		Importance: input.Importance,
		Urgency:    input.Urgency,
		Difficulty: input.Difficulty,
		OwnerID:    sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Create.CreateEvent: %v", err)
		return event.CreateOutput{}, err
	}

	if externalID := uc.tryMirrorCreate(ctx, e); externalID != "" {
		e.ExternalID = externalID
		if _, err := uc.repo.UpdateEvent(ctx, updateOptions(e)); err != nil {
			uc.l.Warnf(ctx, "event.usecase.Create: storing calendar id for %s failed (non-fatal): %v", e.ID, err)
		}
	}

	uc.l.Infof(ctx, "event.usecase.Create: user=%s event=%s start=%s", sc.UserID, e.ID, e.Start.Format("2006-01-02T15:04"))
	return event.CreateOutput{Event: e}, nil
}

// List returns the owner's events ordered by start.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input event.ListInput) ([]model.Event, error) {
	if sc.UserID == "" {
		return nil, event.ErrMissingOwner
	}
	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{
		OwnerID: sc.UserID,
		From:    input.From,
		To:      input.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.List.ListEvents: %v", err)
		return nil, err
	}
	return events, nil
}

// Detail returns an event with its parent or children.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (event.DetailOutput, error) {
	e, err := uc.getEvent(ctx, sc, id)
	if err != nil {
		return event.DetailOutput{}, err
	}

	out := event.DetailOutput{Event: e}
	if e.IsSegment() {
		parent, err := uc.getEvent(ctx, sc, e.SegmentOf)
		if err == nil {
			out.Parent = &parent
		}
		out.Kind = model.KindChild
		return out, nil
	}

	children, err := uc.children(ctx, sc, e.ID)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Detail.children: %v", err)
		return event.DetailOutput{}, err
	}
	out.Children = children
	out.Kind = model.KindOf(e, len(children))
	return out, nil
}

func updateOptions(e model.Event) repository.UpdateEventOptions {
	return repository.UpdateEventOptions{
		ID:         e.ID,
		OwnerID:    e.OwnerID,
		Title:      e.Title,
		Start:      e.Start,
		End:        e.End,
		Importance: e.Importance,
		Urgency:    e.Urgency,
		Difficulty: e.Difficulty,
		ExternalID: e.ExternalID,
	}
}

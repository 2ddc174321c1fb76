package usecase

import (
	"context"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/event/repository"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/schedule"
)

// Weekly aggregates the owner's completed and missed events over the
// Monday-start week containing now, in the operating timezone.
func (uc *implUseCase) Weekly(ctx context.Context, sc model.Scope) (event.WeeklyOutput, error) {
	if sc.UserID == "" {
		return event.WeeklyOutput{}, event.ErrMissingOwner
	}

	now := uc.now()
	loc := uc.dateMath.Location()
	monday := schedule.WeekStart(now, loc)

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{
		OwnerID: sc.UserID,
		From:    monday,
		To:      monday.AddDate(0, 0, 7),
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Weekly.ListEvents: %v", err)
		return event.WeeklyOutput{}, err
	}

	days := schedule.WeeklyBuckets(events, now, loc)
	return event.WeeklyOutput{
		WeekStart: monday,
		Days:      days,
		Summary:   schedule.Summarize(days, schedule.CountPending(events, now, loc)),
	}, nil
}

package usecase

import (
	"context"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/event/repository"
	"smart-task-scheduler/internal/model"
)

// Delete removes an event. Deleting a parent removes its segments too;
// deleting a segment leaves its siblings and parent alone.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) (event.DeleteOutput, error) {
	e, err := uc.getEvent(ctx, sc, id)
	if err != nil {
		return event.DeleteOutput{}, err
	}

	doomed := []model.Event{e}
	if !e.IsSegment() {
		children, err := uc.children(ctx, sc, e.ID)
		if err != nil {
			uc.l.Errorf(ctx, "event.usecase.Delete.children: %v", err)
			return event.DeleteOutput{}, err
		}
		doomed = append(doomed, children...)
	}

	ids := eventIDs(doomed)
	if _, err := uc.repo.DeleteEvents(ctx, repository.DeleteEventsOptions{OwnerID: sc.UserID, IDs: ids}); err != nil {
		uc.l.Errorf(ctx, "event.usecase.Delete.DeleteEvents: %v", err)
		return event.DeleteOutput{}, err
	}
	uc.tryMirrorDelete(ctx, doomed)

	return event.DeleteOutput{DeletedIDs: ids}, nil
}

// DeleteSegments removes every segment of a parent and keeps the parent.
// A segment id resolves to its parent.
func (uc *implUseCase) DeleteSegments(ctx context.Context, sc model.Scope, id string) (event.DeleteOutput, error) {
	e, err := uc.getEvent(ctx, sc, id)
	if err != nil {
		return event.DeleteOutput{}, err
	}
	parent, err := uc.familyParent(ctx, sc, e)
	if err != nil {
		return event.DeleteOutput{}, err
	}

	children, err := uc.children(ctx, sc, parent.ID)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.DeleteSegments.children: %v", err)
		return event.DeleteOutput{}, err
	}
	if len(children) == 0 {
		return event.DeleteOutput{}, event.ErrNoSegments
	}

	if _, err := uc.repo.DeleteEvents(ctx, repository.DeleteEventsOptions{OwnerID: sc.UserID, SegmentOf: parent.ID}); err != nil {
		uc.l.Errorf(ctx, "event.usecase.DeleteSegments.DeleteEvents: %v", err)
		return event.DeleteOutput{}, err
	}
	uc.tryMirrorDelete(ctx, children)

	return event.DeleteOutput{DeletedIDs: eventIDs(children)}, nil
}

func eventIDs(events []model.Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

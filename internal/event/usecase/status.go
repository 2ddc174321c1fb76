package usecase

import (
	"context"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/event/repository"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/schedule"
	"smart-task-scheduler/pkg/metrics"
)

// UpdateStatus marks one event, then propagates through its family: a segment
// may finalize its parent, a parent may cascade to its pending segments.
// Re-marking a resolved event changes nothing.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input event.StatusInput) (event.StatusOutput, error) {
	e, err := uc.getEvent(ctx, sc, input.EventID)
	if err != nil {
		return event.StatusOutput{}, err
	}
	if err := uc.policy.Validate(e, input.Status, uc.now()); err != nil {
		return event.StatusOutput{}, err
	}

	next, changed := schedule.Transition(e.Status, input.Status)
	if !changed {
		return event.StatusOutput{EventID: e.ID, Status: e.Status}, nil
	}

	// Step 1: the marked event, only while it is still pending.
	written, err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		ID:            e.ID,
		OwnerID:       sc.UserID,
		Status:        next,
		OnlyIfPending: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.UpdateStatus.UpdateStatus: %v", err)
		return event.StatusOutput{}, err
	}
	if !written {
		current, err := uc.getEvent(ctx, sc, e.ID)
		if err != nil {
			return event.StatusOutput{}, err
		}
		return event.StatusOutput{EventID: e.ID, Status: current.Status}, nil
	}
	metrics.StatusTransition(string(next), metrics.CauseDirect)
	e.Status = next

	// Step 2: the family.
	out := event.StatusOutput{EventID: e.ID, Status: next, Changed: true}
	if e.IsSegment() {
		err = uc.finalizeParent(ctx, sc, e.SegmentOf, &out)
	} else {
		err = uc.cascadeChildren(ctx, sc, e, &out)
	}
	if err != nil {
		return event.StatusOutput{}, err
	}

	uc.l.Infof(ctx, "event.usecase.UpdateStatus: user=%s event=%s status=%s finalized=%t cascaded=%d",
		sc.UserID, e.ID, next, out.Finalized, len(out.CascadedIDs))
	return out, nil
}

// finalizeParent derives the parent status once every segment is resolved.
// The parent is written only while pending, so it finalizes at most once.
func (uc *implUseCase) finalizeParent(ctx context.Context, sc model.Scope, parentID string, out *event.StatusOutput) error {
	parent, err := uc.repo.GetOneEvent(ctx, repository.GetOneEventOptions{ID: parentID, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.finalizeParent.GetOneEvent: %v", err)
		return err
	}
	if parent.ID == "" || parent.Status.IsResolved() {
		return nil
	}

	children, err := uc.children(ctx, sc, parentID)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.finalizeParent.children: %v", err)
		return err
	}
	status, ok := schedule.Finalize(children)
	if !ok {
		return nil
	}

	written, err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		ID:            parent.ID,
		OwnerID:       sc.UserID,
		Status:        status,
		OnlyIfPending: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.finalizeParent.UpdateStatus: %v", err)
		return err
	}
	if !written {
		return nil
	}
	metrics.StatusTransition(string(status), metrics.CauseFinalize)

	parent.Status = status
	out.Parent = &parent
	out.ParentUpdated = true
	out.Finalized = true
	return nil
}

// cascadeChildren pushes a parent's new status to its pending segments, as the policy allows.
func (uc *implUseCase) cascadeChildren(ctx context.Context, sc model.Scope, parent model.Event, out *event.StatusOutput) error {
	children, err := uc.children(ctx, sc, parent.ID)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.cascadeChildren.children: %v", err)
		return err
	}

	for _, c := range uc.policy.CascadeTargets(parent.Status, children) {
		written, err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
			ID:            c.ID,
			OwnerID:       sc.UserID,
			Status:        parent.Status,
			OnlyIfPending: true,
		})
		if err != nil {
			uc.l.Errorf(ctx, "event.usecase.cascadeChildren.UpdateStatus: %v", err)
			return err
		}
		if written {
			metrics.StatusTransition(string(parent.Status), metrics.CauseCascade)
			out.CascadedIDs = append(out.CascadedIDs, c.ID)
		}
	}
	return nil
}

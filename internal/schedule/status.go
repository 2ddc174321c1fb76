package schedule

import (
	"time"

	"smart-task-scheduler/internal/model"
)

// Validate checks that requested may be applied to e at now.
func (p Policy) Validate(e model.Event, requested model.Status, now time.Time) error {
	if !requested.IsResolved() {
		return ErrInvalidStatus
	}
	if requested == model.StatusCompleted && p.RejectFutureCompletion && e.End.After(now) {
		return ErrCompletionInFuture
	}
	return nil
}

// Transition returns the status an event moves to. A resolved event keeps its
// status and changed is false, so repeated marks are no-ops.
func Transition(current, requested model.Status) (next model.Status, changed bool) {
	if current.IsResolved() {
		return current, false
	}
	if !requested.IsResolved() {
		return current, false
	}
	return requested, true
}

// Finalize derives the parent status from its children. ok is false while any
// child is still pending; any missed child makes the parent missed.
func Finalize(children []model.Event) (model.Status, bool) {
	if len(children) == 0 {
		return model.StatusPending, false
	}
	missed := false
	for _, c := range children {
		if !c.Status.IsResolved() {
			return model.StatusPending, false
		}
		if c.Status == model.StatusMissed {
			missed = true
		}
	}
	if missed {
		return model.StatusMissed, true
	}
	return model.StatusCompleted, true
}

// CascadeTargets returns the pending children that should take the parent's
// new status. Completed always cascades; missed only with CascadeMissed.
func (p Policy) CascadeTargets(parentStatus model.Status, children []model.Event) []model.Event {
	switch parentStatus {
	case model.StatusCompleted:
	case model.StatusMissed:
		if !p.CascadeMissed {
			return nil
		}
	default:
		return nil
	}

	targets := make([]model.Event, 0, len(children))
	for _, c := range children {
		if c.Status == model.StatusPending {
			targets = append(targets, c)
		}
	}
	return targets
}

package usecase

import (
	"context"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/event/repository"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/schedule"
	"smart-task-scheduler/pkg/metrics"
)

// Split divides an unsegmented top-level event into timed segments and stores
// them in one batch.
func (uc *implUseCase) Split(ctx context.Context, sc model.Scope, input event.SplitInput) (event.SplitOutput, error) {
	parent, err := uc.getEvent(ctx, sc, input.ParentID)
	if err != nil {
		return event.SplitOutput{}, err
	}
	if parent.IsSegment() {
		return event.SplitOutput{}, event.ErrSplitSegment
	}

	existing, err := uc.children(ctx, sc, parent.ID)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Split.children: %v", err)
		return event.SplitOutput{}, err
	}
	if len(existing) > 0 {
		return event.SplitOutput{}, event.ErrAlreadySegmented
	}

	intervals, err := schedule.Segment(parent.Start, parent.End, input.Count, input.BreakMinutes)
	if err != nil {
		return event.SplitOutput{}, err
	}

	children := schedule.BuildSegments(parent, intervals, schedule.SegmentSpec{
		TitlePrefix: input.TitlePrefix,
		Titles:      input.Titles,
	})
	opts := make([]repository.CreateEventOptions, 0, len(children))
	for _, c := range children {
		opts = append(opts, repository.CreateEventOptions{
			Title:        c.Title,
			Start:        c.Start,
			End:          c.End,
			Importance:   c.Importance,
			Urgency:      c.Urgency,
			Difficulty:   c.Difficulty,
			OwnerID:      c.OwnerID,
			SegmentOf:    c.SegmentOf,
			SegmentIndex: c.SegmentIndex,
		})
	}

	segments, err := uc.repo.CreateEvents(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Split.CreateEvents: %v", err)
		return event.SplitOutput{}, err
	}
	metrics.SegmentsCreated(len(segments))

	uc.l.Infof(ctx, "event.usecase.Split: user=%s parent=%s segments=%d break=%dm", sc.UserID, parent.ID, len(segments), input.BreakMinutes)
	return event.SplitOutput{ParentID: parent.ID, Segments: segments}, nil
}

package schedule

import (
	"fmt"
	"strings"
	"time"

	"smart-task-scheduler/internal/model"
)

// Segment divides [start, end) into count back-to-back windows separated by
// breakMinutes. The first usable%count windows get one extra minute and the
// last window always ends exactly at end.
func Segment(start, end time.Time, count, breakMinutes int) ([]Interval, error) {
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}
	if count < 2 {
		return nil, ErrNothingToSplit
	}
	if breakMinutes < 0 {
		return nil, ErrNegativeBreak
	}

	total := int(end.Sub(start) / time.Minute)
	if total < MinSegmentableMinutes {
		return nil, ErrBelowSegmentFloor
	}

	usable := total - (count-1)*breakMinutes
	if usable <= 0 {
		return nil, ErrBreaksTooLarge
	}
	base, remainder := usable/count, usable%count
	if base == 0 {
		return nil, ErrBreaksTooLarge
	}

	gap := time.Duration(breakMinutes) * time.Minute
	intervals := make([]Interval, 0, count)
	cursor := start
	for i := 0; i < count; i++ {
		minutes := base
		if i < remainder {
			minutes++
		}
		next := cursor.Add(time.Duration(minutes) * time.Minute)
		if i == count-1 {
			next = end
		}
		intervals = append(intervals, Interval{Start: cursor, End: next})
		cursor = next.Add(gap)
	}
	return intervals, nil
}

// BuildSegments turns computed windows into pending child events of parent.
func BuildSegments(parent model.Event, intervals []Interval, spec SegmentSpec) []model.Event {
	prefix := strings.TrimSpace(spec.TitlePrefix)
	if prefix == "" {
		prefix = parent.Title
	}

	children := make([]model.Event, 0, len(intervals))
	for i, iv := range intervals {
		title := fmt.Sprintf("%s (%d/%d)", prefix, i+1, len(intervals))
		if i < len(spec.Titles) && strings.TrimSpace(spec.Titles[i]) != "" {
			title = strings.TrimSpace(spec.Titles[i])
		}
		idx := i
		children = append(children, model.Event{
			Title:        title,
			Start:        iv.Start,
			End:          iv.End,
			Importance:   parent.Importance,
			Urgency:      parent.Urgency,
			Difficulty:   parent.Difficulty,
			OwnerID:      parent.OwnerID,
			Status:       model.StatusPending,
			SegmentOf:    parent.ID,
			SegmentIndex: &idx,
		})
	}
	return children
}

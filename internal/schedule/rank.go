package schedule

import (
	"sort"

	"smart-task-scheduler/internal/model"
)

// Rank orders events by quadrant, then by start time.
func Rank(events []model.Event) []model.Event {
	ranked := make([]model.Event, len(events))
	copy(ranked, events)
	sort.SliceStable(ranked, func(i, j int) bool {
		qi, qj := QuadrantOf(ranked[i]), QuadrantOf(ranked[j])
		if qi != qj {
			return qi < qj
		}
		return ranked[i].Start.Before(ranked[j].Start)
	})
	return ranked
}

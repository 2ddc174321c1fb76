package schedule

import "smart-task-scheduler/internal/model"

// FindConflicts returns the events of the candidate's owner whose interval is
// exactly the candidate's interval. Overlap alone is not a conflict.
func FindConflicts(existing []model.Event, c Candidate) []model.Event {
	conflicts := make([]model.Event, 0)
	for _, e := range existing {
		if e.OwnerID != c.OwnerID || (c.ExcludeID != "" && e.ID == c.ExcludeID) {
			continue
		}
		if e.Start.Equal(c.Start) && e.End.Equal(c.End) {
			conflicts = append(conflicts, e)
		}
	}
	return conflicts
}

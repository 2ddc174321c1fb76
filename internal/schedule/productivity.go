package schedule

import (
	"time"

	"smart-task-scheduler/internal/model"
)

// WeekStart returns Monday 00:00 in loc of the week containing now.
func WeekStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	offset := (int(local.Weekday()) + 6) % 7
	return time.Date(local.Year(), local.Month(), local.Day()-offset, 0, 0, 0, 0, loc)
}

// WeeklyBuckets counts completed and missed events per day of the
// Monday-start week containing now. Events land on the day they start in loc.
// A parent that owns segments is skipped so its outcome is counted once,
// through its children.
func WeeklyBuckets(events []model.Event, now time.Time, loc *time.Location) []DayBucket {
	monday := WeekStart(now, loc)
	buckets := make([]DayBucket, 7)
	for i := range buckets {
		day := time.Date(monday.Year(), monday.Month(), monday.Day()+i, 0, 0, 0, 0, loc)
		buckets[i] = DayBucket{Day: day.Weekday().String()[:3], Date: day}
	}

	parents := parentIDs(events)
	for _, e := range events {
		if parents[e.ID] {
			continue
		}
		start := e.Start.In(loc)
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		idx := int(day.Sub(monday).Hours()/24 + 0.5)
		if day.Before(monday) || idx < 0 || idx > 6 {
			continue
		}
		switch e.Status {
		case model.StatusCompleted:
			buckets[idx].Completed++
		case model.StatusMissed:
			buckets[idx].Missed++
		}
	}
	return buckets
}

// Summarize totals resolved events across buckets. Pending counts events in
// the same week that are not yet resolved.
func Summarize(buckets []DayBucket, pending int) Summary {
	s := Summary{Pending: pending}
	for _, b := range buckets {
		s.Completed += b.Completed
		s.Missed += b.Missed
	}
	if resolved := s.Completed + s.Missed; resolved > 0 {
		s.CompletionRate = float64(s.Completed) / float64(resolved)
	}
	return s
}

// CountPending returns pending non-parent events starting within the week of now.
func CountPending(events []model.Event, now time.Time, loc *time.Location) int {
	monday := WeekStart(now, loc)
	next := time.Date(monday.Year(), monday.Month(), monday.Day()+7, 0, 0, 0, 0, loc)
	parents := parentIDs(events)

	n := 0
	for _, e := range events {
		if parents[e.ID] || e.Status != model.StatusPending {
			continue
		}
		if !e.Start.Before(monday) && e.Start.Before(next) {
			n++
		}
	}
	return n
}

func parentIDs(events []model.Event) map[string]bool {
	ids := make(map[string]bool)
	for _, e := range events {
		if e.IsSegment() {
			ids[e.SegmentOf] = true
		}
	}
	return ids
}

package schedule

import (
	"time"

	"smart-task-scheduler/internal/model"
)

const (
	// MinSegmentableMinutes is the shortest parent that may be split.
	MinSegmentableMinutes = 180
	// SuggestionCount is the number of alternative slots offered on a conflict.
	SuggestionCount = 3

	HintAfterConflict = "After conflict"
	HintPlusHour      = "+1 hour"
	HintTomorrow      = "Tomorrow 8:00 AM"

	labelDayLayout  = "Jan 2, 3:04 PM"
	labelTimeLayout = "3:04 PM"
)

// Candidate is an interval being checked for double booking.
type Candidate struct {
	OwnerID   string
	Start     time.Time
	End       time.Time
	ExcludeID string
}

// Suggestion is an alternative slot offered when a candidate conflicts.
type Suggestion struct {
	Start time.Time
	End   time.Time
	Label string
	Hint  string
}

// Interval is one computed segment window.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the whole minutes of the interval.
func (i Interval) Minutes() int {
	return int(i.End.Sub(i.Start) / time.Minute)
}

// SegmentSpec names the children produced from a split.
type SegmentSpec struct {
	TitlePrefix string
	// Titles overrides the title of the segment at the same index when non-empty.
	Titles []string
}

// Policy configures the status state machine.
type Policy struct {
	// CascadeMissed marks pending children missed when their parent is marked missed.
	CascadeMissed bool
	// RejectFutureCompletion refuses a completed mark on an event that has not ended.
	RejectFutureCompletion bool
}

// DefaultPolicy is the canonical variant: no missed cascade, future completions rejected.
func DefaultPolicy() Policy {
	return Policy{RejectFutureCompletion: true}
}

// DayBucket holds one day of the weekly productivity report.
type DayBucket struct {
	Day       string
	Date      time.Time
	Completed int
	Missed    int
}

// Summary totals a weekly report.
type Summary struct {
	Completed      int
	Missed         int
	Pending        int
	CompletionRate float64
}

// Quadrant is the Eisenhower quadrant of an event; lower sorts first.
type Quadrant int

const (
	QuadrantDoFirst Quadrant = iota
	QuadrantSchedule
	QuadrantDelegate
	QuadrantEliminate
)

func (q Quadrant) String() string {
	switch q {
	case QuadrantDoFirst:
		return "do first"
	case QuadrantSchedule:
		return "schedule"
	case QuadrantDelegate:
		return "delegate"
	default:
		return "eliminate"
	}
}

// QuadrantOf places e in the importance/urgency matrix.
func QuadrantOf(e model.Event) Quadrant {
	important := e.Importance == model.ImportanceHigh
	urgent := e.Urgency == model.UrgencyHigh
	switch {
	case important && urgent:
		return QuadrantDoFirst
	case important:
		return QuadrantSchedule
	case urgent:
		return QuadrantDelegate
	default:
		return QuadrantEliminate
	}
}

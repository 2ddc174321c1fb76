package model

import "time"

// Importance is the importance flag of an event.
type Importance string

const (
	ImportanceHigh Importance = "high"
	ImportanceLow  Importance = "low"
)

// Urgency is the urgency flag of an event.
type Urgency string

const (
	UrgencyHigh Urgency = "high"
	UrgencyLow  Urgency = "low"
)

// Difficulty is the expected effort of an event.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Status is the completion state of an event. The empty value means pending.
type Status string

const (
	StatusPending   Status = ""
	StatusCompleted Status = "completed"
	StatusMissed    Status = "missed"
)

// IsResolved reports whether s is a terminal status.
func (s Status) IsResolved() bool {
	return s == StatusCompleted || s == StatusMissed
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	return s == StatusPending || s.IsResolved()
}

// Event is a time-boxed task owned by a single user.
type Event struct {
	ID         string
	Title      string
	Start      time.Time
	End        time.Time
	Importance Importance
	Urgency    Urgency
	Difficulty Difficulty
	OwnerID    string
	Status     Status

	// SegmentOf is the parent event id; empty for standalone and parent events.
	SegmentOf string
	// SegmentIndex is the zero-based position among siblings; nil unless SegmentOf is set.
	SegmentIndex *int

	IsRecurring bool
	// ExternalID is the id of the mirrored calendar entry, if any.
	ExternalID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSegment reports whether e is a child segment of another event.
func (e Event) IsSegment() bool {
	return e.SegmentOf != ""
}

// Duration returns the length of the event interval.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// DurationMinutes returns the whole minutes of the event interval.
func (e Event) DurationMinutes() int {
	return int(e.Duration() / time.Minute)
}

// Index returns the segment index, or -1 for non-segments.
func (e Event) Index() int {
	if e.SegmentIndex == nil {
		return -1
	}
	return *e.SegmentIndex
}

// EventKind tells apart the three shapes an event can take in a family.
type EventKind int

const (
	KindStandalone EventKind = iota
	KindParent
	KindChild
)

func (k EventKind) String() string {
	switch k {
	case KindParent:
		return "parent"
	case KindChild:
		return "child"
	default:
		return "standalone"
	}
}

// KindOf resolves the kind of e given how many children reference it.
func KindOf(e Event, childCount int) EventKind {
	switch {
	case e.IsSegment():
		return KindChild
	case childCount > 0:
		return KindParent
	default:
		return KindStandalone
	}
}

package repository

import (
	"time"

	"smart-task-scheduler/internal/model"
)

// CreateEventOptions holds the fields of a new event. ID is assigned by the repository.
type CreateEventOptions struct {
	Title        string
	Start        time.Time
	End          time.Time
	Importance   model.Importance
	Urgency      model.Urgency
	Difficulty   model.Difficulty
	OwnerID      string
	SegmentOf    string
	SegmentIndex *int
	IsRecurring  bool
	ExternalID   string
}

// GetOneEventOptions selects one event of an owner.
type GetOneEventOptions struct {
	ID      string
	OwnerID string
}

// ListEventsOptions filters an owner's events. Zero values do not filter.
type ListEventsOptions struct {
	OwnerID   string
	SegmentOf string
	// From and To bound the start time: From <= start < To.
	From time.Time
	To   time.Time
	// Start and End select an exact interval.
	Start time.Time
	End   time.Time
}

// UpdateEventOptions replaces the mutable fields of an event.
type UpdateEventOptions struct {
	ID         string
	OwnerID    string
	Title      string
	Start      time.Time
	End        time.Time
	Importance model.Importance
	Urgency    model.Urgency
	Difficulty model.Difficulty
	ExternalID string
}

// UpdateStatusOptions sets the status of one event.
type UpdateStatusOptions struct {
	ID            string
	OwnerID       string
	Status        model.Status
	OnlyIfPending bool
}

// DeleteEventsOptions removes events by id, or every segment of SegmentOf.
type DeleteEventsOptions struct {
	OwnerID   string
	IDs       []string
	SegmentOf string
}

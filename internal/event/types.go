package event

import (
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/router"
	"smart-task-scheduler/internal/schedule"
)

// CommandInput is a free-text command from the owner in scope.
type CommandInput struct {
	Text string
}

// CommandOutput is the structured result of a command. Recoverable problems
// (unparseable time, unknown title, validation) come back with Success false
// and a clarifying Message instead of an error.
type CommandOutput struct {
	Intent  router.Intent
	Success bool
	Message string
	Payload CommandPayload
}

// CommandPayload carries whatever the intent produced; unused fields stay empty.
type CommandPayload struct {
	Event       *model.Event
	Candidate   *model.Event
	Conflicts   []model.Event
	Suggestions []schedule.Suggestion
	Segments    []model.Event
	Events      []model.Event
	DeletedIDs  []string
	Status      *StatusOutput
	Weekly      *WeeklyOutput
}

// CreateInput describes a new standalone event.
type CreateInput struct {
	Title      string
	Start      time.Time
	End        time.Time
	Importance model.Importance
	Urgency    model.Urgency
	Difficulty model.Difficulty
	// AllowDouble skips the exact-duplicate conflict check.
	AllowDouble bool
	// AllowPast accepts a start that is not in the future.
	AllowPast bool
}

// CreateOutput is the created event, or the conflicts that blocked it.
type CreateOutput struct {
	Event       model.Event
	Conflicts   []model.Event
	Suggestions []schedule.Suggestion
}

// ListInput filters events by start time. Zero bounds are open.
type ListInput struct {
	From time.Time
	To   time.Time
}

// DetailOutput is one event with its family context.
type DetailOutput struct {
	Event    model.Event
	Kind     model.EventKind
	Parent   *model.Event
	Children []model.Event
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID          string
	Title       *string
	Start       *time.Time
	End         *time.Time
	Importance  *model.Importance
	Urgency     *model.Urgency
	Difficulty  *model.Difficulty
	AllowDouble bool
	AllowPast   bool
}

// UpdateOutput is the updated event, or the conflicts that blocked it.
type UpdateOutput struct {
	Event       model.Event
	Conflicts   []model.Event
	Suggestions []schedule.Suggestion
}

// DeleteOutput lists every removed event id.
type DeleteOutput struct {
	DeletedIDs []string
}

// SplitInput asks for a parent to be divided into Count segments.
type SplitInput struct {
	ParentID     string
	Count        int
	BreakMinutes int
	TitlePrefix  string
	Titles       []string
}

// SplitOutput is the parent id and its new segments in order.
type SplitOutput struct {
	ParentID string
	Segments []model.Event
}

// StatusInput marks one event.
type StatusInput struct {
	EventID string
	Status  model.Status
}

// StatusOutput reports the mark and any propagation it caused.
type StatusOutput struct {
	EventID string
	Status  model.Status
	// Changed is false when the event was already resolved.
	Changed       bool
	ParentUpdated bool
	Parent        *model.Event
	Finalized     bool
	// CascadedIDs are children that took the parent's status.
	CascadedIDs []string
}

// WeeklyOutput is the productivity report for the week containing now.
type WeeklyOutput struct {
	WeekStart time.Time
	Days      []schedule.DayBucket
	Summary   schedule.Summary
}

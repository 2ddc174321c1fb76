package repository

import (
	"context"

	"smart-task-scheduler/internal/model"
)

// Repository is the storage collaborator for events.
// GetOneEvent returns a zero-value event (ID == "") when nothing matches.
type Repository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	// CreateEvents inserts all events or none.
	CreateEvents(ctx context.Context, opts []CreateEventOptions) ([]model.Event, error)
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (model.Event, error)
	// UpdateStatus reports whether a row was changed. With OnlyIfPending the
	// write only lands on an event that is still pending.
	UpdateStatus(ctx context.Context, opt UpdateStatusOptions) (bool, error)
	DeleteEvents(ctx context.Context, opt DeleteEventsOptions) (int, error)
}

package event

import (
	"context"

	"smart-task-scheduler/internal/model"
)

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	// HandleCommand classifies a free-text command and performs the matching mutation or query.
	HandleCommand(ctx context.Context, sc model.Scope, input CommandInput) (CommandOutput, error)

	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Event, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) (DeleteOutput, error)
	DeleteSegments(ctx context.Context, sc model.Scope, id string) (DeleteOutput, error)

	// Split divides an event into timed segments.
	Split(ctx context.Context, sc model.Scope, input SplitInput) (SplitOutput, error)

	// UpdateStatus marks an event and propagates the status through its family.
	UpdateStatus(ctx context.Context, sc model.Scope, input StatusInput) (StatusOutput, error)

	// Weekly returns completed/missed counts for the current Monday-start week.
	Weekly(ctx context.Context, sc model.Scope) (WeeklyOutput, error)
}

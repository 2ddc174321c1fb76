package event

import "errors"

// Domain-specific errors for the event package.
var (
	ErrEmptyCommand     = errors.New("command text is empty")
	ErrMissingOwner     = errors.New("owner is required")
	ErrEventNotFound    = errors.New("event not found")
	ErrConflict         = errors.New("an event already occupies this exact time")
	ErrEmptyTitle       = errors.New("title is required")
	ErrInvalidAttribute = errors.New("invalid importance, urgency or difficulty")
	ErrAlreadySegmented = errors.New("event already has segments")
	ErrSplitSegment     = errors.New("a segment cannot be split again")
	ErrNoSegments       = errors.New("event has no segments")
	ErrTitleRequired    = errors.New("could not tell which event you mean")
)

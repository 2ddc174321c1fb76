package schedule

import "errors"

var (
	ErrInvalidInterval    = errors.New("end must be after start")
	ErrNothingToSplit     = errors.New("nothing to split: count must be at least 2")
	ErrBelowSegmentFloor  = errors.New("event is shorter than 180 minutes and cannot be split")
	ErrBreaksTooLarge     = errors.New("breaks too large for window")
	ErrNegativeBreak      = errors.New("break minutes must not be negative")
	ErrInvalidStatus      = errors.New("unknown status")
	ErrCompletionInFuture = errors.New("event is still in the future")
)

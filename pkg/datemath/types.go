package datemath

import (
	"errors"
	"time"
)

var (
	ErrNoTimeRange  = errors.New("no time range recognized")
	ErrInvalidRange = errors.New("end time must be after start time")
	ErrInvalidDate  = errors.New("date does not exist")
	ErrStartInPast  = errors.New("start time is not in the future")
)

// Range is an absolute interval resolved from a command.
type Range struct {
	Start time.Time
	End   time.Time
	// HasDate is true when the text named a day explicitly.
	HasDate bool
}

// Duration returns the length of the range.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// RangeOptions tunes ParseRange.
type RangeOptions struct {
	// BaseDay is used when the text names no day. Zero means today.
	BaseDay time.Time
	// RequireFuture rejects ranges whose start is not strictly after now.
	RequireFuture bool
}

// clockRange is a time-of-day range in minutes from midnight. End may exceed 24h.
type clockRange struct {
	startMin int
	endMin   int
}

package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert event")
	ErrFailedToGet    = errors.New("failed to get event")
	ErrFailedToList   = errors.New("failed to list events")
	ErrFailedToUpdate = errors.New("failed to update event")
	ErrFailedToDelete = errors.New("failed to delete events")
	ErrMissingFilter  = errors.New("delete requires ids or a parent id")
)

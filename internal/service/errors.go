package service

import "errors"

// Sentinel errors surfaced to the HTTP layer, which maps them to statuses.
var (
	// ErrInvalidDate marks a date string that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrNotFound marks a lookup of an id that does not exist.
	ErrNotFound = errors.New("not found")
)

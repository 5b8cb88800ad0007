package store

import "errors"

var (
	// ErrInvalidDate - a date argument is not a YYYY-MM-DD string
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDateRange - the start date is after the end date
	ErrInvalidDateRange = errors.New("invalid date range")
)

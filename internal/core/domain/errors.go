package domain

import "errors"

// Domain errors represent failures independent of any adapter.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedValue indicates a name that matches no organisation,
	// classification or discipline.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrInvalidCalendar indicates a downloaded body is not an iCalendar stream.
	ErrInvalidCalendar = errors.New("invalid calendar")
)

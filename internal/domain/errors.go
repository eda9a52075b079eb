package domain

import "errors"

// Closed set of domain failures. Services return these; the HTTP layer owns
// the mapping to status codes and never inspects error text.
var (
	ErrInvalidTimeRange    = errors.New("end time must be after start time")
	ErrPastStart           = errors.New("reservation start is in the past")
	ErrCourtNotFound       = errors.New("court not found")
	ErrInvalidPrice        = errors.New("price must be a positive number")
	ErrTimeSlotTaken       = errors.New("court is already reserved for that time")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNotReservationOwner = errors.New("reservation belongs to another user")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already in use")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidPassword     = errors.New("current password is incorrect")
)

package entity

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

var (
	ErrStaffNotFound = errors.New("staff not found")
	ErrStaffInactive = errors.New("staff inactive")
)

var (
	ErrPINInvalidFormat = errors.New("pin must be exactly 4 digits")
	ErrPINNotSet        = errors.New("pin is not set")
	ErrPINAlreadySet    = errors.New("pin is already set")
	ErrPINInvalid       = errors.New("invalid pin")
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrTokenInvalid    = errors.New("invalid token")
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrJobTaken          = errors.New("job is already taken")
	ErrValidation        = errors.New("assignment validation failed")
)

var ErrNoRecipients = errors.New("no recipients")

// LockedError is returned when a profile is locked after too many wrong PIN entries.
type LockedError struct {
	LockedUntil time.Time
}

func (e *LockedError) Error() string { return "profile locked" }

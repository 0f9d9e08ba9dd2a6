package service

import (
	"errors"
	"fmt"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Schedule Errors =====
var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrGameNotFound     = errors.New("game not found")
)

// ===== Crew Errors =====
var (
	ErrCrewScheduleNotFound = errors.New("crew schedule not found")
	ErrUnknownPosition      = errors.New("unknown crew position")
)

// ===== Template Errors =====
var (
	ErrTemplateNotFound = errors.New("template not found")
)

// ===== Member Errors =====
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// ===== Availability Errors =====
var (
	ErrAvailabilityExists = errors.New("availability already submitted for this game")
)

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// notFound attaches the missing id to a not-found sentinel while keeping it
// matchable with errors.Is.
func notFound(sentinel error, id uint) error {
	return fmt.Errorf("%w with ID: %d", sentinel, id)
}

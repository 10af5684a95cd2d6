package events

import (
	"errors"
	"fmt"
)

// ErrEventExists is returned when creating an event whose slug is taken.
var ErrEventExists = errors.New("event already exists")

// ErrEventFull is returned when no registered seat is available.
var ErrEventFull = errors.New("event is at capacity")

// ErrAlreadyRegistered is returned when a member holds a non-cancelled
// registration for the event.
var ErrAlreadyRegistered = errors.New("member is already registered")

// EventNotFoundError represents an error when an event is not found.
type EventNotFoundError struct {
	Slug string
}

func (e *EventNotFoundError) Error() string {
	return fmt.Sprintf("event not found for slug: %s", e.Slug)
}

// RegistrationNotFoundError represents an error when a registration is not found.
type RegistrationNotFoundError struct {
	ID string
}

func (e *RegistrationNotFoundError) Error() string {
	return fmt.Sprintf("registration not found: %s", e.ID)
}

// InvalidTransitionError is returned for admission-workflow moves the current
// status does not allow.
type InvalidTransitionError struct {
	From RegistrationStatus
	To   RegistrationStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move registration from %s to %s", e.From, e.To)
}

package services

import "errors"

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrIllegalTransition is returned when a phase transition is attempted
	// from a phase other than the expected one.
	ErrIllegalTransition = errors.New("illegal phase transition")
)

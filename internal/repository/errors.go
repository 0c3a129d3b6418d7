package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the given id.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyProcessed is returned when a transaction has already
	// left the pending state and cannot be claimed again.
	ErrAlreadyProcessed = errors.New("transaction already processed")
)

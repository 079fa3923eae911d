package storage

import "errors"

var (
	// ErrEmptyField is returned when a required input is empty.
	ErrEmptyField = errors.New("empty field")

	// ErrDuplicateEmail is returned when an email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredential is returned for an unknown email or a wrong password.
	ErrInvalidCredential = errors.New("invalid credentials")

	// ErrNotFound is returned when a user or a short code does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOwnership is returned when a record exists but belongs to another user.
	ErrOwnership = errors.New("not owned by requester")

	// ErrCapacityExhausted is returned when no free short code was found
	// within the retry limit.
	ErrCapacityExhausted = errors.New("short code space exhausted")
)

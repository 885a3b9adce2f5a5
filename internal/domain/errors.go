// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is not a valid 24-character
	// hexadecimal ObjectID.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidURL is returned when a link or avatar is not a valid URL.
	ErrInvalidURL = errors.New("invalid URL format")

	// ErrCardNotOwned is returned when a caller attempts to delete a card
	// that belongs to another user.
	ErrCardNotOwned = errors.New("card owned by another user")
)

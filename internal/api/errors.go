package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/service/auth"
	"github.com/phrazzld/mesto-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This is the single place where a failure kind
// becomes an outward status; handlers never pick status codes for typed
// errors themselves.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Authorization errors. A failed login maps to Forbidden as well, with
	// one shared message for both factors.
	case errors.Is(err, auth.ErrBadCredentials),
		errors.Is(err, domain.ErrCardNotOwned):
		return http.StatusForbidden

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details:
// unclassified errors always produce the same generic message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrBadCredentials):
		return "Incorrect email or password"

	case errors.Is(err, domain.ErrCardNotOwned):
		return "You can only delete your own cards"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrCardNotFound):
		return "Card not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID format"

	default:
		return "An unexpected error occurred"
	}
}

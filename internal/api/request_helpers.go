package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/domain"
)

// parseObjectID converts a 24-character hex path parameter into an ObjectID.
// Anything else yields domain.ErrInvalidID so the request fails with 400
// before any store access happens.
func parseObjectID(raw string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

// currentUserID extracts the authenticated caller's ID placed into the
// request context by the auth middleware.
func currentUserID(r *http.Request) (primitive.ObjectID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(primitive.ObjectID)
	return userID, ok && !userID.IsZero()
}

// validationMessage renders a validator error as one human-readable string:
// all violated field messages, comma-joined, in the order the validation
// engine produced them.
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request data"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, ", ")
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

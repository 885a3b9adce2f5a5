package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phrazzld/mesto-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and fills in the generated ID.
	// The user must already carry a hashed password.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// List retrieves all users. Password hashes are never populated.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user never carries the password hash.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// GetByEmailWithPassword retrieves a user by email INCLUDING the password
	// hash, for credential verification only.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmailWithPassword(ctx context.Context, email string) (*domain.User, error)

	// UpdateProfile atomically sets the user's name and about fields and
	// returns the updated record (without the password hash).
	// Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, name, about string) (*domain.User, error)

	// UpdateAvatar atomically sets the user's avatar and returns the updated
	// record (without the password hash).
	// Returns ErrUserNotFound if the user does not exist.
	UpdateAvatar(ctx context.Context, id primitive.ObjectID, avatar string) (*domain.User, error)
}

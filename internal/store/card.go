package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phrazzld/mesto-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card to the store and fills in the generated ID.
	Create(ctx context.Context, card *domain.Card) error

	// List retrieves all cards.
	List(ctx context.Context) ([]domain.Card, error)

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Card, error)

	// Delete removes a card from the store by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	// Ownership is an authorization rule checked by the caller, not here.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// AddLike atomically adds the user to the card's likes set and returns
	// the updated card. The operation is idempotent: liking an already-liked
	// card leaves the set unchanged.
	// Returns ErrCardNotFound if the card does not exist.
	AddLike(ctx context.Context, cardID, userID primitive.ObjectID) (*domain.Card, error)

	// RemoveLike atomically removes the user from the card's likes set and
	// returns the updated card.
	// Returns ErrCardNotFound if the card does not exist.
	RemoveLike(ctx context.Context, cardID, userID primitive.ObjectID) (*domain.Card, error)
}

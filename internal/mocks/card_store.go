package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/store"
)

// MockCardStore implements store.CardStore for testing
type MockCardStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, card *domain.Card) error
	ListFn       func(ctx context.Context) ([]domain.Card, error)
	GetByIDFn    func(ctx context.Context, id primitive.ObjectID) (*domain.Card, error)
	DeleteFn     func(ctx context.Context, id primitive.ObjectID) error
	AddLikeFn    func(ctx context.Context, cardID, userID primitive.ObjectID) (*domain.Card, error)
	RemoveLikeFn func(ctx context.Context, cardID, userID primitive.ObjectID) (*domain.Card, error)

	// Data for the default in-memory implementation
	Cards map[primitive.ObjectID]*domain.Card
}

// Ensure MockCardStore implements store.CardStore
var _ store.CardStore = (*MockCardStore)(nil)

// NewMockCardStore creates a new mock store with initialized defaults
func NewMockCardStore() *MockCardStore {
	return &MockCardStore{
		Cards: make(map[primitive.ObjectID]*domain.Card),
	}
}

// Create implements the CardStore interface
func (m *MockCardStore) Create(ctx context.Context, card *domain.Card) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, card)
	}

	if card.ID.IsZero() {
		card.ID = primitive.NewObjectID()
	}
	m.Cards[card.ID] = card
	return nil
}

// List implements the CardStore interface
func (m *MockCardStore) List(ctx context.Context) ([]domain.Card, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	cards := make([]domain.Card, 0, len(m.Cards))
	for _, c := range m.Cards {
		cards = append(cards, *c)
	}
	return cards, nil
}

// GetByID implements the CardStore interface
func (m *MockCardStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Card, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	card, exists := m.Cards[id]
	if !exists {
		return nil, store.ErrCardNotFound
	}
	c := *card
	return &c, nil
}

// Delete implements the CardStore interface
func (m *MockCardStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Cards[id]; !exists {
		return store.ErrCardNotFound
	}
	delete(m.Cards, id)
	return nil
}

// AddLike implements the CardStore interface.
// The default implementation mirrors $addToSet: adding an existing like is a
// no-op.
func (m *MockCardStore) AddLike(ctx context.Context, cardID, userID primitive.ObjectID) (*domain.Card, error) {
	if m.AddLikeFn != nil {
		return m.AddLikeFn(ctx, cardID, userID)
	}

	card, exists := m.Cards[cardID]
	if !exists {
		return nil, store.ErrCardNotFound
	}
	if !card.LikedBy(userID) {
		card.Likes = append(card.Likes, userID)
	}
	c := *card
	return &c, nil
}

// RemoveLike implements the CardStore interface.
func (m *MockCardStore) RemoveLike(ctx context.Context, cardID, userID primitive.ObjectID) (*domain.Card, error) {
	if m.RemoveLikeFn != nil {
		return m.RemoveLikeFn(ctx, cardID, userID)
	}

	card, exists := m.Cards[cardID]
	if !exists {
		return nil, store.ErrCardNotFound
	}
	likes := card.Likes[:0]
	for _, id := range card.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	card.Likes = likes
	c := *card
	return &c, nil
}

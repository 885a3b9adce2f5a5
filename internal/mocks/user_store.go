package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn                 func(ctx context.Context, user *domain.User) error
	ListFn                   func(ctx context.Context) ([]domain.User, error)
	GetByIDFn                func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmailWithPasswordFn func(ctx context.Context, email string) (*domain.User, error)
	UpdateProfileFn          func(ctx context.Context, id primitive.ObjectID, name, about string) (*domain.User, error)
	UpdateAvatarFn           func(ctx context.Context, id primitive.ObjectID, avatar string) (*domain.User, error)

	// Data for the default in-memory implementation, keyed by email
	Users map[string]*domain.User
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.Users[user.Email] = user
	return nil
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	users := make([]domain.User, 0, len(m.Users))
	for _, u := range m.Users {
		c := *u
		c.HashedPassword = ""
		users = append(users, c)
	}
	return users, nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, u := range m.Users {
		if u.ID == id {
			c := *u
			c.HashedPassword = ""
			return &c, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmailWithPassword implements the UserStore interface
func (m *MockUserStore) GetByEmailWithPassword(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailWithPasswordFn != nil {
		return m.GetByEmailWithPasswordFn(ctx, email)
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile implements the UserStore interface
func (m *MockUserStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, about string) (*domain.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, id, name, about)
	}

	for _, u := range m.Users {
		if u.ID == id {
			u.Name = name
			u.About = about
			c := *u
			c.HashedPassword = ""
			return &c, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// UpdateAvatar implements the UserStore interface
func (m *MockUserStore) UpdateAvatar(ctx context.Context, id primitive.ObjectID, avatar string) (*domain.User, error) {
	if m.UpdateAvatarFn != nil {
		return m.UpdateAvatarFn(ctx, id, avatar)
	}

	for _, u := range m.Users {
		if u.ID == id {
			u.Avatar = avatar
			c := *u
			c.HashedPassword = ""
			return &c, nil
		}
	}
	return nil, store.ErrUserNotFound
}

package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/store"
)

const usersCollection = "users"

// hidePassword excludes the password hash from read results. Every read path
// except the credentials lookup applies it.
var hidePassword = bson.M{"password": 0}

// MongoUserStore implements the store.UserStore interface
// using a MongoDB collection as the storage backend.
type MongoUserStore struct {
	coll *mongo.Collection
}

// NewUserStore creates a new MongoDB implementation of the UserStore
// interface. The database handle should be initialized and managed by the
// caller.
func NewUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection(usersCollection)}
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// EnsureIndexes creates the unique index on email. Run once at startup; the
// index is what turns a duplicate signup into a distinct Conflict failure
// instead of a second document.
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique email index: %w", err)
	}
	return nil
}

// Create implements store.UserStore.Create
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrEmailExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// List implements store.UserStore.List
func (s *MongoUserStore) List(ctx context.Context) ([]domain.User, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetProjection(hidePassword))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := []domain.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// GetByID implements store.UserStore.GetByID
func (s *MongoUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(hidePassword)).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return &user, nil
}

// GetByEmailWithPassword implements store.UserStore.GetByEmailWithPassword
func (s *MongoUserStore) GetByEmailWithPassword(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// UpdateProfile implements store.UserStore.UpdateProfile
func (s *MongoUserStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, about string) (*domain.User, error) {
	return s.findAndSet(ctx, id, bson.M{"name": name, "about": about})
}

// UpdateAvatar implements store.UserStore.UpdateAvatar
func (s *MongoUserStore) UpdateAvatar(ctx context.Context, id primitive.ObjectID, avatar string) (*domain.User, error) {
	return s.findAndSet(ctx, id, bson.M{"avatar": avatar})
}

// findAndSet applies a single atomic $set and returns the updated document.
func (s *MongoUserStore) findAndSet(ctx context.Context, id primitive.ObjectID, fields bson.M) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(hidePassword),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

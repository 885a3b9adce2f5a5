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

const cardsCollection = "cards"

// MongoCardStore implements the store.CardStore interface
// using a MongoDB collection as the storage backend.
type MongoCardStore struct {
	coll *mongo.Collection
}

// NewCardStore creates a new MongoDB implementation of the CardStore
// interface.
func NewCardStore(db *mongo.Database) *MongoCardStore {
	return &MongoCardStore{coll: db.Collection(cardsCollection)}
}

// Ensure MongoCardStore implements store.CardStore interface
var _ store.CardStore = (*MongoCardStore)(nil)

// Create implements store.CardStore.Create
func (s *MongoCardStore) Create(ctx context.Context, card *domain.Card) error {
	res, err := s.coll.InsertOne(ctx, card)
	if err != nil {
		return fmt.Errorf("failed to insert card: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		card.ID = oid
	}
	return nil
}

// List implements store.CardStore.List
func (s *MongoCardStore) List(ctx context.Context) ([]domain.Card, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	cards := []domain.Card{}
	if err := cur.All(ctx, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode cards: %w", err)
	}
	return cards, nil
}

// GetByID implements store.CardStore.GetByID
func (s *MongoCardStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Card, error) {
	var card domain.Card
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&card)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card by ID: %w", err)
	}
	return &card, nil
}

// Delete implements store.CardStore.Delete
func (s *MongoCardStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrCardNotFound
	}
	return nil
}

// AddLike implements store.CardStore.AddLike.
// $addToSet keeps likes a set no matter how often the same user likes a card.
func (s *MongoCardStore) AddLike(ctx context.Context, cardID, userID primitive.ObjectID) (*domain.Card, error) {
	return s.findAndUpdateLikes(ctx, cardID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

// RemoveLike implements store.CardStore.RemoveLike.
func (s *MongoCardStore) RemoveLike(ctx context.Context, cardID, userID primitive.ObjectID) (*domain.Card, error) {
	return s.findAndUpdateLikes(ctx, cardID, bson.M{"$pull": bson.M{"likes": userID}})
}

func (s *MongoCardStore) findAndUpdateLikes(ctx context.Context, cardID primitive.ObjectID, update bson.M) (*domain.Card, error) {
	var card domain.Card
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": cardID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&card)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to update card likes: %w", err)
	}
	return &card, nil
}

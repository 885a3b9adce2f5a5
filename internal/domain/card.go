package domain

import (
	"errors"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Card validation errors
var (
	ErrCardNameLength = errors.New("name must be between 2 and 30 characters long")
	ErrInvalidLink    = errors.New("link must be a valid URL")
	ErrEmptyOwner     = errors.New("card owner cannot be empty")
)

// Card represents a photo card posted by a user. The owner is set server-side
// at creation and is immutable; Likes is a set of user IDs maintained with
// atomic add-to-set/pull operations by the store.
type Card struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name"          json:"name"`
	Link      string               `bson:"link"          json:"link"`
	Owner     primitive.ObjectID   `bson:"owner"         json:"owner"`
	Likes     []primitive.ObjectID `bson:"likes"         json:"likes"`
	CreatedAt time.Time            `bson:"createdAt"     json:"created_at"`
}

// NewCard creates a new Card owned by the given user.
// Returns an error if validation fails.
func NewCard(name, link string, owner primitive.ObjectID) (*Card, error) {
	card := &Card{
		Name:      name,
		Link:      link,
		Owner:     owner,
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if err := validateLength(c.Name, ErrCardNameLength); err != nil {
		return err
	}
	if !validURL(c.Link) {
		return ErrInvalidLink
	}
	if c.Owner.IsZero() {
		return ErrEmptyOwner
	}
	return nil
}

// LikedBy reports whether the given user is in the card's likes set.
func (c *Card) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// validURL reports whether s is an absolute http(s) URL.
func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

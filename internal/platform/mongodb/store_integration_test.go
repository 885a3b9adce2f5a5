package mongodb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/store"
)

// testDatabase connects to the MongoDB instance named by MESTO_TEST_MONGO_URI
// and hands back a per-test database that is dropped on cleanup. Tests in this
// file are skipped when the variable is unset.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MESTO_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("MESTO_TEST_MONGO_URI not set, skipping MongoDB integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	db := client.Database(fmt.Sprintf("mesto_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

func TestMongoUserStore(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()

	userStore := NewUserStore(db)
	require.NoError(t, userStore.EnsureIndexes(ctx))

	newUser := func(email string) *domain.User {
		u, err := domain.NewUser("", "", "", email, "secret123")
		require.NoError(t, err)
		u.HashedPassword = "$2a$10$fakehashfortestingonlyabcdefghijklmnopqrstu"
		u.Password = ""
		return u
	}

	t.Run("create assigns an id", func(t *testing.T) {
		u := newUser("create@example.com")
		require.NoError(t, userStore.Create(ctx, u))
		assert.False(t, u.ID.IsZero())
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		require.NoError(t, userStore.Create(ctx, newUser("dupe@example.com")))
		err := userStore.Create(ctx, newUser("dupe@example.com"))
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("reads omit the password hash", func(t *testing.T) {
		u := newUser("hidden@example.com")
		require.NoError(t, userStore.Create(ctx, u))

		got, err := userStore.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Empty(t, got.HashedPassword)

		all, err := userStore.List(ctx)
		require.NoError(t, err)
		for _, listed := range all {
			assert.Empty(t, listed.HashedPassword)
		}
	})

	t.Run("credentials lookup keeps the hash", func(t *testing.T) {
		u := newUser("login@example.com")
		require.NoError(t, userStore.Create(ctx, u))

		got, err := userStore.GetByEmailWithPassword(ctx, "login@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, got.HashedPassword)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := userStore.GetByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("update profile returns the new state", func(t *testing.T) {
		u := newUser("update@example.com")
		require.NoError(t, userStore.Create(ctx, u))

		got, err := userStore.UpdateProfile(ctx, u.ID, "Jacques", "Explorer")
		require.NoError(t, err)
		assert.Equal(t, "Jacques", got.Name)
		assert.Equal(t, "Explorer", got.About)
		assert.Empty(t, got.HashedPassword)

		got, err = userStore.UpdateAvatar(ctx, u.ID, "https://example.com/new.png")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/new.png", got.Avatar)
	})

	t.Run("update of a missing user", func(t *testing.T) {
		_, err := userStore.UpdateProfile(ctx, primitive.NewObjectID(), "Nobody", "Nothing")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestMongoCardStore(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()

	cardStore := NewCardStore(db)
	owner := primitive.NewObjectID()

	newCard := func(name string) *domain.Card {
		c, err := domain.NewCard(name, "https://example.com/"+name+".jpg", owner)
		require.NoError(t, err)
		return c
	}

	t.Run("create and get round-trip", func(t *testing.T) {
		c := newCard("baikal")
		require.NoError(t, cardStore.Create(ctx, c))
		require.False(t, c.ID.IsZero())

		got, err := cardStore.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.Name, got.Name)
		assert.Equal(t, owner, got.Owner)
		assert.Empty(t, got.Likes)
	})

	t.Run("likes behave as a set", func(t *testing.T) {
		c := newCard("elbrus")
		require.NoError(t, cardStore.Create(ctx, c))
		liker := primitive.NewObjectID()

		got, err := cardStore.AddLike(ctx, c.ID, liker)
		require.NoError(t, err)
		assert.Len(t, got.Likes, 1)

		got, err = cardStore.AddLike(ctx, c.ID, liker)
		require.NoError(t, err)
		assert.Len(t, got.Likes, 1, "re-liking must not duplicate")

		got, err = cardStore.RemoveLike(ctx, c.ID, liker)
		require.NoError(t, err)
		assert.Empty(t, got.Likes)

		// Removing an absent like is a no-op, not an error.
		got, err = cardStore.RemoveLike(ctx, c.ID, liker)
		require.NoError(t, err)
		assert.Empty(t, got.Likes)
	})

	t.Run("delete", func(t *testing.T) {
		c := newCard("karelia")
		require.NoError(t, cardStore.Create(ctx, c))

		require.NoError(t, cardStore.Delete(ctx, c.ID))
		assert.ErrorIs(t, cardStore.Delete(ctx, c.ID), store.ErrCardNotFound)

		_, err := cardStore.GetByID(ctx, c.ID)
		assert.ErrorIs(t, err, store.ErrCardNotFound)
	})

	t.Run("like on a missing card", func(t *testing.T) {
		_, err := cardStore.AddLike(ctx, primitive.NewObjectID(), primitive.NewObjectID())
		assert.ErrorIs(t, err, store.ErrCardNotFound)
	})
}

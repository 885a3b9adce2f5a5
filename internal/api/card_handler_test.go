package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/mocks"
)

func seedMockCard(cardStore *mocks.MockCardStore, owner primitive.ObjectID) *domain.Card {
	card, err := domain.NewCard("Lake Baikal", "https://example.com/baikal.jpg", owner)
	if err != nil {
		panic(err)
	}
	card.ID = primitive.NewObjectID()
	cardStore.Cards[card.ID] = card
	return card
}

func TestCardHandlerCreate(t *testing.T) {
	t.Parallel()

	t.Run("owner is always the caller", func(t *testing.T) {
		cardStore := mocks.NewMockCardStore()
		handler := NewCardHandler(cardStore, nil)
		callerID := primitive.NewObjectID()

		// The body carries an owner field; it must be ignored.
		body := []byte(`{"name":"Elbrus","link":"https://example.com/elbrus.jpg","owner":"ffffffffffffffffffffffff"}`)
		req := authenticatedRequest("POST", "/cards", body, callerID)
		recorder := httptest.NewRecorder()
		handler.Create(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp CardResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, callerID.Hex(), resp.Owner)
		assert.Equal(t, "Elbrus", resp.Name)
		assert.Empty(t, resp.Likes)
		assert.False(t, resp.CreatedAt.IsZero())

		require.Len(t, cardStore.Cards, 1)
		for _, stored := range cardStore.Cards {
			assert.Equal(t, callerID, stored.Owner)
		}
	})

	t.Run("missing identity yields 401", func(t *testing.T) {
		handler := NewCardHandler(mocks.NewMockCardStore(), nil)

		req := httptest.NewRequest("POST", "/cards", nil)
		recorder := httptest.NewRecorder()
		handler.Create(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("invalid link yields 400", func(t *testing.T) {
		cardStore := mocks.NewMockCardStore()
		handler := NewCardHandler(cardStore, nil)

		body := []byte(`{"name":"Elbrus","link":"not a url"}`)
		req := authenticatedRequest("POST", "/cards", body, primitive.NewObjectID())
		recorder := httptest.NewRecorder()
		handler.Create(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "link must be a valid URL")
		assert.Empty(t, cardStore.Cards)
	})
}

func TestCardHandlerDelete(t *testing.T) {
	t.Parallel()

	t.Run("owner deletes own card", func(t *testing.T) {
		cardStore := mocks.NewMockCardStore()
		ownerID := primitive.NewObjectID()
		card := seedMockCard(cardStore, ownerID)
		handler := NewCardHandler(cardStore, nil)

		req := authenticatedRequest("DELETE", "/cards/"+card.ID.Hex(), nil, ownerID)
		req = withURLParam(req, "cardID", card.ID.Hex())
		recorder := httptest.NewRecorder()
		handler.Delete(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, cardStore.Cards)

		var resp CardResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, card.ID.Hex(), resp.ID)
	})

	t.Run("non-owner gets 403 and the card survives", func(t *testing.T) {
		cardStore := mocks.NewMockCardStore()
		card := seedMockCard(cardStore, primitive.NewObjectID())
		handler := NewCardHandler(cardStore, nil)

		req := authenticatedRequest("DELETE", "/cards/"+card.ID.Hex(), nil, primitive.NewObjectID())
		req = withURLParam(req, "cardID", card.ID.Hex())
		recorder := httptest.NewRecorder()
		handler.Delete(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "You can only delete your own cards")
		assert.Len(t, cardStore.Cards, 1)
	})

	t.Run("missing card is 404 even for a non-owner", func(t *testing.T) {
		// Existence is checked first, so a probing caller cannot learn
		// anything from the ownership rule.
		handler := NewCardHandler(mocks.NewMockCardStore(), nil)

		id := primitive.NewObjectID().Hex()
		req := authenticatedRequest("DELETE", "/cards/"+id, nil, primitive.NewObjectID())
		req = withURLParam(req, "cardID", id)
		recorder := httptest.NewRecorder()
		handler.Delete(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Card not found")
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		storeTouched := false
		cardStore := &mocks.MockCardStore{
			GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*domain.Card, error) {
				storeTouched = true
				return nil, nil
			},
		}
		handler := NewCardHandler(cardStore, nil)

		req := authenticatedRequest("DELETE", "/cards/zzz", nil, primitive.NewObjectID())
		req = withURLParam(req, "cardID", "zzz")
		recorder := httptest.NewRecorder()
		handler.Delete(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid card ID format")
		assert.False(t, storeTouched)
	})
}

func TestCardHandlerLikes(t *testing.T) {
	t.Parallel()

	t.Run("like and dislike round-trip", func(t *testing.T) {
		cardStore := mocks.NewMockCardStore()
		card := seedMockCard(cardStore, primitive.NewObjectID())
		handler := NewCardHandler(cardStore, nil)
		likerID := primitive.NewObjectID()

		like := func() *httptest.ResponseRecorder {
			req := authenticatedRequest("PUT", "/cards/"+card.ID.Hex()+"/likes", nil, likerID)
			req = withURLParam(req, "cardID", card.ID.Hex())
			recorder := httptest.NewRecorder()
			handler.Like(recorder, req)
			return recorder
		}

		recorder := like()
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp CardResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, []string{likerID.Hex()}, resp.Likes)

		// Liking again is a no-op, not a second entry.
		recorder = like()
		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, []string{likerID.Hex()}, resp.Likes)

		req := authenticatedRequest("DELETE", "/cards/"+card.ID.Hex()+"/likes", nil, likerID)
		req = withURLParam(req, "cardID", card.ID.Hex())
		recorder = httptest.NewRecorder()
		handler.Dislike(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Empty(t, resp.Likes)
	})

	t.Run("removing an absent like succeeds", func(t *testing.T) {
		cardStore := mocks.NewMockCardStore()
		card := seedMockCard(cardStore, primitive.NewObjectID())
		handler := NewCardHandler(cardStore, nil)

		req := authenticatedRequest("DELETE", "/cards/"+card.ID.Hex()+"/likes", nil, primitive.NewObjectID())
		req = withURLParam(req, "cardID", card.ID.Hex())
		recorder := httptest.NewRecorder()
		handler.Dislike(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("unknown card yields 404", func(t *testing.T) {
		handler := NewCardHandler(mocks.NewMockCardStore(), nil)

		id := primitive.NewObjectID().Hex()
		req := authenticatedRequest("PUT", "/cards/"+id+"/likes", nil, primitive.NewObjectID())
		req = withURLParam(req, "cardID", id)
		recorder := httptest.NewRecorder()
		handler.Like(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("malformed id yields 400 before any mutation", func(t *testing.T) {
		mutated := false
		cardStore := &mocks.MockCardStore{
			AddLikeFn: func(ctx context.Context, cardID, userID primitive.ObjectID) (*domain.Card, error) {
				mutated = true
				return nil, nil
			},
		}
		handler := NewCardHandler(cardStore, nil)

		req := authenticatedRequest("PUT", "/cards/short/likes", nil, primitive.NewObjectID())
		req = withURLParam(req, "cardID", "short")
		recorder := httptest.NewRecorder()
		handler.Like(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid card ID format")
		assert.False(t, mutated)
	})
}

func TestCardHandlerList(t *testing.T) {
	t.Parallel()

	cardStore := mocks.NewMockCardStore()
	seedMockCard(cardStore, primitive.NewObjectID())
	seedMockCard(cardStore, primitive.NewObjectID())
	handler := NewCardHandler(cardStore, nil)

	req := httptest.NewRequest("GET", "/cards", nil)
	recorder := httptest.NewRecorder()
	handler.List(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp []CardResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

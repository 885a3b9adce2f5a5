package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/platform/logger"
	"github.com/phrazzld/mesto-api/internal/store"
)

// CardHandler handles card-related HTTP requests.
type CardHandler struct {
	cardStore store.CardStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewCardHandler creates a new CardHandler with the given dependencies.
func NewCardHandler(cardStore store.CardStore, log *slog.Logger) *CardHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CardHandler{
		cardStore: cardStore,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "card_handler")),
	}
}

// List handles GET /cards requests.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// Create handles POST /cards requests.
// The card's owner is always the authenticated caller, regardless of input.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := currentUserID(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	card, err := domain.NewCard(req.Name, req.Link, userID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.cardStore.Create(r.Context(), card); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("card created",
		slog.String("card_id", card.ID.Hex()),
		slog.String("owner", userID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// Delete handles DELETE /cards/{cardID} requests.
// Existence is checked before ownership: a missing card is always 404, and
// only the owner may delete an existing one.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := currentUserID(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
		return
	}

	cardID, err := parseObjectID(chi.URLParam(r, "cardID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID format")
		return
	}

	card, err := h.cardStore.GetByID(r.Context(), cardID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if card.Owner != userID {
		err := domain.ErrCardNotOwned
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.cardStore.Delete(r.Context(), cardID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("card deleted",
		slog.String("card_id", cardID.Hex()),
		slog.String("owner", userID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// Like handles PUT|PATCH /cards/{cardID}/likes requests.
// The like set is idempotent: liking twice equals liking once.
func (h *CardHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.updateLikes(w, r, h.cardStore.AddLike)
}

// Dislike handles DELETE /cards/{cardID}/likes requests.
func (h *CardHandler) Dislike(w http.ResponseWriter, r *http.Request) {
	h.updateLikes(w, r, h.cardStore.RemoveLike)
}

func (h *CardHandler) updateLikes(
	w http.ResponseWriter,
	r *http.Request,
	mutate func(ctx context.Context, cardID, userID primitive.ObjectID) (*domain.Card, error),
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := currentUserID(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
		return
	}

	cardID, err := parseObjectID(chi.URLParam(r, "cardID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID format")
		return
	}

	card, err := mutate(r.Context(), cardID, userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/platform/logger"
	"github.com/phrazzld/mesto-api/internal/store"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userStore store.UserStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, log *slog.Logger) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		userStore: userStore,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "user_handler")),
	}
}

// List handles GET /users requests.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

// GetByID handles GET /users/{id} requests.
// A malformed id yields 400; an unknown but well-formed id yields 404.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Me handles GET /users/me requests.
// The target is resolved from the authenticated identity only.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := currentUserID(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// UpdateProfile handles PATCH /users/me requests.
// The updated record is always the caller's own: the target id comes from
// the verified token, never from the path or body.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := currentUserID(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.userStore.UpdateProfile(r.Context(), userID, req.Name, req.About)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("profile updated", slog.String("user_id", userID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// UpdateAvatar handles PATCH /users/me/avatar requests.
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := currentUserID(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req UpdateAvatarRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.userStore.UpdateAvatar(r.Context(), userID, req.Avatar)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("avatar updated", slog.String("user_id", userID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/platform/logger"
	"github.com/phrazzld/mesto-api/internal/service/auth"
	"github.com/phrazzld/mesto-api/internal/store"
)

// AuthHandler handles signup and signin requests.
type AuthHandler struct {
	userStore      store.UserStore
	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		userStore:      userStore,
		jwtService:     jwtService,
		passwordHasher: passwordHasher,
		validator:      validator.New(),
		logger:         log.With(slog.String("component", "auth_handler")),
	}
}

// Signup handles POST /signup.
// The password is hashed before the user is persisted and never appears in
// the response. A duplicate email yields 409.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SignupRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := domain.NewUser(req.Name, req.About, req.Avatar, req.Email, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	hashed, err := h.passwordHasher.Hash(user.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"An unexpected error occurred", err)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("user registered", slog.String("user_id", user.ID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// Signin handles POST /signin.
// Unknown email and wrong password produce the identical 403 response so the
// caller learns nothing about which factor failed. Success returns a signed
// token with a 7-day expiry.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SigninRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	// The credentials lookup is the one read path that includes the hash.
	user, err := h.userStore.GetByEmailWithPassword(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			err = auth.ErrBadCredentials
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.passwordHasher.Compare(user.HashedPassword, req.Password); err != nil {
		err = auth.ErrBadCredentials
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"An unexpected error occurred", err)
		return
	}

	log.Debug("user signed in", slog.String("user_id", user.ID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/mesto-api/internal/api"
	apiMiddleware "github.com/phrazzld/mesto-api/internal/api/middleware"
	"github.com/phrazzld/mesto-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Unmatched routes and methods fall through to a uniform
// 404 JSON body.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordHasher, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)
	cardHandler := api.NewCardHandler(app.cardStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Public endpoints
	r.Post("/signup", authHandler.Signup)
	r.Post("/signin", authHandler.Signin)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		// User endpoints
		r.Get("/users", userHandler.List)
		r.Get("/users/me", userHandler.Me)
		r.Get("/users/{id}", userHandler.GetByID)
		r.Patch("/users/me", userHandler.UpdateProfile)
		r.Patch("/users/me/avatar", userHandler.UpdateAvatar)

		// Card endpoints
		r.Get("/cards", cardHandler.List)
		r.Post("/cards", cardHandler.Create)
		r.Delete("/cards/{cardID}", cardHandler.Delete)
		r.Put("/cards/{cardID}/likes", cardHandler.Like)
		r.Patch("/cards/{cardID}/likes", cardHandler.Like)
		r.Delete("/cards/{cardID}/likes", cardHandler.Dislike)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	// Everything else is a uniform JSON 404.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Page not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Page not found")
	})

	return r
}

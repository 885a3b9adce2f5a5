package main

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phrazzld/mesto-api/internal/config"
	"github.com/phrazzld/mesto-api/internal/platform/mongodb"
	"github.com/phrazzld/mesto-api/internal/service/auth"
	"github.com/phrazzld/mesto-api/internal/store"
)

// application holds the assembled dependencies of the server.
type application struct {
	config         *config.Config
	logger         *slog.Logger
	userStore      store.UserStore
	cardStore      store.CardStore
	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
}

// newApplication wires the stores and services around the given database
// handle. It also ensures the unique email index exists, so a duplicate
// signup is a distinct conflict from the first request on.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *mongo.Database,
) (*application, error) {
	userStore := mongodb.NewUserStore(db)
	if err := userStore.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure user indexes: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:         cfg,
		logger:         logger,
		userStore:      userStore,
		cardStore:      mongodb.NewCardStore(db),
		jwtService:     jwtService,
		passwordHasher: auth.NewBcryptHasher(),
	}, nil
}

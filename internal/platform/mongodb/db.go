// Package mongodb implements the store interfaces on MongoDB using the
// official driver. Driver-specific failures (ErrNoDocuments, duplicate-key
// errors, malformed ObjectIDs) are translated into the store error taxonomy
// here and never leak past this package in raw form.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/phrazzld/mesto-api/internal/config"
)

// Connect establishes a client connection, verifies it with a ping, and
// returns the database handle together with a disconnect function the caller
// runs at shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Database, func(context.Context) error, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(cfg.Name), client.Disconnect, nil
}

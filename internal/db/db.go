// Package db provides MongoDB connection setup and access.
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Connect opens a MongoDB client for the given URI and verifies the
// connection with a ping. The returned database handle is safe for
// concurrent use.
func Connect(ctx context.Context, uri, name string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		disconnectErr := client.Disconnect(ctx)
		if disconnectErr != nil {
			return nil, fmt.Errorf("pinging mongodb: %w (also failed to disconnect: %v)", err, disconnectErr)
		}
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return client.Database(name), nil
}

// Close disconnects the client behind a database handle.
func Close(ctx context.Context, database *mongo.Database) error {
	if err := database.Client().Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting from mongodb: %w", err)
	}
	return nil
}

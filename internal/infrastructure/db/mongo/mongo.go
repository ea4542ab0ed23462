// Package mongo holds the claim and credential repositories plus the shared
// connection helper. The claims database predates this service, so the
// defaults here (database name, camelCase document keys in the repositories)
// follow the existing deployment rather than Go conventions.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// defaultDatabase is the deployment the claim and credential
	// collections live in.
	defaultDatabase = "hartford"

	// defaultTimeout bounds the initial dial and every repository
	// operation.
	defaultTimeout = 10 * time.Second
)

// Config carries the connection settings. Zero values select the claims
// deployment defaults.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect dials the claims database and confirms it answers a ping before
// any repository is built on top of it.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	dbName := cfg.Database
	if dbName == "" {
		dbName = defaultDatabase
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(dbName), nil
}

package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rce-oj/dataserver/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	ProblemsCollection    = "Problems"
	SubmissionsCollection = "Submissions"

	defaultPingTimeout       = 5 * time.Second
	defaultDisconnectTimeout = 10 * time.Second
	defaultMaxConnIdle       = 2 * time.Minute
)

// Open creates the store client. The driver connects lazily, so an
// unreachable server is not an error here; it surfaces on the first
// operation instead.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	uri := strings.TrimSpace(cfg.URI)
	if uri == "" {
		return nil, errors.New("mongodb uri is required")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetMaxConnIdleTime(defaultMaxConnIdle)
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(uint64(cfg.MaxPoolSize))
	}
	if cfg.Timeout > 0 {
		opts.SetServerSelectionTimeout(cfg.Timeout)
		opts.SetConnectTimeout(cfg.Timeout)
	}

	return mongo.Connect(ctx, opts)
}

// Ping checks that the primary answers within a short deadline.
func Ping(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return errors.New("mongodb client is not initialised")
	}
	ctx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	return client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client, waiting for in-flight operations.
func Close(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), defaultDisconnectTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// Collections returns the problem and submission collections of the
// configured database.
func Collections(client *mongo.Client, dbName string) (problems, submissions *mongo.Collection) {
	database := client.Database(dbName)
	return database.Collection(ProblemsCollection), database.Collection(SubmissionsCollection)
}

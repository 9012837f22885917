package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"role-explorer/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

// MongoDB wraps a client bound to the service database
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects using MONGODB_URI and MONGODB_DATABASE
func NewMongoDB(ctx context.Context) (*MongoDB, error) {
	uri := config.GetMongoURI()
	opts := options.Client().ApplyURI(uri)

	// Only add OpenTelemetry instrumentation if telemetry is enabled
	if config.IsTelemetryEnabled() {
		opts.SetMonitor(otelmongo.NewMonitor())
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	dbName := config.GetMongoDatabase()
	slog.Info("Connected to MongoDB", "database", dbName)

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

// Close disconnects the client
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// Collection returns a handle on the named collection
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}

// HealthCheck pings the server
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}

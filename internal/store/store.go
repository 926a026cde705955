// Package store persists canonical records to MongoDB, one collection per
// entity, with the upstream natural key held unique by an index.
package store

import (
	"context"
	"fmt"
	"time"

	"shopify-mirror/internal/models"
	"shopify-mirror/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	connectTimeout = 5 * time.Second
	socketTimeout  = 45 * time.Second
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// NewStore connects to MongoDB and pings it. The connection is opened once
// at process start and shared by all requests for the life of the process.
func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(connectTimeout).
		SetConnectTimeout(connectTimeout).
		SetSocketTimeout(socketTimeout)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, connectTimeout)
	defer cancelPing()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
		logger: util.GetLogger(),
	}, nil
}

// EnsureIndexes creates the unique natural-key index on each entity
// collection. Safe to call on every startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	keyed := map[string]string{
		models.EntityOrders.Collection:    "id",
		models.EntityCustomers.Collection: "id",
		models.EntityProducts.Collection:  "id",
		models.EntityInventory.Collection: "inventory_item_id",
	}

	for collection, key := range keyed {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetUnique(true).SetName(key + "_unique"),
		}
		if _, err := s.db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to ensure %s index on %s: %w", key, collection, err)
		}
	}

	s.logger.Info("Unique indexes ensured", zap.Int("collections", len(keyed)))
	return nil
}

// Close disconnects the shared client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// GetDatabase returns the underlying database handle.
func (s *Store) GetDatabase() *mongo.Database {
	return s.db
}

package migrations

import (
	"context"
	"time"

	"role-explorer/internal/customroles/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	Register(Migration{
		Version:     "001_create_kv_store_indexes",
		Description: "Create indexes for the kv_store collection holding custom roles",
		Up:          up001,
		Down:        down001,
	})
}

const kvUpdatedAtIndex = "updated_at_desc"

func up001(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection(models.KVCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "updated_at", Value: -1}},
			Options: options.Index().SetName(kvUpdatedAtIndex),
		},
	}

	opts := options.CreateIndexes().SetMaxTime(30 * time.Second)
	_, err := collection.Indexes().CreateMany(ctx, indexes, opts)
	if err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func down001(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(models.KVCollection).Indexes().DropOne(ctx, kvUpdatedAtIndex)
	return err
}

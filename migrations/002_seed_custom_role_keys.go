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
		Version:     "002_seed_custom_role_keys",
		Description: "Seed an empty custom role list when none is stored",
		Up:          up002,
	})
}

// up002 only inserts; an existing list is never touched
func up002(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection(models.KVCollection)

	_, err := collection.UpdateOne(ctx,
		bson.M{"_id": models.StorageKey},
		bson.M{"$setOnInsert": bson.M{"value": "[]", "updated_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	return err
}

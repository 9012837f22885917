package models

import "time"

// Storage keys for the custom role payload
const (
	StorageKey = "custom_roles"
	BackupKey  = "custom_roles_backup"
)

// KVCollection is the MongoDB collection backing the key-value store
const KVCollection = "kv_store"

// KVDocument is one key-value entry as stored in MongoDB
type KVDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

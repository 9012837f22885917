package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"role-explorer/internal/customroles/models"
	"role-explorer/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// KVStore is durable single-key storage for serialized payloads
type KVStore interface {
	// Get returns the value for key; ok is false when the key is absent
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	// Backend names the store for logs and metrics
	Backend() string
}

// MemoryStore keeps values in process memory
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Backend() string { return "memory" }

// RedisStore keeps values as plain Redis strings without expiry
type RedisStore struct {
	redis *database.Redis
}

// NewRedisStore wraps a Redis connection
func NewRedisStore(redis *database.Redis) *RedisStore {
	return &RedisStore{redis: redis}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.redis.Get(ctx, key)
	if database.IsNil(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.redis.Set(ctx, key, value, 0); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Backend() string { return "redis" }

// MongoStore keeps each key as one document in the kv_store collection
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore uses the kv_store collection of db
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection(models.KVCollection)}
}

func (s *MongoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc models.KVDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s from mongodb: %w", key, err)
	}
	return []byte(doc.Value), true, nil
}

func (s *MongoStore) Put(ctx context.Context, key string, value []byte) error {
	doc := models.KVDocument{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return fmt.Errorf("failed to write %s to mongodb: %w", key, err)
	}
	return nil
}

func (s *MongoStore) Backend() string { return "mongo" }

package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"role-explorer/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Redis wraps a client with optional tracing
type Redis struct {
	Client *redis.Client
	tracer trace.Tracer
}

// NewRedis connects using REDIS_URL
func NewRedis(ctx context.Context) (*Redis, error) {
	opt, err := redis.ParseURL(config.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Connected to Redis", "addr", opt.Addr)
	return NewRedisFromClient(client), nil
}

// NewRedisFromClient wraps an existing client
func NewRedisFromClient(client *redis.Client) *Redis {
	r := &Redis{Client: client}

	// Only initialize tracer if telemetry is enabled
	if config.IsTelemetryEnabled() {
		r.tracer = otel.Tracer("redis-client")
	}
	return r
}

// IsNil reports whether err means the key does not exist
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

// Close closes the client
func (r *Redis) Close() error {
	return r.Client.Close()
}

// span starts a client span when tracing is enabled. The returned end
// function records err on the span.
func (r *Redis) span(ctx context.Context, operation string, keys ...string) (context.Context, func(error)) {
	if r.tracer == nil {
		return ctx, func(error) {}
	}
	ctx, span := r.tracer.Start(ctx, "redis."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.StringSlice("redis.keys", keys),
			attribute.String("redis.operation", operation),
		),
	)
	return ctx, func(err error) {
		if err != nil && !IsNil(err) {
			span.RecordError(err)
		}
		span.End()
	}
}

// Set stores value under key; zero expiration keeps it forever
func (r *Redis) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	ctx, end := r.span(ctx, "set", key)
	err := r.Client.Set(ctx, key, value, expiration).Err()
	end(err)
	return err
}

// Get reads the raw bytes under key. A missing key returns an error matched by IsNil.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, end := r.span(ctx, "get", key)
	value, err := r.Client.Get(ctx, key).Bytes()
	end(err)
	return value, err
}

// Delete removes keys
func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	ctx, end := r.span(ctx, "del", keys...)
	err := r.Client.Del(ctx, keys...).Err()
	end(err)
	return err
}

// Exists counts how many of keys exist
func (r *Redis) Exists(ctx context.Context, keys ...string) (int64, error) {
	ctx, end := r.span(ctx, "exists", keys...)
	n, err := r.Client.Exists(ctx, keys...).Result()
	end(err)
	return n, err
}

// HealthCheck pings the server
func (r *Redis) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.Client.Ping(ctx).Err()
}

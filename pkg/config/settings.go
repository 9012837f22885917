package config

import "time"

// Custom role store backends
const (
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// GetServiceName returns the service name used for telemetry and the default database
func GetServiceName() string {
	return GetEnv("SERVICE_NAME", "role-explorer")
}

// GetHost returns the interface the HTTP server binds to
func GetHost() string {
	return GetEnv("HOST", "0.0.0.0")
}

// GetPort returns the HTTP server port
func GetPort() string {
	return GetEnv("PORT", "8080")
}

// GetAPIPrefix returns the path prefix for API routes, always without a trailing slash
func GetAPIPrefix() string {
	prefix := GetEnv("API_PREFIX", "")
	for len(prefix) > 0 && prefix[len(prefix)-1] == '/' {
		prefix = prefix[:len(prefix)-1]
	}
	if prefix != "" && prefix[0] != '/' {
		prefix = "/" + prefix
	}
	return prefix
}

// GetMongoURI returns the MongoDB connection string
func GetMongoURI() string {
	return GetEnv("MONGODB_URI", "mongodb://localhost:27017")
}

// GetMongoDatabase returns the MongoDB database name
func GetMongoDatabase() string {
	return GetEnv("MONGODB_DATABASE", "role_explorer")
}

// GetRedisURL returns the Redis connection string
func GetRedisURL() string {
	return GetEnv("REDIS_URL", "redis://localhost:6379")
}

// GetCustomRoleStore returns the configured custom role backend
func GetCustomRoleStore() string {
	switch store := GetEnv("CUSTOM_ROLE_STORE", StoreMemory); store {
	case StoreRedis, StoreMongo, StoreMemory:
		return store
	default:
		return StoreMemory
	}
}

// GetSnapshotSchedule returns the cron schedule for custom role snapshots; empty disables them
func GetSnapshotSchedule() string {
	return GetEnv("CUSTOM_ROLE_SNAPSHOT_SCHEDULE", "@every 1h")
}

// GetCORSAllowedOrigins returns the origins allowed to call the API
func GetCORSAllowedOrigins() []string {
	return GetSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"})
}

// GetRequestTimeout returns the per-request timeout applied by the router
func GetRequestTimeout() time.Duration {
	return GetDurationEnv("REQUEST_TIMEOUT", 30*time.Second)
}

// IsTelemetryEnabled reports whether OpenTelemetry exporters are enabled
func IsTelemetryEnabled() bool {
	return GetBoolEnv("ENABLE_TELEMETRY", false)
}

// IsMetricsEnabled reports whether the Prometheus endpoint is served
func IsMetricsEnabled() bool {
	return GetBoolEnv("ENABLE_METRICS", true)
}

// IsProduction returns true if running in production environment
func IsProduction() bool {
	return GetEnv("APP_ENV", "development") == "production"
}

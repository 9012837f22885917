package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_BAD_BOOL", "maybe")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_SLICE", " a, ,b ")

	assert.Equal(t, "value", GetEnv("TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnv("TEST_MISSING", "default"))
	assert.True(t, GetBoolEnv("TEST_BOOL", false))
	assert.True(t, GetBoolEnv("TEST_BAD_BOOL", true))
	assert.Equal(t, 42, GetIntEnv("TEST_INT", 0))
	assert.Equal(t, 90*time.Second, GetDurationEnv("TEST_DURATION", time.Second))
	assert.Equal(t, []string{"a", "b"}, GetSliceEnv("TEST_SLICE", nil))
	assert.Equal(t, []string{"x"}, GetSliceEnv("TEST_MISSING", []string{"x"}))

	assert.Panics(t, func() { MustGetEnv("TEST_MISSING") })
}

func TestSettings(t *testing.T) {
	t.Setenv("API_PREFIX", "api/v1/")
	assert.Equal(t, "/api/v1", GetAPIPrefix())

	t.Setenv("API_PREFIX", "")
	assert.Equal(t, "", GetAPIPrefix())

	t.Setenv("CUSTOM_ROLE_STORE", "redis")
	assert.Equal(t, StoreRedis, GetCustomRoleStore())

	t.Setenv("CUSTOM_ROLE_STORE", "postgres")
	assert.Equal(t, StoreMemory, GetCustomRoleStore())

	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, GetCORSAllowedOrigins())
}

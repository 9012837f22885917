package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextVersionNumber(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, 1, nextVersionNumber(dir))
	assert.Equal(t, 1, nextVersionNumber(filepath.Join(dir, "missing")))

	for _, f := range []string{"001_a.go", "007_b.go", "helpers.go"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0o644))
	}
	assert.Equal(t, 8, nextVersionNumber(dir))
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, createMigration(dir, "add_role_index", ""))

	content, err := os.ReadFile(filepath.Join(dir, "001_add_role_index.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `Version:     "001_add_role_index"`)
	assert.Contains(t, string(content), `Description: "add role index"`)
	assert.Contains(t, string(content), "func up001(")

	require.NoError(t, createMigration(dir, "second", "Second step"))
	_, err = os.Stat(filepath.Join(dir, "002_second.go"))
	assert.NoError(t, err)

	assert.Error(t, createMigration(dir, "  ", ""))
}

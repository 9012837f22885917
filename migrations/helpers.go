package migrations

import (
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// isIndexExistsError reports whether err means the index is already in place
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return mongo.IsDuplicateKeyError(err) ||
		strings.Contains(errStr, "already exists") ||
		strings.Contains(errStr, "IndexKeySpecsConflict") ||
		strings.Contains(errStr, "IndexOptionsConflict")
}

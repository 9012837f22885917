package migrations

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName holds one record per applied migration
const CollectionName = "_migrations"

// Migration is the record stored for an applied migration
type Migration struct {
	Version     string    `bson:"version"`     // e.g., "001_create_kv_store_indexes"
	Description string    `bson:"description"` // Human-readable description
	AppliedAt   time.Time `bson:"applied_at"`
	Checksum    string    `bson:"checksum"`
}

// MigrationFunc defines a migration function signature
type MigrationFunc func(ctx context.Context, db *mongo.Database) error

// RegisteredMigration holds migration metadata and functions
type RegisteredMigration struct {
	Version     string
	Description string
	Up          MigrationFunc
	Down        MigrationFunc // optional
}

// Status describes one registered migration and whether it has run
type Status struct {
	Version     string
	Description string
	Applied     bool
	AppliedAt   time.Time
	// Drifted is set when the stored checksum no longer matches the registration
	Drifted bool
}

// Runner manages database migrations
type Runner struct {
	db         *mongo.Database
	collection *mongo.Collection
	migrations []RegisteredMigration
	now        func() time.Time
}

// NewRunner creates a new migration runner
func NewRunner(db *mongo.Database) *Runner {
	return &Runner{
		db:         db,
		collection: db.Collection(CollectionName),
		now:        time.Now,
	}
}

// Register adds a migration to the runner. Migrations run in version order
// regardless of registration order.
func (r *Runner) Register(migration RegisteredMigration) {
	r.migrations = append(r.migrations, migration)
	sortByVersion(r.migrations)
}

// Migrations returns the registered migrations in version order
func (r *Runner) Migrations() []RegisteredMigration {
	return append([]RegisteredMigration(nil), r.migrations...)
}

// Run executes all pending migrations and returns how many were applied
func (r *Runner) Run(ctx context.Context) (int, error) {
	if err := r.ensureMigrationsIndex(ctx); err != nil {
		return 0, fmt.Errorf("failed to create migrations index: %w", err)
	}

	applied, err := r.getAppliedMigrations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	count := 0
	for _, migration := range pending(r.migrations, applied) {
		slog.InfoContext(ctx, "Running migration", "version", migration.Version, "description", migration.Description)

		if err := migration.Up(ctx, r.db); err != nil {
			return count, fmt.Errorf("migration %s failed: %w", migration.Version, err)
		}

		record := Migration{
			Version:     migration.Version,
			Description: migration.Description,
			AppliedAt:   r.now().UTC(),
			Checksum:    checksum(migration),
		}
		if _, err := r.collection.InsertOne(ctx, record); err != nil {
			return count, fmt.Errorf("failed to record migration %s: %w", migration.Version, err)
		}

		count++
		slog.InfoContext(ctx, "Migration completed", "version", migration.Version)
	}

	return count, nil
}

// Rollback rolls back the last n applied migrations
func (r *Runner) Rollback(ctx context.Context, steps int) error {
	applied, err := r.getAppliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	if steps > len(applied) {
		steps = len(applied)
	}

	registered := make(map[string]RegisteredMigration, len(r.migrations))
	for _, m := range r.migrations {
		registered[m.Version] = m
	}

	for i := len(applied) - 1; i >= len(applied)-steps; i-- {
		version := applied[i].Version
		migration, exists := registered[version]
		if !exists {
			return fmt.Errorf("migration %s not found in registered migrations", version)
		}

		if migration.Down == nil {
			slog.WarnContext(ctx, "Migration has no rollback function, skipping", "version", version)
			continue
		}

		slog.InfoContext(ctx, "Rolling back migration", "version", version)
		if err := migration.Down(ctx, r.db); err != nil {
			return fmt.Errorf("rollback %s failed: %w", version, err)
		}
		if _, err := r.collection.DeleteOne(ctx, bson.M{"version": version}); err != nil {
			return fmt.Errorf("failed to remove migration record %s: %w", version, err)
		}
		slog.InfoContext(ctx, "Rollback completed", "version", version)
	}

	return nil
}

// Status reports every registered migration against the applied records
func (r *Runner) Status(ctx context.Context) ([]Status, error) {
	applied, err := r.getAppliedMigrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}
	return statusOf(r.migrations, applied), nil
}

func (r *Runner) ensureMigrationsIndex(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "version", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := r.collection.Indexes().CreateOne(ctx, indexModel)
	return err
}

func (r *Runner) getAppliedMigrations(ctx context.Context) ([]Migration, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "version", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var migrations []Migration
	if err := cursor.All(ctx, &migrations); err != nil {
		return nil, err
	}

	return migrations, nil
}

func pending(registered []RegisteredMigration, applied []Migration) []RegisteredMigration {
	done := make(map[string]bool, len(applied))
	for _, m := range applied {
		done[m.Version] = true
	}

	var out []RegisteredMigration
	for _, m := range registered {
		if !done[m.Version] {
			out = append(out, m)
		}
	}
	return out
}

func statusOf(registered []RegisteredMigration, applied []Migration) []Status {
	records := make(map[string]Migration, len(applied))
	for _, m := range applied {
		records[m.Version] = m
	}

	out := make([]Status, 0, len(registered))
	for _, m := range registered {
		s := Status{Version: m.Version, Description: m.Description}
		if rec, ok := records[m.Version]; ok {
			s.Applied = true
			s.AppliedAt = rec.AppliedAt
			s.Drifted = rec.Checksum != checksum(m)
		}
		out = append(out, s)
	}
	return out
}

func sortByVersion(ms []RegisteredMigration) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Version < ms[j].Version
	})
}

// checksum fingerprints the migration metadata
func checksum(migration RegisteredMigration) string {
	sum := sha256.Sum256([]byte(migration.Version + ":" + migration.Description))
	return hex.EncodeToString(sum[:])
}

// Package migrations holds the MongoDB migrations for the custom role store.
package migrations

import (
	"role-explorer/pkg/migrations"
)

var registeredMigrations []migrations.RegisteredMigration

// Migration is the shape each migration file registers from init
type Migration struct {
	Version     string
	Description string
	Up          migrations.MigrationFunc
	Down        migrations.MigrationFunc
}

// Register records a migration; called from init in each migration file
func Register(m Migration) {
	registeredMigrations = append(registeredMigrations, migrations.RegisteredMigration(m))
}

// Registered returns a copy of every migration known to this package
func Registered() []migrations.RegisteredMigration {
	return append([]migrations.RegisteredMigration(nil), registeredMigrations...)
}

// RegisterAll hands every migration to the runner, which orders them by version
func RegisterAll(runner *migrations.Runner) {
	for _, m := range registeredMigrations {
		runner.Register(m)
	}
}

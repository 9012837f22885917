package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"role-explorer/pkg/app"
	"role-explorer/pkg/database"
	pkgMigrations "role-explorer/pkg/migrations"

	// Import all migration files to register them
	localMigrations "role-explorer/migrations"
)

func main() {
	var (
		command     = flag.String("command", "up", "Migration command: up, down, status, create")
		steps       = flag.Int("steps", 1, "Number of migrations to roll back (for down)")
		name        = flag.String("name", "", "Migration name (for create)")
		description = flag.String("description", "", "Migration description (for create)")
		dryRun      = flag.Bool("dry-run", false, "Show the status instead of applying changes")
	)
	flag.Parse()

	if *command == "create" {
		if err := createMigration("migrations", *name, *description); err != nil {
			fatal("Failed to create migration", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	appCtx, err := app.InitializeApp(ctx, "migrate")
	if err != nil {
		fatal("Failed to initialize application", err)
	}
	defer appCtx.Shutdown(context.Background())

	// Migrations always target MongoDB, whichever store serves custom roles
	mongodb := appCtx.MongoDB
	if mongodb == nil {
		if mongodb, err = database.NewMongoDB(ctx); err != nil {
			fatal("Failed to connect to MongoDB", err)
		}
		defer mongodb.Close(context.Background())
	}

	runner := pkgMigrations.NewRunner(mongodb.Database)
	localMigrations.RegisterAll(runner)

	switch {
	case *dryRun || *command == "status":
		if err := printStatus(ctx, runner); err != nil {
			fatal("Failed to get migration status", err)
		}

	case *command == "up":
		applied, err := runner.Run(ctx)
		if err != nil {
			fatal("Migration failed", err)
		}
		slog.Info("Migrations completed", "applied", applied)

	case *command == "down":
		if err := runner.Rollback(ctx, *steps); err != nil {
			fatal("Rollback failed", err)
		}
		slog.Info("Rollback completed", "steps", *steps)

	default:
		fatal("Unknown command", fmt.Errorf("%q", *command))
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func printStatus(ctx context.Context, runner *pkgMigrations.Runner) error {
	statuses, err := runner.Status(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tVERSION\tDESCRIPTION\tAPPLIED AT")
	applied := 0
	for _, s := range statuses {
		state, at := "pending", ""
		if s.Applied {
			applied++
			state = "applied"
			at = s.AppliedAt.Format(time.RFC3339)
			if s.Drifted {
				state = "applied (changed)"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", state, s.Version, s.Description, at)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nTotal: %d migrations (%d applied, %d pending)\n", len(statuses), applied, len(statuses)-applied)
	return nil
}

const migrationTemplate = `package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	Register(Migration{
		Version:     %[1]q,
		Description: %[2]q,
		Up:          up%[3]s,
		Down:        down%[3]s,
	})
}

func up%[3]s(ctx context.Context, db *mongo.Database) error {
	return nil
}

func down%[3]s(ctx context.Context, db *mongo.Database) error {
	return nil
}
`

// createMigration writes a new migration skeleton into dir
func createMigration(dir, name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("migration name is required")
	}
	if description == "" {
		description = strings.ReplaceAll(name, "_", " ")
	}

	number := fmt.Sprintf("%03d", nextVersionNumber(dir))
	version := number + "_" + name
	filename := fmt.Sprintf("%s/%s.go", dir, version)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("migration file %s already exists", filename)
	}

	content := fmt.Sprintf(migrationTemplate, version, description, number)
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		return err
	}

	slog.Info("Created migration file", "file", filename)
	return nil
}

// nextVersionNumber scans dir for NNN_ prefixed files
func nextVersionNumber(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 1
	}

	maxVersion := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		var version int
		if _, err := fmt.Sscanf(entry.Name(), "%03d_", &version); err == nil && version > maxVersion {
			maxVersion = version
		}
	}
	return maxVersion + 1
}

package main

import (
	"context"
	"fmt"

	"role-explorer/internal/customroles"
	customroleServices "role-explorer/internal/customroles/services"
	explorerServices "role-explorer/internal/explorer/services"
	"role-explorer/pkg/app"
	"role-explorer/pkg/config"
	"role-explorer/pkg/permissions"
	"role-explorer/pkg/sandbox"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the rolectl CLI
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rolectl",
		Short: "Explore roles, permissions and their risk",
		Long: `rolectl browses the built-in permission catalog, resolves built-in and
custom roles, and derives role summaries, risk assessments and sandbox decisions.
Custom roles are read from the store selected by CUSTOM_ROLE_STORE.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("output", "o", formatText, "output format: text, json or yaml")

	cmd.AddCommand(newRolesCmd())
	cmd.AddCommand(newPermissionsCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newDetailsCmd())
	cmd.AddCommand(newAssessCmd())
	cmd.AddCommand(newSimulateCmd())
	cmd.AddCommand(newGridCmd())
	cmd.AddCommand(newAuditCmd())
	cmd.AddCommand(newSnapshotCmd())
	cmd.AddCommand(newRestoreCmd())
	cmd.AddCommand(newOpenAPICmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// env holds the services a command runs against
type env struct {
	catalog     *permissions.Catalog
	roles       *customroleServices.Service
	explorer    *explorerServices.Service
	snapshotter *customroleServices.Snapshotter
	release     func()
}

// newEnv wires the services. The in-memory store needs no connection; other
// backends go through the shared application bootstrap.
func newEnv(ctx context.Context) (*env, error) {
	catalog := permissions.Default()
	simulator, err := sandbox.New(catalog)
	if err != nil {
		return nil, err
	}

	var (
		store   customroleServices.KVStore = customroleServices.NewMemoryStore()
		release                            = func() {}
	)
	if config.GetCustomRoleStore() != config.StoreMemory {
		appCtx, err := app.InitializeApp(ctx, "rolectl")
		if err != nil {
			return nil, err
		}
		release = func() { appCtx.Shutdown(context.Background()) }
		if store, err = customroles.StoreFor(appCtx); err != nil {
			release()
			return nil, err
		}
	}

	mod := customroles.NewModule(catalog, store, simulator, nil)
	if err := mod.Initialize(ctx); err != nil {
		release()
		return nil, fmt.Errorf("failed to load custom roles: %w", err)
	}

	return &env{
		catalog:     catalog,
		roles:       mod.Service(),
		explorer:    explorerServices.NewService(catalog, mod.Service(), simulator, nil),
		snapshotter: mod.Snapshotter(),
		release:     release,
	}, nil
}

// withEnv runs fn against a fresh env and releases it afterwards
func withEnv(cmd *cobra.Command, fn func(e *env) error) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.release()
	return fn(e)
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"role-explorer/internal/customroles"
	customroleServices "role-explorer/internal/customroles/services"
	"role-explorer/internal/explorer"
	explorerServices "role-explorer/internal/explorer/services"
	"role-explorer/internal/server"
	"role-explorer/pkg/config"
	"role-explorer/pkg/permissions"
	"role-explorer/pkg/sandbox"
	"role-explorer/pkg/version"

	"github.com/spf13/cobra"
)

func newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Copy the stored custom roles to the backup key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, func(e *env) error {
				if err := e.snapshotter.Snapshot(cmd.Context()); err != nil {
					return err
				}
				roles, err := e.roles.List(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Snapshot written (%d custom roles)\n", len(roles))
				return nil
			})
		},
	}
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Replace the stored custom roles with the last snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, func(e *env) error {
				restored, err := e.roles.Restore(cmd.Context(), e.snapshotter)
				if err != nil {
					return err
				}
				if !restored {
					fmt.Fprintln(cmd.OutOrStdout(), "No snapshot found")
					return nil
				}
				roles, err := e.roles.List(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Restored %d custom roles\n", len(roles))
				return nil
			})
		},
	}
}

func newOpenAPICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document of the HTTP API",
		Long:  "Print the OpenAPI document as JSON (the default) or YAML with --output yaml.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := permissions.Default()
			simulator, err := sandbox.New(catalog)
			if err != nil {
				return err
			}
			roles := customroles.NewModule(catalog, customroleServices.NewMemoryStore(), simulator, nil)
			explore := explorer.NewModule(explorerServices.NewService(catalog, roles.Service(), simulator, nil))

			_, api := server.New(server.Options{
				ServiceName: config.GetServiceName(),
				APIPrefix:   config.GetAPIPrefix(),
				Catalog:     catalog,
			}, explore, roles)

			format, _ := cmd.Flags().GetString("output")
			var doc []byte
			if strings.EqualFold(format, formatYAML) {
				doc, err = api.OpenAPI().YAML()
			} else {
				doc, err = json.MarshalIndent(api.OpenAPI(), "", "  ")
			}
			if err != nil {
				return fmt.Errorf("failed to render OpenAPI document: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(doc), "\n"))
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			return render(cmd, info, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, info.String())
				return err
			})
		},
	}
}

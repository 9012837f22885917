package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	explorerServices "role-explorer/internal/explorer/services"
	"role-explorer/pkg/grid"
	"role-explorer/pkg/permissions"

	"github.com/spf13/cobra"
)

func newRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List built-in roles by category, followed by custom roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, func(e *env) error {
				groups := e.catalog.RolesByCategory()
				custom, err := e.roles.List(cmd.Context())
				if err != nil {
					return err
				}

				result := struct {
					Categories []permissions.RoleGroup `json:"categories" yaml:"categories"`
					Custom     []permissions.Role      `json:"custom" yaml:"custom"`
				}{groups, custom}

				return render(cmd, result, func(w io.Writer) error {
					for _, g := range groups {
						fmt.Fprintf(w, "%s\n", g.Category.Name)
						for _, r := range g.Roles {
							fmt.Fprintf(w, "  %s\t%s\t%d permissions\n", r.ID, r.Name, len(e.catalog.ResolveForRole(r.ID)))
						}
					}
					if len(custom) > 0 {
						fmt.Fprintln(w, "Custom Roles")
						for _, r := range custom {
							fmt.Fprintf(w, "  %s\t%s\t%d permissions\n", r.ID, r.Name, len(r.PermissionAccess))
						}
					}
					return nil
				})
			})
		},
	}
}

type permissionsConfig struct {
	groupBy  string
	match    string
	search   string
	category string
}

func newPermissionsCmd() *cobra.Command {
	cfg := &permissionsConfig{}

	cmd := &cobra.Command{
		Use:   "permissions",
		Short: "List catalog permissions, optionally filtered and grouped",
		Long: `List catalog permissions. --group-by accepts productCategory, taskCategory,
operationType, riskLevel, sensitivity or alphabetical. Task and sensitivity
grouping place a permission in every bucket it belongs to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, func(e *env) error {
				listing, err := e.explorer.Permissions(explorerServices.PermissionQuery{
					GroupBy:  cfg.groupBy,
					Match:    cfg.match,
					Search:   cfg.search,
					Category: cfg.category,
				})
				if err != nil {
					return err
				}
				return render(cmd, listing, func(w io.Writer) error {
					if listing.GroupBy == "" {
						writePermissionRows(w, "", listing.Permissions)
					}
					for _, b := range listing.Buckets {
						fmt.Fprintf(w, "%s (%d)\n", b.Label, len(b.Permissions))
						writePermissionRows(w, "  ", b.Permissions)
					}
					fmt.Fprintf(w, "%d permissions\n", listing.Total)
					return nil
				})
			})
		},
	}

	cmd.Flags().StringVar(&cfg.groupBy, "group-by", "", "grouping dimension")
	cmd.Flags().StringVar(&cfg.match, "match", "", "glob over api names, e.g. 'payout_*'")
	cmd.Flags().StringVar(&cfg.search, "search", "", "case-insensitive text search")
	cmd.Flags().StringVar(&cfg.category, "category", "", "product category")

	return cmd
}

func writePermissionRows(w io.Writer, indent string, perms []permissions.Permission) {
	for _, p := range perms {
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n", indent, p.APIName, p.OperationType, p.RiskLevel, strings.Join(p.SensitivityLabels(), ", "))
	}
}

func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Write the role-by-permission access grid as CSV, or read one back with --parse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("parse")
			if path == "" {
				return grid.Export(cmd.OutOrStdout(), permissions.Default())
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open grid file: %w", err)
			}
			defer f.Close()

			entries, err := grid.Parse(f)
			if err != nil {
				return err
			}
			rows := grid.Consolidate(entries)
			return render(cmd, rows, func(w io.Writer) error {
				for _, row := range rows {
					roleIDs := make([]string, 0, len(row.Access))
					for roleID := range row.Access {
						roleIDs = append(roleIDs, roleID)
					}
					sort.Strings(roleIDs)
					grants := make([]string, len(roleIDs))
					for i, roleID := range roleIDs {
						grants[i] = fmt.Sprintf("%s=%s", roleID, row.Access[roleID])
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", row.APIName, row.DisplayName, strings.Join(grants, "; "))
				}
				fmt.Fprintf(w, "%d rows\n", len(rows))
				return nil
			})
		},
	}
	cmd.Flags().String("parse", "", "Parse a grid CSV file and print the consolidated rows")
	return cmd
}

func newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Report catalog data-quality findings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			findings := permissions.Default().Audit()
			return render(cmd, findings, func(w io.Writer) error {
				for _, f := range findings {
					fmt.Fprintf(w, "%s\t%s\n", f.Code, f.Message)
				}
				fmt.Fprintf(w, "%d findings\n", len(findings))
				return nil
			})
		},
	}
}

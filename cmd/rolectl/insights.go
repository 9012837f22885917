package main

import (
	"fmt"
	"io"

	"role-explorer/internal/explorer/dto"
	"role-explorer/pkg/insights"
	"role-explorer/pkg/permissions"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <role-id>",
		Short: "Show the effective permissions of a built-in or custom role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(e *env) error {
				resolved, err := e.explorer.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return render(cmd, resolved, func(w io.Writer) error {
					for _, rp := range resolved {
						fmt.Fprintf(w, "%s\t%s\t%s\n", rp.Permission.APIName, rp.Access, rp.Permission.OperationType)
					}
					fmt.Fprintf(w, "%d permissions\n", len(resolved))
					return nil
				})
			})
		},
	}
}

// selection is either a role id or a list of api names
type selection struct {
	role string
}

func (s *selection) permissions(cmd *cobra.Command, e *env, args []string) ([]permissions.Permission, error) {
	if s.role == "" {
		if len(args) == 0 {
			return nil, fmt.Errorf("pass permission api names or --role")
		}
		names := dto.APINames(args)
		if unknown := e.catalog.UnknownAPINames(names); len(unknown) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "ignoring unknown permissions: %v\n", unknown)
		}
		return e.catalog.ResolveByAPINames(names), nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("--role cannot be combined with permission api names")
	}
	resolved, err := e.explorer.Resolve(cmd.Context(), s.role)
	if err != nil {
		return nil, err
	}
	return permissions.PermissionsOf(resolved), nil
}

func newDetailsCmd() *cobra.Command {
	sel := &selection{}

	cmd := &cobra.Command{
		Use:   "details [api-name...]",
		Short: "Describe a permission set: summary, can and cannot do, audience",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(e *env) error {
				perms, err := sel.permissions(cmd, e, args)
				if err != nil {
					return err
				}
				details := insights.Generate(perms)
				return render(cmd, details, func(w io.Writer) error {
					fmt.Fprintln(w, details.Description)
					bullets(w, "Can do", details.CanDo)
					bullets(w, "Cannot do", details.CannotDo)
					fmt.Fprintf(w, "Best for: %s\n", details.BestFor)
					return nil
				})
			})
		},
	}
	cmd.Flags().StringVar(&sel.role, "role", "", "describe a built-in or custom role instead")
	return cmd
}

func newAssessCmd() *cobra.Command {
	sel := &selection{}

	cmd := &cobra.Command{
		Use:   "assess [api-name...]",
		Short: "Score the risk of a permission set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(e *env) error {
				perms, err := sel.permissions(cmd, e, args)
				if err != nil {
					return err
				}
				a := insights.Assess(perms)
				return render(cmd, a, func(w io.Writer) error {
					fmt.Fprintf(w, "Overall risk: %s (score %d)\n", a.OverallRisk, a.Score)
					for _, f := range a.Factors {
						fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Level, f.Name, f.Description)
					}
					bullets(w, "Warnings", a.Warnings)
					bullets(w, "Recommendations", a.Recommendations)
					return nil
				})
			})
		},
	}
	cmd.Flags().StringVar(&sel.role, "role", "", "assess a built-in or custom role instead")
	return cmd
}

func newSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <role-id> <api-name> <read|write>",
		Short: "Simulate whether a role may perform an action on a permission",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(e *env) error {
				d, err := e.explorer.Check(cmd.Context(), args[0], permissions.APIName(args[1]), args[2])
				if err != nil {
					return err
				}
				return render(cmd, d, func(w io.Writer) error {
					verdict := "DENY"
					if d.Allowed {
						verdict = "ALLOW"
					}
					fmt.Fprintf(w, "%s\t%s\n", verdict, d.Reason)
					return nil
				})
			})
		},
	}
}

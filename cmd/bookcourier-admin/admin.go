package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
)

func newUsersCommand(cli *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Administer user accounts (admin role required)",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every account",
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx, _, err := cli.authContext(cmd.Context())
				if err != nil {
					return err
				}
				users, err := cli.Admin.ListUsers(ctx)
				if err != nil {
					return err
				}
				return printUsers(cmd, users)
			},
		},
		&cobra.Command{
			Use:   "make-librarian <user-id>",
			Short: "Promote a user to librarian",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, _, err := cli.authContext(cmd.Context())
				if err != nil {
					return err
				}
				users, err := cli.Admin.MakeLibrarian(ctx, args[0])
				if err != nil {
					return err
				}
				return printUsers(cmd, users)
			},
		},
		&cobra.Command{
			Use:   "demote-librarian <user-id>",
			Short: "Move a librarian back to the user role",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, _, err := cli.authContext(cmd.Context())
				if err != nil {
					return err
				}
				users, err := cli.Admin.DemoteLibrarian(ctx, args[0])
				if err != nil {
					return err
				}
				return printUsers(cmd, users)
			},
		},
		&cobra.Command{
			Use:   "delete <user-id>",
			Short: "Delete an account (blocked for your own and other admins)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, sess, err := cli.authContext(cmd.Context())
				if err != nil {
					return err
				}
				users, err := cli.Admin.DeleteUser(ctx, *sess, args[0])
				if err != nil {
					return err
				}
				return printUsers(cmd, users)
			},
		},
	)
	return cmd
}

func newRequestsCommand(cli *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Review pending librarian requests (admin role required)",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List pending librarian requests",
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx, _, err := cli.authContext(cmd.Context())
				if err != nil {
					return err
				}
				users, err := cli.Admin.ListLibrarianRequests(ctx)
				if err != nil {
					return err
				}
				return printUsers(cmd, users)
			},
		},
		&cobra.Command{
			Use:   "approve <user-id>",
			Short: "Approve a request, promoting the user to librarian",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, _, err := cli.authContext(cmd.Context())
				if err != nil {
					return err
				}
				users, err := cli.Admin.MakeLibrarian(ctx, args[0])
				if err != nil {
					return err
				}
				return printUsers(cmd, users)
			},
		},
		&cobra.Command{
			Use:   "reject <user-id>",
			Short: "Reject a request without changing the role",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, _, err := cli.authContext(cmd.Context())
				if err != nil {
					return err
				}
				users, err := cli.Admin.RejectLibrarian(ctx, args[0])
				if err != nil {
					return err
				}
				return printUsers(cmd, users)
			},
		},
	)
	return cmd
}

func printUsers(cmd *cobra.Command, users []model.User) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tLIBRARIAN REQUEST"); err != nil {
		return err
	}
	for _, u := range users {
		pending := ""
		if u.LibrarianRequest {
			pending = "pending"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, pending); err != nil {
			return err
		}
	}
	return w.Flush()
}

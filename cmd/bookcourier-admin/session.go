package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
)

func newLoginCommand(cli *cliContext) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with backend credentials and persist the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" {
				return errors.New("--email is required")
			}

			password, err := promptPassword(cmd)
			if err != nil {
				return err
			}

			sess, err := cli.Sessions.Login(cmd.Context(), model.Credentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			if err := cli.writeSessionID(sess.ID); err != nil {
				return err
			}

			cmd.Printf("signed in as %s (%s)\n", sess.Email, sess.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func newLogoutCommand(cli *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the persisted session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := cli.readSessionID()
			if err == nil {
				if logoutErr := cli.Sessions.Logout(cmd.Context(), id); logoutErr != nil {
					cli.Logger.Warn("backend logout failed", "error", logoutErr)
				}
			}
			if err := cli.clearSessionID(); err != nil {
				return err
			}
			cmd.Println("signed out")
			return nil
		},
	}
}

func newWhoamiCommand(cli *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := cli.currentSession(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("%s <%s>\trole=%s", sess.Name, sess.Email, sess.Role)
			if sess.LibrarianRequest {
				cmd.Printf("\tlibrarian-request=pending")
			}
			cmd.Printf("\texpires=%s\n", sess.ExpiresAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
}

// promptPassword reads the password without echo when stdin is a terminal,
// falling back to a plain line read for piped input.
func promptPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		cmd.PrintErr("password: ")
		raw, err := term.ReadPassword(fd)
		cmd.PrintErrln()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"homeinsight-catalog/internal/session"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to browse exclusive listings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			defer e.close()

			if !e.session.Persistent() {
				return errNoTokenFile
			}

			in := bufio.NewReader(cmd.InOrStdin())
			if email == "" {
				email, err = readEmail(cmd, in)
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = readPassword(cmd, in)
				if err != nil {
					return err
				}
			}

			token, err := e.client.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %v", err)
			}
			if err := saveSession(e.session, token); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed in.")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			defer e.close()

			e.session.Clear()
			if err := e.session.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

var errNoTokenFile = errors.New("no token file location: set client.token_file or CATALOG_TOKEN_FILE")

// saveSession stores token where the next run will find it
func saveSession(store *session.Store, token string) error {
	if !store.Persistent() {
		return errNoTokenFile
	}
	store.Set(token)
	return store.Save()
}

func readEmail(cmd *cobra.Command, in *bufio.Reader) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Email: ")
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read email: %v", err)
	}
	email := strings.TrimSpace(line)
	if email == "" {
		return "", errors.New("email is required")
	}
	return email, nil
}

// readPassword reads without echo on a terminal, falling back to a plain line
func readPassword(cmd *cobra.Command, in *bufio.Reader) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	if f, ok := cmd.InOrStdin().(interface{ Fd() uintptr }); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %v", err)
		}
		return string(b), nil
	}
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %v", err)
	}
	return strings.TrimSpace(line), nil
}

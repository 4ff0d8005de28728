package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.anonClient()
			if err != nil {
				return err
			}

			bearer, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := a.tokens.Save(bearer); err != nil {
				return fmt.Errorf("login succeeded but the token could not be stored: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *App) newSignupCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.anonClient()
			if err != nil {
				return err
			}
			if err := client.Signup(cmd.Context(), username, email, password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account created. You can now log in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (6 characters minimum)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *App) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.tokens.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with the admin password",
	Long: `Authenticate against the VaultBoard server.

The password is read from the terminal without echo. On success the
session token is saved locally and reused by every other command.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Login(ctx, string(password)); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Println("Logged in.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the server is reachable",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := app.HealthCheck(ctx); err != nil {
			return err
		}

		fmt.Println("Server is up.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

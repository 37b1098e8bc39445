package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}

		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

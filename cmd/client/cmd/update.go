package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/thihaaungym/vaultboard/internal/app/client"
)

var (
	updateName      string
	updateEmail     string
	updatePassword  string
	updateStart     string
	updateEnd       string
	updateUnlimited bool
	updateNote      string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a record",
	Long: `Partial update: only flags you pass change; everything else keeps
its stored value. Passing a flag with an empty value clears the field.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := client.UpdatePayload{}
		if cmd.Flags().Changed("name") {
			payload.Name = &updateName
		}
		if cmd.Flags().Changed("email") {
			payload.Email = &updateEmail
		}
		if cmd.Flags().Changed("password") {
			payload.Password = &updatePassword
		}
		if cmd.Flags().Changed("start") {
			payload.StartDate = &updateStart
		}
		if cmd.Flags().Changed("end") {
			payload.EndDate = &updateEnd
		}
		if cmd.Flags().Changed("unlimited") {
			payload.Unlimited = &updateUnlimited
		}
		if cmd.Flags().Changed("note") {
			payload.Note = &updateNote
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		rec, err := app.Update(ctx, args[0], payload)
		if err != nil {
			return fmt.Errorf("failed to update record: %w", err)
		}

		if jsonOutput {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(rec)
		}

		fmt.Printf("Updated %s (%s)\n", rec.Name, rec.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateName, "name", "n", "", "record name")
	updateCmd.Flags().StringVarP(&updateEmail, "email", "e", "", "account email or login")
	updateCmd.Flags().StringVarP(&updatePassword, "password", "p", "", "account password")
	updateCmd.Flags().StringVar(&updateStart, "start", "", "validity start, YYYY-MM-DD")
	updateCmd.Flags().StringVar(&updateEnd, "end", "", "validity end, YYYY-MM-DD")
	updateCmd.Flags().BoolVar(&updateUnlimited, "unlimited", false, "record never expires")
	updateCmd.Flags().StringVar(&updateNote, "note", "", "free-form note")
	rootCmd.AddCommand(updateCmd)
}

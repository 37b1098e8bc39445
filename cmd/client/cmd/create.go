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
	createName      string
	createEmail     string
	createPassword  string
	createStart     string
	createEnd       string
	createUnlimited bool
	createNote      string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a record",
	Long: `Create a credential record. The start date is required; pass either
an end date or --unlimited.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		rec, err := app.Create(ctx, client.CreatePayload{
			Name:      createName,
			Email:     createEmail,
			Password:  createPassword,
			StartDate: createStart,
			EndDate:   createEnd,
			Unlimited: createUnlimited,
			Note:      createNote,
		})
		if err != nil {
			return fmt.Errorf("failed to create record: %w", err)
		}

		if jsonOutput {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(rec)
		}

		fmt.Printf("Created %s (%s)\n", rec.Name, rec.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "record name")
	createCmd.Flags().StringVarP(&createEmail, "email", "e", "", "account email or login")
	createCmd.Flags().StringVarP(&createPassword, "password", "p", "", "account password")
	createCmd.Flags().StringVar(&createStart, "start", "", "validity start, YYYY-MM-DD (required)")
	createCmd.Flags().StringVar(&createEnd, "end", "", "validity end, YYYY-MM-DD")
	createCmd.Flags().BoolVar(&createUnlimited, "unlimited", false, "record never expires")
	createCmd.Flags().StringVar(&createNote, "note", "", "free-form note")
	_ = createCmd.MarkFlagRequired("start")
	rootCmd.AddCommand(createCmd)
}

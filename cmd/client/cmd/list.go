package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thihaaungym/vaultboard/internal/domain/record"
)

var (
	listQuery  string
	listStatus string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List records with filter, sort and stats",
	Long: `List records. The status column is colored: expired red, expiring
soon yellow, active green. Stats count the filtered set.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		out, err := app.List(ctx, listQuery, record.Status(listStatus), record.Sort(listSort))
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}

		if jsonOutput {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(out)
		}

		printRecords(out)
		return nil
	},
}

func printRecords(out *record.ListResponse) {
	if len(out.Records) == 0 {
		fmt.Println("No records found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSTART\tEND\tDAYS LEFT\tSTATUS\t")

	for _, rec := range out.Records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			shortID(rec.ID),
			truncate(rec.Name, 30),
			truncate(rec.Email, 30),
			rec.StartDate,
			endDate(rec),
			daysLeft(rec),
			statusLabel(rec),
		)
	}

	w.Flush()
	fmt.Printf("\n%s  total %d, active %d, soon %d, expired %d\n",
		out.Today, out.Stats.Total, out.Stats.Active, out.Stats.Soon, out.Stats.Expired)
}

func statusLabel(rec record.Annotated) string {
	switch {
	case rec.Expired:
		return color.RedString("expired")
	case rec.Soon:
		return color.YellowString("soon")
	default:
		return color.GreenString("active")
	}
}

func endDate(rec record.Annotated) string {
	if rec.Unlimited || rec.EndDate == nil {
		return "unlimited"
	}
	return *rec.EndDate
}

func daysLeft(rec record.Annotated) string {
	if rec.DaysToEnd == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *rec.DaysToEnd)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "case-insensitive substring filter")
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "all", "status filter (all, active, expired, soon)")
	listCmd.Flags().StringVar(&listSort, "sort", "due", "sort order (due, updated, created, name)")
	rootCmd.AddCommand(listCmd)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// HistoryCmd creates the history command
func HistoryCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent changes recorded in the version history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			limit, _ := cmd.Flags().GetInt("limit")

			journal := app.Store.Journal()
			if journal == nil {
				fmt.Fprintln(out, "Version history is disabled (set versionHistory: true in the config)")
				return nil
			}

			revisions, err := journal.History(limit)
			if err != nil {
				return err
			}
			if len(revisions) == 0 {
				fmt.Fprintln(out, "No changes recorded yet")
				return nil
			}

			for _, rev := range revisions {
				fmt.Fprintf(out, "%s  %s  %-20s %s\n",
					rev.Hash[:8],
					rev.When.Format("2006-01-02 15:04"),
					rev.Author,
					rev.Message)
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", 20, "Number of entries to show (0 for all)")

	return cmd
}

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/pkg/core/services"
)

// ExportCmd creates the export command
func ExportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current week as a table, CSV, YAML or ICS calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatFlag, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")

			format, err := services.ParseExportFormat(formatFlag)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer file.Close()
				w = file
			}

			session := app.Session
			err = services.ExportWeek(w, format, session.Week(), session.Zones(), services.ExportOptions{
				Title:  session.Title(),
				WeekID: session.WeekID(),
			})
			if err != nil {
				return err
			}

			app.Logger.Info("Exported week",
				zap.String("week_id", session.WeekID()),
				zap.String("format", string(format)),
				zap.String("output", output))

			if output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", string(services.FormatTable), "Output format: table, csv, yaml or ics")
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	return cmd
}

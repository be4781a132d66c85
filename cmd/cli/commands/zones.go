package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jakechorley/seva-rota/pkg/core/services"
)

// ZonesCmd creates the zones command group
func ZonesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List zones or update a zone's name, contact or time",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List zones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tID\tNAME\tCONTACT\tTIME")
			for i, zone := range app.Session.Zones() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, zone.ID, zone.Name, zone.Contact, zone.Time)
			}
			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "update <zone> <name|contact|time> <value...>",
		Short: "Change one field of a zone",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID, err := parseZone(app.Session.Zones(), args[0])
			if err != nil {
				return err
			}
			field, err := services.ParseZoneField(args[1])
			if err != nil {
				return err
			}

			zone, err := app.Session.UpdateZone(app.Ctx, zoneID, field, joinName(args[2:]))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %s, %s, %s\n", zone.ID, zone.Name, zone.Contact, zone.Time)
			return nil
		},
	})

	return cmd
}

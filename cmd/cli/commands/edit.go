package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

// SetCmd creates the set command
func SetCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <day> <service> <zone> <name...>",
		Short: "Assign a volunteer to one zone of one service",
		Long: `Assign a volunteer to one zone of one service.

<day> is 1-6 (Monday to Saturday), a weekday name or a dd.MM.yy date.
<service> is stage, sanchalan or the 1-based service position.
<zone> is a zone id or its 1-based position.

If the volunteer already serves in the zone this month you are asked to confirm.`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetCell(cmd, app, args[0], args[1], args[2], joinName(args[3:]))
		},
	}
}

// ClearCmd creates the clear command
func ClearCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <day> <service> <zone>",
		Short: "Unassign one zone of one service",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetCell(cmd, app, args[0], args[1], args[2], "")
		},
	}
}

func runSetCell(cmd *cobra.Command, app *AppContext, dayArg, serviceArg, zoneArg, value string) error {
	out := cmd.OutOrStdout()
	week := app.Session.Week()

	dayIdx, err := parseDay(week, dayArg)
	if err != nil {
		return err
	}
	serviceIdx, err := parseService(week[dayIdx], serviceArg)
	if err != nil {
		return err
	}
	zoneID, err := parseZone(app.Session.Zones(), zoneArg)
	if err != nil {
		return err
	}

	result, err := app.Session.SetCell(dayIdx, serviceIdx, zoneID, value)
	if err != nil {
		return err
	}

	if !result.Accepted {
		fmt.Fprintf(out, "✗ Not assigned: %s already serves in %s on %s\n\n", value, zoneName(app.Session.Zones(), zoneID), result.Conflict.Date)
		return nil
	}

	day := app.Session.Week()[dayIdx]
	service := day.Services[serviceIdx]
	if value == "" {
		fmt.Fprintf(out, "✓ Cleared %s %s %s\n", day.Date, service.Type, zoneID)
	} else {
		fmt.Fprintf(out, "✓ %s %s %s: %s\n", day.Date, service.Type, zoneID, value)
	}

	return app.autosave(out)
}

// zoneName returns the display name of a zone, falling back to its ID
func zoneName(zones []model.Zone, zoneID string) string {
	for _, zone := range zones {
		if zone.ID == zoneID && zone.Name != "" {
			return zone.Name
		}
	}
	return zoneID
}

// RandomizeCmd creates the randomize command
func RandomizeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "randomize <stage|sanchalan>",
		Short: "Randomly assign every zone of a service for the whole week",
		Long: `Randomly assign every zone of a service for the whole week.

Stage draws from the gyan pracharaks and the stage volunteers, sanchalan from the
sanchalan volunteers. Volunteers who already served in a zone this month are avoided
while anyone else is left.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			kind, err := model.ParseServiceKind(args[0])
			if err != nil {
				return err
			}

			outcome, err := app.Session.Randomize(kind)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\n✓ Randomized %s: %d cells assigned\n", kind, len(outcome.Assignments))
			if fallbacks := outcome.Fallbacks(); len(fallbacks) > 0 {
				fmt.Fprintf(out, "⚠️  %d cells repeat a volunteer in the same zone this month\n", len(fallbacks))
			}
			if len(outcome.Unfilled) > 0 {
				fmt.Fprintf(out, "⚠️  The %s pool ran out, %d cells kept their previous value\n", kind, len(outcome.Unfilled))
			}
			fmt.Fprintln(out)

			if err := printWeek(out, app); err != nil {
				return err
			}
			return app.autosave(out)
		},
	}
}

// SaveCmd creates the save command
func SaveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the current week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.Save(app.Ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Schedule saved locally (week %s)\n\n", app.Session.WeekID())
			return nil
		},
	}
}

// ResetCmd creates the reset command
func ResetCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the current week to its original/blank state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			reset, err := app.Session.Reset()
			if err != nil {
				return err
			}
			if !reset {
				fmt.Fprintln(out, "Reset cancelled")
				return nil
			}

			fmt.Fprintf(out, "✓ Week %s reset\n", app.Session.WeekID())
			if app.Interactive {
				return nil
			}
			// Reset clears the dirty flag, so one-shot mode saves explicitly
			if err := app.Session.Save(app.Ctx); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ Saved week %s\n", app.Session.WeekID())
			return nil
		},
	}
}

// CheckCmd creates the check command
func CheckCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "List volunteers repeated in the same zone within a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			issues := app.Session.Check()

			app.Logger.Debug("Checked week",
				zap.String("week_id", app.Session.WeekID()),
				zap.Int("issues", len(issues)))

			if len(issues) == 0 {
				fmt.Fprintf(out, "✓ No monthly zone repeats in week %s\n\n", app.Session.WeekID())
				return nil
			}

			fmt.Fprintf(out, "\n⚠️  %d monthly zone repeats in week %s:\n", len(issues), app.Session.WeekID())
			for _, issue := range issues {
				fmt.Fprintf(out, "  %s %-12s %-8s %s\n", issue.Date, issue.ServiceType, issue.ZoneID, issue.Description)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}

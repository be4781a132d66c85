package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jakechorley/seva-rota/pkg/core/services"
)

// printWeek renders the in-progress week as a table
func printWeek(out io.Writer, app *AppContext) error {
	session := app.Session

	err := services.ExportWeek(out, services.FormatTable, session.Week(), session.Zones(), services.ExportOptions{
		Title:  session.Title(),
		WeekID: session.WeekID(),
	})
	if err != nil {
		return err
	}

	if session.IsDirty() {
		fmt.Fprintln(out, "\n* unsaved changes")
	}
	fmt.Fprintln(out)
	return nil
}

// ShowCmd creates the show command
func ShowCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printWeek(cmd.OutOrStdout(), app)
		},
	}
}

// GotoCmd creates the goto command
func GotoCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "goto <date>",
		Short: "Open the week containing a date (yyyy-MM-dd or dd.MM.yy)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := ParseDate(args[0])
			if err != nil {
				return err
			}

			moved, err := app.Session.GoToWeek(date)
			if err != nil {
				return err
			}
			return reportNavigation(cmd.OutOrStdout(), app, moved)
		},
	}
}

// NextCmd creates the next command
func NextCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Open the following week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			moved, err := app.Session.NextWeek()
			if err != nil {
				return err
			}
			return reportNavigation(cmd.OutOrStdout(), app, moved)
		},
	}
}

// PrevCmd creates the prev command
func PrevCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prev",
		Short: "Open the preceding week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			moved, err := app.Session.PrevWeek()
			if err != nil {
				return err
			}
			return reportNavigation(cmd.OutOrStdout(), app, moved)
		},
	}
}

func reportNavigation(out io.Writer, app *AppContext, moved bool) error {
	if !moved {
		fmt.Fprintf(out, "Staying on week %s\n\n", app.Session.WeekID())
		return nil
	}
	return printWeek(out, app)
}

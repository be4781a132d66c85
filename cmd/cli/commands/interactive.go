package commands

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// InteractiveCmd creates the interactive command
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (edit several cells, then save)",
		Long: `Start an interactive session where you can run multiple commands against the same week.
Changes to the week are kept in memory until you run 'save'. Moving to another week
with unsaved changes asks before discarding them.

Type 'help' to see available commands, 'exit' or 'quit' to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			app.Interactive = true
			defer func() { app.Interactive = false }()

			fmt.Fprintln(out, "\n🚀 Starting interactive session...")
			fmt.Fprintln(out, "Type 'help' for available commands, 'exit' or 'quit' to leave")
			if err := printWeek(out, app); err != nil {
				return err
			}

			// Get all sibling commands (excluding interactive itself)
			commands := make(map[string]*cobra.Command)
			for _, subCmd := range cmd.Parent().Commands() {
				if subCmd.Name() != "interactive" && subCmd.Name() != "completion" && subCmd.Name() != "help" {
					commands[subCmd.Name()] = subCmd
				}
			}

			for {
				fmt.Fprintf(out, "[%s] > ", app.Session.WeekID())

				line, err := app.Input.ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("error reading input: %w", err)
				}
				eof := errors.Is(err, io.EOF)

				line = strings.TrimSpace(line)
				if line == "" {
					if eof {
						return nil
					}
					continue
				}

				parts := strings.Fields(line)
				cmdName := parts[0]
				cmdArgs := parts[1:]

				if cmdName == "exit" || cmdName == "quit" {
					if app.Session.IsDirty() && !confirmExit(app) {
						continue
					}
					fmt.Fprintln(out, "👋 Goodbye!")
					return nil
				}

				if cmdName == "help" {
					printInteractiveHelp(out, commands)
					continue
				}

				targetCmd, exists := commands[cmdName]
				if !exists {
					fmt.Fprintf(out, "❌ Unknown command: %s (type 'help' for available commands)\n\n", cmdName)
					continue
				}

				runInteractive(out, targetCmd, cmdArgs)

				if eof {
					return nil
				}
			}
		},
	}
}

// runInteractive executes a command's RunE directly, bypassing Execute() so that
// the persistent pre-run does not open a second session
func runInteractive(out io.Writer, targetCmd *cobra.Command, cmdArgs []string) {
	// Resolve nested commands such as "volunteers add"
	if targetCmd.HasSubCommands() {
		subCmd, rest, err := targetCmd.Find(cmdArgs)
		if err != nil || subCmd == targetCmd {
			fmt.Fprintf(out, "❌ Usage: %s\n", targetCmd.Short)
			for _, c := range targetCmd.Commands() {
				fmt.Fprintf(out, "  %s %s\n", targetCmd.Name(), c.Use)
			}
			fmt.Fprintln(out)
			return
		}
		targetCmd, cmdArgs = subCmd, rest
	}

	// Reset command flags and args
	targetCmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
		flag.Value.Set(flag.DefValue)
	})

	if err := targetCmd.ParseFlags(cmdArgs); err != nil {
		fmt.Fprintf(out, "❌ Error parsing flags: %v\n\n", err)
		return
	}
	cmdArgs = targetCmd.Flags().Args()

	if targetCmd.Args != nil {
		if err := targetCmd.Args(targetCmd, cmdArgs); err != nil {
			fmt.Fprintf(out, "❌ Error: %v\n\n", err)
			return
		}
	}

	if targetCmd.RunE != nil {
		if err := targetCmd.RunE(targetCmd, cmdArgs); err != nil {
			fmt.Fprintf(out, "❌ Error: %v\n\n", err)
		}
	} else if targetCmd.Run != nil {
		targetCmd.Run(targetCmd, cmdArgs)
	}
}

func confirmExit(app *AppContext) bool {
	return app.Prompter != nil && app.Prompter.Confirm("You have unsaved changes. Discard them?")
}

func printInteractiveHelp(out io.Writer, commands map[string]*cobra.Command) {
	fmt.Fprintln(out, "\nAvailable commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(out, "  %-40s %s\n", cmd.Use, cmd.Short)
		for _, sub := range cmd.Commands() {
			fmt.Fprintf(out, "    %-38s %s\n", sub.Use, sub.Short)
		}
	}

	fmt.Fprintln(out, "\n  help                                     Show this help message")
	fmt.Fprintln(out, "  exit, quit                               Exit the interactive session")
	fmt.Fprintln(out)
}

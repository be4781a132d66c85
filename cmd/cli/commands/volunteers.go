package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

var allPools = []model.PoolName{model.PoolStage, model.PoolSanchalan, model.PoolGyanPracharaks}

// VolunteersCmd creates the volunteers command group
func VolunteersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volunteers",
		Short: "List, add or remove volunteers (pools: stage, sanchalan, gyan_pracharak)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list [pool]",
		Short: "List volunteers, optionally for a single pool",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pools := allPools
			if len(args) == 1 {
				pool, err := parsePool(args[0])
				if err != nil {
					return err
				}
				pools = []model.PoolName{pool}
			}

			for _, pool := range pools {
				printPool(cmd.OutOrStdout(), pool, app.Session.Pools().Get(pool))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <pool> <name...>",
		Short: "Add a volunteer to a pool",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := parsePool(args[0])
			if err != nil {
				return err
			}
			name := joinName(args[1:])

			added, err := app.Session.AddVolunteer(app.Ctx, pool, name)
			if err != nil {
				return err
			}
			if added {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %s to %s\n", name, pool)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already in %s\n", name, pool)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <pool> <name...>",
		Short: "Remove a volunteer from a pool (existing assignments are kept)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := parsePool(args[0])
			if err != nil {
				return err
			}
			name := joinName(args[1:])

			removed, err := app.Session.RemoveVolunteer(app.Ctx, pool, name)
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("%s is not in the %s pool", name, pool)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %s from %s\n", name, pool)
			return nil
		},
	})

	return cmd
}

func printPool(out io.Writer, pool model.PoolName, names []string) {
	fmt.Fprintf(out, "\n%s (%d):\n", pool, len(names))
	for _, name := range names {
		fmt.Fprintf(out, "  - %s\n", name)
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gpxplan/internal/plan"
)

// validate <mission.plan>: structural check of an existing plan file.
func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <mission.plan>",
		Short: "Validate the structure of a .plan mission file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Plans.Load(args[0])
			if err != nil {
				return err
			}
			if err := plan.Validate(p); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Printf("%s: valid rover mission with %d waypoints.\n", args[0], len(p.Mission.Items))
			return nil
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// fingerprint <mission.plan>: short digest for change detection.
func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <mission.plan>",
		Short: "Print a short fingerprint of a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := appCtx.Plans.Fingerprint(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", fp)
			return nil
		},
	}
}

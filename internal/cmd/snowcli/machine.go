package snowcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshradin/data-eater/pkg/snowflake"
)

// newMachineCommand constructs the `machine` command, which prints the
// 10-bit machine id derived from this host's identifier. Fails when the host
// identifier cannot be read; there is no fallback identity.
func newMachineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "machine",
		Short: "Show the machine id derived from this host",
		RunE: func(cmd *cobra.Command, _ []string) error {
			factory, err := snowflake.NewFactory()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), factory.MachineID())
			return nil
		},
	}
}

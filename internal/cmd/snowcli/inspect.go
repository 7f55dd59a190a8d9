package snowcli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newInspectCommand constructs the `inspect` command, which decomposes raw
// identifier values from its arguments. Rejections surface once, through the
// returned error.
func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <raw>...",
		Short: "Decompose raw snowflake values",
		Long: "Inspect parses each argument as a decimal or 0x-prefixed hex " +
			"64-bit value, rejects values with the reserved top bit set, and " +
			"prints the decomposed fields.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for _, arg := range args {
				id, err := parseRaw(arg)
				if err != nil {
					return fmt.Errorf("inspect %s: %w", arg, err)
				}
				ts, machine, seq := id.Decompose()
				if err := enc.Encode(jsonID{
					Raw:        id.Raw(),
					Timestamp:  ts,
					MachineID:  machine,
					SequenceID: seq,
				}); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

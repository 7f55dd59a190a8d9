package snowcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshradin/data-eater/internal/config"
	logpkg "github.com/joshradin/data-eater/pkg/log"
	"github.com/joshradin/data-eater/pkg/snowflake"
)

// newGenerateCommand constructs the `generate` command. It builds one
// factory per invocation, so every emitted identifier carries the same
// machine id. Flags left at their defaults fall back to the resolved
// configuration.
func newGenerateCommand(r *Root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate snowflake identifiers",
		Long: "Generate emits identifiers from a single factory. More than 1024 " +
			"identifiers within one millisecond wrap the sequence counter and " +
			"repeat; the factory never blocks to avoid this.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			if !cmd.Flags().Changed("count") {
				count = r.cfg.Generate.Count
			}
			output, _ := cmd.Flags().GetString("output")
			if !cmd.Flags().Changed("output") {
				output = r.cfg.Generate.Output
			}
			if count <= 0 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			if !config.ValidOutput(output) {
				return fmt.Errorf("invalid --output; use hex|decimal|fields|json")
			}

			factory, err := snowflake.NewFactory()
			if err != nil {
				return err
			}
			r.logger.Debug("factory ready",
				logpkg.Uint64("machine_id", uint64(factory.MachineID())),
				logpkg.Int("count", count))

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				s, err := render(factory.Next(), output)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}
	cmd.Flags().Int("count", config.Default().Generate.Count, "Number of identifiers to generate")
	cmd.Flags().String("output", config.Default().Generate.Output, "Output encoding: hex|decimal|fields|json")
	return cmd
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/tendant/simple-blog/pkg/simpleblog/seed"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print a seed as JSON or YAML",
		Long: `Load a seed from any supported source and print it as a JSON or YAML
document that file:// seeds accept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := seed.Load(cmd.Context(), rootOpts.Seed, rootOpts.seedOptions())
			if err != nil {
				return err
			}
			data, err := seed.Encode(snapshot, seed.Format(format))
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}
			if format == string(seed.FormatJSON) {
				_, err = cmd.OutOrStdout().Write([]byte("\n"))
			}
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "document format (json|yaml)")

	return cmd
}

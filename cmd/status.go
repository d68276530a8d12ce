package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-corestorage/pkg/app/status"
)

var statusSizes bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show CoreStorage encryption state and logical volumes",
	Long: `Show the CoreStorage encryption state of this machine.

The state is ENCRYPTED only when every discovered logical volume is
encrypted; a single unencrypted volume keeps it at ENABLED.

Examples:
  # Show state, boot volume and recovery partition
  go-corestorage status

  # Include logical volume sizes, as JSON
  go-corestorage status --sizes -o json`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVar(&statusSizes, "sizes", false, "query the size of every logical volume")
}

func runStatus(cmd *cobra.Command) error {
	ctx := newAppContext(cmd)

	response, err := status.Handle(ctx, &status.Request{IncludeSizes: statusSizes})
	if err != nil {
		return err
	}

	return status.FormatOutput(ctx.Out, response, ctx.OutputFormat)
}

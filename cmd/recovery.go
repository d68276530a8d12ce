package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var bootCmd = &cobra.Command{
	Use:   "boot",
	Short: "Report whether the boot volume is encrypted",
	Long: `Report whether the volume mounted at / is an AES-XTS encrypted
CoreStorage logical volume. Prints "true" or "false"; a root volume that
diskutil does not manage reports false.`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := newAppContext(cmd)
		_, err := fmt.Fprintln(ctx.Out, ctx.Client.IsBootVolumeEncrypted(ctx))
		return err
	},
}

var recoveryCmd = &cobra.Command{
	Use:   "recovery",
	Short: "Show the recovery partition on disk0",
	Long: `Print the device path of the "Recovery HD" partition on disk0,
for example /dev/disk0s3. Exits non-zero when none is found.`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := newAppContext(cmd)
		path, ok := ctx.Client.GetRecoveryPartition(ctx)
		if !ok {
			return errors.New("no recovery partition found on disk0")
		}
		_, err := fmt.Fprintln(ctx.Out, path)
		return err
	},
}

func init() {
	rootCmd.AddCommand(bootCmd, recoveryCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-corestorage/internal/secret"
	"github.com/deploymenttheory/go-corestorage/pkg/app"
	"github.com/deploymenttheory/go-corestorage/pkg/app/volume"
)

var (
	// Passphrase source (unlock and revert)
	passphraseStdin bool

	// Revert confirmation
	revertConfirmed bool

	// Raw byte count (size)
	sizeBytesOnly bool
)

var unlockCmd = &cobra.Command{
	Use:   "unlock <volume-uuid>",
	Short: "Unlock an encrypted logical volume",
	Long: `Unlock an encrypted CoreStorage logical volume.

The passphrase is prompted for on the terminal, or read from the first
line of standard input with --passphrase-stdin. Unlocking a volume that is
already unlocked succeeds.

Examples:
  go-corestorage unlock 6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4A59
  security find-generic-password -w -s fde | go-corestorage unlock --passphrase-stdin 6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4A59`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVolume(cmd, &volume.Request{
			Target: app.VolumeTarget{VolumeID: args[0]},
			Action: volume.ActionUnlock,
		})
	},
}

var revertCmd = &cobra.Command{
	Use:   "revert <volume-uuid>",
	Short: "Permanently decrypt a logical volume",
	Long: `Unlock and then revert (permanently decrypt) a CoreStorage logical volume.

Once diskutil accepts the request the volume is converted back to plain
text. This cannot be undone or paused from here; --yes is required.

Examples:
  go-corestorage revert --yes 6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4A59`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVolume(cmd, &volume.Request{
			Target:    app.VolumeTarget{VolumeID: args[0]},
			Action:    volume.ActionRevert,
			Confirmed: revertConfirmed,
		})
	},
}

var sizeCmd = &cobra.Command{
	Use:   "size <volume-uuid>",
	Short: "Show a logical volume's size",
	Long: `Show the logical size of a CoreStorage logical volume in GiB (2^30 bytes).

Examples:
  go-corestorage size 6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4A59
  go-corestorage size --bytes 6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4A59`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVolume(cmd, &volume.Request{
			Target: app.VolumeTarget{VolumeID: args[0]},
			Action: volume.ActionSize,
		})
	},
}

func init() {
	rootCmd.AddCommand(unlockCmd, revertCmd, sizeCmd)

	for _, c := range []*cobra.Command{unlockCmd, revertCmd} {
		c.Flags().BoolVar(&passphraseStdin, "passphrase-stdin", false, "read the passphrase from the first line of standard input")
	}
	revertCmd.Flags().BoolVarP(&revertConfirmed, "yes", "y", false, "confirm permanent decryption")
	sizeCmd.Flags().BoolVar(&sizeBytesOnly, "bytes", false, "print only the size in bytes")
}

func runVolume(cmd *cobra.Command, req *volume.Request) error {
	// Reject bad input before prompting for a passphrase
	if err := req.Validate(); err != nil {
		return err
	}

	ctx := newAppContext(cmd)

	var passphrase *secret.Passphrase
	if req.Action.NeedsPassphrase() {
		var err error
		passphrase, err = readPassphrase(cmd)
		if err != nil {
			return err
		}
		defer passphrase.Destroy()
	}

	response, err := volume.Handle(ctx, req, passphrase.Bytes())
	if err != nil {
		return err
	}

	if req.Action == volume.ActionSize && sizeBytesOnly {
		_, err := fmt.Fprintln(ctx.Out, response.SizeBytes)
		return err
	}

	return volume.FormatOutput(ctx.Out, response, ctx.OutputFormat)
}

func readPassphrase(cmd *cobra.Command) (*secret.Passphrase, error) {
	if passphraseStdin {
		return secret.ReadPassphraseFrom(cmd.InOrStdin())
	}
	return secret.ReadPassphrase(int(os.Stdin.Fd()), cmd.ErrOrStderr())
}

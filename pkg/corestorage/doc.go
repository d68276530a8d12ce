// Package corestorage inspects and controls CoreStorage logical volume
// encryption on macOS by driving diskutil.
//
// The package answers three questions and performs two actions:
//
//   - Is the boot volume encrypted? (IsBootVolumeEncrypted)
//   - Where is the recovery partition? (GetRecoveryPartition)
//   - What is the encryption state of the volume groups, and which volumes
//     are encrypted? (GetStateAndVolumeIds, GetState, GetVolumeSize)
//   - Unlock an encrypted volume with its passphrase (UnlockVolume)
//   - Permanently decrypt a volume (RevertVolume)
//
// State is never cached: every call queries diskutil afresh, so a Client is
// safe for concurrent use. Control operations on the same volume are not
// serialized; callers that need mutual exclusion must provide it.
//
// Passphrases are passed as byte slices owned by the caller and are written
// to diskutil's standard input, never to its argument vector. The package
// does not keep a reference to them after a call returns.
//
// Basic usage:
//
//	client := corestorage.NewDefaultClient(logger)
//
//	state, encrypted, _, err := client.GetStateAndVolumeIds(ctx)
//	if err != nil {
//		return err
//	}
//	if state == corestorage.StateEncrypted {
//		err = client.UnlockVolume(ctx, encrypted[0], passphrase)
//	}
//
// Failures are reported as *Error values whose Code distinguishes query
// failures, unlock and revert failures, and malformed identifiers; use
// errors.Is with ErrQuery, ErrCouldNotUnlock, ErrCouldNotRevert or
// ErrInvalidArgument to tell them apart.
package corestorage

package corestorage

import (
	"context"
	"strings"

	"github.com/deploymenttheory/go-corestorage/internal/types"
)

// UnlockVolume unlocks the encrypted logical volume id with passphrase.
// The passphrase is written to diskutil's standard input. Unlocking a
// volume that is already unlocked succeeds.
func (c *Client) UnlockVolume(ctx context.Context, id string, passphrase []byte) error {
	const op = "UnlockVolume"

	if err := validateIdentifier(op, id); err != nil {
		return err
	}

	logger := c.logger.WithField("volume", id)
	logger.Info("unlocking volume")

	result, err := c.runner.Exec(ctx, c.unlockCommand(id), stdinBytes(passphrase))
	if err != nil {
		logger.WithError(err).Error("failed to run unlock command")
		return &Error{
			Code:     CodeCouldNotUnlock,
			Op:       op,
			ID:       id,
			ExitCode: -1,
			Message:  "could not unlock volume",
			Cause:    err,
		}
	}

	if result.Success() {
		return nil
	}

	if strings.Contains(string(result.Stderr), types.NotLockedMessage) {
		logger.Debug("volume is already unlocked")
		return nil
	}

	logger.WithField("exit_code", result.ExitCode).Error("could not unlock volume")
	return &Error{
		Code:     CodeCouldNotUnlock,
		Op:       op,
		ID:       id,
		ExitCode: result.ExitCode,
		Message:  "could not unlock volume",
	}
}

// RevertVolume unlocks the volume id and then permanently decrypts it.
// Unlock failures are returned unchanged and the revert command is not run.
// Once diskutil accepts the revert the conversion cannot be undone here.
func (c *Client) RevertVolume(ctx context.Context, id string, passphrase []byte) error {
	const op = "RevertVolume"

	if err := validateIdentifier(op, id); err != nil {
		return err
	}

	if err := c.UnlockVolume(ctx, id, passphrase); err != nil {
		return err
	}

	logger := c.logger.WithField("volume", id)
	logger.Warn("reverting volume")

	result, err := c.runner.Exec(ctx, c.revertCommand(id), stdinBytes(passphrase))
	if err != nil {
		logger.WithError(err).Error("failed to run revert command")
		return &Error{
			Code:     CodeCouldNotRevert,
			Op:       op,
			ID:       id,
			ExitCode: -1,
			Message:  "could not revert volume",
			Cause:    err,
		}
	}

	if !result.Success() {
		logger.WithField("exit_code", result.ExitCode).Error("could not revert volume")
		return &Error{
			Code:     CodeCouldNotRevert,
			Op:       op,
			ID:       id,
			ExitCode: result.ExitCode,
			Message:  "could not revert volume",
		}
	}

	return nil
}

// stdinBytes always hands the runner a stdin payload, empty when no
// passphrase was given, so -stdinpassphrase reads EOF at once.
func stdinBytes(passphrase []byte) []byte {
	if passphrase == nil {
		return []byte{}
	}
	return passphrase
}

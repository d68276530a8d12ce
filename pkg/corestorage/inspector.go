package corestorage

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-corestorage/internal/executil"
	"github.com/deploymenttheory/go-corestorage/internal/types"
)

// IsBootVolumeEncrypted reports whether the volume mounted at / is a
// CoreStorage logical volume whose family is AES-XTS encrypted.
// Every failure is reported as false: a root volume that diskutil does not
// manage is simply not encrypted.
func (c *Client) IsBootVolumeEncrypted(ctx context.Context) bool {
	var rootInfo types.CSInfo
	if err := executil.GetStructuredInfo(ctx, c.runner, c.csInfoCommand("/"), &rootInfo); err != nil {
		c.logger.WithError(err).Debug("boot volume is not a CoreStorage volume")
		return false
	}

	familyID := rootInfo.MemberOfCoreStorageLogicalVolumeFamily
	if familyID == "" {
		return false
	}
	if !IsValidIdentifier(familyID) {
		c.logger.WithField("family", familyID).Warn("boot volume reports a malformed family identifier")
		return false
	}

	var familyInfo types.CSInfo
	if err := executil.GetStructuredInfo(ctx, c.runner, c.csInfoCommand(familyID), &familyInfo); err != nil {
		c.logger.WithError(err).WithField("family", familyID).Debug("failed to get logical volume family info")
		return false
	}

	return familyInfo.CoreStorageLogicalVolumeFamilyEncryptionType == types.EncryptionTypeAESXTS
}

// GetRecoveryPartition returns the device path of the recovery partition on
// disk0, like "/dev/disk0s3". The second result is false when there is no
// recovery partition or the partition table cannot be read.
func (c *Client) GetRecoveryPartition(ctx context.Context) (string, bool) {
	var disks types.DiskList
	if err := executil.GetStructuredInfo(ctx, c.runner, c.listCommand(), &disks); err != nil {
		c.logger.WithError(err).Warn("failed to get partition list")
		return "", false
	}

	for _, disk := range disks.AllDisksAndPartitions {
		if disk.DeviceIdentifier != types.BootDiskIdentifier {
			continue
		}
		for _, partition := range disk.Partitions {
			if partition.VolumeName == types.RecoveryVolumeName {
				return types.DevicePathPrefix + partition.DeviceIdentifier, true
			}
		}
	}

	return "", false
}

// GetStateAndVolumeIds determines the CoreStorage encryption state and the
// identifiers of encrypted and unencrypted logical volumes.
//
// The state is StateEncrypted only when at least one volume was found and
// every discovered volume is encrypted; one plain volume anywhere keeps it
// at StateEnabled. A failure to list groups or to query any family fails
// the whole call with a query error, so callers never see partial data.
func (c *Client) GetStateAndVolumeIds(ctx context.Context) (state EncryptionState, encryptedIDs, plainIDs []string, err error) {
	const op = "GetStateAndVolumeIds"

	encryptedIDs = []string{}
	plainIDs = []string{}

	var list types.CSList
	if err := executil.GetStructuredInfo(ctx, c.runner, c.coreStorageListCommand(), &list); err != nil {
		c.logger.WithError(err).Error("failed to get corestorage list")
		return StateUnknown, nil, nil, &Error{
			Code:    CodeQuery,
			Op:      op,
			Message: "failed to get corestorage list",
			Cause:   err,
		}
	}

	if len(list.CoreStorageLogicalVolumeGroups) == 0 {
		return StateNone, encryptedIDs, plainIDs, nil
	}

	state = StateEnabled
	for _, group := range list.CoreStorageLogicalVolumeGroups {
		for _, family := range group.CoreStorageLogicalVolumeFamilies {
			familyID := family.CoreStorageUUID
			if !IsValidIdentifier(familyID) {
				c.logger.WithFields(log.Fields{
					"group":  group.CoreStorageUUID,
					"family": familyID,
				}).Debug("skipping family with malformed identifier")
				continue
			}

			var info types.CSInfo
			if err := executil.GetStructuredInfo(ctx, c.runner, c.coreStorageInfoCommand(familyID), &info); err != nil {
				c.logger.WithError(err).WithField("family", familyID).Error("failed to get corestorage family info")
				return StateUnknown, nil, nil, &Error{
					Code:    CodeQuery,
					Op:      op,
					ID:      familyID,
					Message: "failed to get corestorage family info",
					Cause:   err,
				}
			}

			encrypted := info.CoreStorageLogicalVolumeFamilyEncryptionType == types.EncryptionTypeAESXTS
			for _, volume := range family.CoreStorageLogicalVolumes {
				if encrypted {
					encryptedIDs = append(encryptedIDs, volume.CoreStorageUUID)
				} else {
					plainIDs = append(plainIDs, volume.CoreStorageUUID)
				}
			}
		}
	}

	if len(encryptedIDs) > 0 && len(plainIDs) == 0 {
		state = StateEncrypted
	}

	c.logger.WithFields(log.Fields{
		"state":     state.String(),
		"encrypted": len(encryptedIDs),
		"plain":     len(plainIDs),
	}).Debug("determined corestorage state")

	return state, encryptedIDs, plainIDs, nil
}

// GetState returns the CoreStorage encryption state without volume identifiers.
func (c *Client) GetState(ctx context.Context) (EncryptionState, error) {
	state, _, _, err := c.GetStateAndVolumeIds(ctx)
	return state, err
}

// GetVolumeSize returns the logical size in bytes of the volume with the given identifier.
func (c *Client) GetVolumeSize(ctx context.Context, id string) (int64, error) {
	const op = "GetVolumeSize"

	if err := validateIdentifier(op, id); err != nil {
		return 0, err
	}

	var info types.CSVolumeInfo
	if err := executil.GetStructuredInfo(ctx, c.runner, c.coreStorageInfoCommand(id), &info); err != nil {
		c.logger.WithError(err).WithField("volume", id).Error("failed to get volume info")
		return 0, &Error{
			Code:    CodeQuery,
			Op:      op,
			ID:      id,
			Message: "failed to get volume info",
			Cause:   err,
		}
	}

	if info.CoreStorageLogicalVolumeSize == nil {
		return 0, &Error{
			Code:    CodeQuery,
			Op:      op,
			ID:      id,
			Message: "volume info has no CoreStorageLogicalVolumeSize",
		}
	}

	return *info.CoreStorageLogicalVolumeSize, nil
}

// GetVolumeSizeReadable returns the volume size formatted in gibibytes
// with two decimals, e.g. "2.00 GiB".
func (c *Client) GetVolumeSizeReadable(ctx context.Context, id string) (string, error) {
	size, err := c.GetVolumeSize(ctx, id)
	if err != nil {
		return "", err
	}
	return FormatGiB(size), nil
}

// FormatGiB formats a byte count as binary gibibytes with two decimals.
func FormatGiB(bytes int64) string {
	return fmt.Sprintf("%.2f GiB", float64(bytes)/float64(types.GiB))
}

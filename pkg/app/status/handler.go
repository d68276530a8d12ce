package status

import (
	"fmt"
	"time"

	"github.com/deploymenttheory/go-corestorage/pkg/app"
	"github.com/deploymenttheory/go-corestorage/pkg/corestorage"
)

// Handle processes a status request
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	startTime := time.Now()
	client := ctx.Client

	state, encrypted, plain, err := client.GetStateAndVolumeIds(ctx)
	if err != nil {
		return nil, app.WrapVolumeError("failed to determine encryption state", err)
	}
	ctx.Log(fmt.Sprintf("CoreStorage state: %s", state))

	response := &Response{
		State:               state,
		BootVolumeEncrypted: client.IsBootVolumeEncrypted(ctx),
		Volumes:             make([]VolumeEntry, 0, len(encrypted)+len(plain)),
	}

	if path, ok := client.GetRecoveryPartition(ctx); ok {
		response.RecoveryPartition = path
	}

	for _, id := range encrypted {
		response.Volumes = append(response.Volumes, VolumeEntry{ID: id, Encrypted: true})
	}
	for _, id := range plain {
		response.Volumes = append(response.Volumes, VolumeEntry{ID: id})
	}

	if req.IncludeSizes {
		for i := range response.Volumes {
			if err := addSize(ctx, &response.Volumes[i]); err != nil {
				return nil, err
			}
		}
	}

	response.QueryTime = time.Since(startTime)
	ctx.Log(fmt.Sprintf("Status completed: %d volumes (%d encrypted) in %v",
		len(response.Volumes), response.EncryptedCount(), response.QueryTime))

	return response, nil
}

func addSize(ctx *app.Context, entry *VolumeEntry) error {
	// Volume identifiers come from diskutil; malformed ones are reported without a size.
	if !corestorage.IsValidIdentifier(entry.ID) {
		ctx.Logger.WithField("volume", entry.ID).Warn("skipping size of volume with malformed identifier")
		return nil
	}

	size, err := ctx.Client.GetVolumeSize(ctx, entry.ID)
	if err != nil {
		return app.WrapVolumeError("failed to get volume size", err)
	}
	entry.SizeBytes = size
	entry.Size = corestorage.FormatGiB(size)
	return nil
}

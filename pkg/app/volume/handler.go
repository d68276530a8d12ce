package volume

import (
	"fmt"

	"github.com/deploymenttheory/go-corestorage/pkg/app"
	"github.com/deploymenttheory/go-corestorage/pkg/corestorage"
)

// Handle processes a volume request. passphrase is only read for unlock
// and revert and is owned by the caller.
func Handle(ctx *app.Context, req *Request, passphrase []byte) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Action.NeedsPassphrase() && len(passphrase) == 0 {
		return nil, app.NewError(app.ErrCodeInvalidInput, "passphrase is required", nil)
	}

	id := req.Target.VolumeID
	response := &Response{VolumeID: id, Action: req.Action}

	switch req.Action {
	case ActionUnlock:
		ctx.Log(fmt.Sprintf("Unlocking %s", req.Target.String()))
		if err := ctx.Client.UnlockVolume(ctx, id, passphrase); err != nil {
			return nil, app.WrapVolumeError("failed to unlock volume", err)
		}
		response.Result = "unlocked"

	case ActionRevert:
		ctx.Log(fmt.Sprintf("Reverting %s", req.Target.String()))
		if err := ctx.Client.RevertVolume(ctx, id, passphrase); err != nil {
			return nil, app.WrapVolumeError("failed to revert volume", err)
		}
		response.Result = "revert started"

	case ActionSize:
		size, err := ctx.Client.GetVolumeSize(ctx, id)
		if err != nil {
			return nil, app.WrapVolumeError("failed to get volume size", err)
		}
		response.SizeBytes = size
		response.Size = corestorage.FormatGiB(size)
		response.Result = "ok"
	}

	return response, nil
}

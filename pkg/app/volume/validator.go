package volume

import (
	"fmt"

	"github.com/deploymenttheory/go-corestorage/pkg/app"
)

// Validate validates a volume request
func (r *Request) Validate() error {
	switch r.Action {
	case ActionUnlock, ActionRevert, ActionSize:
	default:
		return app.NewError(app.ErrCodeInvalidInput, fmt.Sprintf("unknown action: %q", r.Action), nil)
	}

	if err := r.Target.Validate(); err != nil {
		return err
	}

	// Revert permanently decrypts the volume
	if r.Action == ActionRevert && !r.Confirmed {
		return app.NewError(app.ErrCodeConfirmationRequired,
			"revert permanently decrypts the volume; pass --yes to confirm", nil)
	}

	return nil
}

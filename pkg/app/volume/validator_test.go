package volume

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-corestorage/pkg/app"
)

const volumeID = "6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4A59"

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request Request
		wantErr bool
		errCode string
	}{
		{
			name:    "valid unlock",
			request: Request{Target: app.VolumeTarget{VolumeID: volumeID}, Action: ActionUnlock},
		},
		{
			name:    "valid size",
			request: Request{Target: app.VolumeTarget{VolumeID: volumeID}, Action: ActionSize},
		},
		{
			name:    "confirmed revert",
			request: Request{Target: app.VolumeTarget{VolumeID: volumeID}, Action: ActionRevert, Confirmed: true},
		},
		{
			name:    "unconfirmed revert",
			request: Request{Target: app.VolumeTarget{VolumeID: volumeID}, Action: ActionRevert},
			wantErr: true,
			errCode: app.ErrCodeConfirmationRequired,
		},
		{
			name:    "missing volume",
			request: Request{Action: ActionUnlock},
			wantErr: true,
			errCode: app.ErrCodeInvalidInput,
		},
		{
			name:    "malformed volume",
			request: Request{Target: app.VolumeTarget{VolumeID: "disk1s2"}, Action: ActionSize},
			wantErr: true,
			errCode: app.ErrCodeInvalidInput,
		},
		{
			name:    "unknown action",
			request: Request{Target: app.VolumeTarget{VolumeID: volumeID}, Action: "encrypt"},
			wantErr: true,
			errCode: app.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var appErr *app.CommonError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.errCode, appErr.Code)
		})
	}
}

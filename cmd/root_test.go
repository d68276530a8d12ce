package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-corestorage/pkg/app"
)

func executeArgs(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		revertConfirmed = false
	})

	return rootCmd.Execute()
}

func TestExecute_ReturnsErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{
			name:     "malformed identifier",
			args:     []string{"size", "not-a-uuid"},
			wantCode: app.ErrCodeInvalidInput,
		},
		{
			name:     "revert without confirmation",
			args:     []string{"revert", "6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4A59"},
			wantCode: app.ErrCodeConfirmationRequired,
		},
		{
			name: "unknown command",
			args: []string{"encrypt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := executeArgs(t, tt.args...)
			require.Error(t, err)

			if tt.wantCode == "" {
				return
			}
			var appErr *app.CommonError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

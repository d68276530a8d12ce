package corestorage

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptionState_String(t *testing.T) {
	tests := []struct {
		state EncryptionState
		want  string
	}{
		{StateUnknown, "CORE_STORAGE_STATE_UNKNOWN"},
		{StateNone, "CORE_STORAGE_STATE_NONE"},
		{StateEnabled, "CORE_STORAGE_STATE_ENABLED"},
		{StateEncrypted, "CORE_STORAGE_STATE_ENCRYPTED"},
		{EncryptionState(42), "EncryptionState(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestEncryptionState_Text(t *testing.T) {
	for _, state := range []EncryptionState{StateUnknown, StateNone, StateEnabled, StateEncrypted} {
		data, err := json.Marshal(state)
		require.NoError(t, err)

		var decoded EncryptionState
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, state, decoded)
	}

	_, err := EncryptionState(9).MarshalText()
	assert.Error(t, err)

	var s EncryptionState
	assert.Error(t, s.UnmarshalText([]byte("CORE_STORAGE_STATE_BOGUS")))
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"upper case", "6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4A59", true},
		{"lower case", "6c1ad8a4-3e5c-4a1e-9f2b-1e1d2c3b4a59", true},
		{"generated", uuid.NewString(), true},
		{"empty", "", false},
		{"no hyphens", "6C1AD8A43E5C4A1E9F2B1E1D2C3B4A59", false},
		{"braces", "{6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4A59}", false},
		{"urn", "urn:uuid:6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4A59", false},
		{"non hex", "6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4AZ9", false},
		{"misplaced hyphen", "6C1AD8A43-E5C-4A1E-9F2B-1E1D2C3B4A59", false},
		{"path", "/", false},
		{"injection", "6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4A59 -x", false},
		{"long", strings.Repeat("A", 36), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidIdentifier(tt.id))
		})
	}
}

func TestError(t *testing.T) {
	err := &Error{
		Code:     CodeCouldNotUnlock,
		Op:       "UnlockVolume",
		ID:       volumeA,
		ExitCode: 1,
		Message:  "could not unlock volume",
	}

	assert.Equal(t, "UnlockVolume: could not unlock volume ("+volumeA+"): exit status 1", err.Error())
	assert.ErrorIs(t, err, ErrCouldNotUnlock)
	assert.NotErrorIs(t, err, ErrCouldNotRevert)
	assert.True(t, IsCouldNotUnlock(err))
	assert.False(t, IsQueryError(err))
	assert.False(t, IsInvalidArgument(nil))
}

package corestorage

import "fmt"

// EncryptionState is the derived encryption state of the CoreStorage
// volume groups on this machine.
type EncryptionState int

const (
	// StateUnknown is reserved for states that cannot be classified.
	StateUnknown EncryptionState = iota
	// StateNone means no logical volume group is present.
	StateNone
	// StateEnabled means a volume group exists but not every volume in it is encrypted.
	StateEnabled
	// StateEncrypted means a volume group exists and every discovered volume is encrypted.
	StateEncrypted
)

var stateNames = map[EncryptionState]string{
	StateUnknown:   "CORE_STORAGE_STATE_UNKNOWN",
	StateNone:      "CORE_STORAGE_STATE_NONE",
	StateEnabled:   "CORE_STORAGE_STATE_ENABLED",
	StateEncrypted: "CORE_STORAGE_STATE_ENCRYPTED",
}

// String returns the state's wire name, e.g. "CORE_STORAGE_STATE_ENCRYPTED".
func (s EncryptionState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("EncryptionState(%d)", int(s))
}

// IsValid reports whether s is one of the four defined states.
func (s EncryptionState) IsValid() bool {
	_, ok := stateNames[s]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (s EncryptionState) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid encryption state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *EncryptionState) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown encryption state %q", string(text))
}

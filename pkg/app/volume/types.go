package volume

import "github.com/deploymenttheory/go-corestorage/pkg/app"

// Action is the operation requested on a volume
type Action string

const (
	ActionUnlock Action = "unlock"
	ActionRevert Action = "revert"
	ActionSize   Action = "size"
)

// Request represents a single-volume request
type Request struct {
	Target app.VolumeTarget
	Action Action

	// Confirmed must be set for destructive actions
	Confirmed bool
}

// Response represents the outcome of a volume request
type Response struct {
	VolumeID  string `json:"volume_id" yaml:"volume_id"`
	Action    Action `json:"action" yaml:"action"`
	Result    string `json:"result" yaml:"result"`
	SizeBytes int64  `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	Size      string `json:"size,omitempty" yaml:"size,omitempty"`
}

// NeedsPassphrase reports whether the action requires a passphrase
func (a Action) NeedsPassphrase() bool {
	return a == ActionUnlock || a == ActionRevert
}

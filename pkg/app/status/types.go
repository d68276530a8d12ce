package status

import (
	"time"

	"github.com/deploymenttheory/go-corestorage/pkg/corestorage"
)

// Request represents a status request
type Request struct {
	// IncludeSizes queries each volume's logical size
	IncludeSizes bool
}

// Response represents the encryption status of this machine
type Response struct {
	State               corestorage.EncryptionState `json:"state" yaml:"state"`
	BootVolumeEncrypted bool                        `json:"boot_volume_encrypted" yaml:"boot_volume_encrypted"`
	RecoveryPartition   string                      `json:"recovery_partition,omitempty" yaml:"recovery_partition,omitempty"`
	Volumes             []VolumeEntry               `json:"volumes" yaml:"volumes"`
	QueryTime           time.Duration               `json:"query_time" yaml:"query_time"`
}

// VolumeEntry represents a discovered logical volume
type VolumeEntry struct {
	ID        string `json:"id" yaml:"id"`
	Encrypted bool   `json:"encrypted" yaml:"encrypted"`
	SizeBytes int64  `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	Size      string `json:"size,omitempty" yaml:"size,omitempty"`
}

// EncryptedCount returns the number of encrypted volumes
func (r *Response) EncryptedCount() int {
	n := 0
	for _, v := range r.Volumes {
		if v.Encrypted {
			n++
		}
	}
	return n
}

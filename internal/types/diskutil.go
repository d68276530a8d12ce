package types

// diskutil (CoreStorage)
// The structures below mirror the plist payloads printed by the diskutil
// verbs this module drives. Only the keys that are consumed are declared;
// howett.net/plist ignores the rest.

const (
	// DiskutilPath is the default location of the disk management utility.
	DiskutilPath = "/usr/sbin/diskutil"

	// EncryptionTypeAESXTS is the CoreStorageLogicalVolumeFamilyEncryptionType
	// value reported for an encrypted logical volume family.
	EncryptionTypeAESXTS = "AES-XTS"

	// BootDiskIdentifier is the whole-disk identifier that holds the recovery partition.
	BootDiskIdentifier = "disk0"

	// RecoveryVolumeName is the volume label of the recovery partition.
	RecoveryVolumeName = "Recovery HD"

	// NotLockedMessage is the stderr fragment diskutil prints when asked to
	// unlock a volume that is already unlocked.
	// It is matched as a substring and is locale dependent.
	NotLockedMessage = "volume is not locked"

	// DevicePathPrefix is prepended to a device identifier to form a device node path.
	DevicePathPrefix = "/dev/"

	// GiB is the divisor used for human readable volume sizes.
	GiB = 1 << 30
)

// CSInfo is the payload of "diskutil cs info -plist <id-or-path>".
// For a logical volume it names the family the volume belongs to; for a
// family it carries the family's encryption type.
type CSInfo struct {
	// The UUID of the logical volume family this volume is a member of.
	// Empty when the queried object is not a logical volume.
	MemberOfCoreStorageLogicalVolumeFamily string `plist:"MemberOfCoreStorageLogicalVolumeFamily"`

	// The encryption type of a logical volume family ("AES-XTS" or "None").
	CoreStorageLogicalVolumeFamilyEncryptionType string `plist:"CoreStorageLogicalVolumeFamilyEncryptionType"`

	// The UUID of the queried object.
	CoreStorageUUID string `plist:"CoreStorageUUID"`

	// The role of the queried object ("LV", "LVF", "LVG", "PV").
	CoreStorageRole string `plist:"CoreStorageRole"`
}

// CSVolumeInfo is the payload of "diskutil corestorage info -plist <lv-uuid>".
type CSVolumeInfo struct {
	// The UUID of the logical volume.
	CoreStorageUUID string `plist:"CoreStorageUUID"`

	// The logical size of the volume in bytes.
	// A pointer so an absent key can be told apart from a zero size.
	CoreStorageLogicalVolumeSize *int64 `plist:"CoreStorageLogicalVolumeSize"`

	// The conversion state of the volume ("Complete", "Converting", ...).
	CoreStorageLogicalVolumeConversionState string `plist:"CoreStorageLogicalVolumeConversionState"`

	// The lock status of the volume ("Locked" or "Unlocked").
	CoreStorageLogicalVolumeStatus string `plist:"CoreStorageLogicalVolumeStatus"`
}

// CSList is the payload of "diskutil corestorage list -plist".
type CSList struct {
	CoreStorageLogicalVolumeGroups []LogicalVolumeGroup `plist:"CoreStorageLogicalVolumeGroups"`
}

// LogicalVolumeGroup is one logical volume group in a CSList.
type LogicalVolumeGroup struct {
	CoreStorageUUID                   string                `plist:"CoreStorageUUID"`
	CoreStorageLogicalVolumeFamilies  []LogicalVolumeFamily `plist:"CoreStorageLogicalVolumeFamilies"`
	CoreStoragePhysicalVolumes        []PhysicalVolume      `plist:"CoreStoragePhysicalVolumes"`
	CoreStorageLogicalVolumeGroupName string                `plist:"CoreStorageLogicalVolumeGroupName"`
}

// LogicalVolumeFamily is one family within a logical volume group.
// All volumes in a family share the family's encryption policy.
type LogicalVolumeFamily struct {
	CoreStorageUUID           string          `plist:"CoreStorageUUID"`
	CoreStorageLogicalVolumes []LogicalVolume `plist:"CoreStorageLogicalVolumes"`
}

// LogicalVolume is one addressable volume within a family.
type LogicalVolume struct {
	CoreStorageUUID string `plist:"CoreStorageUUID"`
}

// PhysicalVolume is a physical store backing a logical volume group.
type PhysicalVolume struct {
	CoreStorageUUID string `plist:"CoreStorageUUID"`
}

// DiskList is the payload of "diskutil list -plist".
type DiskList struct {
	AllDisks              []string   `plist:"AllDisks"`
	AllDisksAndPartitions []DiskPart `plist:"AllDisksAndPartitions"`
	WholeDisks            []string   `plist:"WholeDisks"`
}

// DiskPart is a whole disk and its partitions.
type DiskPart struct {
	Content          string      `plist:"Content"`
	DeviceIdentifier string      `plist:"DeviceIdentifier"`
	Partitions       []Partition `plist:"Partitions"`
	Size             uint64      `plist:"Size"`
}

// Partition is one partition of a DiskPart.
type Partition struct {
	Content          string `plist:"Content"`
	DeviceIdentifier string `plist:"DeviceIdentifier"`
	Size             uint64 `plist:"Size"`
	VolumeName       string `plist:"VolumeName"`
}

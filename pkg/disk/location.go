package disk

// Location describes a candidate device for the boot loader stage1 so
// that platform rules can be applied to it.
type Location struct {
	Device string
	Kind   DeviceKind

	// Set for partitions only
	Container string
	Partition *Partition

	// Partition table scheme of the device (or of the container for
	// partitions)
	Label string
}

// IsPartition returns true if the location is a partition of a
// container rather than a whole device.
func (l Location) IsPartition() bool {
	return l.Partition != nil
}

// FSType returns the filesystem at the location, if known.
func (l Location) FSType() string {
	if l.Partition != nil {
		return l.Partition.FSType
	}
	return ""
}

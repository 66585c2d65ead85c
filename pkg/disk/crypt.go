package disk

// CryptDeviceFor returns the crypt mapping wrapping the given partition.
// The partition's own crypt_device wins over crypt containers listing
// the partition as a member.
func (t *Topology) CryptDeviceFor(partition string) (string, bool) {
	if part, _, ok := t.Partition(partition); ok {
		if part.CryptDevice != "" {
			return part.CryptDevice, true
		}
		if part.UsedBy != nil && part.UsedBy.Kind == KIND_CRYPT && part.UsedBy.Device != "" {
			return part.UsedBy.Device, true
		}
	}
	for _, path := range t.ContainersOfKind(KIND_CRYPT) {
		for _, member := range t.Devices[path].Members() {
			if member == partition {
				return path, true
			}
		}
	}
	return "", false
}

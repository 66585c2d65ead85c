package stage1

import (
	"github.com/sirupsen/logrus"

	"github.com/osbuild/bootstorage/pkg/disk"
)

// AvailableSwapPartitions returns the size in bytes of every swap area
// keyed by its device path. Encrypted swap is keyed by the crypt
// mapping only, the backing partition never shows up.
func AvailableSwapPartitions(t *disk.Topology) map[string]uint64 {
	res := make(map[string]uint64)

	_ = t.ForEachPartition(func(_ string, _ *disk.Device, part *disk.Partition) error {
		if !part.IsSwap() || part.Delete || part.Device == "" {
			return nil
		}
		key, size := part.Device, part.GetSize()
		if crypt, ok := t.CryptDeviceFor(part.Device); ok {
			key = crypt
			if cdev, ok := t.Device(crypt); ok && cdev.Size > 0 {
				size = cdev.Size.Uint64()
			}
		} else if part.Encrypted {
			logrus.Debugf("encrypted swap %s has no crypt device, ignoring", part.Device)
			return nil
		}
		res[key] = size
		return nil
	})

	// crypt mappings formatted as swap on top of a raw partition
	for _, path := range t.ContainersOfKind(disk.KIND_CRYPT) {
		dev := t.Devices[path]
		if dev.FSType != "swap" {
			continue
		}
		if _, ok := res[path]; ok {
			continue
		}
		// a crypt mapping backed only by partitions pending removal is
		// not available
		members := dev.Members()
		var backing *disk.Partition
		for _, member := range members {
			if part, _, ok := t.Partition(member); ok && !part.Delete {
				backing = part
				break
			}
		}
		if len(members) > 0 && backing == nil {
			logrus.Debugf("crypt swap %s has no live backing partition, ignoring", path)
			continue
		}
		size := dev.Size.Uint64()
		if size == 0 && backing != nil {
			size = backing.GetSize()
		}
		res[path] = size
	}
	return res
}

// Package stage1 answers where the boot loader stage1 may go and which
// devices the installed system boots from.
package stage1

import (
	"github.com/sirupsen/logrus"

	"github.com/osbuild/bootstorage/pkg/disk"
	"github.com/osbuild/bootstorage/pkg/platform"
)

// PossibleLocations returns every device that may receive stage1: the
// disks and RAID arrays of the topology, each followed by those of its
// partitions that are not about to be deleted. The platform has the
// final word on every candidate. The order follows the disk enumeration
// order and then the partition order.
func PossibleLocations(t *disk.Topology, p platform.Platform) []string {
	seen := make(map[string]bool)
	var res []string
	consider := func(loc disk.Location) {
		if loc.Device == "" || seen[loc.Device] {
			return
		}
		if !p.Stage1Allowed(loc) {
			logrus.Debugf("stage1 not allowed on %s", loc.Device)
			return
		}
		seen[loc.Device] = true
		res = append(res, loc.Device)
	}

	for _, path := range t.Containers() {
		dev := t.Devices[path]
		if dev == nil || (dev.Kind != disk.KIND_DISK && dev.Kind != disk.KIND_RAID) {
			continue
		}
		consider(disk.Location{Device: path, Kind: dev.Kind, Label: dev.Label})
		for idx := range dev.Partitions {
			part := &dev.Partitions[idx]
			if part.Delete {
				continue
			}
			consider(disk.Location{
				Device:    part.Device,
				Kind:      disk.KIND_PARTITION,
				Container: path,
				Partition: part,
				Label:     dev.Label,
			})
		}
	}
	return res
}

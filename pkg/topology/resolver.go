// Package topology answers ancestry questions over a storage snapshot:
// which members make up a virtual device and which physical disks
// ultimately back it.
package topology

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/osbuild/bootstorage/pkg/devicemap"
	"github.com/osbuild/bootstorage/pkg/disk"
)

// MembersOf returns the immediate members recorded for the device. It
// returns nil for devices that are not composite or that do not record
// any members.
func MembersOf(t *disk.Topology, device string) []string {
	dev, ok := t.Device(device)
	if !ok {
		return nil
	}
	return dev.Members()
}

// isComposite returns true if the device is assembled from members,
// whether or not they are recorded.
func isComposite(t *disk.Topology, device string) bool {
	if dev, ok := t.Device(device); ok {
		return dev.Kind.IsComposite()
	}
	return false
}

// MdToPartitions maps every real partition beneath a composite device
// (e.g. an MD RAID) to the BIOS id of the disk the partition lives on.
// Without a device map, or when the disk is not part of it, the disk
// path is used instead. Nested composite members are unwound
// recursively. Devices that are not composite yield an empty map.
func MdToPartitions(t *disk.Topology, device string, dm devicemap.DeviceMap) map[string]string {
	res := make(map[string]string)
	visited := map[string]bool{device: true}
	mdToPartitions(t, device, dm, visited, res)
	return res
}

func mdToPartitions(t *disk.Topology, device string, dm devicemap.DeviceMap, visited map[string]bool, res map[string]string) {
	for _, member := range MembersOf(t, device) {
		if visited[member] {
			logrus.Debugf("%s: member %s already visited, skipping", device, member)
			continue
		}
		visited[member] = true

		if !t.Exists(member) {
			logrus.Debugf("%s: dangling member %s ignored", device, member)
			continue
		}
		if isComposite(t, member) {
			mdToPartitions(t, member, dm, visited, res)
			continue
		}

		holder := member
		if _, ok := t.Device(member); !ok {
			if parent, ok := t.Parent(member); ok {
				holder = parent
			}
		}
		res[member] = biosIDOrDisk(dm, holder)
	}
}

func biosIDOrDisk(dm devicemap.DeviceMap, disk string) string {
	if dm != nil {
		if id, ok := dm.BIOSID(disk); ok {
			return id
		}
	}
	return disk
}

// RealDisksForPartition returns the physical disks that ultimately back
// the given device, resolving any nesting of RAID, LVM, multipath and
// crypt layers. The result is sorted and without duplicates; it is empty
// when nothing can be resolved.
func RealDisksForPartition(t *disk.Topology, device string) []string {
	found := make(map[string]bool)
	visited := make(map[string]bool)
	realDisks(t, device, visited, found)

	if len(found) == 0 {
		logrus.Debugf("no physical disk found for %s", device)
	}
	res := make([]string, 0, len(found))
	for d := range found {
		res = append(res, d)
	}
	sort.Strings(res)
	return res
}

func realDisks(t *disk.Topology, device string, visited, found map[string]bool) {
	if visited[device] {
		return
	}
	visited[device] = true

	if dev, ok := t.Device(device); ok && dev.Kind == disk.KIND_DISK {
		found[device] = true
		return
	}

	if members := MembersOf(t, device); len(members) > 0 {
		for _, member := range members {
			if !t.Exists(member) {
				logrus.Debugf("%s: dangling member %s ignored", device, member)
				continue
			}
			realDisks(t, member, visited, found)
		}
		return
	}

	if parent, ok := t.Parent(device); ok {
		realDisks(t, parent, visited, found)
		return
	}

	// composite devices without recorded members, fall back to the
	// partitions that point back at them
	if users := usedBy(t, device); len(users) > 0 {
		for _, user := range users {
			realDisks(t, user, visited, found)
		}
		return
	}

	logrus.Debugf("cannot resolve %s to a physical disk", device)
}

// usedBy returns the partitions whose used_by back-reference names the
// device, in enumeration order.
func usedBy(t *disk.Topology, device string) []string {
	var res []string
	_ = t.ForEachPartition(func(_ string, _ *disk.Device, part *disk.Partition) error {
		if part.UsedBy != nil && part.UsedBy.Device == device && !part.Delete {
			res = append(res, part.Device)
		}
		return nil
	})
	return res
}

// MultipathMapping maps the kernel name of each physical disk that is a
// member of a multipath device to the path of that multipath device.
// Disks without a multipath wrapper are not part of the result.
func MultipathMapping(t *disk.Topology) map[string]string {
	res := make(map[string]string)
	for _, mpath := range t.ContainersOfKind(disk.KIND_MULTIPATH) {
		for _, member := range MembersOf(t, mpath) {
			dev, ok := t.Device(member)
			if !ok || dev.Kind != disk.KIND_DISK {
				logrus.Debugf("multipath %s: member %s is not a disk, ignoring", mpath, member)
				continue
			}
			name := dev.KernelName(member)
			if prev, ok := res[name]; ok && prev != mpath {
				logrus.Warnf("disk %s is a member of both %s and %s", member, prev, mpath)
				continue
			}
			res[name] = mpath
		}
	}
	return res
}

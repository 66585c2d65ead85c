package disk

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// Topology is a read-only snapshot of the storage of a machine as
// reported by the storage inspection service. Containers (disks, MD
// arrays, volume groups, multipath and crypt mappings) are keyed by their
// device path, partitions and logical volumes live in the Partitions of
// their container.
type Topology struct {
	FormatVersion string             `json:"format_version,omitempty" yaml:"format_version,omitempty"`
	Devices       map[string]*Device `json:"devices" yaml:"devices"`
	MountPoints   MountPoints        `json:"mount_points,omitempty" yaml:"mount_points,omitempty"`

	// Enumeration order of the inspection service, devices that are not
	// listed follow in lexical order.
	Order []string `json:"order,omitempty" yaml:"order,omitempty"`

	once     sync.Once
	index    map[string]entry
	indexErr error
}

type entry struct {
	device    *Device
	partition *Partition
	parent    string
}

func (t *Topology) lookup() map[string]entry {
	t.once.Do(func() {
		t.index, t.indexErr = buildIndex(t)
		if t.indexErr != nil {
			logrus.Warnf("inconsistent topology: %v", t.indexErr)
		}
	})
	return t.index
}

func buildIndex(t *Topology) (map[string]entry, error) {
	var errs []error
	idx := make(map[string]entry)

	paths := make([]string, 0, len(t.Devices))
	for path := range t.Devices {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		dev := t.Devices[path]
		if dev == nil {
			continue
		}
		idx[path] = entry{device: dev, parent: dev.Disk}
	}
	for _, path := range paths {
		dev := t.Devices[path]
		if dev == nil {
			continue
		}
		for pidx := range dev.Partitions {
			part := &dev.Partitions[pidx]
			if part.Device == "" {
				errs = append(errs, fmt.Errorf("partition %d of %s has no device path", pidx, path))
				continue
			}
			if prev, ok := idx[part.Device]; ok {
				if prev.device != nil && prev.parent == "" {
					// a top-level descriptor of a volume that is also
					// listed by its container, e.g. an lvm_lv
					prev.parent = path
					prev.partition = part
					idx[part.Device] = prev
					continue
				}
				errs = append(errs, fmt.Errorf("device path %s is not unique", part.Device))
				continue
			}
			idx[part.Device] = entry{partition: part, parent: path}
		}
	}

	if len(errs) > 0 {
		return idx, errors.Join(errs...)
	}
	return idx, nil
}

// Validate checks that device paths are unique within the snapshot.
func (t *Topology) Validate() error {
	t.lookup()
	return t.indexErr
}

// Device returns the container descriptor for the given path.
func (t *Topology) Device(path string) (*Device, bool) {
	e, ok := t.lookup()[path]
	if !ok || e.device == nil {
		return nil, false
	}
	return e.device, true
}

// Partition returns the partition (or logical volume) with the given
// path together with the path of its container.
func (t *Topology) Partition(path string) (*Partition, string, bool) {
	e, ok := t.lookup()[path]
	if !ok || e.partition == nil {
		return nil, "", false
	}
	return e.partition, e.parent, true
}

// Exists returns true if the path is known to the topology at all.
func (t *Topology) Exists(path string) bool {
	_, ok := t.lookup()[path]
	return ok
}

// Parent returns the containing device of the given path. Paths that
// are not listed fall back to the partition naming scheme, see
// SplitPartitionName.
func (t *Topology) Parent(path string) (string, bool) {
	if e, ok := t.lookup()[path]; ok && e.parent != "" {
		return e.parent, true
	}
	if base, _, ok := SplitPartitionName(path); ok {
		if _, known := t.Device(base); known {
			return base, true
		}
	}
	return "", false
}

// Containers returns the paths of all container devices in enumeration
// order.
func (t *Topology) Containers() []string {
	seen := make(map[string]bool, len(t.Devices))
	res := make([]string, 0, len(t.Devices))
	for _, path := range t.Order {
		if _, ok := t.Devices[path]; !ok || seen[path] {
			continue
		}
		seen[path] = true
		res = append(res, path)
	}
	var rest []string
	for path := range t.Devices {
		if !seen[path] {
			rest = append(rest, path)
		}
	}
	sort.Strings(rest)
	return append(res, rest...)
}

// ContainersOfKind returns the container paths of the given kind in
// enumeration order.
func (t *Topology) ContainersOfKind(kind DeviceKind) []string {
	var res []string
	for _, path := range t.Containers() {
		if dev := t.Devices[path]; dev != nil && dev.Kind == kind {
			res = append(res, path)
		}
	}
	return res
}

// Disks returns the physical disks in enumeration order.
func (t *Topology) Disks() []string {
	return t.ContainersOfKind(KIND_DISK)
}

// MountedAt returns the device mounted at the given mount path.
func (t *Topology) MountedAt(mountpoint string) (string, bool) {
	if t.MountPoints != nil {
		if dev, ok := t.MountPoints.Get(mountpoint); ok {
			return dev, true
		}
	}
	return "", false
}

// ForEachPartition calls fn for every partition of every container in
// enumeration order. Iteration stops at the first error.
func (t *Topology) ForEachPartition(fn func(container string, dev *Device, part *Partition) error) error {
	for _, path := range t.Containers() {
		dev := t.Devices[path]
		if dev == nil {
			continue
		}
		for idx := range dev.Partitions {
			if err := fn(path, dev, &dev.Partitions[idx]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the snapshot with a fresh index.
func (t *Topology) Clone() *Topology {
	if t == nil {
		return nil
	}
	clone := &Topology{
		FormatVersion: t.FormatVersion,
		Devices:       make(map[string]*Device, len(t.Devices)),
		Order:         append([]string(nil), t.Order...),
	}
	for path, dev := range t.Devices {
		clone.Devices[path] = dev.Clone()
	}
	if t.MountPoints != nil {
		clone.MountPoints = make(MountPoints, len(t.MountPoints))
		for mnt, devs := range t.MountPoints {
			clone.MountPoints[mnt] = append([]string(nil), devs...)
		}
	}
	return clone
}

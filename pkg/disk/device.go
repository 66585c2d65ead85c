package disk

import (
	"path/filepath"

	"github.com/osbuild/bootstorage/pkg/datasizes"
)

// Device is the descriptor of a container entry in a Topology: a disk,
// an MD array, an LVM volume group, a multipath map or a crypt mapping.
type Device struct {
	Kind DeviceKind `json:"kind" yaml:"kind"`

	// Kernel name, defaults to the basename of the device path
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Partition table scheme, e.g. "msdos", "gpt" or "dasd"
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	Partitions []Partition `json:"partitions,omitempty" yaml:"partitions,omitempty"`

	// Members of a composite device. Devices are the existing members,
	// DevicesAdd the ones being added; either may be absent.
	Devices    []string `json:"devices,omitempty" yaml:"devices,omitempty"`
	DevicesAdd []string `json:"devices_add,omitempty" yaml:"devices_add,omitempty"`

	// Containing device for entries that are not listed in a parent's
	// partitions
	Disk string `json:"disk,omitempty" yaml:"disk,omitempty"`

	RaidType  string         `json:"raid_type,omitempty" yaml:"raid_type,omitempty"`
	Encrypted bool           `json:"encrypted,omitempty" yaml:"encrypted,omitempty"`
	FSType    string         `json:"used_fs,omitempty" yaml:"used_fs,omitempty"`
	Size      datasizes.Size `json:"size,omitempty" yaml:"size,omitempty"`
}

// Members returns the ordered union of Devices and DevicesAdd without
// duplicates.
func (d *Device) Members() []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]bool, len(d.Devices)+len(d.DevicesAdd))
	var members []string
	for _, list := range [][]string{d.Devices, d.DevicesAdd} {
		for _, m := range list {
			if m == "" || seen[m] {
				continue
			}
			seen[m] = true
			members = append(members, m)
		}
	}
	return members
}

// KernelName returns the name of the device as the kernel knows it.
func (d *Device) KernelName(path string) string {
	if d != nil && d.Name != "" {
		return d.Name
	}
	return filepath.Base(path)
}

func (d *Device) FindPartition(path string) *Partition {
	if d == nil {
		return nil
	}
	for idx := range d.Partitions {
		if d.Partitions[idx].Device == path {
			return &d.Partitions[idx]
		}
	}
	return nil
}

// ExtendedPartition returns the extended container partition of a device
// with an msdos label, nil otherwise.
func (d *Device) ExtendedPartition() *Partition {
	if d == nil || d.Label != "msdos" {
		return nil
	}
	for idx := range d.Partitions {
		p := &d.Partitions[idx]
		if p.IsExtended() && !p.Delete {
			return p
		}
	}
	return nil
}

func (d *Device) Clone() *Device {
	if d == nil {
		return nil
	}
	clone := *d
	clone.Partitions = make([]Partition, len(d.Partitions))
	for idx := range d.Partitions {
		clone.Partitions[idx] = *d.Partitions[idx].Clone()
	}
	clone.Devices = append([]string(nil), d.Devices...)
	clone.DevicesAdd = append([]string(nil), d.DevicesAdd...)
	return &clone
}

package stage1

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/osbuild/bootstorage/pkg/disk"
	"github.com/osbuild/bootstorage/pkg/topology"
)

var ErrNoRootMountPoint = errors.New("no root mount point")

// NoRootMountPointError is returned when nothing is mounted at "/". No
// boot configuration can be written in that case.
type NoRootMountPointError struct {
	// Mount points that are known, for diagnostics
	MountPoints []string
}

func (e *NoRootMountPointError) Error() string {
	if len(e.MountPoints) == 0 {
		return "no device is mounted at /"
	}
	return fmt.Sprintf("no device is mounted at / (known mount points: %s)", strings.Join(e.MountPoints, ", "))
}

func (e *NoRootMountPointError) Is(target error) bool {
	return target == ErrNoRootMountPoint
}

// Disks are the devices the installed system boots from.
type Disks struct {
	Root string `json:"root" yaml:"root"`
	// Same as Root without a separate /boot
	Boot string `json:"boot" yaml:"boot"`
	// Extended partition holding Boot, only for logical partitions on
	// msdos labelled disks
	Extended string `json:"extended,omitempty" yaml:"extended,omitempty"`
	MBR      string `json:"mbr,omitempty" yaml:"mbr,omitempty"`
}

// MBRSelector picks the disk that receives the master boot record for
// the given boot device. An empty result leaves the MBR unset.
type MBRSelector func(t *disk.Topology, boot string) string

// DefaultMBRSelector returns the first disk in enumeration order that
// backs the boot device.
func DefaultMBRSelector(t *disk.Topology, boot string) string {
	backing := make(map[string]bool)
	for _, d := range topology.RealDisksForPartition(t, boot) {
		backing[d] = true
	}
	for _, d := range t.Disks() {
		if backing[d] {
			return d
		}
	}
	return ""
}

// DetectDisks determines the root, boot, extended and MBR devices. The
// selector may be nil.
func DetectDisks(t *disk.Topology, sel MBRSelector) (*Disks, error) {
	root, ok := t.MountedAt("/")
	if !ok {
		known := make([]string, 0, len(t.MountPoints))
		for mnt := range t.MountPoints {
			known = append(known, mnt)
		}
		sort.Strings(known)
		return nil, &NoRootMountPointError{MountPoints: known}
	}

	res := &Disks{Root: root, Boot: root}
	if boot, ok := t.MountedAt("/boot"); ok {
		res.Boot = boot
	}

	if part, container, ok := t.Partition(res.Boot); ok && part.IsLogical() {
		if dev, ok := t.Device(container); ok {
			if ext := dev.ExtendedPartition(); ext != nil {
				res.Extended = ext.Device
			}
		}
	}

	if sel != nil {
		res.MBR = sel(t, res.Boot)
	}

	logrus.Infof("detected root %s, boot %s, extended %q, mbr %q", res.Root, res.Boot, res.Extended, res.MBR)
	return res, nil
}

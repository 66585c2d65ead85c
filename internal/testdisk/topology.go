package testdisk

import (
	"github.com/osbuild/bootstorage/pkg/datasizes"
	"github.com/osbuild/bootstorage/pkg/disk"
)

const FakePartitionSize = datasizes.Size(789 * datasizes.MiB)

func partitionsOf(diskPath string, usedBy *disk.UsedBy) []disk.Partition {
	return []disk.Partition{
		{
			Device: diskPath + "1",
			Number: 1,
			Type:   disk.PART_PRIMARY,
			FSID:   "Linux RAID",
			Size:   FakePartitionSize,
			UsedBy: usedBy,
		},
	}
}

// MakeFakeMDRaidTopology returns four virtio disks with one partition
// each, all of them assembled into the RAID1 array /dev/md1 which holds
// the root filesystem.
func MakeFakeMDRaidTopology() *disk.Topology {
	usedBy := &disk.UsedBy{Kind: disk.KIND_RAID, Device: "/dev/md1"}
	t := &disk.Topology{
		Devices: map[string]*disk.Device{
			"/dev/md1": {
				Kind:       disk.KIND_RAID,
				RaidType:   "raid1",
				DevicesAdd: []string{"/dev/vda1", "/dev/vdb1", "/dev/vdc1", "/dev/vdd1"},
				FSType:     "ext4",
				Size:       FakePartitionSize,
			},
		},
		MountPoints: disk.MountPoints{
			"/": {"/dev/md1"},
		},
		Order: []string{"/dev/vda", "/dev/vdb", "/dev/vdc", "/dev/vdd"},
	}
	for _, d := range []string{"/dev/vda", "/dev/vdb", "/dev/vdc", "/dev/vdd"} {
		t.Devices[d] = &disk.Device{
			Kind:       disk.KIND_DISK,
			Label:      "msdos",
			Partitions: partitionsOf(d, usedBy),
			Size:       10 * datasizes.GiB,
		}
	}
	return t
}

// MakeFakeLVMTopology returns a single disk /dev/vda with a /boot
// partition and a physical volume for the volume group "system" that
// holds the root and swap logical volumes.
func MakeFakeLVMTopology() *disk.Topology {
	return &disk.Topology{
		Devices: map[string]*disk.Device{
			"/dev/vda": {
				Kind:  disk.KIND_DISK,
				Label: "msdos",
				Size:  20 * datasizes.GiB,
				Partitions: []disk.Partition{
					{
						Device: "/dev/vda1",
						Number: 1,
						Type:   disk.PART_PRIMARY,
						FSType: "ext4",
						FSID:   "Linux native",
						Mount:  "/boot",
						Size:   500 * datasizes.MiB,
					},
					{
						Device: "/dev/vda2",
						Number: 2,
						Type:   disk.PART_PRIMARY,
						FSID:   "Linux LVM",
						Size:   19 * datasizes.GiB,
						UsedBy: &disk.UsedBy{Kind: disk.KIND_LVM_VG, Device: "/dev/system"},
					},
				},
			},
			"/dev/system": {
				Kind:       disk.KIND_LVM_VG,
				DevicesAdd: []string{"/dev/vda2"},
				Partitions: []disk.Partition{
					{
						Device: "/dev/system/root",
						Type:   disk.PART_LV,
						FSType: "btrfs",
						Mount:  "/",
						Size:   17 * datasizes.GiB,
					},
					{
						Device: "/dev/system/swap",
						Type:   disk.PART_LV,
						FSType: "swap",
						Mount:  "swap",
						Size:   2 * datasizes.GiB,
					},
				},
			},
		},
		MountPoints: disk.MountPoints{
			"/":     {"/dev/system/root"},
			"/boot": {"/dev/vda1"},
		},
		Order: []string{"/dev/vda"},
	}
}

// MakeFakeLVMTopologyWithoutDevicesAdd is MakeFakeLVMTopology where the
// volume group does not record its physical volumes.
func MakeFakeLVMTopologyWithoutDevicesAdd() *disk.Topology {
	t := MakeFakeLVMTopology()
	t.Devices["/dev/system"].DevicesAdd = nil
	return t
}

// MakeFakeMultipathTopology returns two paths /dev/sda and /dev/sdb to
// the same LUN, wrapped by the multipath map /dev/mapper/mpatha, plus the
// local disk /dev/sdc that is not multipathed.
func MakeFakeMultipathTopology() *disk.Topology {
	return &disk.Topology{
		Devices: map[string]*disk.Device{
			"/dev/sda": {Kind: disk.KIND_DISK, Label: "gpt"},
			"/dev/sdb": {Kind: disk.KIND_DISK, Label: "gpt"},
			"/dev/sdc": {
				Kind:  disk.KIND_DISK,
				Label: "gpt",
				Partitions: []disk.Partition{
					{Device: "/dev/sdc1", Number: 1, FSType: "ext4", FSID: "Linux native", Size: FakePartitionSize},
				},
			},
			"/dev/mapper/mpatha": {
				Kind:    disk.KIND_MULTIPATH,
				Label:   "gpt",
				Devices: []string{"/dev/sda", "/dev/sdb"},
				Partitions: []disk.Partition{
					{Device: "/dev/mapper/mpatha-part1", Number: 1, FSType: "xfs", FSID: "Linux native", Mount: "/", Size: FakePartitionSize},
				},
			},
		},
		MountPoints: disk.MountPoints{
			"/": {"/dev/mapper/mpatha-part1"},
		},
		Order: []string{"/dev/sda", "/dev/sdb", "/dev/sdc"},
	}
}

// MakeFakeSwapTopology returns a disk with a plain swap partition
// /dev/vda2 of 1026048 bytes and an encrypted swap partition /dev/vda3
// wrapped by /dev/mapper/cr_swap of 2096482 bytes.
func MakeFakeSwapTopology() *disk.Topology {
	return &disk.Topology{
		Devices: map[string]*disk.Device{
			"/dev/vda": {
				Kind:  disk.KIND_DISK,
				Label: "msdos",
				Partitions: []disk.Partition{
					{Device: "/dev/vda1", Number: 1, FSType: "ext4", FSID: "Linux native", Mount: "/", Size: 8 * datasizes.GiB},
					{Device: "/dev/vda2", Number: 2, FSType: "swap", FSID: "Linux swap", Mount: "swap", Size: 1026048},
					{
						Device:      "/dev/vda3",
						Number:      3,
						FSType:      "swap",
						FSID:        "Linux swap",
						Mount:       "swap",
						Size:        2096482,
						Encrypted:   true,
						CryptDevice: "/dev/mapper/cr_swap",
					},
				},
			},
		},
		MountPoints: disk.MountPoints{
			"/": {"/dev/vda1"},
		},
	}
}

// MakeFakeExtendedTopology returns an msdos labelled disk whose /boot is
// a logical partition inside the extended partition /dev/sda2.
func MakeFakeExtendedTopology() *disk.Topology {
	return &disk.Topology{
		Devices: map[string]*disk.Device{
			"/dev/sda": {
				Kind:  disk.KIND_DISK,
				Label: "msdos",
				Partitions: []disk.Partition{
					{Device: "/dev/sda1", Number: 1, Type: disk.PART_PRIMARY, FSType: "ext4", FSID: "Linux native", Mount: "/", Size: 8 * datasizes.GiB},
					{Device: "/dev/sda2", Number: 2, Type: disk.PART_EXTENDED, FSID: "Extended", Size: 2 * datasizes.GiB},
					{Device: "/dev/sda5", Number: 5, Type: disk.PART_LOGICAL, FSType: "ext2", FSID: "Linux native", Mount: "/boot", Size: 1 * datasizes.GiB},
					{Device: "/dev/sda6", Number: 6, Type: disk.PART_LOGICAL, FSType: "xfs", FSID: "Linux native", Size: 1 * datasizes.GiB, Delete: true},
				},
			},
		},
		MountPoints: disk.MountPoints{
			"/":     {"/dev/sda1"},
			"/boot": {"/dev/sda5"},
		},
	}
}

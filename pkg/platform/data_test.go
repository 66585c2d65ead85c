package platform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/osbuild/bootstorage/internal/common"
	"github.com/osbuild/bootstorage/pkg/arch"
	"github.com/osbuild/bootstorage/pkg/disk"
	"github.com/osbuild/bootstorage/pkg/platform"
)

func TestPlatformYamlSmoke(t *testing.T) {
	inputYAML := []byte(`
        arch: "x86_64"
        boot_mode: legacy
        stage1_kinds: [disk, partition]
        stage1_exclude: ["/dev/mapper/*"]
        stage1_exclude_labels: [gpt]
        stage1_exclude_fs: [xfs, btrfs]
        stage1_partition_types: [primary]
        skip_kexec: true
        resume: true
`)
	var pd platform.Data
	err := yaml.Unmarshal(inputYAML, &pd)
	assert.NoError(t, err)
	expected := platform.Data{
		Arch:                 common.Must(arch.FromString("x86_64")),
		BootMode:             platform.BOOT_LEGACY,
		Stage1Kinds:          []disk.DeviceKind{disk.KIND_DISK, disk.KIND_PARTITION},
		Stage1Exclude:        []string{"/dev/mapper/*"},
		Stage1ExcludeLabels:  []string{"gpt"},
		Stage1ExcludeFS:      []string{"xfs", "btrfs"},
		Stage1PartitionTypes: []disk.PartitionType{disk.PART_PRIMARY},
		NoKexec:              true,
		Resume:               true,
	}
	assert.Equal(t, expected, pd)
	assert.True(t, pd.SkipKexec())
	assert.True(t, pd.ResumeAvailable())
	assert.Equal(t, arch.ARCH_X86_64, pd.GetArch())
	assert.Equal(t, platform.BOOT_LEGACY, pd.GetBootMode())
}

func TestLoad(t *testing.T) {
	pd, err := platform.Load(strings.NewReader("arch: s390x\nskip_kexec: true\n"))
	require.NoError(t, err)
	assert.Equal(t, arch.ARCH_S390X, pd.GetArch())
	assert.True(t, pd.SkipKexec())

	_, err = platform.Load(strings.NewReader("arch: s390x\nbootloader: zipl\n"))
	assert.ErrorContains(t, err, "field bootloader not found in type platform.Data")

	_, err = platform.Load(strings.NewReader("stage1_exclude: ['/dev/[sd']\n"))
	assert.ErrorContains(t, err, `invalid stage1 exclude pattern "/dev/[sd"`)
}

func TestStage1Allowed(t *testing.T) {
	pd := platform.Data{
		Stage1Kinds:          []disk.DeviceKind{disk.KIND_DISK, disk.KIND_RAID, disk.KIND_PARTITION},
		Stage1Exclude:        []string{"/dev/mapper/*", "/dev/sr[0-9]"},
		Stage1ExcludeLabels:  []string{"dasd"},
		Stage1ExcludeFS:      []string{"xfs"},
		Stage1PartitionTypes: []disk.PartitionType{disk.PART_PRIMARY, disk.PART_LOGICAL},
	}

	type testCase struct {
		loc      disk.Location
		expected bool
	}
	testCases := map[string]testCase{
		"disk": {
			loc:      disk.Location{Device: "/dev/sda", Kind: disk.KIND_DISK, Label: "msdos"},
			expected: true,
		},
		"raid": {
			loc:      disk.Location{Device: "/dev/md0", Kind: disk.KIND_RAID},
			expected: true,
		},
		"multipath kind": {
			loc:      disk.Location{Device: "/dev/dm-0", Kind: disk.KIND_MULTIPATH},
			expected: false,
		},
		"excluded path": {
			loc:      disk.Location{Device: "/dev/mapper/mpatha", Kind: disk.KIND_DISK},
			expected: false,
		},
		"excluded path does not cross directories": {
			loc:      disk.Location{Device: "/dev/mapper/x/y", Kind: disk.KIND_DISK},
			expected: true,
		},
		"excluded label": {
			loc:      disk.Location{Device: "/dev/dasda", Kind: disk.KIND_DISK, Label: "dasd"},
			expected: false,
		},
		"partition": {
			loc: disk.Location{
				Device:    "/dev/sda1",
				Kind:      disk.KIND_PARTITION,
				Container: "/dev/sda",
				Partition: &disk.Partition{Device: "/dev/sda1", Type: disk.PART_PRIMARY, FSType: "ext4"},
			},
			expected: true,
		},
		"xfs partition": {
			loc: disk.Location{
				Device:    "/dev/sda1",
				Kind:      disk.KIND_PARTITION,
				Container: "/dev/sda",
				Partition: &disk.Partition{Device: "/dev/sda1", Type: disk.PART_PRIMARY, FSType: "xfs"},
			},
			expected: false,
		},
		"extended partition": {
			loc: disk.Location{
				Device:    "/dev/sda4",
				Kind:      disk.KIND_PARTITION,
				Container: "/dev/sda",
				Partition: &disk.Partition{Device: "/dev/sda4", Type: disk.PART_EXTENDED},
			},
			expected: false,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, pd.Stage1Allowed(tc.loc))
		})
	}
}

func TestStage1AllowedEmptyData(t *testing.T) {
	var pd platform.Data
	assert.True(t, pd.Stage1Allowed(disk.Location{Device: "/dev/system/root", Kind: disk.KIND_LVM_LV}))
	assert.True(t, pd.Stage1Allowed(disk.Location{
		Device:    "/dev/sda1",
		Partition: &disk.Partition{Device: "/dev/sda1", FSType: "xfs"},
	}))
}

func TestStage1AllowedInvalidPatternIgnored(t *testing.T) {
	pd := platform.Data{Stage1Exclude: []string{"/dev/[sd", "/dev/sdb"}}
	assert.True(t, pd.Stage1Allowed(disk.Location{Device: "/dev/sda", Kind: disk.KIND_DISK}))
	assert.False(t, pd.Stage1Allowed(disk.Location{Device: "/dev/sdb", Kind: disk.KIND_DISK}))
}

package disk_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osbuild/bootstorage/pkg/datasizes"
	"github.com/osbuild/bootstorage/pkg/disk"
)

var fakeTopologyJSON = `{
  "format_version": "1.0",
  "devices": {
    "/dev/vda": {
      "kind": "disk",
      "label": "msdos",
      "partitions": [
        {"device": "/dev/vda1", "nr": 1, "type": "primary", "size": "500 MiB", "used_fs": "ext4", "mount": "/boot"},
        {"device": "/dev/vda2", "nr": 2, "size": 1026048, "used_fs": "swap"},
        {"device": "/dev/vda3", "nr": 3, "size": 4096, "used_by": {"kind": "lvm_vg", "device": "/dev/system"}, "delete": true}
      ]
    },
    "/dev/system": {
      "kind": "lvm_vg",
      "partitions": [
        {"device": "/dev/system/root", "type": "lv", "size": "10 GiB", "used_fs": "xfs"}
      ]
    }
  },
  "mount_points": {
    "/": "/dev/system/root",
    "/boot": ["/dev/vda1"]
  }
}`

func TestLoadJSON(t *testing.T) {
	tm, err := disk.Load(strings.NewReader(fakeTopologyJSON), "json")
	require.NoError(t, err)

	vda := tm.Devices["/dev/vda"]
	require.NotNil(t, vda)
	assert.Equal(t, disk.KIND_DISK, vda.Kind)
	assert.Len(t, vda.Partitions, 3)
	assert.Equal(t, datasizes.Size(500*datasizes.MiB), vda.Partitions[0].Size)
	assert.Equal(t, datasizes.Size(1026048), vda.Partitions[1].Size)
	assert.Nil(t, vda.Partitions[1].UsedBy)
	assert.Equal(t, &disk.UsedBy{Kind: disk.KIND_LVM_VG, Device: "/dev/system"}, vda.Partitions[2].UsedBy)
	assert.True(t, vda.Partitions[2].Delete)

	// devices_add is optional
	assert.Nil(t, tm.Devices["/dev/system"].DevicesAdd)
	assert.Equal(t, disk.PART_LV, tm.Devices["/dev/system"].Partitions[0].Type)

	assert.Equal(t, disk.MountPoints{
		"/":     {"/dev/system/root"},
		"/boot": {"/dev/vda1"},
	}, tm.MountPoints)
}

var fakeTopologyYAML = `
devices:
  /dev/sda:
    kind: disk
    label: gpt
    partitions:
      - device: /dev/sda1
        nr: 1
        size: 1 GiB
        used_fs: vfat
  /dev/md0:
    kind: raid
    raid_type: raid1
    devices_add: [/dev/sda1]
mount_points:
  /: [/dev/md0]
order: [/dev/sda]
`

func TestLoadYAML(t *testing.T) {
	tm, err := disk.Load(strings.NewReader(fakeTopologyYAML), "yaml")
	require.NoError(t, err)

	assert.Equal(t, disk.KIND_RAID, tm.Devices["/dev/md0"].Kind)
	assert.Equal(t, []string{"/dev/sda1"}, tm.Devices["/dev/md0"].DevicesAdd)
	assert.Equal(t, datasizes.Size(datasizes.GiB), tm.Devices["/dev/sda"].Partitions[0].Size)
	assert.Equal(t, []string{"/dev/sda"}, tm.Order)

	root, ok := tm.MountedAt("/")
	assert.True(t, ok)
	assert.Equal(t, "/dev/md0", root)
}

func TestLoadUnhappy(t *testing.T) {
	for _, tc := range []struct {
		input  string
		format string
		err    string
	}{
		{`{"devices": {"/dev/sda": {"kind": "tape"}}}`, "json", "cannot decode topology: unknown or unsupported device kind name: tape"},
		{`{"format_version": "2.1", "devices": {}}`, "json", "unsupported topology format version 2.1 (need >= 1.0, < 2.0)"},
		{`{"format_version": "latest", "devices": {}}`, "json", `cannot parse topology format version "latest": Malformed version: latest`},
		{`{"devices": {}} {}`, "json", "multiple topology objects or extra data found"},
		{`devices: {}`, "toml", `unsupported topology format "toml"`},
	} {
		_, err := disk.Load(strings.NewReader(tc.input), tc.format)
		assert.EqualError(t, err, tc.err, tc.input)
	}
}

func TestLoadBadMountPoint(t *testing.T) {
	_, err := disk.Load(strings.NewReader(`{"mount_points": {"/": 7}}`), "json")
	assert.ErrorContains(t, err, `cannot decode devices for mount point "/"`)
}

func TestLoadInvalidTopology(t *testing.T) {
	input := `{"devices": {
	  "/dev/sda": {"kind": "disk", "partitions": [{"device": "/dev/sda1"}]},
	  "/dev/sdb": {"kind": "disk", "partitions": [{"device": "/dev/sda1"}]}
	}}`
	_, err := disk.Load(strings.NewReader(input), "json")
	assert.EqualError(t, err, "invalid topology: device path /dev/sda1 is not unique")
}

func TestLoadFile(t *testing.T) {
	tmpdir := t.TempDir()

	jsonPath := filepath.Join(tmpdir, "topology.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(fakeTopologyJSON), 0644))
	tm, err := disk.LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, tm.Devices, "/dev/vda")

	yamlPath := filepath.Join(tmpdir, "topology.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(fakeTopologyYAML), 0644))
	tm, err = disk.LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, tm.Devices, "/dev/md0")

	_, err = disk.LoadFile(filepath.Join(tmpdir, "missing.json"))
	assert.ErrorContains(t, err, "no such file or directory")
}

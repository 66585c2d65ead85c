package platform

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/osbuild/bootstorage/pkg/arch"
	"github.com/osbuild/bootstorage/pkg/disk"
)

// Data is a Platform described by plain data, usually decoded from
// YAML.
type Data struct {
	Arch     arch.Arch `yaml:"arch"`
	BootMode BootMode  `yaml:"boot_mode"`

	// Device kinds that may receive stage1, "partition" stands for
	// all partitions. Empty allows every kind.
	Stage1Kinds []disk.DeviceKind `yaml:"stage1_kinds"`
	// Glob patterns of device paths that never receive stage1
	Stage1Exclude []string `yaml:"stage1_exclude"`
	// Partition table schemes that never receive stage1
	Stage1ExcludeLabels []string `yaml:"stage1_exclude_labels"`
	// Filesystems whose partitions never receive stage1
	Stage1ExcludeFS []string `yaml:"stage1_exclude_fs"`
	// Partition types accepted for stage1. Empty allows every type.
	Stage1PartitionTypes []disk.PartitionType `yaml:"stage1_partition_types"`

	NoKexec bool `yaml:"skip_kexec"`
	Resume  bool `yaml:"resume"`
}

func (d Data) GetArch() arch.Arch {
	return d.Arch
}

func (d Data) GetBootMode() BootMode {
	return d.BootMode
}

func (d Data) SkipKexec() bool {
	return d.NoKexec
}

func (d Data) ResumeAvailable() bool {
	return d.Resume
}

func (d Data) Stage1Allowed(loc disk.Location) bool {
	kind := loc.Kind
	if loc.IsPartition() {
		kind = disk.KIND_PARTITION
	}
	if len(d.Stage1Kinds) > 0 && !slices.Contains(d.Stage1Kinds, kind) {
		return false
	}
	if loc.Label != "" && slices.Contains(d.Stage1ExcludeLabels, loc.Label) {
		return false
	}
	for _, pattern := range d.Stage1Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			logrus.Warnf("ignoring invalid stage1 exclude pattern %q: %v", pattern, err)
			continue
		}
		if g.Match(loc.Device) {
			return false
		}
	}
	if !loc.IsPartition() {
		return true
	}
	if fs := loc.FSType(); fs != "" && slices.Contains(d.Stage1ExcludeFS, fs) {
		return false
	}
	if len(d.Stage1PartitionTypes) > 0 && !slices.Contains(d.Stage1PartitionTypes, loc.Partition.Type) {
		return false
	}
	return true
}

// Validate checks that all exclude patterns compile.
func (d Data) Validate() error {
	var errs []error
	for _, pattern := range d.Stage1Exclude {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("invalid stage1 exclude pattern %q: %w", pattern, err))
		}
	}
	return errors.Join(errs...)
}

// Load reads a complete platform description from YAML. Unknown keys
// are an error.
func Load(r io.Reader) (*Data, error) {
	var d Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("cannot decode platform: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

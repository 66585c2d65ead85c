package disk

import (
	"github.com/osbuild/bootstorage/pkg/datasizes"
)

// UsedBy is the back-reference from a partition to the virtual device
// consuming it.
type UsedBy struct {
	Kind   DeviceKind `json:"kind" yaml:"kind"`
	Device string     `json:"device" yaml:"device"`
}

type Partition struct {
	Device string        `json:"device" yaml:"device"`
	Number int           `json:"nr,omitempty" yaml:"nr,omitempty"`
	Type   PartitionType `json:"type" yaml:"type"`

	// Pending removal, a deleted partition never shows up in derived
	// results.
	Delete bool `json:"delete,omitempty" yaml:"delete,omitempty"`

	// nil if the partition is not consumed by a virtual device
	UsedBy *UsedBy `json:"used_by,omitempty" yaml:"used_by,omitempty"`

	Size datasizes.Size `json:"size" yaml:"size"`

	// Filesystem on the partition, e.g. "ext4" or "swap"
	FSType string `json:"used_fs,omitempty" yaml:"used_fs,omitempty"`
	// Partition id, e.g. 0x83 for MBR or a GUID for gpt
	FSID  string `json:"fsid,omitempty" yaml:"fsid,omitempty"`
	Mount string `json:"mount,omitempty" yaml:"mount,omitempty"`

	Encrypted bool `json:"encrypted,omitempty" yaml:"encrypted,omitempty"`
	// mapper device that wraps an encrypted partition, e.g.
	// /dev/mapper/cr_swap
	CryptDevice string `json:"crypt_device,omitempty" yaml:"crypt_device,omitempty"`
}

func (p *Partition) IsSwap() bool {
	if p == nil {
		return false
	}
	return p.FSType == "swap"
}

func (p *Partition) IsExtended() bool {
	if p == nil {
		return false
	}
	return p.Type == PART_EXTENDED
}

func (p *Partition) IsLogical() bool {
	if p == nil {
		return false
	}
	return p.Type == PART_LOGICAL
}

// IsUsedBy returns true if the partition is consumed by a virtual device
// of the given kind.
func (p *Partition) IsUsedBy(kind DeviceKind) bool {
	if p == nil || p.UsedBy == nil {
		return false
	}
	return p.UsedBy.Kind == kind
}

func (p *Partition) GetSize() uint64 {
	if p == nil {
		return 0
	}
	return p.Size.Uint64()
}

func (p *Partition) Clone() *Partition {
	if p == nil {
		return nil
	}
	clone := *p
	if p.UsedBy != nil {
		ub := *p.UsedBy
		clone.UsedBy = &ub
	}
	return &clone
}

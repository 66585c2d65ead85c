package disk

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DeviceKind tags a Device descriptor with the storage layer it belongs to.
type DeviceKind uint64

const (
	KIND_DISK DeviceKind = iota
	KIND_PARTITION
	KIND_RAID
	KIND_LVM_LV
	KIND_LVM_VG
	KIND_MULTIPATH
	KIND_CRYPT
)

func (k DeviceKind) String() string {
	switch k {
	case KIND_DISK:
		return "disk"
	case KIND_PARTITION:
		return "partition"
	case KIND_RAID:
		return "raid"
	case KIND_LVM_LV:
		return "lvm_lv"
	case KIND_LVM_VG:
		return "lvm_vg"
	case KIND_MULTIPATH:
		return "multipath"
	case KIND_CRYPT:
		return "crypt"
	default:
		panic(fmt.Sprintf("unknown or unsupported device kind with enum value %d", k))
	}
}

func NewDeviceKind(s string) (DeviceKind, error) {
	switch s {
	case "disk":
		return KIND_DISK, nil
	case "partition":
		return KIND_PARTITION, nil
	case "raid":
		return KIND_RAID, nil
	case "lvm_lv":
		return KIND_LVM_LV, nil
	case "lvm_vg":
		return KIND_LVM_VG, nil
	case "multipath":
		return KIND_MULTIPATH, nil
	case "crypt":
		return KIND_CRYPT, nil
	default:
		return KIND_DISK, fmt.Errorf("unknown or unsupported device kind name: %s", s)
	}
}

// IsComposite returns true for kinds that are assembled from member
// devices.
func (k DeviceKind) IsComposite() bool {
	switch k {
	case KIND_RAID, KIND_LVM_VG, KIND_LVM_LV, KIND_MULTIPATH, KIND_CRYPT:
		return true
	}
	return false
}

func (k DeviceKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *DeviceKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, err := NewDeviceKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

func (k *DeviceKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	kind, err := NewDeviceKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// PartitionType is the role of an entry in a container's partition list.
type PartitionType uint64

const (
	PART_PRIMARY PartitionType = iota
	PART_EXTENDED
	PART_LOGICAL
	PART_LV
	PART_SW_RAID
)

func (pt PartitionType) String() string {
	switch pt {
	case PART_PRIMARY:
		return "primary"
	case PART_EXTENDED:
		return "extended"
	case PART_LOGICAL:
		return "logical"
	case PART_LV:
		return "lv"
	case PART_SW_RAID:
		return "sw_raid"
	default:
		panic(fmt.Sprintf("unknown or unsupported partition type with enum value %d", pt))
	}
}

func NewPartitionType(s string) (PartitionType, error) {
	switch s {
	case "", "primary":
		return PART_PRIMARY, nil
	case "extended":
		return PART_EXTENDED, nil
	case "logical":
		return PART_LOGICAL, nil
	case "lv":
		return PART_LV, nil
	case "sw_raid":
		return PART_SW_RAID, nil
	default:
		return PART_PRIMARY, fmt.Errorf("unknown or unsupported partition type name: %s", s)
	}
}

func (pt PartitionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(pt.String())
}

func (pt *PartitionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := NewPartitionType(s)
	if err != nil {
		return err
	}
	*pt = t
	return nil
}

func (pt *PartitionType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	t, err := NewPartitionType(s)
	if err != nil {
		return err
	}
	*pt = t
	return nil
}

package platform

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type BootMode uint64

const (
	BOOT_NONE BootMode = iota
	BOOT_LEGACY
	BOOT_UEFI
	BOOT_HYBRID
)

func (m BootMode) String() string {
	switch m {
	case BOOT_NONE:
		return "none"
	case BOOT_LEGACY:
		return "legacy"
	case BOOT_UEFI:
		return "uefi"
	case BOOT_HYBRID:
		return "hybrid"
	default:
		panic("invalid boot mode")
	}
}

var BootModeMap = make(map[string]BootMode)

func init() {
	BootModeMap["none"] = BOOT_NONE
	BootModeMap["legacy"] = BOOT_LEGACY
	BootModeMap["uefi"] = BOOT_UEFI
	BootModeMap["hybrid"] = BOOT_HYBRID
}

// NewBootMode returns the boot mode with the given name. The empty
// string is BOOT_NONE.
func NewBootMode(name string) (BootMode, error) {
	if name == "" {
		return BOOT_NONE, nil
	}
	mode, ok := BootModeMap[name]
	if !ok {
		return BOOT_NONE, fmt.Errorf("unknown or unsupported boot mode name: %s", name)
	}
	return mode, nil
}

func (m *BootMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	mode, err := NewBootMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m BootMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

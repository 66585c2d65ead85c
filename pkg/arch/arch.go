package arch

import (
	"fmt"
	"runtime"

	"gopkg.in/yaml.v3"
)

type Arch uint64

const ( // architecture enum
	ARCH_AARCH64 Arch = iota
	ARCH_I686
	ARCH_PPC64LE
	ARCH_S390X
	ARCH_X86_64
)

func (a Arch) String() string {
	switch a {
	case ARCH_AARCH64:
		return "aarch64"
	case ARCH_I686:
		return "i686"
	case ARCH_PPC64LE:
		return "ppc64le"
	case ARCH_S390X:
		return "s390x"
	case ARCH_X86_64:
		return "x86_64"
	default:
		panic("invalid architecture")
	}
}

func FromString(a string) (Arch, error) {
	switch a {
	case "amd64", "x86_64":
		return ARCH_X86_64, nil
	case "386", "i386", "i586", "i686":
		return ARCH_I686, nil
	case "arm64", "aarch64":
		return ARCH_AARCH64, nil
	case "s390x":
		return ARCH_S390X, nil
	case "ppc64le":
		return ARCH_PPC64LE, nil
	default:
		return ARCH_X86_64, fmt.Errorf("unsupported architecture %q", a)
	}
}

func (a *Arch) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	na, err := FromString(s)
	if err != nil {
		return err
	}
	*a = na
	return nil
}

func (a Arch) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

var runtimeGOARCH = runtime.GOARCH

func Current() Arch {
	a, err := FromString(runtimeGOARCH)
	if err != nil {
		panic("unsupported architecture")
	}
	return a
}

func IsX86_64() bool {
	return Current() == ARCH_X86_64
}

func IsI686() bool {
	return Current() == ARCH_I686
}

func IsAarch64() bool {
	return Current() == ARCH_AARCH64
}

func IsPPC() bool {
	return Current() == ARCH_PPC64LE
}

func IsS390x() bool {
	return Current() == ARCH_S390X
}

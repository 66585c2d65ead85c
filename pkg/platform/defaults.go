package platform

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/osbuild/bootstorage/pkg/arch"
)

//go:embed platforms.yaml
var platformsYAML []byte

type platformsFile struct {
	Platforms map[string]Data `yaml:"platforms"`
	Common    map[string]any  `yaml:".common,omitempty"`
}

// ForArch returns the built-in platform for the given architecture and
// boot mode.
func ForArch(a arch.Arch, mode BootMode) (*Data, error) {
	var pf platformsFile
	dec := yaml.NewDecoder(bytes.NewReader(platformsYAML))
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil {
		// embedded data, cannot happen at runtime
		panic(fmt.Errorf("cannot decode platform defaults: %w", err))
	}
	d, ok := pf.Platforms[a.String()]
	if !ok {
		return nil, fmt.Errorf("no platform defaults for architecture %s", a)
	}
	d.Arch = a
	d.BootMode = mode
	return &d, nil
}

// Current returns the built-in platform of the running architecture.
func Current(mode BootMode) (*Data, error) {
	return ForArch(arch.Current(), mode)
}

package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/osbuild/bootstorage/internal/bool3"
)

// config is the optional TOML file given via --config. Command line
// flags win over values set here.
type config struct {
	Arch     string `toml:"arch"`
	BootMode string `toml:"boot_mode"`
	// Platform description (yaml) replacing the built-in defaults
	Platform string `toml:"platform"`

	PriorityDevice string   `toml:"priority_device"`
	BadDevices     []string `toml:"bad_devices"`

	// Product feature file (ini)
	Features string `toml:"features"`
	// Hardware probe result (json)
	BIOS string `toml:"bios"`

	LiveInstallation bool3.Bool3 `toml:"live_installation"`

	// Overrides for the platform defaults
	SkipKexec bool3.Bool3 `toml:"skip_kexec"`
	Resume    bool3.Bool3 `toml:"resume"`
}

func loadConfig(path string) (*config, error) {
	var conf config
	if path == "" {
		return &conf, nil
	}
	meta, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return nil, fmt.Errorf("cannot decode config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}
	return &conf, nil
}

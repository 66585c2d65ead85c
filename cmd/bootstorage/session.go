package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/osbuild/bootstorage/pkg/arch"
	"github.com/osbuild/bootstorage/pkg/bootstorage"
	"github.com/osbuild/bootstorage/pkg/disk"
	"github.com/osbuild/bootstorage/pkg/platform"
)

// stringFlag returns the flag value if it was given on the command
// line, the fallback otherwise. Flags the command does not have always
// yield the fallback.
func stringFlag(flags *pflag.FlagSet, name, fallback string) (string, error) {
	if !flags.Changed(name) {
		return fallback, nil
	}
	return flags.GetString(name)
}

func stringArrayFlag(flags *pflag.FlagSet, name string, fallback []string) ([]string, error) {
	if !flags.Changed(name) {
		return fallback, nil
	}
	return flags.GetStringArray(name)
}

func newPlatform(cmd *cobra.Command, conf *config) (*platform.Data, error) {
	var pd *platform.Data
	if conf.Platform != "" {
		fp, err := os.Open(conf.Platform)
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		pd, err = platform.Load(fp)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", conf.Platform, err)
		}
	} else {
		archStr, err := stringFlag(cmd.Flags(), "arch", conf.Arch)
		if err != nil {
			return nil, err
		}
		a := arch.Current()
		if archStr != "" {
			a, err = arch.FromString(archStr)
			if err != nil {
				return nil, err
			}
		}
		modeStr, err := stringFlag(cmd.Flags(), "boot-mode", conf.BootMode)
		if err != nil {
			return nil, err
		}
		mode, err := platform.NewBootMode(modeStr)
		if err != nil {
			return nil, err
		}
		pd, err = platform.ForArch(a, mode)
		if err != nil {
			return nil, err
		}
	}

	pd.NoKexec = conf.SkipKexec.Or(pd.NoKexec)
	pd.Resume = conf.Resume.Or(pd.Resume)
	return pd, nil
}

// newSession builds a session from the global flags and the config.
func newSession(cmd *cobra.Command, conf *config, opts ...bootstorage.Option) (*bootstorage.Session, error) {
	topologyPath, err := cmd.Flags().GetString("topology")
	if err != nil {
		return nil, err
	}
	if topologyPath == "" {
		return nil, fmt.Errorf("no topology given, use --topology")
	}
	t, err := disk.LoadFile(topologyPath)
	if err != nil {
		return nil, err
	}
	pd, err := newPlatform(cmd, conf)
	if err != nil {
		return nil, err
	}
	return bootstorage.NewSession(t, pd, opts...), nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/osbuild/bootstorage/pkg/bootstorage"
	"github.com/osbuild/bootstorage/pkg/dmi"
	"github.com/osbuild/bootstorage/pkg/features"
	"github.com/osbuild/bootstorage/pkg/report"
)

// setup reads the config and builds the session for a command.
func setup(cmd *cobra.Command) (*config, *bootstorage.Session, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	conf, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	opts, err := deviceMapOptions(cmd, conf)
	if err != nil {
		return nil, nil, err
	}
	s, err := newSession(cmd, conf, opts...)
	if err != nil {
		return nil, nil, err
	}
	return conf, s, nil
}

// deviceMapOptions returns the device order preferences of the config,
// overridden by --priority and --bad where the command has them.
func deviceMapOptions(cmd *cobra.Command, conf *config) ([]bootstorage.Option, error) {
	priority, err := stringFlag(cmd.Flags(), "priority", conf.PriorityDevice)
	if err != nil {
		return nil, err
	}
	bad, err := stringArrayFlag(cmd.Flags(), "bad", conf.BadDevices)
	if err != nil {
		return nil, err
	}
	return []bootstorage.Option{
		bootstorage.WithPriorityDevice(priority),
		bootstorage.WithBadDevices(bad...),
	}, nil
}

func output(cmd *cobra.Command, res report.Result) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	fmter, err := report.NewResultFormatter(report.OutputFormat(format))
	if err != nil {
		return err
	}
	return fmter.Output(osStdout, res)
}

func cmdRealDisks(cmd *cobra.Command, args []string) error {
	_, s, err := setup(cmd)
	if err != nil {
		return err
	}
	return output(cmd, report.List(s.RealDisksForPartition(args[0])))
}

func cmdMdPartitions(cmd *cobra.Command, args []string) error {
	_, s, err := setup(cmd)
	if err != nil {
		return err
	}
	return output(cmd, report.Mapping(s.MdToPartitions(args[0])))
}

func cmdStage1Locations(cmd *cobra.Command, args []string) error {
	terms, err := cmd.Flags().GetStringArray("filter")
	if err != nil {
		return err
	}
	filter, err := report.NewFilter(terms...)
	if err != nil {
		return err
	}
	_, s, err := setup(cmd)
	if err != nil {
		return err
	}
	return output(cmd, report.List(s.PossibleLocationsForStage1()).Filter(filter))
}

func cmdDetect(cmd *cobra.Command, args []string) error {
	_, s, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := s.DetectDisks(); err != nil {
		return err
	}
	return output(cmd, report.Fields{
		{Name: "root", Value: s.RootPartitionDevice()},
		{Name: "boot", Value: s.BootPartitionDevice()},
		{Name: "extended", Value: s.ExtendedPartitionDevice()},
		{Name: "mbr", Value: s.MbrDisk()},
		{Name: "nfs_boot", Value: s.IsNFSBoot()},
		{Name: "resume", Value: s.ResumeDevice()},
	})
}

func cmdSwap(cmd *cobra.Command, args []string) error {
	_, s, err := setup(cmd)
	if err != nil {
		return err
	}
	return output(cmd, report.Sizes(s.AvailableSwapPartitions()))
}

func cmdMultipath(cmd *cobra.Command, args []string) error {
	_, s, err := setup(cmd)
	if err != nil {
		return err
	}
	return output(cmd, report.Mapping(s.MultipathMapping()))
}

func cmdDeviceMap(cmd *cobra.Command, args []string) error {
	_, s, err := setup(cmd)
	if err != nil {
		return err
	}
	return output(cmd, report.Mapping(s.DeviceMap()))
}

func cmdKexec(cmd *cobra.Command, args []string) error {
	conf, s, err := setup(cmd)
	if err != nil {
		return err
	}

	featuresPath, err := stringFlag(cmd.Flags(), "features", conf.Features)
	if err != nil {
		return err
	}
	var f *features.Features
	if featuresPath != "" {
		if f, err = features.LoadFile(featuresPath); err != nil {
			return err
		}
	}

	biosPath, err := stringFlag(cmd.Flags(), "bios", conf.BIOS)
	if err != nil {
		return err
	}
	var bios dmi.BIOS
	if biosPath != "" {
		if bios, err = dmi.LoadFile(biosPath); err != nil {
			return err
		}
	}

	live := conf.LiveInstallation.Or(false)
	if cmd.Flags().Changed("live") {
		if live, err = cmd.Flags().GetBool("live"); err != nil {
			return err
		}
	}

	res := s.KexecDecision(f, bios, live)
	return output(cmd, report.Fields{
		{Name: "use_kexec", Value: res.UseKexec},
		{Name: "ok", Value: res.OK},
		{Name: "reason", Value: res.Reason},
	})
}

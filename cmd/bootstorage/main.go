package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/osbuild/bootstorage/pkg/report"
)

var osStdout io.Writer = os.Stdout

func run() error {
	// the library logs its decisions at info level, only show them
	// with --verbose
	logrus.SetLevel(logrus.WarnLevel)

	rootCmd := &cobra.Command{
		Use:   "bootstorage",
		Short: "Answer boot loader storage questions for a disk topology",
		Long: `Answer boot loader storage questions for a disk topology

Bootstorage reads a snapshot of the storage topology (json or yaml) and
resolves the physical disks behind RAID, LVM, multipath and encrypted
devices, the candidate stage1 locations, the BIOS disk order and the
swap areas usable for resume.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().String("topology", "", "Topology snapshot to read (json or yaml, \"-\" for json on stdin)")
	rootCmd.PersistentFlags().String("config", "", "Optional TOML config file")
	rootCmd.PersistentFlags().String("arch", "", "Architecture to assume (default: the running one)")
	rootCmd.PersistentFlags().String("boot-mode", "", "Boot mode (none,legacy,uefi,hybrid)")
	rootCmd.PersistentFlags().String("format", "", "Output in a specific format ("+strings.Join(report.SupportedOutputFormats(), ",")+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug output")

	realDisksCmd := &cobra.Command{
		Use:   "real-disks <device>",
		Short: "List the physical disks backing a device",
		RunE:  cmdRealDisks,
		Args:  cobra.ExactArgs(1),
	}
	rootCmd.AddCommand(realDisksCmd)

	mdPartitionsCmd := &cobra.Command{
		Use:   "md-partitions <device>",
		Short: "Map the partitions making up a composite device to BIOS ids",
		RunE:  cmdMdPartitions,
		Args:  cobra.ExactArgs(1),
	}
	rootCmd.AddCommand(mdPartitionsCmd)

	stage1Cmd := &cobra.Command{
		Use:   "stage1-locations",
		Short: "List the devices that may receive stage1, use --filter to limit further",
		RunE:  cmdStage1Locations,
		Args:  cobra.NoArgs,
	}
	stage1Cmd.Flags().StringArray("filter", nil, "Filter devices by path or name, e.g. name:sd*")
	rootCmd.AddCommand(stage1Cmd)

	detectCmd := &cobra.Command{
		Use:   "detect",
		Short: "Show the root, boot, extended partition and MBR devices",
		RunE:  cmdDetect,
		Args:  cobra.NoArgs,
	}
	rootCmd.AddCommand(detectCmd)

	swapCmd := &cobra.Command{
		Use:   "swap",
		Short: "List the swap areas and their sizes",
		RunE:  cmdSwap,
		Args:  cobra.NoArgs,
	}
	rootCmd.AddCommand(swapCmd)

	multipathCmd := &cobra.Command{
		Use:   "multipath",
		Short: "Map disks to the multipath devices wrapping them",
		RunE:  cmdMultipath,
		Args:  cobra.NoArgs,
	}
	rootCmd.AddCommand(multipathCmd)

	deviceMapCmd := &cobra.Command{
		Use:   "device-map",
		Short: "Show the BIOS order of the disks",
		RunE:  cmdDeviceMap,
		Args:  cobra.NoArgs,
	}
	deviceMapCmd.Flags().String("priority", "", "Disk to move to the front")
	deviceMapCmd.Flags().StringArray("bad", nil, "Disk to move to the end (can be given multiple times)")
	rootCmd.AddCommand(deviceMapCmd)

	kexecCmd := &cobra.Command{
		Use:   "kexec",
		Short: "Decide whether the installed kernel is started via kexec",
		RunE:  cmdKexec,
		Args:  cobra.NoArgs,
	}
	kexecCmd.Flags().String("features", "", "Product feature file (ini)")
	kexecCmd.Flags().String("bios", "", "Hardware probe result (json)")
	kexecCmd.Flags().Bool("live", false, "Running a live installation")
	rootCmd.AddCommand(kexecCmd)

	return rootCmd.Execute()
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("error: %s", err)
	}
}

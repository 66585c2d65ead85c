// Package bootstorage ties the storage queries of a boot loader
// installation together over one topology snapshot and caches the
// detected boot devices.
package bootstorage

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/osbuild/bootstorage/pkg/devicemap"
	"github.com/osbuild/bootstorage/pkg/disk"
	"github.com/osbuild/bootstorage/pkg/platform"
	"github.com/osbuild/bootstorage/pkg/stage1"
	"github.com/osbuild/bootstorage/pkg/topology"
)

// NFSBootDevice is the boot device of a system booting from the network
const NFSBootDevice = "/dev/nfs"

// Session answers boot storage questions for a single snapshot. The
// snapshot must not be modified while the session is in use, use Reset
// to start over.
type Session struct {
	id       uuid.UUID
	topology *disk.Topology
	platform platform.Platform
	opts     []Option

	mbrSelector stage1.MBRSelector
	priority    string
	bad         []string

	detectOnce sync.Once
	disks      *stage1.Disks
	detectErr  error
}

func NewSession(t *disk.Topology, p platform.Platform, opts ...Option) *Session {
	s := &Session{
		id:          uuid.New(),
		topology:    t,
		platform:    p,
		opts:        opts,
		mbrSelector: stage1.DefaultMBRSelector,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID identifies the session in log messages.
func (s *Session) ID() string {
	return s.id.String()
}

func (s *Session) log() *logrus.Entry {
	return logrus.WithField("session", s.id.String())
}

func (s *Session) Topology() *disk.Topology {
	return s.topology
}

func (s *Session) Platform() platform.Platform {
	return s.platform
}

// Reset returns a new session over the same snapshot and options with
// an empty cache.
func (s *Session) Reset() *Session {
	ns := NewSession(s.topology, s.platform, s.opts...)
	s.log().Debugf("reset, new session %s", ns.ID())
	return ns
}

// DetectDisks determines the root, boot, extended and MBR devices. The
// work happens once, later calls return the cached outcome.
func (s *Session) DetectDisks() error {
	s.detectOnce.Do(func() {
		s.disks, s.detectErr = stage1.DetectDisks(s.topology, s.mbrSelector)
		if s.detectErr != nil {
			s.log().Warnf("cannot detect boot disks: %v", s.detectErr)
			return
		}
		s.log().Infof("boot disks: root %s, boot %s", s.disks.Root, s.disks.Boot)
	})
	return s.detectErr
}

// Disks returns a copy of the detected devices.
func (s *Session) Disks() (stage1.Disks, error) {
	if err := s.DetectDisks(); err != nil {
		return stage1.Disks{}, err
	}
	return *s.disks, nil
}

func (s *Session) cached() stage1.Disks {
	d, _ := s.Disks()
	return d
}

func (s *Session) RootPartitionDevice() string {
	return s.cached().Root
}

func (s *Session) BootPartitionDevice() string {
	return s.cached().Boot
}

func (s *Session) ExtendedPartitionDevice() string {
	return s.cached().Extended
}

func (s *Session) MbrDisk() string {
	return s.cached().MBR
}

// IsNFSBoot returns true if the system boots from NFS, no boot loader
// is installed then.
func (s *Session) IsNFSBoot() bool {
	return s.BootPartitionDevice() == NFSBootDevice
}

// DeviceMap returns the BIOS order of the disks: enumeration order with
// the priority device first and the bad devices last.
func (s *Session) DeviceMap() devicemap.DeviceMap {
	dm := devicemap.New(s.topology.Disks())
	return devicemap.ChangeOrder(dm, s.priority, s.bad)
}

func (s *Session) MdToPartitions(device string) map[string]string {
	return topology.MdToPartitions(s.topology, device, s.DeviceMap())
}

func (s *Session) RealDisksForPartition(device string) []string {
	return topology.RealDisksForPartition(s.topology, device)
}

func (s *Session) PossibleLocationsForStage1() []string {
	return stage1.PossibleLocations(s.topology, s.platform)
}

func (s *Session) AvailableSwapPartitions() map[string]uint64 {
	return stage1.AvailableSwapPartitions(s.topology)
}

func (s *Session) MultipathMapping() map[string]string {
	return topology.MultipathMapping(s.topology)
}

// ResumeDevice returns the largest swap area when the platform supports
// suspend to disk, "" otherwise.
func (s *Session) ResumeDevice() string {
	if !s.platform.ResumeAvailable() {
		return ""
	}
	swaps := s.AvailableSwapPartitions()
	devices := make([]string, 0, len(swaps))
	for dev := range swaps {
		devices = append(devices, dev)
	}
	sort.Strings(devices)

	var best string
	for _, dev := range devices {
		if best == "" || swaps[dev] > swaps[best] {
			best = dev
		}
	}
	if best != "" {
		s.log().Debugf("resume device %s (%d bytes)", best, swaps[best])
	}
	return best
}

package bootstorage

import (
	"github.com/osbuild/bootstorage/pkg/stage1"
)

type Option func(*Session)

// WithMBRSelector replaces stage1.DefaultMBRSelector. A nil selector
// leaves the MBR disk unset.
func WithMBRSelector(sel stage1.MBRSelector) Option {
	return func(s *Session) {
		s.mbrSelector = sel
	}
}

// WithPriorityDevice moves the given disk to the front of the device
// map.
func WithPriorityDevice(device string) Option {
	return func(s *Session) {
		s.priority = device
	}
}

// WithBadDevices moves the given disks to the end of the device map.
func WithBadDevices(devices ...string) Option {
	return func(s *Session) {
		s.bad = append(s.bad, devices...)
	}
}

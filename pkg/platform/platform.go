package platform

import (
	"github.com/osbuild/bootstorage/pkg/arch"
	"github.com/osbuild/bootstorage/pkg/disk"
)

// Platform answers the architecture dependent questions asked while
// resolving boot storage.
type Platform interface {
	GetArch() arch.Arch
	GetBootMode() BootMode

	// Stage1Allowed returns true if the boot loader stage1 may be
	// written to the given location.
	Stage1Allowed(loc disk.Location) bool

	// SkipKexec returns true if the installed kernel must not be
	// started via kexec on this platform.
	SkipKexec() bool

	// ResumeAvailable returns true if suspend to disk is supported.
	ResumeAvailable() bool
}

package bootstorage

import (
	"github.com/osbuild/bootstorage/pkg/dmi"
	"github.com/osbuild/bootstorage/pkg/features"
)

// KexecResult tells whether the installed kernel is started via kexec
// instead of a full reboot. OK is false when kexec would have been used
// but the machine cannot do it.
type KexecResult struct {
	UseKexec bool   `json:"use_kexec" yaml:"use_kexec"`
	OK       bool   `json:"ok" yaml:"ok"`
	Reason   string `json:"reason" yaml:"reason"`
}

// KexecDecision decides about kexec from the product features, the
// hardware probe and the installation mode. The features may be nil.
func (s *Session) KexecDecision(f *features.Features, bios dmi.BIOS, live bool) KexecResult {
	res := s.kexecDecision(f, bios, live)
	s.log().Infof("kexec: use %v, ok %v: %s", res.UseKexec, res.OK, res.Reason)
	return res
}

func (s *Session) kexecDecision(f *features.Features, bios dmi.BIOS, live bool) KexecResult {
	if live {
		return KexecResult{OK: true, Reason: "live installation"}
	}
	if !f.GetBoolean("globals", "kexec_reboot").Or(false) {
		return KexecResult{OK: true, Reason: "kexec_reboot is disabled"}
	}
	if s.platform.SkipKexec() {
		return KexecResult{OK: true, Reason: "not supported on " + s.platform.GetArch().String()}
	}
	if bios.IsVirtualBox() {
		return KexecResult{Reason: "running on VirtualBox"}
	}
	if bios.IsHyperV() {
		return KexecResult{Reason: "running on Hyper-V"}
	}
	return KexecResult{UseKexec: true, OK: true, Reason: "kexec_reboot is enabled"}
}

// Package dmi reads the SMBIOS records of the hardware probe, used to
// recognize hypervisors that need special treatment.
package dmi

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Record is a single SMBIOS structure, e.g.
// {"type": "sysinfo", "manufacturer": "innotek GmbH", "product": "VirtualBox"}
type Record map[string]interface{}

// Type returns the record type ("sysinfo", "boardinfo", ...).
func (r Record) Type() string {
	return r.String("type")
}

// String returns the value for key or "" if it is not a string.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

type Probe struct {
	SMBIOS []Record `json:"smbios"`
}

// BIOS is the result of the bios hardware probe. Only the first entry
// is ever looked at.
type BIOS []Probe

// Read returns the value of key in the first record of the given type,
// or "" when there is none.
func (b BIOS) Read(section, key string) string {
	if len(b) == 0 {
		return ""
	}
	for _, rec := range b[0].SMBIOS {
		if rec.Type() == section {
			return rec.String(key)
		}
	}
	return ""
}

func (b BIOS) IsVirtualBox() bool {
	res := b.Read("sysinfo", "product") == "VirtualBox"
	logrus.Debugf("running on VirtualBox: %v", res)
	return res
}

func (b BIOS) IsHyperV() bool {
	res := b.Read("sysinfo", "manufacturer") == "Microsoft Corporation" &&
		b.Read("sysinfo", "product") == "Virtual Machine"
	logrus.Debugf("running on Hyper-V: %v", res)
	return res
}

func Parse(r io.Reader) (BIOS, error) {
	var b BIOS
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("cannot decode bios data: %w", err)
	}
	return b, nil
}

func LoadFile(path string) (BIOS, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Parse(fp)
}

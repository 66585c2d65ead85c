// Package features reads the product feature file, an ini file with
// per-product switches such as
//
//	[globals]
//	kexec_reboot = true
package features

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/osbuild/bootstorage/internal/bool3"
)

type Features struct {
	cfg *ini.File
}

// Parse reads product features from ini data.
func Parse(data []byte) (*Features, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("cannot parse product features: %w", err)
	}
	return &Features{cfg: cfg}, nil
}

func LoadFile(path string) (*Features, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load product features from %s: %w", path, err)
	}
	return &Features{cfg: cfg}, nil
}

func (f *Features) key(section, name string) *ini.Key {
	if f == nil || f.cfg == nil {
		return nil
	}
	sec, err := f.cfg.GetSection(section)
	if err != nil {
		return nil
	}
	key, err := sec.GetKey(name)
	if err != nil {
		return nil
	}
	return key
}

// GetBoolean returns the boolean feature, Unset if it is missing or
// not a boolean.
func (f *Features) GetBoolean(section, name string) bool3.Bool3 {
	key := f.key(section, name)
	if key == nil {
		return bool3.Unset
	}
	v, err := key.Bool()
	if err != nil {
		logrus.Warnf("product feature %s.%s is not a boolean: %q", section, name, key.String())
		return bool3.Unset
	}
	return bool3.New(v)
}

// GetString returns the feature value or "" if it is missing.
func (f *Features) GetString(section, name string) string {
	key := f.key(section, name)
	if key == nil {
		return ""
	}
	return key.String()
}

// Package devicemap maps physical disks to the order in which the
// firmware enumerates them ("hd0", "hd1", ...).
package devicemap

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const biosIDPrefix = "hd"

// DeviceMap maps a disk device path to its BIOS id. It is a bijection
// between a set of disks and hd0..hdN-1.
type DeviceMap map[string]string

// BIOSID returns the firmware id for the n-th disk.
func BIOSID(n int) string {
	return biosIDPrefix + strconv.Itoa(n)
}

// ParseBIOSID returns the index of a "hdN" id.
func ParseBIOSID(id string) (int, error) {
	if !strings.HasPrefix(id, biosIDPrefix) {
		return 0, fmt.Errorf("invalid bios id %q: missing %q prefix", id, biosIDPrefix)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, biosIDPrefix))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid bios id %q: not a disk index", id)
	}
	return n, nil
}

// New builds a device map from disks in firmware order.
func New(disks []string) DeviceMap {
	dm := make(DeviceMap, len(disks))
	n := 0
	for _, disk := range disks {
		if _, ok := dm[disk]; ok {
			continue
		}
		dm[disk] = BIOSID(n)
		n++
	}
	return dm
}

// Order returns the disks sorted by their BIOS id. Disks with ids that
// cannot be parsed come last in lexical order.
func (dm DeviceMap) Order() []string {
	type item struct {
		disk  string
		index int
		valid bool
	}
	items := make([]item, 0, len(dm))
	for disk, id := range dm {
		n, err := ParseBIOSID(id)
		items = append(items, item{disk: disk, index: n, valid: err == nil})
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.valid != b.valid {
			return a.valid
		}
		if a.valid && a.index != b.index {
			return a.index < b.index
		}
		return a.disk < b.disk
	})
	order := make([]string, len(items))
	for i, it := range items {
		order[i] = it.disk
	}
	return order
}

// BIOSID returns the firmware id of the given disk.
func (dm DeviceMap) BIOSID(disk string) (string, bool) {
	id, ok := dm[disk]
	return id, ok
}

// Validate checks that every id is a well formed "hdN" id, that no id is
// used twice and that the ids are contiguous from hd0.
func (dm DeviceMap) Validate() error {
	var errs []error
	seen := make(map[int]string, len(dm))
	for _, disk := range dm.Order() {
		n, err := ParseBIOSID(dm[disk])
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", disk, err))
			continue
		}
		if other, ok := seen[n]; ok {
			errs = append(errs, fmt.Errorf("%s and %s share bios id %s", other, disk, dm[disk]))
			continue
		}
		seen[n] = disk
	}
	for n := 0; n < len(seen); n++ {
		if _, ok := seen[n]; !ok {
			errs = append(errs, fmt.Errorf("bios id %s is not assigned", BIOSID(n)))
		}
	}
	return errors.Join(errs...)
}

// Clone returns a copy of the device map.
func (dm DeviceMap) Clone() DeviceMap {
	if dm == nil {
		return nil
	}
	clone := make(DeviceMap, len(dm))
	for k, v := range dm {
		clone[k] = v
	}
	return clone
}

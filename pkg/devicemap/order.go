package devicemap

import (
	"github.com/sirupsen/logrus"
)

// ChangeOrder returns a new device map where the priority device (if it
// is part of the map) becomes hd0 and the bad devices are moved to the
// end. The relative order of all other disks is kept, as is the relative
// order among the bad devices. A priority device that is also bad stays
// at the end. The input map is not modified.
func ChangeOrder(dm DeviceMap, priority string, bad []string) DeviceMap {
	isBad := make(map[string]bool, len(bad))
	for _, dev := range bad {
		isBad[dev] = true
	}

	if priority != "" {
		if _, ok := dm[priority]; !ok {
			logrus.Debugf("priority device %s is not in the device map, ignoring it", priority)
			priority = ""
		} else if isBad[priority] {
			logrus.Debugf("priority device %s is a bad device, not moving it to the front", priority)
			priority = ""
		}
	}

	if priority == "" && !containsAny(dm, isBad) {
		return dm.Clone()
	}

	var head, middle, tail []string
	for _, disk := range dm.Order() {
		switch {
		case isBad[disk]:
			tail = append(tail, disk)
		case disk == priority:
			head = append(head, disk)
		default:
			middle = append(middle, disk)
		}
	}

	order := append(append(head, middle...), tail...)
	res := make(DeviceMap, len(order))
	for idx, disk := range order {
		res[disk] = BIOSID(idx)
	}
	return res
}

func containsAny(dm DeviceMap, devices map[string]bool) bool {
	for dev := range devices {
		if _, ok := dm[dev]; ok {
			return true
		}
	}
	return false
}

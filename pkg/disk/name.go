package disk

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// e.g. /dev/mapper/mpatha-part3 or /dev/mapper/mpatha_part3
	mapperPartRe = regexp.MustCompile(`^(/dev/mapper/.+?)[-_]part(\d+)$`)
	// e.g. /dev/nvme0n1p2, /dev/mmcblk0p1 or /dev/md126p1
	pSuffixPartRe = regexp.MustCompile(`^(.*\d)p(\d+)$`)
	// e.g. /dev/vda1 or /dev/dasda1
	plainPartRe = regexp.MustCompile(`^(.*\D)(\d+)$`)
)

// SplitPartitionName splits a partition device path into the path of the
// device holding it and the partition number, following the kernel
// naming conventions. It returns false when the path does not look like
// a partition.
func SplitPartitionName(path string) (string, int, bool) {
	if path == "" || !strings.HasPrefix(path, "/dev/") {
		return "", 0, false
	}

	for _, re := range []*regexp.Regexp{mapperPartRe, pSuffixPartRe} {
		if m := re.FindStringSubmatch(path); m != nil {
			nr, err := strconv.Atoi(m[2])
			if err != nil {
				return "", 0, false
			}
			return m[1], nr, true
		}
	}

	// whole devices with a trailing number that are not partitions
	base := path[strings.LastIndex(path, "/")+1:]
	for _, prefix := range []string{"md", "nvme", "mmcblk", "loop", "dm-", "sr"} {
		if strings.HasPrefix(base, prefix) {
			return "", 0, false
		}
	}
	if strings.HasPrefix(path, "/dev/mapper/") {
		return "", 0, false
	}

	if m := plainPartRe.FindStringSubmatch(path); m != nil {
		nr, err := strconv.Atoi(m[2])
		if err != nil {
			return "", 0, false
		}
		return m[1], nr, true
	}
	return "", 0, false
}

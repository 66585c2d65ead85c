package datasizes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// units are checked in order, the first matching suffix wins
var units = []struct {
	suffix     string
	multiplier uint64
}{
	{"KiB", KiB},
	{"MiB", MiB},
	{"GiB", GiB},
	{"TiB", TiB},
	{"kB", KiloByte},
	{"MB", MegaByte},
	{"GB", GigaByte},
	{"TB", TeraByte},
}

// Parse converts a size specified as a string in KiB/MiB/GiB/TiB or
// kB/MB/GB/TB or as bytes (no suffix) to bytes.
func Parse(size string) (uint64, error) {
	size = strings.TrimSpace(size)

	for _, unit := range units {
		if !strings.HasSuffix(size, unit.suffix) {
			continue
		}
		num := strings.TrimSpace(strings.TrimSuffix(size, unit.suffix))
		n, err := strconv.ParseUint(num, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse size as number: %s", num)
		}
		if n > math.MaxUint64/unit.multiplier {
			return 0, fmt.Errorf("size overflows 64 bits: %s", size)
		}
		return n * unit.multiplier, nil
	}

	n, err := strconv.ParseUint(size, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unknown data size units in string: %s", size)
	}
	return n, nil
}

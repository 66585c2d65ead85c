package datasizes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osbuild/bootstorage/pkg/datasizes"
)

func TestDataSizeToUint64(t *testing.T) {
	cases := []struct {
		input   string
		success bool
		output  uint64
	}{
		{"123", true, 123},
		{"123 kB", true, 123000},
		{"123 KiB", true, 123 * 1024},
		{"123 MB", true, 123 * 1000 * 1000},
		{"123 MiB", true, 123 * 1024 * 1024},
		{"123 GB", true, 123 * 1000 * 1000 * 1000},
		{"123 GiB", true, 123 * 1024 * 1024 * 1024},
		{"123 TB", true, 123 * 1000 * 1000 * 1000 * 1000},
		{"123 TiB", true, 123 * 1024 * 1024 * 1024 * 1024},
		{"123kB", true, 123000},
		{"123KiB", true, 123 * 1024},
		{" 123  ", true, 123},
		{"  123kB  ", true, 123000},
		{"  123KiB  ", true, 123 * 1024},
		{"123 KB", false, 0},
		{"123 mb", false, 0},
		{"123 PB", false, 0},
		{"123 PiB", false, 0},
		{"16777215 TiB", true, 16777215 * 1024 * 1024 * 1024 * 1024},
		{"16777216 TiB", false, 0},
		{"99999999999 TiB", false, 0},
		{"18446744073709551615", true, 18446744073709551615},
	}

	for _, c := range cases {
		result, err := datasizes.Parse(c.input)
		if c.success {
			require.Nil(t, err)
			assert.EqualValues(t, c.output, result)
		} else {
			assert.NotNil(t, err)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := datasizes.Parse("123 GazillionBytes")
	assert.EqualError(t, err, "unknown data size units in string: 123 GazillionBytes")

	_, err = datasizes.Parse("x MiB")
	assert.EqualError(t, err, "failed to parse size as number: x")
}

func TestParseOverflow(t *testing.T) {
	_, err := datasizes.Parse("99999999999 TiB")
	assert.EqualError(t, err, "size overflows 64 bits: 99999999999 TiB")
}

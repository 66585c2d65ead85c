package datasizes_test

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/osbuild/bootstorage/pkg/datasizes"
)

func TestSizeUnmarshalTOMLUnhappy(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   string
	}{
		{
			name:  "wrong datatype/bool",
			input: `size = true`,
			err:   `toml: line 1 (last key "size"): error decoding TOML size: failed to convert value "true" to number`,
		},
		{
			name:  "wrong datatype/float",
			input: `size = 3.14`,
			err:   `toml: line 1 (last key "size"): error decoding TOML size: cannot be float`,
		},
		{
			name:  "wrong unit",
			input: `size = "20 KG"`,
			err:   `toml: line 1 (last key "size"): error decoding TOML size: unknown data size units in string: 20 KG`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v struct {
				Size datasizes.Size `toml:"size"`
			}
			err := toml.Unmarshal([]byte(tc.input), &v)
			assert.EqualError(t, err, tc.err, tc.input)
		})
	}
}

func TestSizeUnmarshalJSONUnhappy(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   string
	}{
		{
			name:  "misize nor string nor int",
			input: `{"size": true}`,
			err:   `error decoding size: failed to convert value "true" to number`,
		},
		{
			name:  "wrong datatype/float",
			input: `{"size": 3.14}`,
			err:   `error decoding size: strconv.ParseInt: parsing "3.14": invalid syntax`,
		},
		{
			name:  "misize not parseable",
			input: `{"size": "20 KG"}`,
			err:   `error decoding size: unknown data size units in string: 20 KG`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v struct {
				Size datasizes.Size `json:"size"`
			}
			err := json.Unmarshal([]byte(tc.input), &v)
			assert.EqualError(t, err, tc.err, tc.input)
		})
	}
}

func TestSizeUnmarshalHappy(t *testing.T) {
	cases := []struct {
		name      string
		inputJSON string
		inputTOML string
		expected  datasizes.Size
	}{
		{
			name:      "int",
			inputJSON: `{"size": 1234}`,
			inputTOML: `size = 1234`,
			expected:  1234,
		},
		{
			name:      "str",
			inputJSON: `{"size": "1234"}`,
			inputTOML: `size = "1234"`,
			expected:  1234,
		},
		{
			name:      "str/with-unit",
			inputJSON: `{"size": "1234 MiB"}`,
			inputTOML: `size = "1234 MiB"`,
			expected:  1234 * datasizes.MiB,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v struct {
				Size datasizes.Size `json:"size" toml:"size"`
			}
			err := toml.Unmarshal([]byte(tc.inputTOML), &v)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, v.Size, tc.inputTOML)
			err = json.Unmarshal([]byte(tc.inputJSON), &v)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, v.Size, tc.inputJSON)
		})
	}
}

func TestSizeUnmarshalPartitionSizes(t *testing.T) {
	cases := map[string]struct {
		input    string
		expected datasizes.Size
	}{
		"swap partition":       {`{"device": "/dev/vda2", "size": 1026048}`, 1026048},
		"crypt swap":           {`{"device": "/dev/mapper/cr_swap", "size": 2096482}`, 2096482},
		"size as string":       {`{"device": "/dev/vda1", "size": "8589934592"}`, 8 * datasizes.GiB},
		"size with unit":       {`{"device": "/dev/system/swap", "size": "2 GiB"}`, 2 * datasizes.GiB},
		"size missing is zero": {`{"device": "/dev/vda4"}`, 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var part struct {
				Device string         `json:"device"`
				Size   datasizes.Size `json:"size"`
			}
			err := json.Unmarshal([]byte(tc.input), &part)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, part.Size)
			assert.Equal(t, uint64(tc.expected), part.Size.Uint64())
		})
	}
}

func TestSizeUnmarshalOverflow(t *testing.T) {
	var v struct {
		Size datasizes.Size `json:"size"`
	}
	err := json.Unmarshal([]byte(`{"size": "99999999999 TiB"}`), &v)
	assert.EqualError(t, err, "error decoding size: size overflows 64 bits: 99999999999 TiB")
}

func TestSizeUint64(t *testing.T) {
	assert.Equal(t, datasizes.Size(1234).Uint64(), uint64(1234))
}

func TestSizeUnmarshalYAML(t *testing.T) {
	var v struct {
		Size datasizes.Size `yaml:"size"`
	}
	err := yaml.Unmarshal([]byte(`size: 1026048`), &v)
	assert.NoError(t, err)
	assert.Equal(t, datasizes.Size(1026048), v.Size)

	err = yaml.Unmarshal([]byte(`size: "2 GiB"`), &v)
	assert.NoError(t, err)
	assert.Equal(t, datasizes.Size(2*datasizes.GiB), v.Size)

	err = yaml.Unmarshal([]byte(`size: -1`), &v)
	assert.EqualError(t, err, "error decoding size: cannot be negative")
}

package bool3_test

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/osbuild/bootstorage/internal/bool3"
)

func TestBasic(t *testing.T) {
	var b3 bool3.Bool3
	assert.Equal(t, b3, bool3.Unset)
	assert.False(t, b3.IsSet())

	b3 = bool3.New(true)
	assert.Equal(t, b3, bool3.True)
	assert.True(t, b3.IsSet())

	b3 = bool3.New(false)
	assert.Equal(t, b3, bool3.False)
}

func TestOr(t *testing.T) {
	assert.True(t, bool3.Unset.Or(true))
	assert.False(t, bool3.Unset.Or(false))
	assert.True(t, bool3.True.Or(false))
	assert.False(t, bool3.False.Or(true))
}

func TestUnmarshalJSON(t *testing.T) {
	var b3 bool3.Bool3

	err := json.Unmarshal([]byte(`true`), &b3)
	assert.NoError(t, err)
	assert.Equal(t, b3, bool3.True)

	err = json.Unmarshal([]byte(`"no"`), &b3)
	assert.NoError(t, err)
	assert.Equal(t, b3, bool3.False)
}

func TestMarshalUnmarshalJSON(t *testing.T) {
	type b3struct struct {
		B bool3.Bool3 `json:"B"`
	}

	var t1 b3struct
	jsonOutput, err := json.Marshal(&t1)
	assert.NoError(t, err)
	assert.Equal(t, `{"B":null}`, string(jsonOutput))

	var t2 b3struct
	err = json.Unmarshal(jsonOutput, &t2)
	assert.NoError(t, err)
	assert.Equal(t, t2.B, bool3.Unset)

	t1.B = bool3.False
	jsonOutput, err = json.Marshal(&t1)
	assert.NoError(t, err)
	assert.Equal(t, `{"B":"false"}`, string(jsonOutput))
}

func TestUnmarshalTOML(t *testing.T) {
	var conf struct {
		Live   bool3.Bool3 `toml:"live_installation"`
		Resume bool3.Bool3 `toml:"resume"`
	}
	_, err := toml.Decode(`live_installation = true`, &conf)
	assert.NoError(t, err)
	assert.Equal(t, bool3.True, conf.Live)
	assert.Equal(t, bool3.Unset, conf.Resume)
}

func TestUnmarshalYAML(t *testing.T) {
	var conf struct {
		SkipKexec bool3.Bool3 `yaml:"skip_kexec"`
	}
	assert.NoError(t, yaml.Unmarshal([]byte(`skip_kexec: false`), &conf))
	assert.Equal(t, bool3.False, conf.SkipKexec)
}

func TestUnmarshalBad(t *testing.T) {
	var b3 bool3.Bool3

	err := json.Unmarshal([]byte(`"foo"`), &b3)
	assert.EqualError(t, err, `cannot parse "foo" as Bool3`)

	err = json.Unmarshal([]byte(`3`), &b3)
	assert.EqualError(t, err, `cannot unmarshal float64 to Bool3`)
}

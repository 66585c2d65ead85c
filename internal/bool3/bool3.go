package bool3

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Bool3 is an optional boolean for configuration values where "not
// set" must fall back to a computed default.
type Bool3 int

const (
	Unset Bool3 = iota
	True
	False
)

func New(v bool) Bool3 {
	if v {
		return True
	}
	return False
}

func (b Bool3) String() string {
	switch b {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

// IsSet returns false for Unset.
func (b Bool3) IsSet() bool {
	return b == True || b == False
}

// Or returns the boolean value or def when unset.
func (b Bool3) Or(def bool) bool {
	switch b {
	case True:
		return true
	case False:
		return false
	default:
		return def
	}
}

func parseBool3(v interface{}) (Bool3, error) {
	switch val := v.(type) {
	case nil:
		return Unset, nil
	case bool:
		return New(val), nil
	case string:
		switch val {
		case "true", "yes":
			return True, nil
		case "false", "no":
			return False, nil
		case "unset", "":
			return Unset, nil
		default:
			return Unset, fmt.Errorf("cannot parse %q as Bool3", val)
		}
	}
	return Unset, fmt.Errorf("cannot unmarshal %T to Bool3", v)
}

func (b Bool3) MarshalJSON() ([]byte, error) {
	if b.IsSet() {
		return json.Marshal(b.String())
	}
	return []byte("null"), nil
}

func (b *Bool3) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	bb, err := parseBool3(v)
	*b = bb
	return err
}

func (b *Bool3) UnmarshalTOML(v interface{}) error {
	bb, err := parseBool3(v)
	*b = bb
	return err
}

func (b *Bool3) UnmarshalYAML(value *yaml.Node) error {
	var v interface{}
	if err := value.Decode(&v); err != nil {
		return err
	}

	bb, err := parseBool3(v)
	*b = bb
	return err
}

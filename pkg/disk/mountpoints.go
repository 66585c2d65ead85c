package disk

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MountPoints maps a mount path (e.g. "/" or "/boot") to the device(s)
// mounted there. On input a single device may be given as a plain
// string instead of a list.
type MountPoints map[string][]string

func (mp *MountPoints) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	res := make(MountPoints, len(raw))
	for path, msg := range raw {
		var single string
		if err := json.Unmarshal(msg, &single); err == nil {
			res[path] = []string{single}
			continue
		}
		var list []string
		if err := json.Unmarshal(msg, &list); err != nil {
			return fmt.Errorf("cannot decode devices for mount point %q: %w", path, err)
		}
		res[path] = list
	}
	*mp = res
	return nil
}

func (mp *MountPoints) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := value.Decode(&raw); err != nil {
		return err
	}
	res := make(MountPoints, len(raw))
	for path, node := range raw {
		switch node.Kind {
		case yaml.ScalarNode:
			var single string
			if err := node.Decode(&single); err != nil {
				return err
			}
			res[path] = []string{single}
		case yaml.SequenceNode:
			var list []string
			if err := node.Decode(&list); err != nil {
				return err
			}
			res[path] = list
		default:
			return fmt.Errorf("cannot decode devices for mount point %q: unexpected yaml node", path)
		}
	}
	*mp = res
	return nil
}

// Get returns the first device mounted at the given path.
func (mp MountPoints) Get(path string) (string, bool) {
	for _, dev := range mp[path] {
		if dev != "" {
			return dev, true
		}
	}
	return "", false
}

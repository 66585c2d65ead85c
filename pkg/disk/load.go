package disk

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

// Snapshot formats with this constraint can be read
const supportedFormatVersions = ">= 1.0, < 2.0"

// Load reads a topology snapshot in the given format ("json" or "yaml")
// and validates it.
func Load(r io.Reader, format string) (*Topology, error) {
	var t Topology
	switch format {
	case "json", "":
		dec := json.NewDecoder(r)
		if err := dec.Decode(&t); err != nil {
			return nil, fmt.Errorf("cannot decode topology: %w", err)
		}
		if dec.More() {
			return nil, fmt.Errorf("multiple topology objects or extra data found")
		}
	case "yaml":
		if err := yaml.NewDecoder(r).Decode(&t); err != nil {
			return nil, fmt.Errorf("cannot decode topology: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported topology format %q", format)
	}

	if err := checkFormatVersion(t.FormatVersion); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid topology: %w", err)
	}
	return &t, nil
}

// LoadFile reads a topology snapshot from a file, the format is picked by
// extension. The path "-" reads json from stdin.
func LoadFile(path string) (*Topology, error) {
	if path == "-" {
		return Load(os.Stdin, "json")
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	format := "json"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	}
	t, err := Load(fp, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func checkFormatVersion(v string) error {
	if v == "" {
		return nil
	}
	ver, err := version.NewVersion(v)
	if err != nil {
		return fmt.Errorf("cannot parse topology format version %q: %w", v, err)
	}
	constraints, err := version.NewConstraint(supportedFormatVersions)
	if err != nil {
		panic(err)
	}
	if !constraints.Check(ver) {
		return fmt.Errorf("unsupported topology format version %s (need %s)", v, supportedFormatVersions)
	}
	return nil
}

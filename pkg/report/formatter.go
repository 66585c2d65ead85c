package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat contains the valid output formats for formatting results
type OutputFormat string

const (
	OutputFormatDefault OutputFormat = ""
	OutputFormatText    OutputFormat = "text"
	OutputFormatJSON    OutputFormat = "json"
	OutputFormatYAML    OutputFormat = "yaml"
)

// ResultFormatter will format the given result to the given io.Writer
type ResultFormatter interface {
	Output(io.Writer, Result) error
}

var supportedFormatters = map[string]ResultFormatter{
	string(OutputFormatDefault): &textResultFormatter{},
	string(OutputFormatText):    &textResultFormatter{},
	string(OutputFormatJSON):    &jsonResultFormatter{},
	string(OutputFormatYAML):    &yamlResultFormatter{},
}

// SupportedOutputFormats returns a list of supported output formats
func SupportedOutputFormats() []string {
	var keys []string
	for k := range supportedFormatters {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// NewResultFormatter will create a formatter based on the given format.
func NewResultFormatter(format OutputFormat) (ResultFormatter, error) {
	rf, ok := supportedFormatters[string(format)]
	if !ok {
		return nil, fmt.Errorf("unsupported formatter %q", format)
	}
	return rf, nil
}

type textResultFormatter struct{}

func (*textResultFormatter) Output(w io.Writer, res Result) error {
	var errs []error

	for _, row := range res.Rows() {
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// structured returns the value that is marshalled for json and yaml
func structured(res Result) interface{} {
	switch r := res.(type) {
	case Fields:
		return r.asMap()
	case List:
		// never "null"
		if r == nil {
			return []string{}
		}
	}
	return res
}

type jsonResultFormatter struct{}

func (*jsonResultFormatter) Output(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	return enc.Encode(structured(res))
}

type yamlResultFormatter struct{}

func (*yamlResultFormatter) Output(w io.Writer, res Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(structured(res)); err != nil {
		return err
	}
	return enc.Close()
}

package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

func splitPrefixSearchTerm(s string) (string, string) {
	l := strings.SplitN(s, ":", 2)
	if len(l) == 1 {
		return "", l[0]
	}
	return l[0], l[1]
}

var supportedFilters = []string{
	"", "path", "name",
}

type term struct {
	prefix  string
	pattern glob.Glob
}

// Filter narrows down device lists. Glob like patterns (?, *, [..])
// are supported.
//
// Without a prefix a term matches either the full path or the kernel
// name of the device. The following prefixes are supported:
// "path:" - the full device path, e.g. /dev/sd*
// "name:" - the last path component, e.g. md?
//
// All terms must match.
type Filter struct {
	terms []term
}

func NewFilter(sl ...string) (*Filter, error) {
	f := &Filter{
		terms: make([]term, len(sl)),
	}
	for i, s := range sl {
		prefix, searchTerm := splitPrefixSearchTerm(s)
		if !slices.Contains(supportedFilters, prefix) {
			return nil, fmt.Errorf("unsupported filter prefix: %q", prefix)
		}
		gl, err := glob.Compile(searchTerm)
		if err != nil {
			return nil, err
		}
		f.terms[i].prefix = prefix
		f.terms[i].pattern = gl
	}
	return f, nil
}

// Matches returns true if the device path matches all filter terms
func (f *Filter) Matches(device string) bool {
	name := device[strings.LastIndex(device, "/")+1:]
	for _, term := range f.terms {
		var m bool
		switch term.prefix {
		case "":
			m = term.pattern.Match(device) || term.pattern.Match(name)
		case "path":
			m = term.pattern.Match(device)
		case "name":
			m = term.pattern.Match(name)
		}
		if !m {
			return false
		}
	}
	return true
}

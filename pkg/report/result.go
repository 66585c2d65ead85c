// Package report renders query results of the command line tool.
package report

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
)

// Result is a query result that can be rendered as plain text rows in
// addition to json and yaml.
type Result interface {
	Rows() [][]string
}

// List is an ordered list of device paths.
type List []string

func (l List) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, dev := range l {
		rows = append(rows, []string{dev})
	}
	return rows
}

// Filter returns the entries matching the filter, keeping the order.
func (l List) Filter(f *Filter) List {
	if f == nil {
		return l
	}
	res := List{}
	for _, dev := range l {
		if f.Matches(dev) {
			res = append(res, dev)
		}
	}
	return res
}

// Mapping maps device paths to other device paths or BIOS ids. The
// text rows are sorted by key.
type Mapping map[string]string

func (m Mapping) Rows() [][]string {
	rows := make([][]string, 0, len(m))
	for _, key := range sortedKeys(m) {
		rows = append(rows, []string{key, m[key]})
	}
	return rows
}

// Sizes maps device paths to sizes in bytes.
type Sizes map[string]uint64

func (s Sizes) Rows() [][]string {
	rows := make([][]string, 0, len(s))
	for _, key := range sortedKeys(s) {
		rows = append(rows, []string{key, fmt.Sprintf("%d", s[key]), humanize.IBytes(s[key])})
	}
	return rows
}

// Fields is a list of named values rendered in the given order.
type Fields []Field

type Field struct {
	Name  string
	Value interface{}
}

func (f Fields) Rows() [][]string {
	rows := make([][]string, 0, len(f))
	for _, field := range f {
		rows = append(rows, []string{field.Name + ":", fmt.Sprintf("%v", field.Value)})
	}
	return rows
}

func (f Fields) asMap() map[string]interface{} {
	res := make(map[string]interface{}, len(f))
	for _, field := range f {
		res[field.Name] = field.Value
	}
	return res
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

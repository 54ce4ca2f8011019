package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/adminconsole/internal/common"
)

// fields holds name=value command arguments. Every getter records the
// first conversion error; check err() once after reading.
type fields struct {
	values map[string]string
	used   map[string]bool
	first  error
}

// parseFields splits "name=value" arguments. Names are case-insensitive.
func parseFields(args []string) (*fields, error) {
	f := &fields{values: make(map[string]string, len(args)), used: map[string]bool{}}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q is not name=value", common.ErrorInvalidArgument, arg)
		}
		f.values[name] = strings.TrimSpace(value)
	}
	return f, nil
}

func (f *fields) has(name string) bool {
	_, ok := f.values[name]
	return ok
}

func (f *fields) str(name string) string {
	f.used[name] = true
	return f.values[name]
}

func (f *fields) fail(name string, err error) {
	if f.first == nil {
		f.first = fmt.Errorf("%w: %s: %v", common.ErrorInvalidArgument, name, err)
	}
}

func (f *fields) asUint(name string) uint {
	v, ok := f.values[name]
	f.used[name] = true
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 0)
	if err != nil {
		f.fail(name, err)
	}
	return uint(n)
}

func (f *fields) asInt(name string) int {
	v, ok := f.values[name]
	f.used[name] = true
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		f.fail(name, err)
	}
	return n
}

func (f *fields) asFloat(name string) float64 {
	v, ok := f.values[name]
	f.used[name] = true
	if !ok {
		return 0
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		f.fail(name, err)
	}
	return n
}

func (f *fields) asBool(name string) bool {
	v, ok := f.values[name]
	f.used[name] = true
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		f.fail(name, err)
	}
	return b
}

// The *Ptr getters return nil when the field is absent.
func (f *fields) intPtr(name string) *int {
	if !f.has(name) {
		return nil
	}
	n := f.asInt(name)
	return &n
}

func (f *fields) uintPtr(name string) *uint {
	if !f.has(name) {
		return nil
	}
	n := f.asUint(name)
	return &n
}

func (f *fields) boolPtr(name string) *bool {
	if !f.has(name) {
		return nil
	}
	b := f.asBool(name)
	return &b
}

// uints parses a comma-separated id list.
func (f *fields) uints(name string) []uint {
	v, ok := f.values[name]
	f.used[name] = true
	if !ok || v == "" {
		return nil
	}
	ids, err := parseIDs(strings.Split(v, ","))
	if err != nil {
		f.fail(name, err)
	}
	return ids
}

// require fails for every listed field that is missing or empty.
func (f *fields) require(names ...string) {
	for _, n := range names {
		if f.values[n] == "" {
			f.fail(n, errors.New("is required"))
		}
	}
}

// err returns the first conversion error, or an error naming a field that
// no getter asked for.
func (f *fields) err() error {
	if f.first != nil {
		return f.first
	}
	for name := range f.values {
		if !f.used[name] {
			return fmt.Errorf("%w: unknown field %q", common.ErrorInvalidArgument, name)
		}
	}
	return nil
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 0)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %q is not a valid id", common.ErrorInvalidArgument, s)
	}
	return uint(n), nil
}

func parseIDs(items []string) ([]uint, error) {
	ids := make([]uint, 0, len(items))
	for _, s := range items {
		if strings.TrimSpace(s) == "" {
			continue
		}
		id, err := parseID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

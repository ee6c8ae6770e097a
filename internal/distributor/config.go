package distributor

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Recognized configuration keys.
const (
	KeyPaths         = "paths"
	KeyCreateParents = "create_parents"
)

// DefaultPath is used when paths is present but falsy.
const DefaultPath = "."

// Config is the option mapping handed to a distributor by its host.
type Config map[string]interface{}

// Lookup returns the value stored under key and whether the key is present.
// A present key may still hold nil.
func (c Config) Lookup(key string) (interface{}, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c[key]
	return v, ok
}

// Credentials is accepted for host compatibility. The filesystem distributor
// does not use it.
type Credentials struct {
	Values map[string]string
}

// normalizePaths turns the raw paths option into an ordered list of path
// strings. Scalars are wrapped, falsy scalars become DefaultPath and
// sequences are kept as they are, even when empty.
func normalizePaths(raw interface{}) ([]string, error) {
	if !isSequence(raw) {
		if !truthy(raw) {
			return []string{DefaultPath}, nil
		}
		p, err := cast.ToStringE(raw)
		if err != nil {
			return nil, &InvalidPathError{Index: 0, Value: raw, Cause: err}
		}
		return []string{p}, nil
	}

	rv := reflect.ValueOf(raw)
	paths := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if isSequence(elem) || isMapping(elem) {
			return nil, &InvalidPathError{Index: i, Value: elem, Cause: fmt.Errorf("nested collections are not allowed")}
		}
		p, err := cast.ToStringE(elem)
		if err != nil {
			return nil, &InvalidPathError{Index: i, Value: elem, Cause: err}
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// parseFlag reports the truthiness of a boolean-ish option. Strings that
// parse as booleans use that value; other strings are true when non-empty.
func parseFlag(raw interface{}) bool {
	if s, ok := raw.(string); ok {
		if b, err := cast.ToBoolE(strings.TrimSpace(s)); err == nil {
			return b
		}
		return s != ""
	}
	return truthy(raw)
}

func truthy(v interface{}) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

func isSequence(v interface{}) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func isMapping(v interface{}) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}

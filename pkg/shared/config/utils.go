package config

import (
	"reflect"
	"strings"
)

// GetBoolValue walks a dot-separated field path such as "Logger.JSONFormat" and returns
// the bool found there. Nil pointers on the way, unknown fields and non-bool leaves yield fallback.
func GetBoolValue(root interface{}, path string, fallback bool) bool {
	v, ok := lookupField(reflect.ValueOf(root), strings.Split(path, "."))
	if !ok {
		return fallback
	}

	switch {
	case v.Kind() == reflect.Bool:
		return v.Bool()
	case v.Kind() == reflect.Ptr && v.Type().Elem().Kind() == reflect.Bool:
		return v.Elem().Bool()
	default:
		return fallback
	}
}

// lookupField reports false when the path cannot be followed or ends on a nil pointer.
func lookupField(v reflect.Value, names []string) (reflect.Value, bool) {
	for _, name := range names {
		v = reflect.Indirect(v)
		if v.Kind() != reflect.Struct {
			return reflect.Value{}, false
		}
		if v = v.FieldByName(name); !v.IsValid() {
			return reflect.Value{}, false
		}
	}
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return reflect.Value{}, false
	}
	return v, true
}

// ValueOr returns value unless it is the zero value of its type.
func ValueOr[T any](value, fallback T) T {
	if reflect.ValueOf(value).IsZero() {
		return fallback
	}
	return value
}

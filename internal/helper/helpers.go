package helper

import (
	"reflect"
)

// GetTypedValueOf2 asserts the result of a getter function to the expected type T.
// ok is false when the getter reports a miss or the value is not a T.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// As asserts v to T, returning the zero T for nil or a value of another type.
func As[T any](v any) T {
	res, _ := v.(T)
	return res
}

// IsNil reports whether v is nil, or a nil pointer, map, slice, func, chan or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsFalsy reports whether v is nil or the zero value of its type.
func IsFalsy(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}

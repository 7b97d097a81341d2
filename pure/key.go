package pure

import (
	"fmt"
	"reflect"
	"unsafe"
)

// ErrUnhashableKey is the panic value for a normalized key that can be neither
// compared by value nor identified by address, such as a func or a struct
// holding a slice.
var ErrUnhashableKey = fmt.Errorf("unhashable key")

type keyKind int

const (
	// primitiveKey compares by value and is retained strongly.
	primitiveKey keyKind = iota
	// referenceKey compares by the identity of the object it refers to and is retained weakly.
	referenceKey
)

// reference identifies the object behind a reference key. Two keys are the
// same reference only when they share the address, the dynamic type and, for
// slices, the length: a struct pointer and a pointer to its first field are
// different keys.
type reference struct {
	typ reflect.Type
	obj unsafe.Pointer
	len int
}

// hollow stands in for a nil map, a nil func, or a slice with no addressable
// elements. None of them can be a map key as is.
type hollow struct {
	typ reflect.Type
	len int
}

// classify decides which region of a Store holds the normalized key.
// Primitive keys come back as the map key to use, reference keys as the
// identity of the referenced object.
func classify(key any) (keyKind, any, reference) {
	if key == nil {
		return primitiveKey, nil, reference{}
	}

	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Pointer:
		// Zero-size values share one address and are never reclaimed.
		if rv.IsNil() || rv.Type().Elem().Size() == 0 {
			return primitiveKey, key, reference{}
		}
		return referenceKey, nil, reference{typ: rv.Type(), obj: rv.UnsafePointer()}
	case reflect.Map, reflect.Chan:
		if rv.IsNil() {
			return primitiveKey, hollow{typ: rv.Type()}, reference{}
		}
		return referenceKey, nil, reference{typ: rv.Type(), obj: rv.UnsafePointer()}
	case reflect.Slice:
		if rv.IsNil() {
			return primitiveKey, hollow{typ: rv.Type()}, reference{}
		}
		if rv.Len() == 0 || rv.Type().Elem().Size() == 0 {
			return primitiveKey, hollow{typ: rv.Type(), len: rv.Len()}, reference{}
		}
		return referenceKey, nil, reference{typ: rv.Type(), obj: rv.UnsafePointer(), len: rv.Len()}
	case reflect.Func:
		if rv.IsNil() {
			return primitiveKey, hollow{typ: rv.Type()}, reference{}
		}
	}

	if !rv.Comparable() {
		panic(fmt.Errorf("%w: %T", ErrUnhashableKey, key))
	}
	return primitiveKey, key, reference{}
}

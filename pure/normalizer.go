package pure

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/davecgh/go-spew/spew"
)

// Normalizer maps a raw call argument to the key actually used for lookup.
// It is called on every store operation that touches a key, so it must be
// cheap and must return equal keys for arguments the caller considers equal.
type Normalizer func(raw any) any

// ErrUnknownNormalizer is returned by NormalizerByName for an unregistered name.
var ErrUnknownNormalizer = fmt.Errorf("unknown normalizer")

const (
	NormalizerDefault  = "default"
	NormalizerDeep     = "deep"
	NormalizerDeepHash = "deep-hash"
	NormalizerStringer = "stringer"
)

// Default keys by identity: pointers, maps and chans by address, everything else by value.
func Default(raw any) any {
	return raw
}

// deepPrinter renders values without addresses or capacities, with sorted map keys,
// so that structurally equal values print the same text.
var deepPrinter = spew.ConfigState{
	Indent:                  "",
	SortKeys:                true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

func deepString(raw any) string {
	return deepPrinter.Sprintf("%#v", raw)
}

// Deep keys by structure. Distinct values with the same content, including
// values reached through different pointers, share one key.
// The dynamic type is part of the key: int(1) and int64(1) differ.
func Deep(raw any) any {
	return deepString(raw)
}

// DeepHash is Deep reduced to a 64-bit xxhash. Keys stay small regardless of
// argument size; two different structures colliding is possible, if unlikely.
func DeepHash(raw any) any {
	return xxhash.Sum64String(deepString(raw))
}

// Stringer keys fmt.Stringer arguments by their String() output and passes
// everything else through unchanged.
func Stringer(raw any) any {
	if stringer, ok := raw.(fmt.Stringer); ok {
		return stringer.String()
	}
	return raw
}

// Custom builds a Normalizer from a projection over T, e.g. extracting an id field.
// Arguments that are not a T are passed through unchanged.
func Custom[T any, K comparable](project func(T) K) Normalizer {
	return func(raw any) any {
		if t, ok := raw.(T); ok {
			return project(t)
		}
		return raw
	}
}

// NormalizerByName resolves one of the built-in policies by its configuration name.
// An empty name resolves to Default.
func NormalizerByName(name string) (Normalizer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NormalizerDefault:
		return Default, nil
	case NormalizerDeep:
		return Deep, nil
	case NormalizerDeepHash:
		return DeepHash, nil
	case NormalizerStringer:
		return Stringer, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNormalizer, name)
}

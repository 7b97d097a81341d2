package pure

import (
	"sync"

	"github.com/on-the-ground/memoize_go/internal/helper"
)

// Store is one level of a cache tree. Each normalized key maps to either a
// cached value or a child Store.
//
// Primitive keys live in a strongly retaining map. Reference keys (non-nil
// pointers, maps and chans, and non-empty slices) live in a weakly retaining
// map keyed by object identity and dynamic type: the entry goes away once the
// key object is garbage collected.
//
// A Store is safe to share between goroutines in the sense that it never
// corrupts itself, but it does not coordinate callers: concurrent writers to
// the same chain race, and the last write wins.
type Store struct {
	normalize  Normalizer
	primitives sync.Map
	references *weakRegion
}

// NewStore returns an empty Store using normalizer for every key.
// A nil normalizer means Default.
func NewStore(normalizer Normalizer) *Store {
	if normalizer == nil {
		normalizer = Default
	}
	return &Store{
		normalize:  normalizer,
		references: newWeakRegion(),
	}
}

// newLevel returns an empty child Store sharing the normalizer of s.
func (s *Store) newLevel() *Store {
	return &Store{
		normalize:  s.normalize,
		references: newWeakRegion(),
	}
}

// Get returns the value or child Store for key, or nil when there is none.
func (s *Store) Get(key any) any {
	v, _ := s.lookup(s.normalize(key))
	return v
}

// Lookup is Get with an explicit presence flag, so a stored zero value can be
// told apart from a missing entry.
func (s *Store) Lookup(key any) (any, bool) {
	return s.lookup(s.normalize(key))
}

// Has reports whether key holds a value that is neither nil nor the zero value
// of its type. A stored 0, "" or false reports false, exactly like a missing
// entry; use Lookup to tell them apart.
func (s *Store) Has(key any) bool {
	return !helper.IsFalsy(s.Get(key))
}

// Set associates value with key, replacing any previous value or child Store.
func (s *Store) Set(key, value any) {
	s.set(s.normalize(key), value)
}

// Clear drops every entry of this level. Child Stores become unreachable with it.
func (s *Store) Clear() {
	s.primitives.Clear()
	s.references.clear()
}

// Len returns the number of entries currently held at this level.
// Reference entries whose key was collected may linger until their cleanup runs.
func (s *Store) Len() int {
	n := s.references.len()
	s.primitives.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (s *Store) lookup(normalized any) (any, bool) {
	kind, key, ref := classify(normalized)
	if kind == referenceKey {
		return s.references.load(ref)
	}
	return s.primitives.Load(key)
}

func (s *Store) set(normalized, value any) {
	kind, key, ref := classify(normalized)
	if kind == referenceKey {
		s.references.store(ref, value)
		return
	}
	s.primitives.Store(key, value)
}

package pure

import (
	"github.com/on-the-ground/memoize_go/internal/helper"
)

// ResolveChain walks the tree one level per key and returns the value stored
// at the end of the chain, or nil on a miss.
//
// An empty chain is always a miss. So is a chain that runs into a cached value
// before its last key, or that ends on a child Store. A stored nil (including
// a typed nil pointer, map, slice, func or chan) is indistinguishable from a miss.
func (s *Store) ResolveChain(keys ...any) any {
	if len(keys) == 0 {
		return nil
	}

	var level any = s
	for _, key := range keys {
		store, ok := level.(*Store)
		if !ok || store == nil {
			return nil
		}
		level, _ = store.lookup(s.normalize(key))
	}

	if _, ok := level.(*Store); ok || helper.IsNil(level) {
		return nil
	}
	return level
}

// SetForChain stores value at the end of the chain, creating every missing
// intermediate level on the way. An empty chain is a no-op.
//
// An intermediate key that holds a cached value instead of a child Store is
// overwritten with a new child Store.
func (s *Store) SetForChain(keys []any, value any) {
	length := len(keys)
	if length == 0 {
		return
	}

	level := s
	for _, key := range keys[:length-1] {
		normalized := s.normalize(key)
		v, _ := level.lookup(normalized)
		next, ok := v.(*Store)
		if !ok || next == nil {
			next = s.newLevel()
			level.set(normalized, next)
		}
		level = next
	}
	level.set(s.normalize(keys[length-1]), value)
}

// Trie is a typed view over a root Store: every chain resolves to an O.
type Trie[O any] struct {
	root *Store
}

// NewTrie returns an empty Trie using normalizer at every level.
// A nil normalizer means Default.
func NewTrie[O any](normalizer Normalizer) *Trie[O] {
	return &Trie[O]{root: NewStore(normalizer)}
}

// Load resolves keys. ok is false on a miss, including a stored nil.
func (t *Trie[O]) Load(keys []any) (O, bool) {
	return helper.GetTypedValueOf2[O](func() (any, bool) {
		v := t.root.ResolveChain(keys...)
		return v, v != nil
	})
}

// Store caches value under keys.
func (t *Trie[O]) Store(keys []any, value O) {
	t.root.SetForChain(keys, value)
}

// Clear empties the whole tree.
func (t *Trie[O]) Clear() {
	t.root.Clear()
}

// Root exposes the first level of the tree.
func (t *Trie[O]) Root() *Store {
	return t.root
}

package pure

import (
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"
	"weak"
)

// weakRegion maps reference keys to values without keeping the key objects
// reachable. An entry is deleted by a runtime cleanup some time after its key
// object has been reclaimed.
//
// A value that itself points at its key object keeps that object alive, so
// such an entry is only dropped by clear.
type weakRegion struct {
	// weakKey -> any
	entries atomic.Pointer[sync.Map]
	self    weak.Pointer[weakRegion]
}

// weakKey is the map key for a reference. Heap objects are held through obj.
// Objects laid out by the linker, such as package-level variables, cannot be
// weakly referenced; they are never reclaimed either, so addr is enough.
type weakKey struct {
	typ  reflect.Type
	obj  weak.Pointer[byte]
	addr uintptr
	len  int
}

// eviction is the cleanup argument for one entry. It must not reach the
// region or the key object strongly.
type eviction struct {
	region weak.Pointer[weakRegion]
	key    weakKey
}

func newWeakRegion() *weakRegion {
	r := &weakRegion{}
	r.entries.Store(&sync.Map{})
	r.self = weak.Make(r)
	return r
}

func (r *weakRegion) load(ref reference) (any, bool) {
	return r.entries.Load().Load(keyOf(ref))
}

func (r *weakRegion) store(ref reference, value any) {
	key := keyOf(ref)
	if _, loaded := r.entries.Load().Swap(key, value); !loaded && key.addr == 0 {
		runtime.AddCleanup((*byte)(ref.obj), evict, eviction{region: r.self, key: key})
	}
}

func evict(e eviction) {
	if r := e.region.Value(); r != nil {
		r.entries.Load().Delete(e.key)
	}
}

// clear swaps in an empty map instead of deleting entry by entry,
// so pending cleanups never touch entries of the discarded map.
func (r *weakRegion) clear() {
	r.entries.Store(&sync.Map{})
}

func (r *weakRegion) len() int {
	n := 0
	r.entries.Load().Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func keyOf(ref reference) weakKey {
	key := weakKey{typ: ref.typ, len: ref.len}
	if onHeap(ref.obj) {
		key.obj = weak.Make((*byte)(ref.obj))
	} else {
		key.addr = uintptr(ref.obj)
	}
	return key
}

// static holds addresses known to lie outside the heap. They stay valid for
// the life of the process, so the set only grows with the number of distinct
// package-level variables used as keys.
var static sync.Map // uintptr -> struct{}

// onHeap reports whether obj points into a garbage collected allocation.
// weak.Make aborts the process for anything else, so this must hold first.
//
// runtime.AddCleanup does nothing and returns the zero Cleanup for Go
// pointers without a heap span.
func onHeap(obj unsafe.Pointer) bool {
	if _, ok := static.Load(uintptr(obj)); ok {
		return false
	}
	c := runtime.AddCleanup((*byte)(obj), func(int) {}, 0)
	if c == (runtime.Cleanup{}) {
		static.Store(uintptr(obj), struct{}{})
		return false
	}
	c.Stop()
	return true
}

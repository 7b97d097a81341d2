// Package pure memoizes pure or idempotent computations by their argument list.
//
// A call f(a, b, c) is cached as a chain of three keys in a tree of Stores:
// the root maps a to a child Store, that Store maps b to another, and the last
// one maps c to the result. Any arity works without declaring tuple shapes.
//
// Every argument goes through a Normalizer before it is used as a key:
//
//	→ Default keeps values as they are: pointers, maps, chans and slices are keyed by identity.
//	→ Deep keys by structure, so equal content behind different pointers is one entry.
//	→ Custom projects an argument, e.g. to its id field.
//
// Keys that end up as pointers, maps, chans or slices are held weakly: once the key
// object is unreachable elsewhere, the garbage collector reclaims it and the
// entry disappears on its own. Everything else is held until Clear.
//
// There is no expiry, no size bound and no in-flight deduplication. Two
// concurrent misses on the same arguments both compute, and the last one stored wins.
//
// Example:
//
//	fib := pure.Memoize(func(_ any, args ...any) (int, error) {
//	    return slowFib(args[0].(int)), nil
//	}, pure.Config{})
//	v, _ := fib.Call(40)
//	fib.Clear()
//
// WARNING: memoizing an impure function (time, I/O, randomness) returns stale results.
package pure

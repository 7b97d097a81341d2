// Package purefn provides typed memoization utilities for pure functions.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The Tableize family wraps a function of fixed arity with a cache built on
// package pure, and returns the wrapped function together with its clear func:
//
//	fib, clearFib := purefn.TableizeI1O1(slowFib, pure.Config{})
//	fib(40)
//	clearFib()
//
// Features:
//   - TableizeI1O1 to TableizeI4O2: typed memoizers for one or two outputs.
//   - TableizeI1OE to TableizeI4OE: memoizers for fallible functions; errors are never cached.
//   - MethodI1O1, MethodI2O1: memoize a method expression, forwarding the receiver.
//   - Normalization policy per cache through pure.Config (identity, deep, custom projection).
//
// Arguments are keyed by identity by default. Pass pure.Deep, or a pure.Custom
// projection, when structurally equal arguments should share one result.
//
// See tableize_test.go and tableize_bench_test.go for usage and benchmarks.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package purefn

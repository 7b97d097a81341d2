package purefn

import "github.com/on-the-ground/memoize_go/pure"

// The OE family memoizes functions that can fail. A returned error reaches the
// caller unchanged and the call is not cached, so the next call retries.

func TableizeI1OE[I1, O1 any](
	fn func(I1) (O1, error),
	config pure.Config,
) (func(I1) (O1, error), func()) {
	memo := pure.Memoize(func(_ any, args ...any) (O1, error) {
		return fn(arg[I1](args, 0))
	}, config)
	return func(i1 I1) (O1, error) {
		return memo.Call(i1)
	}, memo.Clear
}

func TableizeI2OE[I1, I2, O1 any](
	fn func(I1, I2) (O1, error),
	config pure.Config,
) (func(I1, I2) (O1, error), func()) {
	memo := pure.Memoize(func(_ any, args ...any) (O1, error) {
		return fn(arg[I1](args, 0), arg[I2](args, 1))
	}, config)
	return func(i1 I1, i2 I2) (O1, error) {
		return memo.Call(i1, i2)
	}, memo.Clear
}

func TableizeI3OE[I1, I2, I3, O1 any](
	fn func(I1, I2, I3) (O1, error),
	config pure.Config,
) (func(I1, I2, I3) (O1, error), func()) {
	memo := pure.Memoize(func(_ any, args ...any) (O1, error) {
		return fn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
	}, config)
	return func(i1 I1, i2 I2, i3 I3) (O1, error) {
		return memo.Call(i1, i2, i3)
	}, memo.Clear
}

func TableizeI4OE[I1, I2, I3, I4, O1 any](
	fn func(I1, I2, I3, I4) (O1, error),
	config pure.Config,
) (func(I1, I2, I3, I4) (O1, error), func()) {
	memo := pure.Memoize(func(_ any, args ...any) (O1, error) {
		return fn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3))
	}, config)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, error) {
		return memo.Call(i1, i2, i3, i4)
	}, memo.Clear
}

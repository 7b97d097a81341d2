package purefn

import "github.com/on-the-ground/memoize_go/pure"

func TableizeI1O2[I1, O1, O2 any](
	pureFn func(I1) (O1, O2),
	config pure.Config,
) (func(I1) (O1, O2), func()) {
	memo := tableize_dual_output(
		func(args ...any) (O1, O2) {
			return pureFn(arg[I1](args, 0))
		},
		config,
	)
	return func(i1 I1) (O1, O2) {
		return call(memo, i1).unpack()
	}, memo.Clear
}

func TableizeI2O2[I1, I2, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	config pure.Config,
) (func(I1, I2) (O1, O2), func()) {
	memo := tableize_dual_output(
		func(args ...any) (O1, O2) {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1))
		},
		config,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		return call(memo, i1, i2).unpack()
	}, memo.Clear
}

func TableizeI3O2[I1, I2, I3, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	config pure.Config,
) (func(I1, I2, I3) (O1, O2), func()) {
	memo := tableize_dual_output(
		func(args ...any) (O1, O2) {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
		},
		config,
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		return call(memo, i1, i2, i3).unpack()
	}, memo.Clear
}

func TableizeI4O2[I1, I2, I3, I4, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	config pure.Config,
) (func(I1, I2, I3, I4) (O1, O2), func()) {
	memo := tableize_dual_output(
		func(args ...any) (O1, O2) {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3))
		},
		config,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		return call(memo, i1, i2, i3, i4).unpack()
	}, memo.Clear
}

// result is cached as a pointer: a pair is never nil, so a nil first output
// still counts as a hit.
type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func (r *result[O1, O2]) unpack() (O1, O2) {
	return r.O1, r.O2
}

func tableize_dual_output[O1, O2 any](
	pureFn func(...any) (O1, O2),
	config pure.Config,
) *pure.Memoized[*result[O1, O2]] {
	return tableize(
		func(args ...any) *result[O1, O2] {
			v1, v2 := pureFn(args...)
			return &result[O1, O2]{O1: v1, O2: v2}
		},
		config,
	)
}

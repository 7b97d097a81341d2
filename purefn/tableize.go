package purefn

import (
	"github.com/on-the-ground/memoize_go/internal/helper"
	"github.com/on-the-ground/memoize_go/pure"
)

func TableizeI1O1[I1, O1 any](
	pureFn func(I1) O1,
	config pure.Config,
) (func(I1) O1, func()) {
	memo := tableize(
		func(args ...any) O1 {
			return pureFn(arg[I1](args, 0))
		},
		config,
	)
	return func(i1 I1) O1 {
		return call(memo, i1)
	}, memo.Clear
}

func TableizeI2O1[I1, I2, O1 any](
	pureFn func(I1, I2) O1,
	config pure.Config,
) (func(I1, I2) O1, func()) {
	memo := tableize(
		func(args ...any) O1 {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1))
		},
		config,
	)
	return func(i1 I1, i2 I2) O1 {
		return call(memo, i1, i2)
	}, memo.Clear
}

func TableizeI3O1[I1, I2, I3, O1 any](
	pureFn func(I1, I2, I3) O1,
	config pure.Config,
) (func(I1, I2, I3) O1, func()) {
	memo := tableize(
		func(args ...any) O1 {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
		},
		config,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return call(memo, i1, i2, i3)
	}, memo.Clear
}

func TableizeI4O1[I1, I2, I3, I4, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	config pure.Config,
) (func(I1, I2, I3, I4) O1, func()) {
	memo := tableize(
		func(args ...any) O1 {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3))
		},
		config,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return call(memo, i1, i2, i3, i4)
	}, memo.Clear
}

// arg returns args[i] as a T; a nil argument becomes the zero T.
func arg[T any](args []any, i int) T {
	return helper.As[T](args[i])
}

func tableize[O any](
	pureFn func(...any) O,
	config pure.Config,
) *pure.Memoized[O] {
	return pure.Memoize(func(_ any, args ...any) (O, error) {
		return pureFn(args...), nil
	}, config)
}

// call drops the error of a memoized function that cannot fail.
func call[O any](memo *pure.Memoized[O], args ...any) O {
	v, _ := memo.Call(args...)
	return v
}

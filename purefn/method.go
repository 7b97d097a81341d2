package purefn

import (
	"github.com/on-the-ground/memoize_go/internal/helper"
	"github.com/on-the-ground/memoize_go/pure"
)

// MethodI1O1 memoizes a method given as a method expression, e.g. (*Repo).Find.
//
// The wrapper has the method's shape and forwards its receiver, but the receiver
// is not part of the key: one cache is shared by every receiver, as with a
// method whose result depends only on its arguments.
func MethodI1O1[R, I1, O1 any](
	method func(R, I1) O1,
	config pure.Config,
) (func(R, I1) O1, func()) {
	memo := pure.Memoize(func(recv any, args ...any) (O1, error) {
		return method(helper.As[R](recv), arg[I1](args, 0)), nil
	}, config)
	return func(r R, i1 I1) O1 {
		v, _ := memo.CallOn(r, i1)
		return v
	}, memo.Clear
}

// MethodI2O1 is MethodI1O1 for two arguments.
func MethodI2O1[R, I1, I2, O1 any](
	method func(R, I1, I2) O1,
	config pure.Config,
) (func(R, I1, I2) O1, func()) {
	memo := pure.Memoize(func(recv any, args ...any) (O1, error) {
		return method(helper.As[R](recv), arg[I1](args, 0), arg[I2](args, 1)), nil
	}, config)
	return func(r R, i1 I1, i2 I2) O1 {
		v, _ := memo.CallOn(r, i1, i2)
		return v
	}, memo.Clear
}

package pure_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/memoize_go/pure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func sum(_ any, args ...any) (int, error) {
	total := 0
	for _, arg := range args {
		switch v := arg.(type) {
		case int:
			total += v
		case *item:
			total += v.id
		}
	}
	return total, nil
}

func counted[O any](fn pure.Func[O]) (pure.Func[O], *int) {
	count := 0
	return func(recv any, args ...any) (O, error) {
		count++
		return fn(recv, args...)
	}, &count
}

func primitiveArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = i
	}
	return args
}

func freshItems(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = &item{id: i}
	}
	return args
}

func TestMemoize_SamePrimitiveArgsComputeOnce(t *testing.T) {
	fn, count := counted(sum)
	memoized := pure.Memoize(fn, pure.Config{})
	args := primitiveArgs(1000)

	for i := 0; i < 3; i++ {
		v, err := memoized.Call(args...)
		require.NoError(t, err)
		assert.Equal(t, 999*1000/2, v)
	}
	assert.Equal(t, 1, *count)
}

func TestMemoize_DefaultDoesNotCoalesceDistinctObjects(t *testing.T) {
	fn, count := counted(sum)
	memoized := pure.Memoize(fn, pure.Config{})

	for i := 0; i < 3; i++ {
		_, err := memoized.Call(freshItems(1000)...)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, *count)
}

func TestMemoize_DefaultDoesNotCoalesceDistinctSlices(t *testing.T) {
	count := 0
	memoized := pure.Memoize(func(_ any, args ...any) (int, error) {
		count++
		return len(args[0].([]int)), nil
	}, pure.Config{})

	for i := 0; i < 3; i++ {
		v, err := memoized.Call(make([]int, 1000))
		require.NoError(t, err)
		assert.Equal(t, 1000, v)
	}
	assert.Equal(t, 3, count)
}

func TestMemoize_FieldPointerIsNotItsStruct(t *testing.T) {
	fn, count := counted(func(_ any, args ...any) (string, error) {
		switch v := args[0].(type) {
		case *outer:
			return "outer", nil
		case *item:
			return v.name, nil
		}
		return "", nil
	})
	memoized := pure.Memoize(fn, pure.Config{})
	o := &outer{first: item{id: 1, name: "first"}}

	v, err := memoized.Call(o)
	require.NoError(t, err)
	assert.Equal(t, "outer", v)

	v, err = memoized.Call(&o.first)
	require.NoError(t, err)
	assert.Equal(t, "first", v)
	assert.Equal(t, 2, *count)
}

func TestMemoize_PackageLevelPointerArgument(t *testing.T) {
	fn, count := counted(sum)
	memoized := pure.Memoize(fn, pure.Config{})

	for i := 0; i < 3; i++ {
		v, err := memoized.Call(&globalItem)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}
	assert.Equal(t, 1, *count)
}

func TestMemoize_DeepCoalescesEqualObjects(t *testing.T) {
	fn, count := counted(sum)
	memoized := pure.Memoize(fn, pure.Config{Normalizer: pure.Deep})

	for i := 0; i < 3; i++ {
		_, err := memoized.Call(freshItems(1000)...)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, *count)
}

func TestMemoize_CustomCoalescesByProjection(t *testing.T) {
	fn, count := counted(sum)
	memoized := pure.Memoize(fn, pure.Config{
		Normalizer: pure.Custom(func(i *item) int { return i.id }),
	})

	for i := 0; i < 3; i++ {
		_, err := memoized.Call(freshItems(1000)...)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, *count)
}

func TestMemoize_ClearRecomputes(t *testing.T) {
	memoized := pure.Memoize(func(_ any, args ...any) (*item, error) {
		return &item{id: args[0].(int)}, nil
	}, pure.Config{})

	cached, err := memoized.Call(1)
	require.NoError(t, err)

	// pre-condition: cached result should be the same object on the next call
	again, _ := memoized.Call(1)
	require.Same(t, cached, again)

	memoized.Clear()

	fresh, _ := memoized.Call(1)
	assert.NotSame(t, cached, fresh)
	assert.Equal(t, cached, fresh)
}

func TestMemoize_ErrorIsNotCached(t *testing.T) {
	errBoom := errors.New("boom")
	fn, count := counted(func(_ any, args ...any) (int, error) {
		return 0, errBoom
	})
	memoized := pure.Memoize(fn, pure.Config{})

	_, err := memoized.Call(1, 2, 3)
	assert.Same(t, errBoom, err)
	assert.Equal(t, 0, memoized.Cache().Root().Len())

	_, err = memoized.Call(1, 2, 3)
	assert.Same(t, errBoom, err)
	assert.Equal(t, 2, *count)
}

func TestMemoize_PanicPropagatesWithoutPartialChain(t *testing.T) {
	memoized := pure.Memoize(func(_ any, args ...any) (int, error) {
		panic("boom")
	}, pure.Config{})

	assert.PanicsWithValue(t, "boom", func() {
		_, _ = memoized.Call("a", "b")
	})
	assert.Equal(t, 0, memoized.Cache().Root().Len())
}

func TestMemoize_NoArgsNeverCached(t *testing.T) {
	fn, count := counted(sum)
	memoized := pure.Memoize(fn, pure.Config{})

	_, _ = memoized.Call()
	_, _ = memoized.Call()

	assert.Equal(t, 2, *count)
}

func TestMemoize_ZeroResultIsCached(t *testing.T) {
	fn, count := counted(func(_ any, args ...any) (int, error) {
		return 0, nil
	})
	memoized := pure.Memoize(fn, pure.Config{})

	_, _ = memoized.Call("x")
	_, _ = memoized.Call("x")

	assert.Equal(t, 1, *count)
}

func TestMemoize_NilResultIsRecomputed(t *testing.T) {
	fn, count := counted(func(_ any, args ...any) (*item, error) {
		return nil, nil
	})
	memoized := pure.Memoize(fn, pure.Config{})

	_, _ = memoized.Call("x")
	_, _ = memoized.Call("x")

	assert.Equal(t, 2, *count)
}

type greeter struct {
	greeting string
}

func TestMemoize_CallOnForwardsReceiver(t *testing.T) {
	memoized := pure.Memoize(func(recv any, args ...any) (string, error) {
		return recv.(*greeter).greeting + " " + args[0].(string), nil
	}, pure.Config{})

	hello := &greeter{greeting: "hello"}
	hi := &greeter{greeting: "hi"}

	v, err := memoized.CallOn(hello, "bob")
	require.NoError(t, err)
	assert.Equal(t, "hello bob", v)

	// the receiver is not part of the key
	v, _ = memoized.CallOn(hi, "bob")
	assert.Equal(t, "hello bob", v)
}

func TestMemoize_RecursiveCalls(t *testing.T) {
	var fib *pure.Memoized[int]
	calls := 0
	fib = pure.Memoize(func(_ any, args ...any) (int, error) {
		calls++
		n := args[0].(int)
		if n <= 1 {
			return n, nil
		}
		a, _ := fib.Call(n - 1)
		b, _ := fib.Call(n - 2)
		return a + b, nil
	}, pure.Config{})

	v, err := fib.Call(30)
	require.NoError(t, err)
	assert.Equal(t, 832040, v)
	assert.Equal(t, 31, calls)
}

func TestMemoize_LogsHitsAndMisses(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	memoized := pure.Memoize(sum, pure.Config{Logger: zap.New(core)})

	_, _ = memoized.Call(1, 2)
	_, _ = memoized.Call(1, 2)
	memoized.Clear()

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, "memo miss", entries[0].Message)
	assert.Equal(t, "memo hit", entries[1].Message)
	assert.Equal(t, "memo cleared", entries[2].Message)
	assert.Equal(t, memoized.ID(), entries[0].ContextMap()["memo_id"])
	assert.EqualValues(t, 2, entries[1].ContextMap()["arity"])
}

func TestNewConfig_Defaults(t *testing.T) {
	config := pure.NewConfig(nil, nil)

	assert.NotNil(t, config.Normalizer)
	assert.NotNil(t, config.Logger)
	assert.Equal(t, 1, config.Normalizer(1))
}

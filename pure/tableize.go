package pure

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Func is a computation that can be memoized. recv is the receiver the call
// was made on, nil for plain functions; it is forwarded but never part of the key.
type Func[O any] func(recv any, args ...any) (O, error)

// Memoized caches the results of a Func by its argument list.
type Memoized[O any] struct {
	id     string
	fn     Func[O]
	memo   *Trie[O]
	logger *zap.Logger
}

// Memoize wraps fn with a cache keyed by the full argument list, one tree
// level per argument. Unset config fields take their defaults.
//
// Calls without arguments, failed calls and calls returning a nil-like value
// are never cached.
func Memoize[O any](fn Func[O], config Config) *Memoized[O] {
	config = NewConfig(config.Normalizer, config.Logger)
	m := &Memoized[O]{
		id:   uuid.New().String(),
		fn:   fn,
		memo: NewTrie[O](config.Normalizer),
	}
	m.logger = config.Logger.With(zap.String("memo_id", m.id))
	return m
}

// Call is CallOn with no receiver.
func (m *Memoized[O]) Call(args ...any) (O, error) {
	return m.CallOn(nil, args...)
}

// CallOn returns the cached result for args, or computes it with recv and args.
// An error from the computation is returned as is and nothing is cached; a
// panic propagates the same way. The tree is only extended after a successful
// computation, so a failure leaves it untouched.
func (m *Memoized[O]) CallOn(recv any, args ...any) (O, error) {
	if v, ok := m.memo.Load(args); ok {
		if ce := m.logger.Check(zap.DebugLevel, "memo hit"); ce != nil {
			ce.Write(zap.Int("arity", len(args)))
		}
		return v, nil
	}

	var started time.Time
	if m.logger.Core().Enabled(zap.DebugLevel) {
		started = time.Now()
	}

	v, err := m.fn(recv, args...)
	if err != nil {
		return v, err
	}
	m.memo.Store(args, v)

	if ce := m.logger.Check(zap.DebugLevel, "memo miss"); ce != nil {
		ce.Write(
			zap.Int("arity", len(args)),
			zap.Duration("took", time.Since(started)),
		)
	}
	return v, nil
}

// Clear drops every cached result. The next call for any argument list recomputes.
func (m *Memoized[O]) Clear() {
	m.memo.Clear()
	m.logger.Debug("memo cleared")
}

// ID identifies this cache in log output.
func (m *Memoized[O]) ID() string {
	return m.id
}

// Cache exposes the underlying tree.
func (m *Memoized[O]) Cache() *Trie[O] {
	return m.memo
}

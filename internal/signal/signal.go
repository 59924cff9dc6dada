// Package signal implements the per-tick event algebra that glues time,
// input and state together.
//
// A Signal is not a stream: one Signal value is produced per main-loop
// iteration and carries either no event (Nothing) or one event (Just).
// Combinators are plain functions from this tick's inputs, plus optional
// caller-owned state, to this tick's output. None of them block, panic or
// allocate.
package signal

// Signal is the event (if any) produced during a single tick.
type Signal[T any] struct {
	v  T
	ok bool
}

// Just returns a signal carrying v.
func Just[T any](v T) Signal[T] { return Signal[T]{v: v, ok: true} }

// Nothing returns an empty signal.
func Nothing[T any]() Signal[T] { return Signal[T]{} }

// Get returns the payload and whether the signal fired.
func (s Signal[T]) Get() (T, bool) { return s.v, s.ok }

// IsJust reports whether the signal carries an event.
func (s Signal[T]) IsJust() bool { return s.ok }

// IsNothing reports whether the signal is empty.
func (s Signal[T]) IsNothing() bool { return !s.ok }

// Or returns the payload, or fallback when the signal is empty.
func (s Signal[T]) Or(fallback T) T {
	if s.ok {
		return s.v
	}
	return fallback
}

// Option is a value that may be absent. It lets Nothing itself travel as a
// payload (see Meta).
type Option[T any] struct {
	v  T
	ok bool
}

// Some wraps v.
func Some[T any](v T) Option[T] { return Option[T]{v: v, ok: true} }

// None returns an empty option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.v, o.ok }

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// Either holds exactly one of a left or a right value.
type Either[A, B any] struct {
	left   A
	right  B
	isLeft bool
}

// Left builds an Either holding a.
func Left[A, B any](a A) Either[A, B] { return Either[A, B]{left: a, isLeft: true} }

// Right builds an Either holding b.
func Right[A, B any](b B) Either[A, B] { return Either[A, B]{right: b} }

// Left returns the left value, if that is the side held.
func (e Either[A, B]) Left() (A, bool) { return e.left, e.isLeft }

// Right returns the right value, if that is the side held.
func (e Either[A, B]) Right() (B, bool) { return e.right, !e.isLeft }

// IsLeft reports which side is held.
func (e Either[A, B]) IsLeft() bool { return e.isLeft }

package signal

// Constant fires v on every tick.
func Constant[T any](v T) Signal[T] { return Just(v) }

// Map applies f to the payload of s.
func Map[T, U any](f func(T) U, s Signal[T]) Signal[U] {
	if v, ok := s.Get(); ok {
		return Just(f(v))
	}
	return Nothing[U]()
}

// Filter DROPS events for which p returns true.
//
// NOTE: this is the inverse of the usual filter. Write the predicate for
// what should be discarded.
func Filter[T any](p func(T) bool, s Signal[T]) Signal[T] {
	if v, ok := s.Get(); ok && !p(v) {
		return s
	}
	return Nothing[T]()
}

// Sink runs f for effect when s fires and passes s through.
func Sink[T any](f func(T), s Signal[T]) Signal[T] {
	if v, ok := s.Get(); ok {
		f(v)
	}
	return s
}

// Merge is left-biased: a wins when both fire.
func Merge[T any](a, b Signal[T]) Signal[T] {
	if a.ok {
		return a
	}
	return b
}

// MergeMany returns the first signal that fired, or Nothing for an empty
// or silent list.
func MergeMany[T any](signals ...Signal[T]) Signal[T] {
	for _, s := range signals {
		if s.ok {
			return s
		}
	}
	return Nothing[T]()
}

// Join tags whichever of a and b fired; a wins when both fire.
func Join[A, B any](a Signal[A], b Signal[B]) Signal[Either[A, B]] {
	if v, ok := a.Get(); ok {
		return Just(Left[A, B](v))
	}
	if v, ok := b.Get(); ok {
		return Just(Right[A](v))
	}
	return Nothing[Either[A, B]]()
}

// FoldP folds events of s into the caller-owned state and emits the new
// state on the ticks where s fired.
func FoldP[T, S any](f func(T, S) S, state *S, s Signal[T]) Signal[S] {
	if v, ok := s.Get(); ok {
		*state = f(v, *state)
		return Just(*state)
	}
	return Nothing[S]()
}

// Latch turns a sparse signal into a dense one by re-emitting the last
// event seen (or the initial value of prev) on silent ticks.
func Latch[T any](prev *T, s Signal[T]) Signal[T] {
	if v, ok := s.Get(); ok {
		*prev = v
	}
	return Just(*prev)
}

// DropRepeats passes an event only when it differs from the previous event.
// prev is updated on every event.
func DropRepeats[T comparable](prev *Option[T], s Signal[T]) Signal[T] {
	v, ok := s.Get()
	if !ok {
		return s
	}
	last, seen := prev.Get()
	*prev = Some(v)
	if seen && last == v {
		return Nothing[T]()
	}
	return s
}

// Map2 keeps the latest value of each input in a and b and emits f(a, b)
// whenever at least one input fired.
func Map2[A, B, C any](f func(A, B) C, a *A, b *B, sa Signal[A], sb Signal[B]) Signal[C] {
	va, okA := sa.Get()
	vb, okB := sb.Get()
	if !okA && !okB {
		return Nothing[C]()
	}
	if okA {
		*a = va
	}
	if okB {
		*b = vb
	}
	return Just(f(*a, *b))
}

// Toggle flips state between v1 and v2 on each trigger event and emits the
// new state. Any state other than v1 flips to v1.
func Toggle[T comparable, E any](v1, v2 T, state *T, trigger Signal[E]) Signal[T] {
	if trigger.IsNothing() {
		return Nothing[T]()
	}
	if *state == v1 {
		*state = v2
	} else {
		*state = v1
	}
	return Just(*state)
}

// Meta lifts s so that an empty tick becomes the payload None. The result
// always fires.
func Meta[T any](s Signal[T]) Signal[Option[T]] {
	if v, ok := s.Get(); ok {
		return Just(Some(v))
	}
	return Just(None[T]())
}

// Unmeta is the inverse of Meta.
func Unmeta[T any](s Signal[Option[T]]) Signal[T] {
	if o, ok := s.Get(); ok {
		if v, present := o.Get(); present {
			return Just(v)
		}
	}
	return Nothing[T]()
}

// TryChoice returns the first present option, or None for an empty list.
func TryChoice[T any](options ...Option[T]) Option[T] {
	for _, o := range options {
		if o.ok {
			return o
		}
	}
	return None[T]()
}

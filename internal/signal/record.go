package signal

// Recorder keeps the most recent events of a signal, newest first. Its
// capacity is fixed when it is created; once full the oldest event is
// discarded.
type Recorder[T any] struct {
	items []T
	n     int
}

// NewRecorder allocates a recorder for up to capacity events.
func NewRecorder[T any](capacity int) *Recorder[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Recorder[T]{items: make([]T, capacity)}
}

// Len is the number of recorded events.
func (r *Recorder[T]) Len() int { return r.n }

// Cap is the fixed capacity.
func (r *Recorder[T]) Cap() int { return len(r.items) }

// Items returns the recorded events, newest first. The slice aliases the
// recorder and is only valid until the next push.
func (r *Recorder[T]) Items() []T { return r.items[:r.n] }

func (r *Recorder[T]) push(v T) {
	if len(r.items) == 0 {
		return
	}
	if r.n < len(r.items) {
		r.n++
	}
	copy(r.items[1:r.n], r.items[:r.n-1])
	r.items[0] = v
}

// Record prepends each event of s into r and emits the recorded events.
func Record[T any](r *Recorder[T], s Signal[T]) Signal[[]T] {
	if v, ok := s.Get(); ok {
		r.push(v)
		return Just(r.Items())
	}
	return Nothing[[]T]()
}

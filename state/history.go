package state

// History is a ring buffer of preallocated states. The slot at position is
// the current state, slots from tail to head are reachable by undo and redo.
type History[S any] struct {
	states []S
	copy   func(dst, src S)

	position int
	head     int
	tail     int
}

func NewHistory[S any](size int, create func() S, copy func(dst, src S)) *History[S] {
	size = max(size, 2)

	h := &History[S]{
		states: make([]S, size),
		copy:   copy,
	}

	for i := range h.states {
		h.states[i] = create()
	}

	return h
}

func (h *History[S]) Size() int {
	return len(h.states)
}

func (h *History[S]) next(i int) int {
	return (i + 1) % len(h.states)
}

func (h *History[S]) prev(i int) int {
	return (i - 1 + len(h.states)) % len(h.states)
}

// Reset forgets every step and makes state the only one.
func (h *History[S]) Reset(state S) {
	h.Clear()
	h.copy(h.states[0], state)
}

func (h *History[S]) Clear() {
	h.position = 0
	h.head = 0
	h.tail = 0
}

// Save stores a copy of state after the current one and drops the redo steps.
// The oldest step is overwritten when the buffer is full.
func (h *History[S]) Save(state S) {
	h.position = h.next(h.position)
	h.copy(h.states[h.position], state)
	h.head = h.position

	if h.head == h.tail {
		h.tail = h.next(h.tail)
	}
}

func (h *History[S]) CanUndo() bool {
	return h.position != h.tail
}

func (h *History[S]) CanRedo() bool {
	return h.position != h.head
}

func (h *History[S]) Undo() (state S, ok bool) {
	if !h.CanUndo() {
		return
	}

	h.position = h.prev(h.position)

	return h.states[h.position], true
}

func (h *History[S]) Redo() (state S, ok bool) {
	if !h.CanRedo() {
		return
	}

	h.position = h.next(h.position)

	return h.states[h.position], true
}

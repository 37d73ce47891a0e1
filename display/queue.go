package display

// QueueCap is the default bounded queue capacity.
const QueueCap = 64

// Queue is a bounded FIFO of input events implementing Input. Push drops
// on overflow, so a stalled consumer can never block the poller.
//
// It is not safe for concurrent use; the loop that pushes is the loop
// that drains.
type Queue struct {
	ev    []Event
	head  int
	drops int
}

// NewQueue returns a queue holding at most capacity pending events.
// A capacity of zero or less selects QueueCap.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = QueueCap
	}
	return &Queue{ev: make([]Event, 0, capacity)}
}

// Push appends e. It reports false when the queue was full and e dropped.
func (q *Queue) Push(e Event) bool {
	if len(q.ev)-q.head >= cap(q.ev) {
		q.drops++
		return false
	}
	if len(q.ev) == cap(q.ev) {
		n := copy(q.ev, q.ev[q.head:])
		q.ev = q.ev[:n]
		q.head = 0
	}
	q.ev = append(q.ev, e)
	return true
}

// PollEvent implements Input.
func (q *Queue) PollEvent() (Event, bool) {
	if q.head >= len(q.ev) {
		q.ev = q.ev[:0]
		q.head = 0
		return Event{}, false
	}
	e := q.ev[q.head]
	q.head++
	return e, true
}

// Dropped returns how many events have been discarded on overflow.
func (q *Queue) Dropped() int { return q.drops }

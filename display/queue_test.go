package display

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(8)
	for i := 0; i < 5; i++ {
		if !q.Push(Event{Kind: EventMouseMotion, X: i}) {
			t.Fatalf("Push %d = false, want true", i)
		}
	}
	for i := 0; i < 5; i++ {
		e, ok := q.PollEvent()
		if !ok {
			t.Fatalf("PollEvent %d ok = false, want true", i)
		}
		if e.X != i {
			t.Fatalf("PollEvent %d X = %d, want %d", i, e.X, i)
		}
	}
	if _, ok := q.PollEvent(); ok {
		t.Fatal("PollEvent on drained queue ok = true, want false")
	}
}

func TestQueueOverflowDrops(t *testing.T) {
	q := NewQueue(2)
	q.Push(Event{X: 1})
	q.Push(Event{X: 2})
	if q.Push(Event{X: 3}) {
		t.Fatal("Push on full queue = true, want false")
	}
	if q.Dropped() != 1 {
		t.Fatalf("Dropped = %d, want 1", q.Dropped())
	}

	e, _ := q.PollEvent()
	if e.X != 1 {
		t.Fatalf("oldest event X = %d, want 1", e.X)
	}
	// Room again after a poll.
	if !q.Push(Event{X: 4}) {
		t.Fatal("Push after poll = false, want true")
	}
	e, _ = q.PollEvent()
	if e.X != 2 {
		t.Fatalf("next event X = %d, want 2", e.X)
	}
	e, _ = q.PollEvent()
	if e.X != 4 {
		t.Fatalf("last event X = %d, want 4", e.X)
	}
}

func TestQueueDefaultCapacity(t *testing.T) {
	q := NewQueue(0)
	for i := 0; i < QueueCap; i++ {
		if !q.Push(Event{X: i}) {
			t.Fatalf("Push %d = false before default capacity reached", i)
		}
	}
	if q.Push(Event{}) {
		t.Fatalf("Push beyond %d = true, want false", QueueCap)
	}
}

package connection

import "github.com/MKhiriev/scanalyzer-link/models"

// messageQueue is a bounded FIFO of envelopes accepted while the transport
// is down. The queue preserves insertion order, which is also the replay
// order on flush; the oldest entry is dropped when capacity is exceeded.
//
// Not safe for concurrent use; the owning client guards it with its mutex.
type messageQueue struct {
	capacity int
	items    []models.Envelope
	dropped  int
}

func newMessageQueue(capacity int) *messageQueue {
	if capacity <= 0 {
		capacity = 100
	}
	return &messageQueue{capacity: capacity}
}

// Push appends env, evicting the oldest entry if the queue is full.
func (q *messageQueue) Push(env models.Envelope) {
	if len(q.items) >= q.capacity {
		q.items = q.items[1:]
		q.dropped++
	}
	q.items = append(q.items, env)
}

// Drain removes and returns every queued envelope in insertion order.
func (q *messageQueue) Drain() []models.Envelope {
	items := q.items
	q.items = nil
	return items
}

// Clear discards all queued envelopes.
func (q *messageQueue) Clear() {
	q.items = nil
}

// Len returns the number of queued envelopes.
func (q *messageQueue) Len() int {
	return len(q.items)
}

// Dropped returns how many envelopes were evicted due to overflow.
func (q *messageQueue) Dropped() int {
	return q.dropped
}

package brute

import (
	"context"
	"sync"
)

// WorkQueue is a bounded, closable FIFO of candidates. Producers push
// non-blockingly; consumers block on Pop until an item arrives, the
// queue is closed and drained, or their context is cancelled.
//
// Closing instead of emptiness is how consumers learn the input ended:
// a momentarily empty queue (generation lagging consumption) must park
// workers, not terminate them.
type WorkQueue struct {
	ch        chan string
	closeOnce sync.Once
}

// NewWorkQueue creates a queue holding at most capacity candidates.
func NewWorkQueue(capacity int) *WorkQueue {
	return &WorkQueue{ch: make(chan string, capacity)}
}

// TryPush enqueues candidate and reports whether there was room.
// It must not be called after Close; the engine guarantees this by
// closing only from the single producing goroutine, after its last push.
func (q *WorkQueue) TryPush(candidate string) bool {
	select {
	case q.ch <- candidate:
		return true
	default:
		return false
	}
}

// Pop returns the next candidate in push order. ok is false once the
// queue is closed and fully drained, or when ctx is cancelled; buffered
// candidates remain poppable after Close until drained.
func (q *WorkQueue) Pop(ctx context.Context) (string, bool) {
	select {
	case c, ok := <-q.ch:
		return c, ok
	case <-ctx.Done():
		return "", false
	}
}

// Close marks the end of input. Idempotent.
func (q *WorkQueue) Close() {
	q.closeOnce.Do(func() { close(q.ch) })
}

// Len returns the number of buffered candidates.
func (q *WorkQueue) Len() int { return len(q.ch) }

// Cap returns the queue capacity.
func (q *WorkQueue) Cap() int { return cap(q.ch) }

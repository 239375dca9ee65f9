// Package deck owns the per-session swipe state: the FIFO card queue, the
// session controller that reacts to resolved gestures, and the adapter that
// turns the current blend into fresh cards via an LLM provider.
package deck

import (
	"sync"

	"github.com/zacharylandes/fizzbit-sub000/models"
)

// DefaultLowWater is the remaining-card count at which a refill should be
// kicked off.
const DefaultLowWater = 2

// Queue is an append-only card sequence with a read cursor. Enqueue happens
// on fetch completions while Front/Advance run on the UI loop, so every
// operation takes the mutex.
type Queue struct {
	mu       sync.Mutex
	cards    []models.Idea
	cursor   int
	lowWater int
}

// NewQueue creates an empty queue. A negative lowWater falls back to
// DefaultLowWater.
func NewQueue(lowWater int) *Queue {
	if lowWater < 0 {
		lowWater = DefaultLowWater
	}
	return &Queue{lowWater: lowWater}
}

// Enqueue appends cards at the tail in arrival order. It never inserts
// mid-queue, so the current front card's identity is stable across refills.
// No de-duplication happens here; that is the producer's job.
func (q *Queue) Enqueue(cards ...models.Idea) {
	if len(cards) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.cards = append(q.cards, cards...)
}

// Front returns the current front card without consuming it. The second
// return is false when the queue is empty or exhausted; callers treat that as
// "nothing to show yet", not an error.
func (q *Queue) Front() (models.Idea, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.cursor >= len(q.cards) {
		return models.Idea{}, false
	}
	return q.cards[q.cursor], true
}

// Advance moves the cursor forward by one. Idempotent at end-of-queue.
func (q *Queue) Advance() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.cursor < len(q.cards) {
		q.cursor++
	}
}

// Remaining is the number of unconsumed cards.
func (q *Queue) Remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.cards) - q.cursor
}

// ShouldRefill reports whether the remaining count has dropped to the
// low-water mark. Kicking off the actual fetch is the caller's job.
func (q *Queue) ShouldRefill() bool {
	return q.Remaining() <= q.lowWater
}

// Len is the total number of cards ever enqueued this session.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.cards)
}

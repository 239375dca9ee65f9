package deck

import (
	"testing"

	"github.com/zacharylandes/fizzbit-sub000/models"
)

func card(title string) models.Idea {
	return *models.NewIdea(title, "", models.SourceText)
}

func TestQueueFIFOAndCursor(t *testing.T) {
	q := NewQueue(DefaultLowWater)
	a, b, c := card("a"), card("b"), card("c")

	q.Enqueue(a, b)
	q.Enqueue(c)

	front, ok := q.Front()
	if !ok || front.ID != a.ID {
		t.Fatalf("Front = %v, %v; want card a", front.Title, ok)
	}

	// Front does not consume.
	front, _ = q.Front()
	if front.ID != a.ID {
		t.Fatal("Front should not advance the cursor")
	}

	q.Advance()
	q.Advance()
	front, ok = q.Front()
	if !ok || front.ID != c.ID {
		t.Fatalf("after two advances Front = %v, want card c", front.Title)
	}

	if q.Remaining() != 1 {
		t.Errorf("Remaining = %d, want 1", q.Remaining())
	}
	q.Advance()
	if q.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", q.Remaining())
	}
	if _, ok := q.Front(); ok {
		t.Error("exhausted queue should report no front card")
	}
}

func TestQueueAdvanceIdempotentAtEnd(t *testing.T) {
	q := NewQueue(DefaultLowWater)
	q.Enqueue(card("only"))
	q.Advance()
	q.Advance() // past the end: no-op
	q.Advance()
	if q.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", q.Remaining())
	}
	// A late-arriving batch is still consumable.
	q.Enqueue(card("late"))
	if front, ok := q.Front(); !ok || front.Title != "late" {
		t.Error("cursor should not have run past the appended card")
	}
}

func TestQueueShouldRefillAtLowWater(t *testing.T) {
	q := NewQueue(2)
	q.Enqueue(card("a"), card("b"), card("c"))

	if q.ShouldRefill() {
		t.Error("3 remaining: no refill yet")
	}
	q.Advance()
	if !q.ShouldRefill() {
		t.Error("2 remaining hits the low-water mark")
	}
	q.Advance()
	q.Advance()
	if !q.ShouldRefill() {
		t.Error("empty queue certainly needs a refill")
	}
}

func TestQueueEmptyConsumptionIsNotAnError(t *testing.T) {
	q := NewQueue(DefaultLowWater)
	if _, ok := q.Front(); ok {
		t.Error("empty queue has no front")
	}
	q.Advance() // harmless
	if q.Remaining() != 0 {
		t.Error("advance on empty queue should do nothing")
	}
}

package deck

import (
	"context"
	"fmt"
	"sync"

	"github.com/zacharylandes/fizzbit-sub000/internal/blend"
	"github.com/zacharylandes/fizzbit-sub000/internal/gesture"
	"github.com/zacharylandes/fizzbit-sub000/models"
)

// Generator produces idea cards. Implementations call the LLM; tests stub it.
type Generator interface {
	// NextBatch generates count fresh cards for the subject under the blend.
	NextBatch(ctx context.Context, subject string, w blend.Weights, count int) ([]models.Idea, error)
	// Explore generates follow-on cards branching off an existing one.
	Explore(ctx context.Context, parent models.Idea, count int) ([]models.Idea, error)
}

// Store is the slice of idea persistence the session needs.
type Store interface {
	CreateIdea(idea models.Idea) (models.Idea, error)
	GetIdea(id string) (models.Idea, error)
	MarkSaved(id string) (models.Idea, error)
}

// Action is what a resolved swipe did to the front card.
type Action int

const (
	ActionNone Action = iota
	ActionDismissed
	ActionSaved
	ActionExplore
	ActionSnoozed
)

func (a Action) String() string {
	switch a {
	case ActionDismissed:
		return "dismissed"
	case ActionSaved:
		return "saved"
	case ActionExplore:
		return "explore"
	case ActionSnoozed:
		return "snoozed"
	default:
		return "none"
	}
}

// Outcome reports the result of HandleSwipe. When NeedsRefill is true the
// caller should start a refill fetch; when Action is ActionExplore the caller
// should start an explore fetch for Card.
type Outcome struct {
	Action      Action
	Card        models.Idea
	NeedsRefill bool
}

// Session is the controller owning all mutable swipe-flow state for one user
// session: the blend marker, the queue, and the collaborator handles. All UI
// state lives here rather than in globals so a renderer just holds a *Session.
type Session struct {
	mu sync.Mutex

	subject  string
	position blend.Point
	vertices blend.Vertices

	queue      *Queue
	gen        Generator
	store      Store
	batchCount int
}

// NewSession creates a session with the marker at the triangle centroid.
func NewSession(subject string, gen Generator, store Store, batchCount, lowWater int) *Session {
	v := blend.DefaultVertices
	centroid := blend.Point{
		X: (v.Wild.X + v.Actionable.X + v.Deep.X) / 3,
		Y: (v.Wild.Y + v.Actionable.Y + v.Deep.Y) / 3,
	}
	if batchCount <= 0 {
		batchCount = 5
	}
	return &Session{
		subject:    subject,
		position:   centroid,
		vertices:   v,
		queue:      NewQueue(lowWater),
		gen:        gen,
		store:      store,
		batchCount: batchCount,
	}
}

// Subject returns the generation subject.
func (s *Session) Subject() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subject
}

// Queue exposes the card queue for rendering.
func (s *Session) Queue() *Queue {
	return s.queue
}

// Vertices returns the triangle geometry the session was built with.
func (s *Session) Vertices() blend.Vertices {
	return s.vertices
}

// SetPosition moves the blend marker, clamping it to the triangle so the
// marker can never leave the visible area regardless of where the pointer
// goes.
func (s *Session) SetPosition(p blend.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = blend.ClampToTriangle(p, s.vertices)
}

// Position returns the current (clamped) marker position.
func (s *Session) Position() blend.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// Weights derives the blend from the current marker position.
func (s *Session) Weights() blend.Weights {
	s.mu.Lock()
	defer s.mu.Unlock()
	return blend.Compute(s.position, s.vertices)
}

// HandleSwipe applies a resolved gesture to the front card: left dismisses,
// right saves, up requests exploration, down snoozes the card to the back of
// the queue. Every direction advances past the current front.
func (s *Session) HandleSwipe(sw gesture.Swipe) (Outcome, error) {
	front, ok := s.queue.Front()
	if !ok || sw == gesture.SwipeNone {
		return Outcome{Action: ActionNone, NeedsRefill: s.queue.ShouldRefill()}, nil
	}

	var out Outcome
	out.Card = front

	switch sw {
	case gesture.SwipeLeft:
		out.Action = ActionDismissed
	case gesture.SwipeRight:
		out.Action = ActionSaved
		if err := s.persistSaved(front); err != nil {
			return out, fmt.Errorf("save idea %s: %w", front.ID, err)
		}
	case gesture.SwipeUp:
		out.Action = ActionExplore
		// Children must reference a persisted card, so the parent lands in
		// the store now even though it is not marked saved.
		if err := s.persistUnsaved(front); err != nil {
			return out, fmt.Errorf("persist explored idea %s: %w", front.ID, err)
		}
	case gesture.SwipeDown:
		out.Action = ActionSnoozed
		s.queue.Enqueue(front)
	}

	s.queue.Advance()
	out.NeedsRefill = s.queue.ShouldRefill()
	return out, nil
}

// Refill fetches a fresh batch under the current blend and appends it. A
// failed or empty round leaves the queue untouched; results that arrive after
// the user has moved on are still appended at the tail.
func (s *Session) Refill(ctx context.Context) (int, error) {
	cards, err := s.gen.NextBatch(ctx, s.Subject(), s.Weights(), s.batchCount)
	if err != nil {
		return 0, fmt.Errorf("refill: %w", err)
	}
	s.queue.Enqueue(cards...)
	return len(cards), nil
}

// Explore fetches follow-on cards for parent and appends them at the tail
// with their parent link set. Stale results (parent already swiped away) are
// appended all the same.
func (s *Session) Explore(ctx context.Context, parent models.Idea) (int, error) {
	cards, err := s.gen.Explore(ctx, parent, s.batchCount)
	if err != nil {
		return 0, fmt.Errorf("explore %s: %w", parent.ID, err)
	}
	for i := range cards {
		cards[i].WithParent(parent.ID)
	}
	s.queue.Enqueue(cards...)
	return len(cards), nil
}

func (s *Session) persistSaved(idea models.Idea) error {
	if s.store == nil {
		return nil
	}
	if err := s.persistUnsaved(idea); err != nil {
		return err
	}
	_, err := s.store.MarkSaved(idea.ID)
	return err
}

func (s *Session) persistUnsaved(idea models.Idea) error {
	if s.store == nil {
		return nil
	}
	if _, err := s.store.GetIdea(idea.ID); err == nil {
		return nil
	}
	_, err := s.store.CreateIdea(idea)
	return err
}

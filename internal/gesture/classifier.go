// Package gesture classifies continuous pointer/touch paths into swipe
// directions. One configurable classifier replaces the pair of hard-coded
// handlers the deck and the card stack each need: instantiate it with
// DefaultConfig for general swipes and VerticalOnlyConfig for the stricter
// vertical-only handler that must not steal a horizontal carousel's drags.
package gesture

import "time"

// Swipe is the resolved direction of a completed gesture.
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipeLeft
	SwipeRight
	SwipeUp
	SwipeDown
)

func (s Swipe) String() string {
	switch s {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	case SwipeUp:
		return "up"
	case SwipeDown:
		return "down"
	default:
		return "none"
	}
}

// Sample is one pointer observation.
type Sample struct {
	X float64
	Y float64
	T time.Time
}

// Config holds every threshold the classifier consults. Distances are in the
// same units as the samples (terminal cells or pixels, the classifier does
// not care).
type Config struct {
	// HorizontalLock and VerticalActivation control the vertical-biased
	// advisory sub-mode: while horizontal deviation stays under HorizontalLock
	// and vertical deviation exceeds VerticalActivation, the gesture is
	// treated as vertical for rendering purposes and the horizontal branch is
	// disabled on resolve.
	HorizontalLock     float64
	VerticalActivation float64

	// UpThreshold fires up when dy is more negative than -UpThreshold. Up is
	// checked before every other direction.
	UpThreshold float64
	// DownThreshold fires down when dy exceeds it and |dy| > |dx|.
	DownThreshold float64
	// HorizontalThreshold fires left/right when |dx| exceeds it and |dx| > |dy|.
	HorizontalThreshold float64
	// MaxHorizontalDrift, when positive, additionally requires |dx| below it
	// for up/down to fire (the near-pure-vertical variant).
	MaxHorizontalDrift float64
	// HorizontalEnabled gates the left/right branch entirely.
	HorizontalEnabled bool

	// TapTimeout distinguishes a slow tap from a swipe: a release after the
	// timeout with displacement under TapMaxDX/TapMaxDY resolves to none.
	TapTimeout time.Duration
	TapMaxDX   float64
	TapMaxDY   float64

	// MaxLift clamps the upward drag-follow offset exposed by Lift.
	MaxLift float64
}

// DefaultConfig matches the general card-swipe handler.
func DefaultConfig() Config {
	return Config{
		HorizontalLock:      30,
		VerticalActivation:  10,
		UpThreshold:         20,
		DownThreshold:       30,
		HorizontalThreshold: 50,
		HorizontalEnabled:   true,
		TapTimeout:          500 * time.Millisecond,
		TapMaxDX:            50,
		TapMaxDY:            20,
		MaxLift:             80,
	}
}

// VerticalOnlyConfig matches the stricter vertical-swipe handler: near-pure
// vertical motion only, so it never fires on a gesture a horizontal carousel
// should own.
func VerticalOnlyConfig() Config {
	cfg := DefaultConfig()
	cfg.UpThreshold = 60
	cfg.DownThreshold = 60
	cfg.MaxHorizontalDrift = 30
	cfg.HorizontalEnabled = false
	return cfg
}

type state int

const (
	stateIdle state = iota
	stateTracking
)

// Classifier consumes one pointer stream at a time. A single logical gesture
// is in flight per classifier: Start while tracking is ignored, so the first
// active pointer wins and later pointers are dropped until resolution.
type Classifier struct {
	cfg   Config
	state state

	start        Sample
	last         Sample
	moves        int
	verticalBias bool
}

// New returns an idle classifier.
func New(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Tracking reports whether a gesture is in flight.
func (c *Classifier) Tracking() bool {
	return c.state == stateTracking
}

// Start begins tracking at the given sample. Ignored while a gesture is
// already in flight.
func (c *Classifier) Start(s Sample) {
	if c.state == stateTracking {
		return
	}
	c.state = stateTracking
	c.start = s
	c.last = s
	c.moves = 0
	c.verticalBias = false
}

// Move appends a sample to the in-flight gesture. Entering the
// vertical-biased sub-mode is sticky for the remainder of the gesture.
func (c *Classifier) Move(s Sample) {
	if c.state != stateTracking {
		return
	}
	c.last = s
	c.moves++

	dx := s.X - c.start.X
	dy := s.Y - c.start.Y
	if !c.verticalBias && abs(dx) < c.cfg.HorizontalLock && abs(dy) > c.cfg.VerticalActivation {
		c.verticalBias = true
	}
}

// Lift returns the clamped upward drag-follow offset, used by the renderer to
// float the card with the finger. Zero outside the vertical-biased sub-mode
// or when the motion is downward.
func (c *Classifier) Lift() float64 {
	if c.state != stateTracking || !c.verticalBias {
		return 0
	}
	up := c.start.Y - c.last.Y
	if up < 0 {
		return 0
	}
	if up > c.cfg.MaxLift {
		return c.cfg.MaxLift
	}
	return up
}

// Provisional returns the direction the gesture currently points at, for
// visual feedback only. It applies the resolve priorities minus the tap rule
// and never terminates the gesture.
func (c *Classifier) Provisional() Swipe {
	if c.state != stateTracking || c.moves == 0 {
		return SwipeNone
	}
	return c.classify(c.last.X-c.start.X, c.last.Y-c.start.Y)
}

// End resolves the gesture and returns to idle. A release with no recorded
// movement is a cancelled gesture and resolves to none. Otherwise the
// priority order is fixed: slow short release is a tap (none), then up, then
// down, then left/right, then none.
func (c *Classifier) End(s Sample) Swipe {
	if c.state != stateTracking {
		return SwipeNone
	}
	defer c.reset()

	if c.moves == 0 {
		return SwipeNone
	}

	dx := s.X - c.start.X
	dy := s.Y - c.start.Y
	elapsed := s.T.Sub(c.start.T)

	if elapsed > c.cfg.TapTimeout && abs(dx) < c.cfg.TapMaxDX && abs(dy) < c.cfg.TapMaxDY {
		return SwipeNone
	}
	return c.classify(dx, dy)
}

func (c *Classifier) classify(dx, dy float64) Swipe {
	driftOK := c.cfg.MaxHorizontalDrift <= 0 || abs(dx) < c.cfg.MaxHorizontalDrift

	// Up wins over everything else, unconditionally.
	if dy < -c.cfg.UpThreshold && driftOK {
		return SwipeUp
	}
	if dy > c.cfg.DownThreshold && abs(dy) > abs(dx) && driftOK {
		return SwipeDown
	}
	if c.cfg.HorizontalEnabled && !c.verticalBias && abs(dx) > abs(dy) && abs(dx) > c.cfg.HorizontalThreshold {
		if dx < 0 {
			return SwipeLeft
		}
		return SwipeRight
	}
	return SwipeNone
}

func (c *Classifier) reset() {
	c.state = stateIdle
	c.moves = 0
	c.verticalBias = false
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

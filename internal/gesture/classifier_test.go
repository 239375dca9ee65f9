package gesture

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// run plays a straight-line gesture from (0,0) to (dx,dy) over dt.
func run(c *Classifier, dx, dy float64, dt time.Duration) Swipe {
	c.Start(Sample{X: 0, Y: 0, T: t0})
	c.Move(Sample{X: dx / 2, Y: dy / 2, T: t0.Add(dt / 2)})
	c.Move(Sample{X: dx, Y: dy, T: t0.Add(dt)})
	return c.End(Sample{X: dx, Y: dy, T: t0.Add(dt)})
}

func TestClassifyDirections(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		dy   float64
		dt   time.Duration
		want Swipe
	}{
		{"up beats everything", 0, -25, 200 * time.Millisecond, SwipeUp},
		{"up wins on diagonal", 80, -25, 200 * time.Millisecond, SwipeUp},
		{"right", 60, 5, 200 * time.Millisecond, SwipeRight},
		{"left", -60, 5, 200 * time.Millisecond, SwipeLeft},
		{"down", 5, 40, 200 * time.Millisecond, SwipeDown},
		{"slow short tap", 10, 10, 600 * time.Millisecond, SwipeNone},
		{"tiny ambiguous wiggle", 5, 5, 200 * time.Millisecond, SwipeNone},
		{"down needs dominance", 45, 35, 200 * time.Millisecond, SwipeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(DefaultConfig())
			if got := run(c, tt.dx, tt.dy, tt.dt); got != tt.want {
				t.Errorf("gesture dx=%v dy=%v dt=%v = %v, want %v", tt.dx, tt.dy, tt.dt, got, tt.want)
			}
		})
	}
}

func TestVerticalOnlyIsStricter(t *testing.T) {
	// dy=40 clears the loose 30-unit down bar but not the strict 60-unit one.
	c := New(VerticalOnlyConfig())
	if got := run(c, -10, 40, 200*time.Millisecond); got != SwipeNone {
		t.Errorf("loose-bar gesture under the strict classifier = %v, want none", got)
	}

	c = New(VerticalOnlyConfig())
	if got := run(c, -10, -70, 200*time.Millisecond); got != SwipeUp {
		t.Errorf("near-pure vertical up = %v, want up", got)
	}

	// Too much horizontal drift disqualifies even a big vertical delta.
	c = New(VerticalOnlyConfig())
	if got := run(c, 45, -90, 200*time.Millisecond); got != SwipeNone {
		t.Errorf("drifting vertical gesture = %v, want none", got)
	}

	// The horizontal branch never fires on the vertical-only classifier.
	c = New(VerticalOnlyConfig())
	if got := run(c, 200, 5, 200*time.Millisecond); got != SwipeNone {
		t.Errorf("horizontal gesture on vertical-only classifier = %v, want none", got)
	}
}

func TestEndWithoutSamplesIsCancelled(t *testing.T) {
	c := New(DefaultConfig())
	c.Start(Sample{X: 0, Y: 0, T: t0})
	// No Move calls: defensive cancel, no direction.
	if got := c.End(Sample{X: 100, Y: 0, T: t0.Add(100 * time.Millisecond)}); got != SwipeNone {
		t.Errorf("end without samples = %v, want none", got)
	}
	if c.Tracking() {
		t.Error("classifier should return to idle after cancel")
	}
}

func TestEndWhileIdleIsNone(t *testing.T) {
	c := New(DefaultConfig())
	if got := c.End(Sample{X: 50, Y: 0, T: t0}); got != SwipeNone {
		t.Errorf("end while idle = %v, want none", got)
	}
}

func TestFirstPointerWins(t *testing.T) {
	c := New(DefaultConfig())
	c.Start(Sample{X: 0, Y: 0, T: t0})
	c.Move(Sample{X: 30, Y: 0, T: t0.Add(50 * time.Millisecond)})
	// A second pointer-down mid-gesture is ignored; the origin stays put.
	c.Start(Sample{X: 500, Y: 500, T: t0.Add(60 * time.Millisecond)})
	c.Move(Sample{X: 60, Y: 0, T: t0.Add(100 * time.Millisecond)})
	if got := c.End(Sample{X: 60, Y: 0, T: t0.Add(150 * time.Millisecond)}); got != SwipeRight {
		t.Errorf("gesture = %v, want right (second Start ignored)", got)
	}
}

func TestVerticalBiasDisablesHorizontal(t *testing.T) {
	c := New(DefaultConfig())
	c.Start(Sample{X: 0, Y: 0, T: t0})
	// Vertical-biased sub-mode: horizontal under lock (30), vertical over activation (10).
	c.Move(Sample{X: 5, Y: -15, T: t0.Add(50 * time.Millisecond)})
	if c.Lift() != 15 {
		t.Errorf("Lift = %v, want 15", c.Lift())
	}
	// Sub-mode is sticky: even if the path swings horizontal afterwards, the
	// left/right branch stays off. This release is too small for up (dy=-15),
	// too horizontal for down, and horizontal is disabled.
	c.Move(Sample{X: 70, Y: -15, T: t0.Add(100 * time.Millisecond)})
	if got := c.End(Sample{X: 70, Y: -15, T: t0.Add(150 * time.Millisecond)}); got != SwipeNone {
		t.Errorf("vertical-biased gesture ending horizontal = %v, want none", got)
	}
}

func TestLiftClamps(t *testing.T) {
	c := New(DefaultConfig())
	c.Start(Sample{X: 0, Y: 0, T: t0})
	c.Move(Sample{X: 0, Y: -250, T: t0.Add(50 * time.Millisecond)})
	if c.Lift() != 80 {
		t.Errorf("Lift = %v, want clamp at 80", c.Lift())
	}
	c.End(Sample{X: 0, Y: -250, T: t0.Add(60 * time.Millisecond)})
	if c.Lift() != 0 {
		t.Error("Lift resets to 0 once idle")
	}
}

func TestProvisionalFeedback(t *testing.T) {
	c := New(DefaultConfig())
	if c.Provisional() != SwipeNone {
		t.Error("idle classifier has no provisional direction")
	}
	c.Start(Sample{X: 0, Y: 0, T: t0})
	c.Move(Sample{X: 60, Y: 5, T: t0.Add(50 * time.Millisecond)})
	if got := c.Provisional(); got != SwipeRight {
		t.Errorf("Provisional = %v, want right", got)
	}
}

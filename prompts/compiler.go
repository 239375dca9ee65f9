package prompts

import (
	"fmt"
	"math"
	"strings"

	"github.com/zacharylandes/fizzbit-sub000/internal/blend"
)

// Thresholds for the two independent cascades in Compile. A weight above
// dominantThreshold picks a single style branch; the time-scope line uses the
// looser scopeThreshold. blendedFloor is the cutoff for listing an axis in the
// blended style description.
const (
	dominantThreshold = 0.6
	scopeThreshold    = 0.4
	blendedFloor      = 0.2
)

// Compile builds the user-facing generation instruction from a subject and the
// current blend. It is pure string construction: any well-formed weights
// produce a prompt, and an empty subject is embedded verbatim.
func Compile(subject string, w blend.Weights, count int) string {
	var style, hook string
	switch {
	case w.Wild > dominantThreshold:
		style = "experimental, surreal, and rule-breaking — ideas that ignore convention"
		hook = "what makes this delightfully strange"
	case w.Actionable > dominantThreshold:
		style = "practical, immediate, quick-win — ideas the user can act on right away"
		hook = "why this creates momentum"
	case w.Deep > dominantThreshold:
		style = "substantial, long-term, project-oriented — ideas worth sustained effort"
		hook = "why the sustained effort pays off"
	default:
		style = blendedStyle(w)
		hook = "why this is interesting given the blend"
	}

	// Time scope is a separate cascade; a 50/50 actionable/deep split still
	// reads as quick-start because actionable is checked first.
	var scope string
	switch {
	case w.Actionable > scopeThreshold:
		scope = "Favor ideas startable in 5-30 minutes."
	case w.Deep > scopeThreshold:
		scope = "Favor ideas that unfold as a multi-week or multi-month journey."
	case w.Wild > scopeThreshold:
		scope = "Be time-agnostic; prioritize imaginative leaps over feasibility."
	default:
		scope = "Mix time commitments across the batch."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d creative ideas about %q.\n\n", count, subject)
	fmt.Fprintf(&b, "Style: %s.\n", style)
	fmt.Fprintf(&b, "Time scope: %s\n", scope)
	fmt.Fprintf(&b, "Blend: %d%% wild, %d%% actionable, %d%% deep.\n\n",
		roundPercent(w.Wild), roundPercent(w.Actionable), roundPercent(w.Deep))
	b.WriteString("Format each entry as a numbered item with:\n")
	b.WriteString("TITLE: 2-4 words\n")
	b.WriteString("IDEA: one sentence referencing the subject\n")
	fmt.Fprintf(&b, "HOOK: %s\n", hook)
	return b.String()
}

// blendedStyle lists every axis above the floor, each with its rounded share.
func blendedStyle(w blend.Weights) string {
	var parts []string
	if w.Wild > blendedFloor {
		parts = append(parts, fmt.Sprintf("wild (%d%%)", roundPercent(w.Wild)))
	}
	if w.Actionable > blendedFloor {
		parts = append(parts, fmt.Sprintf("actionable (%d%%)", roundPercent(w.Actionable)))
	}
	if w.Deep > blendedFloor {
		parts = append(parts, fmt.Sprintf("deep (%d%%)", roundPercent(w.Deep)))
	}
	if len(parts) == 0 {
		// Nothing clears the floor only when the weights are spread absurdly
		// thin; fall back to naming all three.
		return "a balanced mix of wild, actionable, and deep"
	}
	return "a blend of " + strings.Join(parts, ", ")
}

// roundPercent is round-half-up on weight*100. The three rounded shares are
// not renormalized, so they may not sum to exactly 100; that is cosmetic and
// intentional.
func roundPercent(w float64) int {
	return int(math.Floor(w*100 + 0.5))
}

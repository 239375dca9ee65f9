// Package sketch turns a text string into a reproducible vector illustration.
// The same seed text always yields byte-identical SVG output, which is what
// keeps a card's artwork stable across sessions and machines.
package sketch

import (
	"fmt"
	"math"
	"strings"
)

// Hash is a polynomial string hash with 32-bit wraparound semantics
// (h = h*31 + codepoint). Fixed-width integer overflow keeps the value
// identical across platforms; floating point would not.
func Hash(s string) int32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	return h
}

// SeededRandom returns a deterministic pseudo-random float in [0,1) for a
// seed and a draw index: frac(sin(seed*9.549 + index*7.317) * 10000).
func SeededRandom(seed int32, index int) float64 {
	v := math.Sin(float64(seed)*9.549+float64(index)*7.317) * 10000
	return v - math.Floor(v)
}

const (
	canvasSize = 400
	centerX    = 200.0
	centerY    = 200.0
)

// palettes are fill/stroke/accent triples; the seed picks one.
var palettes = [][3]string{
	{"#f4a261", "#264653", "#e76f51"},
	{"#a8dadc", "#1d3557", "#e63946"},
	{"#cdb4db", "#5a189a", "#ffafcc"},
	{"#d8f3dc", "#1b4332", "#95d5b2"},
	{"#ffe5b4", "#6d4c3d", "#c44536"},
	{"#bde0fe", "#03045e", "#ffc8dd"},
}

// Generate renders the deterministic illustration for seedText as an SVG
// document. Pure function: no I/O, no clock, no global randomness.
func Generate(seedText string) string {
	seed := Hash(seedText)
	draw := 0
	next := func() float64 {
		v := SeededRandom(seed, draw)
		draw++
		return v
	}

	palette := palettes[int(uint32(seed))%len(palettes)]
	fill, stroke, accent := palette[0], palette[1], palette[2]

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`, canvasSize, canvasSize)
	b.WriteString("\n")

	// Blob body: a jittered ring of points around the center.
	const blobPoints = 8
	b.WriteString(`<polygon fill="` + fill + `" points="`)
	for i := 0; i < blobPoints; i++ {
		angle := 2 * math.Pi * float64(i) / blobPoints
		radius := 80 + next()*60
		x := centerX + math.Cos(angle)*radius
		y := centerY + math.Sin(angle)*radius
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%.2f,%.2f", x, y)
	}
	b.WriteString(`"/>` + "\n")

	// Three squiggle strokes across the blob.
	for s := 0; s < 3; s++ {
		startY := 120 + next()*160
		fmt.Fprintf(&b, `<polyline fill="none" stroke="%s" stroke-width="3" points="`, stroke)
		for i := 0; i <= 6; i++ {
			x := 60 + float64(i)*(280.0/6)
			y := startY + (next()-0.5)*50
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%.2f,%.2f", x, y)
		}
		b.WriteString(`"/>` + "\n")
	}

	// Accent dots scattered over the canvas.
	for d := 0; d < 5; d++ {
		x := 40 + next()*320
		y := 40 + next()*320
		r := 4 + next()*8
		fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n", x, y, r, accent)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// Package blend maps a draggable 2D position inside a triangle to a
// three-way weighting over idea styles: wild, actionable, deep.
package blend

import "math"

// maxDistance bounds the coordinate space. Distances are converted to weights
// via max(0, maxDistance-d)/maxDistance, so a marker sitting on a vertex gives
// that vertex a weight near 1.
const maxDistance = 100.0

// Point is a position in the normalized 0-100 triangle space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vertices are the three fixed corners of the blend triangle.
type Vertices struct {
	Wild       Point
	Actionable Point
	Deep       Point
}

// DefaultVertices is an equilateral triangle in 0-100 space: wild at the top
// center, actionable bottom-left, deep bottom-right.
var DefaultVertices = Vertices{
	Wild:       Point{X: 50, Y: 8},
	Actionable: Point{X: 7, Y: 82.5},
	Deep:       Point{X: 93, Y: 82.5},
}

// Weights is a normalized three-way blend. All components are >= 0 and sum
// to 1 within floating epsilon.
type Weights struct {
	Wild       float64 `json:"wild"`
	Actionable float64 `json:"actionable"`
	Deep       float64 `json:"deep"`
}

// Compute derives blend weights from the marker position. Each vertex
// contributes max(0, maxDistance-d)/maxDistance, then the three contributions
// are normalized by their sum. If every contribution is zero (the marker is
// farther than maxDistance from all vertices) the split is an even third each.
func Compute(p Point, v Vertices) Weights {
	ww := rawWeight(p, v.Wild)
	wa := rawWeight(p, v.Actionable)
	wd := rawWeight(p, v.Deep)

	total := ww + wa + wd
	if total == 0 {
		return Weights{Wild: 1.0 / 3, Actionable: 1.0 / 3, Deep: 1.0 / 3}
	}
	return Weights{
		Wild:       ww / total,
		Actionable: wa / total,
		Deep:       wd / total,
	}
}

func rawWeight(p, vertex Point) float64 {
	d := math.Hypot(p.X-vertex.X, p.Y-vertex.Y)
	return math.Max(0, maxDistance-d) / maxDistance
}

// Dominant reports which axis exceeds the threshold, or "" when no single
// weight dominates.
func (w Weights) Dominant(threshold float64) string {
	switch {
	case w.Wild > threshold:
		return "wild"
	case w.Actionable > threshold:
		return "actionable"
	case w.Deep > threshold:
		return "deep"
	}
	return ""
}

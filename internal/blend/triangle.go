package blend

// InTriangle reports whether p lies inside (or on the boundary of) the
// triangle, via the barycentric sign test: all three coefficients >= 0.
func InTriangle(p Point, v Vertices) bool {
	a, b, c := v.Wild, v.Actionable, v.Deep

	denom := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if denom == 0 {
		// Degenerate triangle has no interior.
		return false
	}
	l1 := ((b.Y-c.Y)*(p.X-c.X) + (c.X-b.X)*(p.Y-c.Y)) / denom
	l2 := ((c.Y-a.Y)*(p.X-c.X) + (a.X-c.X)*(p.Y-c.Y)) / denom
	l3 := 1 - l1 - l2

	return l1 >= 0 && l2 >= 0 && l3 >= 0
}

// ClampToTriangle returns p unchanged when it is inside the triangle;
// otherwise it returns the closest point on the triangle's boundary. The
// candidate per edge is the projection of p onto the finite segment, with the
// projection parameter clamped to [0,1]. Comparison uses squared distance.
func ClampToTriangle(p Point, v Vertices) Point {
	if InTriangle(p, v) {
		return p
	}

	edges := [3][2]Point{
		{v.Wild, v.Actionable},
		{v.Actionable, v.Deep},
		{v.Deep, v.Wild},
	}

	best := v.Wild
	bestDist := distSq(p, best)
	for _, e := range edges {
		c := closestOnSegment(p, e[0], e[1])
		if d := distSq(p, c); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

// closestOnSegment projects p onto segment ab, clamping to the endpoints. A
// zero-length segment is treated as the single point a.
func closestOnSegment(p, a, b Point) Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point{X: a.X + t*dx, Y: a.Y + t*dy}
}

func distSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

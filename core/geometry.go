package core

// SegmentsIntersect reports whether the closed segments a1–a2 and b1–b2
// share at least one point. Touching endpoints and collinear overlap count.
// Complexity: O(1).
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := orientation(b1, b2, a1)
	d2 := orientation(b1, b2, a2)
	d3 := orientation(a1, a2, b1)
	d4 := orientation(a1, a2, b2)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}

	// Collinear or touching cases.
	switch {
	case d1 == 0 && onSegment(b1, b2, a1):
		return true
	case d2 == 0 && onSegment(b1, b2, a2):
		return true
	case d3 == 0 && onSegment(a1, a2, b1):
		return true
	case d4 == 0 && onSegment(a1, a2, b2):
		return true
	}

	return false
}

// orientation returns the sign of the cross product (q-p)×(r-p):
// +1 counter-clockwise, -1 clockwise, 0 collinear.
func orientation(p, q, r Point) int {
	v := (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// onSegment assumes r is collinear with p–q.
func onSegment(p, q, r Point) bool {
	return r.X >= min(p.X, q.X) && r.X <= max(p.X, q.X) &&
		r.Y >= min(p.Y, q.Y) && r.Y <= max(p.Y, q.Y)
}

package sausage

// maxFlattenDepth bounds the subdivision recursion for degenerate curves.
const maxFlattenDepth = 16

// Flatten replaces all Bézier segments of the path by lines that deviate at
// most flatness from the original curve, and returns the result as a new path.
func (p *Path) Flatten(flatness float64) *Path {
	q := &Path{}
	var start Point
	s := p.Scanner()
	for s.Scan() {
		end := s.End()
		switch s.Cmd() {
		case MoveToCmd:
			q.MoveTo(end.X, end.Y)
		case LineToCmd:
			q.LineTo(end.X, end.Y)
		case QuadToCmd:
			cp1, cp2 := quadraticToCubicBezier(start, s.CP1(), end)
			flattenCubic(q, start, cp1, cp2, end, flatness, 0)
		case CubeToCmd:
			flattenCubic(q, start, s.CP1(), s.CP2(), end, flatness, 0)
		case CloseCmd:
			q.Close()
		}
		start = end
	}
	return q
}

// flattenCubic subdivides the curve until each piece deviates at most flatness
// from its chord, appending line segments to q.
func flattenCubic(q *Path, p0, p1, p2, p3 Point, flatness float64, depth int) {
	if maxFlattenDepth <= depth || cubicFlat(p0, p1, p2, p3, flatness) {
		q.LineTo(p3.X, p3.Y)
		return
	}
	q0, q1, q2, q3, r0, r1, r2, r3 := splitCubic(p0, p1, p2, p3, 0.5)
	flattenCubic(q, q0, q1, q2, q3, flatness, depth+1)
	flattenCubic(q, r0, r1, r2, r3, flatness, depth+1)
}

// cubicFlat is true when both control points lie within flatness of the chord.
func cubicFlat(p0, p1, p2, p3 Point, flatness float64) bool {
	chord := p3.Sub(p0)
	chord2 := chord.Dot(chord)
	if chord2 == 0.0 {
		return p1.Sub(p0).Length() <= flatness && p2.Sub(p0).Length() <= flatness
	}
	d1 := chord.PerpDot(p1.Sub(p0))
	d2 := chord.PerpDot(p2.Sub(p0))
	return d1*d1+d2*d2 <= flatness*flatness*chord2
}

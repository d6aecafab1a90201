package sausage

// cubicParameters converts the four control points of a cubic Bézier into the
// coefficients of its parametric polynomial B(t) = a·t³ + b·t² + c·t + d.
func cubicParameters(p0, p1, p2, p3 Point) (Point, Point, Point, Point) {
	d := p0
	c := p1.Sub(d).Mul(3.0)
	b := p2.Sub(p1).Mul(3.0).Sub(c)
	a := p3.Sub(d).Sub(c).Sub(b)
	return a, b, c, d
}

// cubicAtLength approximates the parameter t at which the given length has
// been traveled along the curve from its start, using the speed at t=0 as a
// constant-speed approximation. The error grows for highly curved segments or
// when length is large relative to the curve.
func cubicAtLength(p0, p1, p2, p3 Point, length float64) float64 {
	_, _, c, _ := cubicParameters(p0, p1, p2, p3)
	speed := c.Length() // B'(0) = c
	if speed == 0.0 {
		return 0.0
	}
	return length / speed
}

// splitCubic splits the cubic Bézier at t into two cubics using de Casteljau's
// algorithm. The first curve ends where the second begins.
func splitCubic(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}

// cutCubic returns the piece of the cubic Bézier between parameters t0 and t1,
// discarding the parts before t0 and after t1.
func cutCubic(p0, p1, p2, p3 Point, t0, t1 float64) (Point, Point, Point, Point) {
	if t0 != 0.0 {
		_, _, _, _, p0, p1, p2, p3 = splitCubic(p0, p1, p2, p3, t0)
		t1 = (t1 - t0) / (1.0 - t0)
	}
	q0, q1, q2, q3, _, _, _, _ := splitCubic(p0, p1, p2, p3, t1)
	return q0, q1, q2, q3
}

// cutLine returns the point at the given length along the line from p0 towards
// p1, or p0 itself when the line has no length.
func cutLine(p0, p1 Point, length float64) Point {
	d := p1.Sub(p0).Length()
	if d == 0.0 {
		return p0
	}
	return p0.Interpolate(p1, length/d)
}

// quadraticToCubicBezier returns the control points of the equivalent cubic
// Bézier for the quadratic Bézier p0,p1,p2.
func quadraticToCubicBezier(p0, p1, p2 Point) (Point, Point) {
	c1 := p0.Interpolate(p1, 2.0/3.0)
	c2 := p2.Interpolate(p1, 2.0/3.0)
	return c1, c2
}

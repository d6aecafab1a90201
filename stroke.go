package sausage

import "math"

// Kappa is the Bézier handle length ratio that approximates a quarter circle
// with a single cubic Bézier.
const Kappa = 4.0 * (math.Sqrt2 - 1.0) / 3.0

// curveCorrection widens caps and knots to compensate for the visual
// undersizing of Bézier-approximated arcs.
const curveCorrection = 1.25

// offset returns p moved by distance along dir. dir is usually a unit normal
// but does not need to be one.
func offset(p, dir Point, distance float64) Point {
	return p.Add(dir.Mul(distance))
}

// arcControl places a Bézier control point at distance radius·Kappa along n
// from p, for approximating a circular arc of the given radius.
func arcControl(p, n Point, radius float64) Point {
	return p.Add(n.Mul(radius * Kappa))
}

// strokeLine emits the capsule contour for the line segment p0-p1 into the
// sink. The segment is trimmed by radius+margin at p0 and by radius at p1.
// Segments shorter than the radius are skipped, as are segments without a
// direction.
func (t *Tracer) strokeLine(p0, p1 Point, margin float64) {
	r := t.radius
	if p1.Sub(p0).Length() < r {
		return
	}

	p0 = cutLine(p0, p1, r+margin)
	p1 = cutLine(p1, p0, r)

	n := p0.Sub(p1).Norm(1.0)
	if n.IsZero() {
		return
	}
	m := n.Rot90CW()

	start := offset(p0, m, -r)
	t.dst.MoveTo(start.X, start.Y)
	t.capTo(p0, n, m, r)
	side := offset(p1, m, r)
	t.dst.LineTo(side.X, side.Y)
	t.capTo(p1, n, m, -r)
	t.dst.Close()
}

// strokeCubic emits the capsule contour for the cubic Bézier segment
// p0,p1,p2,p3 into the sink, trimmed like strokeLine. Curves whose chord is
// shorter than the radius, or with a control point on its anchor, are too
// short or too degenerate to offset and are skipped.
func (t *Tracer) strokeCubic(p0, p1, p2, p3 Point, margin float64) {
	r := t.radius
	if p3.Sub(p0).Length() < r {
		return
	}
	if p0 == p1 || p2 == p3 {
		return
	}

	s1 := cubicAtLength(p0, p1, p2, p3, r+margin)
	s2 := 1.0 - cubicAtLength(p3, p2, p1, p0, r)
	p0, p1, p2, p3 = cutCubic(p0, p1, p2, p3, s1, s2)

	n1 := p0.Sub(p1).Norm(1.0) // tangent reversed at the start
	n2 := p3.Sub(p2).Norm(1.0) // tangent at the end
	if n1.IsZero() || n2.IsZero() {
		return
	}
	m1 := n1.Rot90CW()
	m2 := n2.Rot90CW()

	chord := p3.Sub(p0).Length()

	start := offset(p0, m1, -r)
	t.dst.MoveTo(start.X, start.Y)
	t.capTo(p0, n1, m1, r)
	t.curveSideTo(p0, p1, p2, p3, m1, m2, chord, r)
	t.capTo(p3, n2, m2, r)
	t.curveSideTo(p3, p2, p1, p0, m2, m1, chord, r)
	t.dst.Close()
}

// capTo continues the contour with a half circle around pivot p, from the side
// offset at -radius·m to the side offset at radius·m, bulging along n. The cap
// is two Bézier quarter arcs widened by the curve correction.
func (t *Tracer) capTo(p, n, m Point, radius float64) {
	a := offset(p, m, -radius)
	d := offset(p, n, radius*curveCorrection)
	b := arcControl(a, n.Neg(), -radius*curveCorrection)
	c := arcControl(d, m, -radius*curveCorrection)
	t.dst.CubeTo(b.X, b.Y, c.X, c.Y, d.X, d.Y)

	g := offset(p, m, radius)
	e := arcControl(d, m, radius*curveCorrection)
	f := arcControl(g, n, radius*curveCorrection)
	t.dst.CubeTo(e.X, e.Y, f.X, f.Y, g.X, g.Y)
}

// curveSideTo continues the contour with the offset of the curve p0,p1,p2,p3
// at distance radius along the normals m1 and m2. The offset is approximate:
// the offset end points are placed exactly, and the control points are
// interpolated along the original handles scaled by the ratio of the offset
// chord to the original chord. The approximation holds for moderate curvature
// and small radius relative to the segment length.
func (t *Tracer) curveSideTo(p0, p1, p2, p3, m1, m2 Point, chord, radius float64) {
	a := offset(p0, m1, radius)
	d := offset(p3, m2, -radius)

	scale := d.Sub(a).Length() / chord

	cp1 := p0.Interpolate(p1, scale)
	cp2 := p3.Interpolate(p2, scale)
	b := offset(cp1, m1, radius)
	c := offset(cp2, m2, -radius)
	t.dst.CubeTo(b.X, b.Y, c.X, c.Y, d.X, d.Y)
}

// knot emits a small lens-shaped contour covering pivot, oriented away from
// toward, into the sink. It marks isolated points and the open ends of
// unterminated subpaths. Without a defined direction the lens lies along the
// x-axis.
func (t *Tracer) knot(pivot, toward Point) {
	n := toward.Sub(pivot).Norm(1.0)
	if n.IsZero() {
		n = Point{1.0, 0.0}
	}
	m := n.Rot90CW()

	o1 := m.Mul(-0.1)
	o2 := n.Mul(0.5).Sub(m.Mul(0.25))
	o3 := n.Mul(0.5).Add(m.Mul(0.25))
	o4 := m.Mul(0.1)

	r := -t.radius * curveCorrection
	a := offset(pivot, o1, r)
	b := offset(pivot, o2, r)
	c := offset(pivot, o3, r)
	d := offset(pivot, o4, r)

	t.dst.MoveTo(a.X, a.Y)
	t.dst.LineTo(b.X, b.Y)
	t.dst.LineTo(c.X, c.Y)
	t.dst.LineTo(d.X, d.Y)
	t.dst.Close()
}

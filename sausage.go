// Package sausage strokes glyph outlines as strands of constant-width tubing.
// Every line and cubic Bézier segment of the outline is rendered as a capsule,
// a stroke of constant radius with rounded caps, shortened at sharp corners so
// that consecutive capsules do not visibly overlap, and every subpath end that
// is left open is covered by a small rounded knot.
package sausage

import (
	"fmt"
	"math"
)

// Pen receives outline operations from a provider such as a glyph contour
// iterator. A subpath starts with MoveTo and is terminated by Close when it
// closes onto its start point, or by End when it is left open.
type Pen interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cpx, cpy, x, y float64)
	CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64)
	Close()
	End()
}

// Sink receives the emitted capsule and knot contours. Every emitted contour
// is closed; End is never called on a sink.
type Sink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64)
	Close()
}

// Outline is a source of outline operations.
type Outline interface {
	Draw(Pen)
}

// Trace strokes the outline as capsules of the given radius into dst. A
// subpath left open at the end of the outline is finished as an open end.
func Trace(outline Outline, dst Sink, radius float64) error {
	t, err := NewTracer(dst, radius)
	if err != nil {
		return err
	}
	outline.Draw(t)
	return t.Finish()
}

// Tracer is a Pen that emits a capsule contour into the sink for every line
// and curve segment it receives, and a knot contour wherever a subpath ends
// without closing. It holds no state beyond the current traversal; emitted
// contours are owned by the sink and never retained.
type Tracer struct {
	dst    Sink
	radius float64

	in      bool // inside a subpath
	hasPrev bool // a previous segment exists in this subpath
	current Point
	first   Point
	prev    Point // interior point of the previous segment
	err     error
}

// NewTracer returns a Tracer that strokes the outline operations it receives
// into dst. The radius must not be negative.
func NewTracer(dst Sink, radius float64) (*Tracer, error) {
	if radius < 0.0 {
		return nil, fmt.Errorf("bad radius %v: must not be negative", radius)
	}
	return &Tracer{dst: dst, radius: radius}, nil
}

// MoveTo starts a new subpath at (x,y). A subpath still open is finished as an
// open end first.
func (t *Tracer) MoveTo(x, y float64) {
	if t.err != nil {
		return
	}
	if t.in {
		t.End()
	}
	t.current = Point{x, y}
	t.first = t.current
	t.in = true
	t.hasPrev = false
}

// LineTo strokes a line segment to (x,y) as a capsule.
func (t *Tracer) LineTo(x, y float64) {
	if t.err != nil {
		return
	}
	if !t.in {
		t.err = fmt.Errorf("bad outline: line segment before move")
		return
	}
	p0, p1 := t.current, Point{x, y}
	t.strokeLine(p0, p1, t.margin(p0, p1))
	t.prev, t.hasPrev = p0, true
	t.current = p1
}

// QuadTo strokes a quadratic Bézier segment as a capsule by first promoting it
// to a cubic one.
func (t *Tracer) QuadTo(cpx, cpy, x, y float64) {
	if t.err != nil {
		return
	}
	if !t.in {
		t.err = fmt.Errorf("bad outline: curve segment before move")
		return
	}
	cp1, cp2 := quadraticToCubicBezier(t.current, Point{cpx, cpy}, Point{x, y})
	t.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, x, y)
}

// CubeTo strokes a cubic Bézier segment to (x,y) as a capsule.
func (t *Tracer) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	if t.err != nil {
		return
	}
	if !t.in {
		t.err = fmt.Errorf("bad outline: curve segment before move")
		return
	}
	p0 := t.current
	cp1, cp2, p3 := Point{cpx1, cpy1}, Point{cpx2, cpy2}, Point{x, y}
	t.strokeCubic(p0, cp1, cp2, p3, t.margin(p0, cp1))
	t.prev, t.hasPrev = cp2, true
	t.current = p3
}

// Close closes the current subpath, stroking the implicit closing line segment
// when the current point has not returned to the subpath's start.
func (t *Tracer) Close() {
	if t.err != nil {
		return
	}
	if !t.in {
		t.err = fmt.Errorf("bad outline: close before move")
		return
	}
	if !t.current.Equals(t.first) {
		t.LineTo(t.first.X, t.first.Y)
	}
	t.in = false
	t.hasPrev = false
}

// End finishes the current subpath as an open end, covering it with a knot.
// A subpath consisting of a single point gets a knot as well.
func (t *Tracer) End() {
	if t.err != nil {
		return
	}
	if !t.in {
		t.err = fmt.Errorf("bad outline: end before move")
		return
	}
	toward := t.current // isolated point, no direction
	if t.hasPrev {
		toward = t.prev
	}
	t.knot(t.current, toward)
	t.in = false
	t.hasPrev = false
}

// Finish terminates a subpath left open by the outline and returns the first
// error encountered during the traversal.
func (t *Tracer) Finish() error {
	if t.err == nil && t.in {
		t.End()
	}
	return t.err
}

// margin returns the signed length by which the segment from p0 towards p1
// must be shortened so that its capsule does not poke past the corner at p0.
// It is zero for the first segment of a subpath and for straight or undefined
// corners, and negative when the corner widens beyond a straight angle.
func (t *Tracer) margin(p0, p1 Point) float64 {
	if !t.hasPrev {
		return 0.0
	}
	theta, ok := vertexAngle(t.prev, p0, p1)
	if !ok || equal(theta, math.Pi) {
		return 0.0
	}
	return solveTriangleSSA(theta, 2.0*t.radius, t.radius) - t.radius
}

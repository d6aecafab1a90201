package sausage

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for comparing coordinates and angles.
var Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Rot90CW rotates the line OP by 90 degrees CW.
func (p Point) Rot90CW() Point {
	return Point{p.Y, -p.X}
}

// Rot90CCW rotates the line OP by 90 degrees CCW.
func (p Point) Rot90CCW() Point {
	return Point{-p.Y, p.X}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Norm normalizes OP to be of certain length. The zero point normalizes to
// itself, signaling that no direction is defined.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle with corner (X,Y) and size (W,H).
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.X+r.W, r.Y+r.H)
}

////////////////////////////////////////////////////////////////

// vertexAngle returns the angle at vertex b between a and c using the law of
// cosines. The angle is in [0,PI]. It returns false when b coincides with a or
// with c, or when floating error pushes the cosine outside [-1,1]; callers
// must treat that as "no angle defined", not as a failure.
func vertexAngle(a, b, c Point) (float64, bool) {
	ab := b.Sub(a).Length()
	bc := c.Sub(b).Length()
	ac := c.Sub(a).Length()
	if ab == 0.0 || bc == 0.0 {
		return 0.0, false
	}
	cosTheta := (bc*bc + ab*ab - ac*ac) / (2.0 * bc * ab)
	if cosTheta < -1.0 || 1.0 < cosTheta {
		return 0.0, false
	}
	return math.Acos(cosTheta), true
}

// solveTriangleSSA solves the side-side-angle triangle with angle opposite
// knownSide and returns the side opposite the third angle using the law of
// sines. It returns 0 for a degenerate angle.
func solveTriangleSSA(angle, knownSide, partialSide float64) float64 {
	sinTheta := math.Sin(angle)
	if sinTheta == 0.0 {
		return 0.0
	}
	ratio := knownSide / sinTheta
	if ratio == 0.0 {
		return 0.0
	}
	partialAngle := math.Asin(partialSide / ratio)
	return ratio * math.Sin(math.Pi-angle-partialAngle)
}

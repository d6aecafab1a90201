package sausage

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	test.That(t, p.Empty())

	p.MoveTo(5, 2)
	test.That(t, p.Empty())

	p.LineTo(6, 2)
	test.That(t, !p.Empty())
}

func TestPathClosed(t *testing.T) {
	test.That(t, !MustParseSVG("M5 0L5 10").Closed())
	test.That(t, MustParseSVG("M5 0L5 10z").Closed())
	test.That(t, !MustParseSVG("M5 0L5 10zM5 10").Closed())
	test.That(t, MustParseSVG("M5 0L5 10zM5 10z").Closed())
}

func TestPathEquals(t *testing.T) {
	test.That(t, !MustParseSVG("M5 0L5 10").Equals(MustParseSVG("M5 0")))
	test.That(t, !MustParseSVG("M5 0L5 10").Equals(MustParseSVG("M5 0M5 10")))
	test.That(t, !MustParseSVG("M5 0L5 10").Equals(MustParseSVG("M5 0L5 9")))
	test.That(t, MustParseSVG("M5 0L5 10").Equals(MustParseSVG("M5 0L5 10")))
}

func TestPathPosStart(t *testing.T) {
	p := MustParseSVG("M5 5L10 5zM20 20L30 20")
	test.T(t, p.Pos(), Point{30, 20})
	test.T(t, p.Start(), Point{20, 20})

	p = &Path{}
	test.T(t, p.Pos(), Point{})
	test.T(t, p.Start(), Point{})
}

func TestPathParseSVG(t *testing.T) {
	var tts = []struct {
		orig string
		res  string
	}{
		{"", ""},
		{"M10 0L20 0", "M10 0L20 0"},
		{"m10 0l10 0", "M10 0L20 0"},
		{"M10 0 20 0", "M10 0M20 0"},
		{"L10 0z", "M0 0L10 0z"},
		{"H10V10", "M0 0L10 0L10 10"},
		{"h10v10", "M0 0L10 0L10 10"},
		{"M10,0L20,,0", "M10 0L20 0"},
		{"M 10 0 L 20 0", "M10 0L20 0"},
		{"C0 10 10 10 10 0", "M0 0C0 10 10 10 10 0"},
		{"c0 10 10 10 10 0", "M0 0C0 10 10 10 10 0"},
		{"C0 10 10 10 10 0S20 -10 20 0", "M0 0C0 10 10 10 10 0C10 -10 20 -10 20 0"},
		{"c0 10 10 10 10 0s10 -10 10 0", "M0 0C0 10 10 10 10 0C10 -10 20 -10 20 0"},
		{"L10 0S20 10 30 0", "M0 0L10 0C10 0 20 10 30 0"},
		{"Q5 10 10 0", "M0 0Q5 10 10 0"},
		{"q5 10 10 0", "M0 0Q5 10 10 0"},
		{"Q5 10 10 0T20 0", "M0 0Q5 10 10 0Q15 -10 20 0"},
		{"q5 10 10 0t10 0", "M0 0Q5 10 10 0Q15 -10 20 0"},
		{"L10 0T20 0", "M0 0L10 0Q10 0 20 0"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p, err := ParseSVG(tt.orig)
			test.Error(t, err)
			test.T(t, p, MustParseSVG(tt.res))
		})
	}
}

func TestPathParseSVGErrors(t *testing.T) {
	var tts = []struct {
		orig string
		err  string
	}{
		{"5", "bad path: path should start with command"},
		{"MM", "bad path: 2 numbers should follow command 'M' at position 1"},
		{"L10", "bad path: 2 numbers should follow command 'L' at position 1"},
		{"M0 0~", "bad path: unknown command '~' at position 5"},
		{"A10 10 0 0 0 40 0", "bad path: arc command 'A' not supported at position 1"},
		{"M0 0a10 10 0 0 0 40 0", "bad path: arc command 'a' not supported at position 5"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			_, err := ParseSVG(tt.orig)
			test.That(t, err != nil)
			test.T(t, err.Error(), tt.err)
		})
	}
}

func TestPathToSVG(t *testing.T) {
	var tts = []struct {
		orig string
		s    string
	}{
		{"", ""},
		{"M10 0L20 0", "M10 0H20"},
		{"M10 0L10 10", "M10 0V10"},
		{"M5 5L5 5", "M5 5"},
		{"L10 10z", "M0 0L10 10z"},
		{"Q5 10 10 0", "M0 0Q5 10 10 0"},
		{"C0 10 10 10 10 0", "M0 0C0 10 10 10 10 0"},
		{"M10 0L20 0Q25 10 30 0C30 10 40 10 40 0z", "M10 0H20Q25 10 30 0C30 10 40 10 40 0z"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			test.T(t, MustParseSVG(tt.orig).ToSVG(), tt.s)
		})
	}
}

func TestPathSplit(t *testing.T) {
	ps := MustParseSVG("M1 1L2 2zM3 3L4 4").Split()
	test.T(t, len(ps), 2)
	test.That(t, ps[0].Equals(MustParseSVG("M1 1L2 2z")))
	test.That(t, ps[1].Equals(MustParseSVG("M3 3L4 4")))
}

func TestPathCoords(t *testing.T) {
	coords := MustParseSVG("M1 1L2 2Q3 3 4 4z").Coords()
	test.T(t, len(coords), 3)
	test.T(t, coords[0], Point{1, 1})
	test.T(t, coords[1], Point{2, 2})
	test.T(t, coords[2], Point{4, 4})
}

func TestPathAppend(t *testing.T) {
	p := MustParseSVG("M1 1L2 2")
	q := MustParseSVG("M3 3L4 4")
	test.That(t, p.Append(q).Equals(MustParseSVG("M1 1L2 2M3 3L4 4")))
	test.That(t, p.Append(nil).Equals(p))
	test.That(t, (&Path{}).Append(q).Equals(q))
}

func TestPathFastBounds(t *testing.T) {
	test.T(t, (&Path{}).FastBounds(), Rect{})
	test.T(t, MustParseSVG("M0 0L10 5").FastBounds(), Rect{0, 0, 10, 5})

	// control points count as extremes
	test.T(t, MustParseSVG("C0 20 10 20 10 0").FastBounds(), Rect{0, 0, 10, 20})
	test.T(t, MustParseSVG("M0 0Q5 -10 10 0").FastBounds(), Rect{0, -10, 10, 10})
}

func TestPathScanner(t *testing.T) {
	s := MustParseSVG("M1 2Q3 4 5 6C7 8 9 10 11 12z").Scanner()

	test.That(t, s.Scan())
	test.T(t, s.Cmd(), float64(MoveToCmd))
	test.T(t, s.Start(), Point{})
	test.T(t, s.End(), Point{1, 2})

	test.That(t, s.Scan())
	test.T(t, s.Cmd(), float64(QuadToCmd))
	test.T(t, s.Start(), Point{1, 2})
	test.T(t, s.CP1(), Point{3, 4})
	test.T(t, s.End(), Point{5, 6})

	test.That(t, s.Scan())
	test.T(t, s.Cmd(), float64(CubeToCmd))
	test.T(t, s.Start(), Point{5, 6})
	test.T(t, s.CP1(), Point{7, 8})
	test.T(t, s.CP2(), Point{9, 10})
	test.T(t, s.End(), Point{11, 12})

	test.That(t, s.Scan())
	test.T(t, s.Cmd(), float64(CloseCmd))
	test.T(t, s.End(), Point{1, 2})

	test.That(t, !s.Scan())
}

type penOp struct {
	op     string
	coords []Point
}

// recordPen records pen operations for inspection.
type recordPen struct {
	ops []penOp
}

func (p *recordPen) MoveTo(x, y float64) {
	p.ops = append(p.ops, penOp{"M", []Point{{x, y}}})
}

func (p *recordPen) LineTo(x, y float64) {
	p.ops = append(p.ops, penOp{"L", []Point{{x, y}}})
}

func (p *recordPen) QuadTo(cpx, cpy, x, y float64) {
	p.ops = append(p.ops, penOp{"Q", []Point{{cpx, cpy}, {x, y}}})
}

func (p *recordPen) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	p.ops = append(p.ops, penOp{"C", []Point{{cpx1, cpy1}, {cpx2, cpy2}, {x, y}}})
}

func (p *recordPen) Close() {
	p.ops = append(p.ops, penOp{"z", nil})
}

func (p *recordPen) End() {
	p.ops = append(p.ops, penOp{"E", nil})
}

func (p *recordPen) String() string {
	s := ""
	for _, op := range p.ops {
		s += op.op
		for _, coord := range op.coords {
			s += coord.String()
		}
	}
	return s
}

func TestPathDraw(t *testing.T) {
	pen := &recordPen{}
	MustParseSVG("M0 0L10 0zM20 0L30 0M40 0").Draw(pen)
	test.T(t, fmt.Sprint(pen), "M(0,0)L(10,0)zM(20,0)L(30,0)EM(40,0)E")
}

func TestPathFlatten(t *testing.T) {
	// lines pass through unchanged
	p := MustParseSVG("M0 0L10 0z")
	test.That(t, p.Flatten(0.1).Equals(p))

	f := MustParseSVG("M0 0Q5 10 10 0").Flatten(0.1)
	lines := 0
	for s := f.Scanner(); s.Scan(); {
		switch s.Cmd() {
		case QuadToCmd, CubeToCmd:
			test.Fail(t, "not flat")
		case LineToCmd:
			lines++
		}
	}
	test.That(t, 2 <= lines)
	test.T(t, f.Pos(), Point{10, 0})
}

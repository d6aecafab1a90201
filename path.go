package sausage

import "fmt"

// Path commands, stored in the path data before and after their arguments so
// that the data can be scanned in both directions.
const (
	MoveToCmd = 1.0
	LineToCmd = 2.0
	QuadToCmd = 4.0
	CubeToCmd = 8.0
	CloseCmd  = 16.0
)

// cmdLen returns the number of values in the path data for the given command.
func cmdLen(cmd float64) int {
	switch cmd {
	case MoveToCmd, LineToCmd, CloseCmd:
		return 4
	case QuadToCmd:
		return 6
	case CubeToCmd:
		return 8
	}
	panic(fmt.Sprintf("unknown path command '%v'", cmd))
}

// Path is a sequence of subpaths built from move, line and Bézier commands.
// Subpaths that end in a close command are closed; other subpaths are open.
// The zero value is an empty path ready for use. A Path is both an Outline
// (it replays itself onto a Pen) and a Sink (capsule and knot contours can be
// collected into it), and it satisfies the glyph outline consumer interface of
// github.com/tdewolff/font.
type Path struct {
	d []float64
}

// Empty returns true if the path contains no segments, ie. it contains at most
// a single move command.
func (p *Path) Empty() bool {
	return p == nil || len(p.d) <= cmdLen(MoveToCmd)
}

// Closed returns true if the last subpath of the path is a closed path.
func (p *Path) Closed() bool {
	return 0 < len(p.d) && p.d[len(p.d)-1] == CloseCmd
}

// Pos returns the current position of the path, which is the end point of the
// last command.
func (p *Path) Pos() Point {
	if 0 < len(p.d) {
		return Point{p.d[len(p.d)-3], p.d[len(p.d)-2]}
	}
	return Point{}
}

// Start returns the start point of the current subpath, ie. the position of
// the last move command.
func (p *Path) Start() Point {
	for i := len(p.d); 0 < i; {
		cmd := p.d[i-1]
		if cmd == MoveToCmd {
			return Point{p.d[i-3], p.d[i-2]}
		}
		i -= cmdLen(cmd)
	}
	return Point{}
}

// MoveTo moves the path to (x,y) and starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	p.d = append(p.d, MoveToCmd, x, y, MoveToCmd)
}

// LineTo adds a line segment to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.d = append(p.d, LineToCmd, x, y, LineToCmd)
}

// QuadTo adds a quadratic Bézier with control point (cpx,cpy) ending at (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	p.d = append(p.d, QuadToCmd, cpx, cpy, x, y, QuadToCmd)
}

// CubeTo adds a cubic Bézier with control points (cpx1,cpy1) and (cpx2,cpy2)
// ending at (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	p.d = append(p.d, CubeToCmd, cpx1, cpy1, cpx2, cpy2, x, y, CubeToCmd)
}

// Close closes the current subpath with a line back to its start point.
func (p *Path) Close() {
	start := p.Start()
	p.d = append(p.d, CloseCmd, start.X, start.Y, CloseCmd)
}

// Append appends path q to p and returns a new path.
func (p *Path) Append(q *Path) *Path {
	if q == nil || len(q.d) == 0 {
		return p
	} else if p == nil || len(p.d) == 0 {
		return q
	}
	return &Path{append(append([]float64{}, p.d...), q.d...)}
}

// Coords returns the on-curve end coordinates of all commands in the path.
func (p *Path) Coords() []Point {
	coords := []Point{}
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		i += cmdLen(cmd)
		if cmd != CloseCmd {
			coords = append(coords, Point{p.d[i-3], p.d[i-2]})
		}
	}
	return coords
}

// Split splits the path into its subpaths.
func (p *Path) Split() []*Path {
	ps := []*Path{}
	var i, j int
	for j < len(p.d) {
		cmd := p.d[j]
		if i < j && cmd == MoveToCmd {
			ps = append(ps, &Path{p.d[i:j:j]})
			i = j
		}
		j += cmdLen(cmd)
	}
	if i < j {
		ps = append(ps, &Path{p.d[i:j:j]})
	}
	return ps
}

// Equals returns true if p and q have the same commands and coordinates within
// tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if len(p.d) != len(q.d) {
		return false
	}
	for i := 0; i < len(p.d); i++ {
		if !equal(p.d[i], q.d[i]) {
			return false
		}
	}
	return true
}

// FastBounds returns a conservative bounding box of the path, using the Bézier
// control points as extremes.
func (p *Path) FastBounds() Rect {
	if len(p.d) == 0 {
		return Rect{}
	}

	xmin, xmax := p.d[1], p.d[1]
	ymin, ymax := p.d[2], p.d[2]
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		for j := i + 1; j < i+cmdLen(cmd)-1; j += 2 {
			x, y := p.d[j], p.d[j+1]
			if x < xmin {
				xmin = x
			} else if xmax < x {
				xmax = x
			}
			if y < ymin {
				ymin = y
			} else if ymax < y {
				ymax = y
			}
		}
		i += cmdLen(cmd)
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// Draw replays the path onto pen. Subpaths that do not end in a close command
// are finished with End, including subpaths consisting of a single move.
func (p *Path) Draw(pen Pen) {
	open := false
	s := p.Scanner()
	for s.Scan() {
		end := s.End()
		switch s.Cmd() {
		case MoveToCmd:
			if open {
				pen.End()
			}
			pen.MoveTo(end.X, end.Y)
			open = true
		case LineToCmd:
			pen.LineTo(end.X, end.Y)
		case QuadToCmd:
			cp := s.CP1()
			pen.QuadTo(cp.X, cp.Y, end.X, end.Y)
		case CubeToCmd:
			cp1, cp2 := s.CP1(), s.CP2()
			pen.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
		case CloseCmd:
			pen.Close()
			open = false
		}
	}
	if open {
		pen.End()
	}
}

// Scanner returns a scanner for the path that scans the commands in order.
func (p *Path) Scanner() *PathScanner {
	return &PathScanner{p, -1}
}

// PathScanner scans the path commands in order. The iterator position is at
// the trailing command value of the current command.
type PathScanner struct {
	p *Path
	i int
}

// Scan advances to the next command and returns true if there is one.
func (s *PathScanner) Scan() bool {
	if s.i+1 < len(s.p.d) {
		s.i += cmdLen(s.p.d[s.i+1])
		return true
	}
	return false
}

// Cmd returns the current command.
func (s *PathScanner) Cmd() float64 {
	return s.p.d[s.i]
}

// Start returns the start point of the current command.
func (s *PathScanner) Start() Point {
	i := s.i - cmdLen(s.p.d[s.i])
	if i == -1 {
		return Point{}
	}
	return Point{s.p.d[i-2], s.p.d[i-1]}
}

// CP1 returns the first control point for quadratic and cubic Béziers.
func (s *PathScanner) CP1() Point {
	if s.p.d[s.i] != QuadToCmd && s.p.d[s.i] != CubeToCmd {
		panic("must be quadratic or cubic Bézier")
	}
	i := s.i - cmdLen(s.p.d[s.i]) + 1
	return Point{s.p.d[i+1], s.p.d[i+2]}
}

// CP2 returns the second control point for cubic Béziers.
func (s *PathScanner) CP2() Point {
	if s.p.d[s.i] != CubeToCmd {
		panic("must be cubic Bézier")
	}
	i := s.i - cmdLen(s.p.d[s.i]) + 1
	return Point{s.p.d[i+3], s.p.d[i+4]}
}

// End returns the end point of the current command.
func (s *PathScanner) End() Point {
	return Point{s.p.d[s.i-2], s.p.d[s.i-1]}
}

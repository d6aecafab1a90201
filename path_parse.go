package sausage

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// MustParseSVG parses SVG path data and panics on failure.
func MustParseSVG(s string) *Path {
	p, err := ParseSVG(s)
	if err != nil {
		panic(err)
	}
	return p
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// cmdNumbers returns the number of numbers that follow the given path data
// command, or -1 for an unknown command.
func cmdNumbers(cmd byte) int {
	switch cmd {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'C', 'c':
		return 6
	case 'S', 's', 'Q', 'q':
		return 4
	case 'Z', 'z':
		return 0
	}
	return -1
}

// ParseSVG parses SVG path data into a path. A path that does not start with
// a moveto command starts at the origin. Arc commands are not supported, the
// stroker's vocabulary is lines and Béziers.
func ParseSVG(s string) (*Path, error) {
	if len(s) == 0 {
		return &Path{}, nil
	}

	path := []byte(s)
	p := &Path{}

	var prevCmd byte
	cp := Point{} // previous Bézier control point for S and T

	i := 0
	for i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		iCmd := i
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("bad path: path should start with command")
		}
		if cmd == 'A' || cmd == 'a' {
			return nil, fmt.Errorf("bad path: arc command '%c' not supported at position %d", cmd, iCmd+1)
		}
		n := cmdNumbers(cmd)
		if n == -1 {
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, iCmd+1)
		}

		var f [6]float64
		for j := 0; j < n; j++ {
			i += skipCommaWhitespace(path[i:])
			num, m := strconv.ParseFloat(path[i:])
			if m == 0 {
				return nil, fmt.Errorf("bad path: %d numbers should follow command '%c' at position %d", n, cmd, iCmd+1)
			}
			f[j] = num
			i += m
		}

		if len(p.d) == 0 && cmd != 'M' && cmd != 'm' {
			p.MoveTo(0.0, 0.0)
		}

		pos := p.Pos()
		switch cmd {
		case 'M', 'm':
			if cmd == 'm' {
				f[0] += pos.X
				f[1] += pos.Y
			}
			p.MoveTo(f[0], f[1])
		case 'Z', 'z':
			p.Close()
		case 'L', 'l':
			if cmd == 'l' {
				f[0] += pos.X
				f[1] += pos.Y
			}
			p.LineTo(f[0], f[1])
		case 'H', 'h':
			if cmd == 'h' {
				f[0] += pos.X
			}
			p.LineTo(f[0], pos.Y)
		case 'V', 'v':
			if cmd == 'v' {
				f[0] += pos.Y
			}
			p.LineTo(pos.X, f[0])
		case 'C', 'c':
			if cmd == 'c' {
				f[0] += pos.X
				f[1] += pos.Y
				f[2] += pos.X
				f[3] += pos.Y
				f[4] += pos.X
				f[5] += pos.Y
			}
			p.CubeTo(f[0], f[1], f[2], f[3], f[4], f[5])
			cp = Point{f[2], f[3]}
		case 'S', 's':
			if cmd == 's' {
				f[0] += pos.X
				f[1] += pos.Y
				f[2] += pos.X
				f[3] += pos.Y
			}
			cp1 := pos
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = pos.Mul(2.0).Sub(cp)
			}
			p.CubeTo(cp1.X, cp1.Y, f[0], f[1], f[2], f[3])
			cp = Point{f[0], f[1]}
		case 'Q', 'q':
			if cmd == 'q' {
				f[0] += pos.X
				f[1] += pos.Y
				f[2] += pos.X
				f[3] += pos.Y
			}
			p.QuadTo(f[0], f[1], f[2], f[3])
			cp = Point{f[0], f[1]}
		case 'T', 't':
			if cmd == 't' {
				f[0] += pos.X
				f[1] += pos.Y
			}
			cp1 := pos
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cp1 = pos.Mul(2.0).Sub(cp)
			}
			p.QuadTo(cp1.X, cp1.Y, f[0], f[1])
			cp = cp1
		}
		prevCmd = cmd
	}
	return p, nil
}

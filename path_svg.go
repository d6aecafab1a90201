package sausage

import (
	"fmt"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits written for path coordinates.
var Precision = 8

// num formats a coordinate with Precision significant digits in the shortest
// representation that SVG accepts.
func num(f float64) string {
	s := fmt.Sprintf("%.*g", Precision, f)
	return string(minify.Number([]byte(s), Precision))
}

// ToSVG returns the path as SVG path data. Lines that keep one coordinate use
// the shorter horizontal and vertical lineto commands, and zero-length lines
// are omitted.
func (p *Path) ToSVG() string {
	if p.Empty() {
		return ""
	}

	sb := strings.Builder{}
	var x, y float64
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		switch cmd {
		case MoveToCmd:
			x, y = p.d[i+1], p.d[i+2]
			fmt.Fprintf(&sb, "M%s %s", num(x), num(y))
		case LineToCmd:
			xStart, yStart := x, y
			x, y = p.d[i+1], p.d[i+2]
			if equal(x, xStart) && equal(y, yStart) {
				// nothing
			} else if equal(x, xStart) {
				fmt.Fprintf(&sb, "V%s", num(y))
			} else if equal(y, yStart) {
				fmt.Fprintf(&sb, "H%s", num(x))
			} else {
				fmt.Fprintf(&sb, "L%s %s", num(x), num(y))
			}
		case QuadToCmd:
			x, y = p.d[i+3], p.d[i+4]
			fmt.Fprintf(&sb, "Q%s %s %s %s", num(p.d[i+1]), num(p.d[i+2]), num(x), num(y))
		case CubeToCmd:
			x, y = p.d[i+5], p.d[i+6]
			fmt.Fprintf(&sb, "C%s %s %s %s %s %s", num(p.d[i+1]), num(p.d[i+2]), num(p.d[i+3]), num(p.d[i+4]), num(x), num(y))
		case CloseCmd:
			x, y = p.d[i+1], p.d[i+2]
			sb.WriteString("z")
		}
		i += cmdLen(cmd)
	}
	return sb.String()
}

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/font"
	"github.com/tdewolff/minify/v2"
	minifysvg "github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/sausage"
	"golang.org/x/image/vector"
)

type Glyph struct {
	Index   int     `short:"i" default:"0" desc:"Font index for font collections"`
	GlyphID uint16  `short:"g" desc:"Glyph ID"`
	Char    string  `short:"c" desc:"Unicode character"`
	Radius  float64 `short:"r" default:"60" desc:"Capsule radius in font units"`
	Color   string  `default:"#f00" desc:"Fill color"`
	Opacity float64 `default:"0.5" desc:"Fill opacity"`
	Minify  bool    `short:"m" desc:"Minify SVG output"`
	Scale   float64 `default:"0.25" desc:"PNG pixels per font unit"`
	Output  string  `short:"o" desc:"Output file (.svg or .png), default SVG to stdout"`
	Input   string  `index:"0" desc:"TTF or OTF font file"`
}

type PathData struct {
	Radius  float64 `short:"r" default:"60" desc:"Capsule radius"`
	Color   string  `default:"#f00" desc:"Fill color"`
	Opacity float64 `default:"0.5" desc:"Fill opacity"`
	Minify  bool    `short:"m" desc:"Minify SVG output"`
	Scale   float64 `default:"1" desc:"PNG pixels per unit"`
	Output  string  `short:"o" desc:"Output file (.svg or .png), default path data to stdout"`
	Data    string  `index:"0" desc:"SVG path data, or - for stdin"`
}

func main() {
	root := argp.NewCmd(&Glyph{}, "Stroke glyph outlines as sausages by Taco de Wolff")
	root.AddCmd(&PathData{}, "path", "Stroke SVG path data")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Glyph) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	b, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}
	sfnt, err := font.ParseSFNT(b, cmd.Index)
	if err != nil {
		return err
	}

	glyphID := cmd.GlyphID
	if cmd.Char != "" {
		rs := []rune(cmd.Char)
		if len(rs) != 1 {
			return fmt.Errorf("char must be one Unicode character")
		}
		glyphID = sfnt.GlyphIndex(rs[0])
	}

	outline := &sausage.Path{}
	if err := sfnt.GlyphPath(outline, glyphID, sfnt.Head.UnitsPerEm, 0, 0, 1.0, font.NoHinting); err != nil {
		return err
	}

	traced := &sausage.Path{}
	if err := sausage.Trace(outline, traced, cmd.Radius); err != nil {
		return err
	}
	return write(traced, cmd.Output, cmd.Color, cmd.Opacity, cmd.Scale, cmd.Minify, true)
}

func (cmd *PathData) Run() error {
	data := cmd.Data
	if data == "" {
		return argp.ShowUsage
	} else if data == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		data = string(b)
	}

	outline, err := sausage.ParseSVG(data)
	if err != nil {
		return err
	}

	traced := &sausage.Path{}
	if err := sausage.Trace(outline, traced, cmd.Radius); err != nil {
		return err
	}
	if cmd.Output == "" || cmd.Output == "-" {
		fmt.Println(traced.ToSVG())
		return nil
	}
	return write(traced, cmd.Output, cmd.Color, cmd.Opacity, cmd.Scale, cmd.Minify, false)
}

// write outputs the traced path as an SVG or PNG file. Glyph outlines have a
// y-up coordinate system and are flipped for display.
func write(p *sausage.Path, output, fill string, opacity, scale float64, minifyOutput, flipY bool) error {
	if strings.HasSuffix(output, ".png") {
		return writePNG(p, output, fill, opacity, scale, flipY)
	}

	s := svgDocument(p, fill, opacity, flipY)
	if minifyOutput {
		m := minify.New()
		m.AddFunc("image/svg+xml", minifysvg.Minify)
		var err error
		if s, err = m.String("image/svg+xml", s); err != nil {
			return err
		}
	}
	if output == "" || output == "-" {
		fmt.Println(s)
		return nil
	}
	return os.WriteFile(output, []byte(s), 0o644)
}

func svgDocument(p *sausage.Path, fill string, opacity float64, flipY bool) string {
	bounds := p.FastBounds()
	transform := ""
	if flipY {
		transform = fmt.Sprintf(` transform="matrix(1 0 0 -1 0 %g)"`, 2.0*bounds.Y+bounds.H)
	}
	return fmt.Sprintf(`<svg version="1.1" xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g"><path%s d="%s" fill="%s" fill-opacity="%g"/></svg>`,
		bounds.X, bounds.Y, bounds.W, bounds.H, transform, p.ToSVG(), fill, opacity)
}

func writePNG(p *sausage.Path, output, fill string, opacity, scale float64, flipY bool) error {
	col, err := parseHexColor(fill, opacity)
	if err != nil {
		return err
	}

	bounds := p.FastBounds()
	w := int(bounds.W*scale + 0.5)
	h := int(bounds.H*scale + 0.5)
	if w == 0 || h == 0 {
		return fmt.Errorf("empty path")
	} else if 8192 < w || 8192 < h {
		return fmt.Errorf("image size %dx%d too large, use a smaller scale", w, h)
	}

	ras := vector.NewRasterizer(w, h)
	s := p.Flatten(0.25 / scale).Scanner()
	for s.Scan() {
		end := s.End()
		x := float32((end.X - bounds.X) * scale)
		var y float32
		if flipY {
			y = float32((bounds.Y + bounds.H - end.Y) * scale)
		} else {
			y = float32((end.Y - bounds.Y) * scale)
		}
		switch s.Cmd() {
		case sausage.MoveToCmd:
			ras.MoveTo(x, y)
		case sausage.LineToCmd:
			ras.LineTo(x, y)
		case sausage.CloseCmd:
			ras.ClosePath()
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ras.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parseHexColor parses #rgb and #rrggbb colors, applying opacity as the alpha
// channel.
func parseHexColor(s string, opacity float64) (color.NRGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("bad color '%s': must be #rgb or #rrggbb", s)
	}
	hexDigit := func(c byte) int {
		switch {
		case '0' <= c && c <= '9':
			return int(c - '0')
		case 'a' <= c && c <= 'f':
			return int(c-'a') + 10
		case 'A' <= c && c <= 'F':
			return int(c-'A') + 10
		}
		return -1
	}
	if len(s) != 4 && len(s) != 7 {
		return color.NRGBA{}, fmt.Errorf("bad color '%s': must be #rgb or #rrggbb", s)
	}
	digits := make([]int, len(s)-1)
	for i := range digits {
		if digits[i] = hexDigit(s[1+i]); digits[i] < 0 {
			return color.NRGBA{}, fmt.Errorf("bad color '%s': must be #rgb or #rrggbb", s)
		}
	}
	var r, g, b int
	if len(s) == 4 {
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
	} else {
		r = digits[0]*16 + digits[1]
		g = digits[2]*16 + digits[3]
		b = digits[4]*16 + digits[5]
	}
	if opacity < 0.0 || 1.0 < opacity {
		return color.NRGBA{}, fmt.Errorf("bad opacity %v: must be in [0,1]", opacity)
	}
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(opacity*255.0 + 0.5)}, nil
}

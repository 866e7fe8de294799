package plotter

import (
	"bytes"
	"fmt"

	"github.com/cncplot/gcodego/engine"
)

// SVGPlotter renders the X/Y projection of a tool path as a polyline-per-
// segment SVG document. There is no third-party SVG or 2D-plotting library
// anywhere in the reference corpus, so this stays on encoding/xml-free
// stdlib string building rather than importing one speculatively (see
// DESIGN.md).
type SVGPlotter struct {
	Width, Height int
	Scale         float64
}

// NewSVGPlotter builds an SVGPlotter with sensible defaults.
func NewSVGPlotter() *SVGPlotter {
	return &SVGPlotter{Width: 800, Height: 800, Scale: 5.0}
}

// Plot implements Plotter.
func (p *SVGPlotter) Plot(path []engine.Segment) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		p.Width, p.Height, p.Width, p.Height)
	buf.WriteString(`<rect width="100%" height="100%" fill="white"/>`)

	cx, cy := float64(p.Width)/2, float64(p.Height)/2
	for _, seg := range path {
		if len(seg.Points) == 0 {
			continue
		}
		buf.WriteString(`<polyline fill="none" stroke="black" stroke-width="1" points="`)
		for i, pt := range seg.Points {
			if i > 0 {
				buf.WriteByte(' ')
			}
			x := cx + pt.X*p.Scale
			y := cy - pt.Y*p.Scale
			fmt.Fprintf(&buf, "%.3f,%.3f", x, y)
		}
		buf.WriteString(`"/>`)
	}

	buf.WriteString(`</svg>`)
	return buf.Bytes(), nil
}

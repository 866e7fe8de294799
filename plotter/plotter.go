// Package plotter renders a canal's tool path for visual inspection. It is
// an external adapter consumed only through this narrow contract; the
// engine never imports it.
package plotter

import "github.com/cncplot/gcodego/engine"

// Plotter renders a tool path to some output form.
type Plotter interface {
	Plot(path []engine.Segment) ([]byte, error)
}

// Package engine implements the per-canal NC/G-code execution engine: modal
// state, the handler chain, and the discretised tool-path it produces.
package engine

import "math"

// Point is a single Cartesian/rotary sample of the tool path. It is
// immutable once emitted by a handler.
type Point struct {
	X, Y, Z float64
	A, B, C float64
}

// Finite reports whether every coordinate of p is a finite float (never NaN
// or +/-Inf). The engine must never emit a non-finite point.
func (p Point) Finite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z) &&
		isFinite(p.A) && isFinite(p.B) && isFinite(p.C)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Segment is one emitted motion: the discretised points of a single
// interpreted node plus the wall-clock duration the move would take.
type Segment struct {
	Points   []Point
	Duration float64 // seconds
}

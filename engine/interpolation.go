package engine

import "math"

// linearMove discretises a straight move from `from` to `to` into a
// sequence of points, spaced no further apart than maxSegment, and returns
// the travel duration at feedRate (mm/min). Ported from motion.py's linear
// interpolation: n = max(1, ceil(dist/max_segment)) samples, point i at
// t = i/n along the straight line.
func linearMove(from, to map[string]float64, axes []string, maxSegment, feedRate float64) (*HandlerResult, error) {
	dist := distance(from, to, axes)
	n := 1
	if maxSegment > 0 {
		n = int(math.Ceil(dist / maxSegment))
	}
	if n < 1 {
		n = 1
	}

	points := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		points = append(points, pointAt(from, to, t))
	}

	duration := 0.0
	if feedRate > 0 {
		duration = dist / (feedRate / 60.0)
	}
	return &HandlerResult{Points: points, Duration: duration}, nil
}

// arcCenterFromRadius derives both candidate centers of a circle of radius
// r through `from` and `to`, then picks the one matching cw, following
// motion.py's two-candidate selection: h = sqrt(r^2 - (d/2)^2), offset
// along the perpendicular of the chord, scaled by h/(d/2).
func arcCenterFromRadius(from, to [2]float64, r float64, cw bool) (cx, cy float64, err error) {
	dx := to[0] - from[0]
	dy := to[1] - from[1]
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0, 0, errDegenerateArc
	}
	half := d / 2.0
	hSq := r*r - half*half
	if hSq < 0 {
		return 0, 0, errArcRadiusTooSmall
	}
	h := math.Sqrt(hSq)

	mx := (from[0] + to[0]) / 2.0
	my := (from[1] + to[1]) / 2.0

	// Unit vector perpendicular to the chord.
	ux := -dy / d
	uy := dx / d

	scale := h
	c1x, c1y := mx+ux*scale, my+uy*scale
	c2x, c2y := mx-ux*scale, my-uy*scale

	// Signed area of (from, to, candidate) distinguishes the two centers;
	// CW motion keeps the center on the side that makes the turn clockwise.
	cross := func(cx, cy float64) float64 {
		return (to[0]-from[0])*(cy-from[1]) - (to[1]-from[1])*(cx-from[0])
	}
	if cw {
		if cross(c1x, c1y) < 0 {
			return c1x, c1y, nil
		}
		return c2x, c2y, nil
	}
	if cross(c1x, c1y) > 0 {
		return c1x, c1y, nil
	}
	return c2x, c2y, nil
}

// circularMove discretises an arc in the given plane around (cx, cy) from
// `from` to `to`, holding every other axis's linear interpolation, spaced
// no further apart than maxSegment along the arc length.
func circularMove(from, to map[string]float64, axes []string, planeA, planeB string, cx, cy float64, cw bool, maxSegment, feedRate float64) (*HandlerResult, error) {
	fromA, fromB := from[planeA]-cx, from[planeB]-cy
	toA, toB := to[planeA]-cx, to[planeB]-cy

	r := math.Hypot(fromA, fromB)
	if r == 0 {
		return nil, errDegenerateArc
	}

	startAngle := math.Atan2(fromB, fromA)
	endAngle := math.Atan2(toB, toA)

	sweep := endAngle - startAngle
	if cw {
		for sweep > 0 {
			sweep -= 2 * math.Pi
		}
	} else {
		for sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	if sweep == 0 {
		// Full circle: I/J addressed arcs that return to the start encode
		// a complete revolution, not a zero-length move.
		if cw {
			sweep = -2 * math.Pi
		} else {
			sweep = 2 * math.Pi
		}
	}

	arcLength := math.Abs(sweep) * r
	n := 2
	if maxSegment > 0 {
		n = int(math.Ceil(arcLength / maxSegment))
	}
	if n < 2 {
		n = 2
	}

	points := make([]Point, 0, n+1)
	for k := 0; k <= n; k++ {
		t := float64(k) / float64(n)
		angle := startAngle + sweep*t
		p := pointAt(from, to, t)
		setPlaneAxis(&p, planeA, cx+r*math.Cos(angle))
		setPlaneAxis(&p, planeB, cy+r*math.Sin(angle))
		points = append(points, p)
	}

	duration := 0.0
	if feedRate > 0 {
		duration = arcLength / (feedRate / 60.0)
	}
	return &HandlerResult{Points: points, Duration: duration}, nil
}

var allAxes = []string{"X", "Y", "Z", "A", "B", "C"}

func pointToMap(p Point) map[string]float64 {
	return map[string]float64{"X": p.X, "Y": p.Y, "Z": p.Z, "A": p.A, "B": p.B, "C": p.C}
}

// LinearRow discretises a straight move between two fully-specified points,
// for use by canned-cycle geometry outside package engine (cycle raster
// passes, pocket/slot lead-ins).
func LinearRow(from, to Point, maxSegment, feedRate float64) (*HandlerResult, error) {
	return linearMove(pointToMap(from), pointToMap(to), allAxes, maxSegment, feedRate)
}

// CircularArc discretises a partial arc between two fully-specified points
// around (cx, cy) in the given plane, for use by canned-cycle geometry
// outside package engine.
func CircularArc(from, to Point, planeA, planeB string, cx, cy float64, cw bool, maxSegment, feedRate float64) (*HandlerResult, error) {
	return circularMove(pointToMap(from), pointToMap(to), allAxes, planeA, planeB, cx, cy, cw, maxSegment, feedRate)
}

// CircularContour discretises a full revolution starting and ending at
// start, around (cx, cy) in the given plane — the finishing contour of a
// circular pocket.
func CircularContour(start Point, cx, cy float64, planeA, planeB string, cw bool, maxSegment, feedRate float64) (*HandlerResult, error) {
	m := pointToMap(start)
	return circularMove(m, m, allAxes, planeA, planeB, cx, cy, cw, maxSegment, feedRate)
}

func distance(from, to map[string]float64, axes []string) float64 {
	sum := 0.0
	for _, ax := range axes {
		d := to[ax] - from[ax]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func pointAt(from, to map[string]float64, t float64) Point {
	lerp := func(axis string) float64 {
		return from[axis] + (to[axis]-from[axis])*t
	}
	return Point{
		X: lerp("X"), Y: lerp("Y"), Z: lerp("Z"),
		A: lerp("A"), B: lerp("B"), C: lerp("C"),
	}
}

func setPlaneAxis(p *Point, axis string, value float64) {
	switch axis {
	case "X":
		p.X = value
	case "Y":
		p.Y = value
	case "Z":
		p.Z = value
	case "A":
		p.A = value
	case "B":
		p.B = value
	case "C":
		p.C = value
	}
}

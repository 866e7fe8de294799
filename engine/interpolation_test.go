package engine

import (
	"math"
	"testing"
)

func TestLinearMoveSegmentCountAndDuration(t *testing.T) {
	from := map[string]float64{"X": 0, "Y": 0, "Z": 0}
	to := map[string]float64{"X": 10, "Y": 0, "Z": 0}

	result, err := linearMove(from, to, []string{"X", "Y", "Z"}, 1.0, 600)
	if err != nil {
		t.Fatalf("linearMove: %v", err)
	}
	// 10mm at 1mm segments: n = ceil(10/1) = 10, so 11 points.
	if got := len(result.Points); got != 11 {
		t.Errorf("expected 11 points, got %d", got)
	}
	if result.Points[0].X != 0 || result.Points[len(result.Points)-1].X != 10 {
		t.Errorf("expected path to run from X=0 to X=10, got %v..%v", result.Points[0].X, result.Points[len(result.Points)-1].X)
	}
	// distance 10mm at 600mm/min (10mm/s) = 1s.
	if math.Abs(result.Duration-1.0) > 1e-9 {
		t.Errorf("expected duration 1s at 600mm/min over 10mm, got %v", result.Duration)
	}
}

func TestLinearMoveZeroDistanceStillEmitsOnePoint(t *testing.T) {
	p := map[string]float64{"X": 5, "Y": 5, "Z": 5}
	result, err := linearMove(p, p, []string{"X", "Y", "Z"}, 0.5, 100)
	if err != nil {
		t.Fatalf("linearMove: %v", err)
	}
	if len(result.Points) < 1 {
		t.Error("expected at least one point for a zero-length move")
	}
	if result.Duration != 0 {
		t.Errorf("expected zero duration for zero-length move, got %v", result.Duration)
	}
}

func TestArcCenterFromRadiusQuarterCircleCCW(t *testing.T) {
	// Quarter circle from (10,0) to (0,10) with center (0,0), radius 10, CCW.
	cx, cy, err := arcCenterFromRadius([2]float64{10, 0}, [2]float64{0, 10}, 10, false)
	if err != nil {
		t.Fatalf("arcCenterFromRadius: %v", err)
	}
	if math.Abs(cx) > 1e-6 || math.Abs(cy) > 1e-6 {
		t.Errorf("expected center near origin, got (%v, %v)", cx, cy)
	}
}

func TestArcCenterFromRadiusTooSmall(t *testing.T) {
	_, _, err := arcCenterFromRadius([2]float64{0, 0}, [2]float64{100, 0}, 1, false)
	if err != errArcRadiusTooSmall {
		t.Errorf("expected errArcRadiusTooSmall, got %v", err)
	}
}

func TestCircularMoveQuarterArcCCW(t *testing.T) {
	from := map[string]float64{"X": 10, "Y": 0, "Z": 0}
	to := map[string]float64{"X": 0, "Y": 10, "Z": 0}
	result, err := circularMove(from, to, []string{"X", "Y", "Z"}, "X", "Y", 0, 0, false, 1.0, 600)
	if err != nil {
		t.Fatalf("circularMove: %v", err)
	}
	// quarter circle of radius 10: arc length = pi*10/2 ~= 15.7mm
	wantLen := math.Pi * 10 / 2
	wantN := int(math.Ceil(wantLen / 1.0))
	if got := len(result.Points) - 1; got != wantN {
		t.Errorf("expected %d segments, got %d", wantN, got)
	}
	last := result.Points[len(result.Points)-1]
	if math.Abs(last.X) > 1e-6 || math.Abs(last.Y-10) > 1e-6 {
		t.Errorf("expected arc to end near (0,10), got (%v, %v)", last.X, last.Y)
	}
}

func TestCircularContourFullRevolution(t *testing.T) {
	start := Point{X: 10, Y: 0, Z: -5}
	result, err := CircularContour(start, 0, 0, "X", "Y", false, 0.1, 600)
	if err != nil {
		t.Fatalf("CircularContour: %v", err)
	}
	// full circle, radius 10: circumference ~= 62.83mm at 0.1mm spacing -> ~629 segments
	if len(result.Points) < 600 {
		t.Errorf("expected a full revolution to produce several hundred points, got %d", len(result.Points))
	}
	for _, p := range result.Points {
		if !p.Finite() {
			t.Fatal("expected every point on the contour to be finite")
		}
		if math.Abs(p.Z-(-5)) > 1e-9 {
			t.Errorf("expected every point to hold Z=-5, got %v", p.Z)
		}
	}
}

func TestDegenerateArcRejected(t *testing.T) {
	from := map[string]float64{"X": 0, "Y": 0}
	_, err := circularMove(from, from, []string{"X", "Y"}, "X", "Y", 0, 0, false, 0.5, 100)
	if err != errDegenerateArc {
		t.Errorf("expected errDegenerateArc when start coincides with center, got %v", err)
	}
}

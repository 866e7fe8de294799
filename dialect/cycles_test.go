package dialect

import (
	"testing"

	"github.com/cncplot/gcodego/engine"
)

func newCycleCtx() *engine.ExecContext {
	return &engine.ExecContext{CycleSegment: 0.1, MaxSegment: 0.5}
}

// TestPocket4PointCount mirrors the original Siemens pocket-resolution
// regression: a PRAD=50 pocket must discretise to well over 2000 points, all
// at the cycle's programmed depth.
func TestPocket4PointCount(t *testing.T) {
	state := engine.NewCNCState()
	ctx := newCycleCtx()
	node := &engine.CommandNode{
		CycleName: "POCKET4",
		CycleArgs: []string{"10", "0", "2", "-10", "0", "50", "0", "0"},
	}

	result, err := pocket4(ctx, node, state)
	if err != nil {
		t.Fatalf("pocket4: %v", err)
	}
	if len(result.Points) <= 2000 {
		t.Errorf("expected more than 2000 points for a PRAD=50 pocket, got %d", len(result.Points))
	}
	for _, p := range result.Points {
		if p.Z != -10 {
			t.Fatalf("expected every point at depth -10, got Z=%v", p.Z)
		}
	}
}

func TestPocket4RejectsNonPositiveRadius(t *testing.T) {
	state := engine.NewCNCState()
	ctx := newCycleCtx()
	node := &engine.CommandNode{
		CycleName: "POCKET4",
		CycleArgs: []string{"10", "0", "2", "-10", "0", "0", "0", "0"},
	}
	if _, err := pocket4(ctx, node, state); err == nil {
		t.Error("expected an error for PRAD=0")
	}
}

// TestSlot2PointCount mirrors the original regression: AFSL=180, RAD=50
// must discretise to well over 1000 points.
func TestSlot2PointCount(t *testing.T) {
	state := engine.NewCNCState()
	ctx := newCycleCtx()
	node := &engine.CommandNode{
		CycleName: "SLOT2",
		CycleArgs: []string{"10", "0", "2", "-10", "0", "1", "180", "10", "0", "0", "50", "0", "0"},
	}

	result, err := slot2(ctx, node, state)
	if err != nil {
		t.Fatalf("slot2: %v", err)
	}
	if len(result.Points) <= 1000 {
		t.Errorf("expected more than 1000 points for an AFSL=180 RAD=50 slot, got %d", len(result.Points))
	}
	for _, p := range result.Points {
		if p.Z != -10 {
			t.Fatalf("expected every point at depth -10, got Z=%v", p.Z)
		}
	}
}

// TestCycle61RealSignature mirrors a literal real-world call from the
// original sample program, decoded with the real 16-parameter Siemens
// CYCLE61 ordering rather than a renumbered simplification.
func TestCycle61RealSignature(t *testing.T) {
	state := engine.NewCNCState()
	ctx := newCycleCtx()
	node := &engine.CommandNode{
		CycleName: "CYCLE61",
		CycleArgs: []string{
			"35.8", "25.88", "5", "0", "0", "0", "102", "105",
			"2", "80", "0.2", "3000", "31", "0", "1", "11010",
		},
	}

	result, err := cycle61(ctx, node, state)
	if err != nil {
		t.Fatalf("cycle61: %v", err)
	}
	if len(result.Points) == 0 {
		t.Fatal("expected the raster to produce points")
	}
	for _, p := range result.Points {
		if p.Z != 0 {
			t.Fatalf("expected every raster point at DP=0, got Z=%v", p.Z)
		}
	}
}

func TestCycle61RejectsZeroStepover(t *testing.T) {
	state := engine.NewCNCState()
	ctx := newCycleCtx()
	node := &engine.CommandNode{
		CycleName: "CYCLE61",
		CycleArgs: []string{"10", "0", "2", "-10", "0", "0", "0", "0", "10", "0"},
	}
	if _, err := cycle61(ctx, node, state); err == nil {
		t.Error("expected an error when both MIDA and WID are non-positive")
	}
}

func TestDrillPlungeAndRetract(t *testing.T) {
	state := engine.NewCNCState()
	state.SetAxis("X", 10)
	state.SetAxis("Y", 20)
	state.SetAxis("Z", 5)
	ctx := newCycleCtx()
	node := &engine.CommandNode{
		CycleName: "CYCLE81",
		CycleArgs: []string{"5", "0", "2", "-10", "0"},
	}

	result, err := drill(ctx, node, state)
	if err != nil {
		t.Fatalf("drill: %v", err)
	}
	if len(result.Points) < 2 {
		t.Fatal("expected at least a plunge and a retract point")
	}
	first := result.Points[0]
	last := result.Points[len(result.Points)-1]
	if first.Z != 5 {
		t.Errorf("expected the plunge to start at the retract plane Z=5, got %v", first.Z)
	}
	bottomReached := false
	for _, p := range result.Points {
		if p.Z == -10 {
			bottomReached = true
		}
	}
	if !bottomReached {
		t.Error("expected the drill cycle to reach DP=-10")
	}
	if last.Z != 5 {
		t.Errorf("expected the cycle to retract back to Z=5, got %v", last.Z)
	}
}

package controller

import (
	"context"
	"testing"

	"github.com/cncplot/gcodego/engine"
)

func TestControllerCanalIndexingIsOneBased(t *testing.T) {
	c1 := engine.NewCanal("CH1")
	c2 := engine.NewCanal("CH2")
	ctrl := New(c1, c2)

	if ctrl.GetCanalCount() != 2 {
		t.Fatalf("expected 2 canals, got %d", ctrl.GetCanalCount())
	}
	if got := ctrl.GetCanalName(1); got != "CH1" {
		t.Errorf("expected canal 1 to be CH1, got %q", got)
	}
	if got := ctrl.GetCanalName(2); got != "CH2" {
		t.Errorf("expected canal 2 to be CH2, got %q", got)
	}
	if got := ctrl.GetCanalName(0); got != "" {
		t.Errorf("expected an out-of-range index to return an empty name, got %q", got)
	}
}

func TestControllerRunNCCodeListOutOfRangeErrors(t *testing.T) {
	ctrl := New(engine.NewCanal("CH1"))
	err := ctrl.RunNCCodeList(context.Background(), 5, nil)
	if err == nil {
		t.Fatal("expected an error for an out-of-range canal index")
	}
	nerr, ok := err.(*engine.NCError)
	if !ok || nerr.Kind != engine.KindCanalNotExist {
		t.Errorf("expected KindCanalNotExist, got %v", err)
	}
}

func TestControllerRunAllRunsEveryCanal(t *testing.T) {
	c1 := engine.NewCanal("CH1")
	c2 := engine.NewCanal("CH2")
	ctrl := New(c1, c2)

	programs := map[int][]engine.CommandNode{
		1: {{GCode: []string{"G0"}, Params: map[string]string{"X": "10"}}},
		2: {{GCode: []string{"G0"}, Params: map[string]string{"Y": "20"}}},
	}
	if err := ctrl.RunAll(context.Background(), programs); err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(ctrl.GetToolPath(1)) == 0 {
		t.Error("expected canal 1 to have run a motion segment")
	}
	if len(ctrl.GetToolPath(2)) == 0 {
		t.Error("expected canal 2 to have run a motion segment")
	}
}

func TestControllerSynchroPointsIsANoOpStub(t *testing.T) {
	ctrl := New(engine.NewCanal("CH1"))
	if err := ctrl.SynchroPoints(context.Background()); err != nil {
		t.Errorf("expected SynchroPoints to be a no-op, got %v", err)
	}
}

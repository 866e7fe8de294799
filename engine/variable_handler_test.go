package engine

import "testing"

func TestVariableHandlerAssignment(t *testing.T) {
	h := NewVariableHandler()
	state := NewCNCState()
	ctx := &ExecContext{Resolved: map[string]string{}}
	node := &CommandNode{AssignName: "#1", AssignExpr: "10 + 5"}

	_, handled, err := h.Handle(ctx, node, state)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if handled {
		t.Error("VariableHandler should never report handled=true")
	}
	v, ok := state.GetParameter("#1")
	if !ok || v != 15 {
		t.Errorf("expected #1 = 15, got %v (ok=%v)", v, ok)
	}
}

func TestVariableHandlerResolvesReferencesIntoParams(t *testing.T) {
	h := NewVariableHandler()
	state := NewCNCState()
	state.SetParameter("#1", 42)
	ctx := &ExecContext{}
	node := &CommandNode{Params: map[string]string{"X": "#1", "Y": "7"}}

	_, _, err := h.Handle(ctx, node, state)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if ctx.Resolved["X"] != "42" {
		t.Errorf("expected X resolved to 42, got %q", ctx.Resolved["X"])
	}
	if ctx.Resolved["Y"] != "7" {
		t.Errorf("expected literal Y to pass through unchanged, got %q", ctx.Resolved["Y"])
	}
}

func TestVariableHandlerUnknownReferenceErrors(t *testing.T) {
	h := NewVariableHandler()
	state := NewCNCState()
	ctx := &ExecContext{}
	node := &CommandNode{Params: map[string]string{"X": "#99"}}

	_, _, err := h.Handle(ctx, node, state)
	if err == nil {
		t.Fatal("expected an error resolving an unset variable")
	}
}

func TestVariableHandlerValidatesToolNumber(t *testing.T) {
	h := NewVariableHandler()
	state := NewCNCState()
	ctx := &ExecContext{Dialect: stubDialect{}}
	node := &CommandNode{Params: map[string]string{"T": "10000"}}

	_, _, err := h.Handle(ctx, node, state)
	if err == nil {
		t.Fatal("expected an out-of-range tool number to error")
	}
}

// stubDialect is a minimal Dialect for handler-level tests that do not need
// real tool-range or cycle logic.
type stubDialect struct{}

func (stubDialect) Name() string { return "stub" }
func (stubDialect) ValidateTool(raw string) (ToolRef, error) {
	if raw == "10000" {
		return ToolRef{}, &NCError{Kind: KindCodeError, Message: "out of range"}
	}
	return ToolRef{Number: 1}, nil
}
func (stubDialect) Cycle(string) (CycleExpandFunc, bool) { return nil, false }

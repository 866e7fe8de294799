package engine

// ToolRef is a resolved tool-number reference: the raw T-word decomposed
// into a tool slot and an offset register via the hundred-split convention
// (`tool = n/100`, `offset = n%100`).
type ToolRef struct {
	Number int
	Tool   int
	Offset int
}

// CycleExpandFunc expands one canned-cycle call into primitive motion,
// using the same segmentation and error conventions as MotionHandler.
type CycleExpandFunc func(ctx *ExecContext, node *CommandNode, state *CNCState) (*HandlerResult, error)

// Dialect is the small capability injected into a Canal to carry every
// piece of dialect-specific behaviour out of the core handler chain: tool
// number range validation and, for milling dialects, the table of
// recognised canned-cycle names.
//
// The core stays dialect-agnostic: VariableHandler, ControlFlowHandler and
// MotionHandler never consult a Dialect. Only the T-word validation inside
// VariableHandler and CycleHandler's cycle lookup do.
type Dialect interface {
	// Name identifies the dialect for logging ("iso-turn", "siemens-mill").
	Name() string

	// ValidateTool parses and range-checks a raw T-word value (e.g. "0101",
	// "10000"). Returns an error if the number is out of the dialect's
	// supported range.
	ValidateTool(raw string) (ToolRef, error)

	// Cycle looks up a canned-cycle expansion by name. ISO-turn dialects
	// report ok=false for every name; Siemens-mill dialects recognise
	// POCKET4, SLOT2, CYCLE61 and the drilling cycle family.
	Cycle(name string) (fn CycleExpandFunc, ok bool)
}

package dialect

import "github.com/cncplot/gcodego/engine"

// ISOTurn implements engine.Dialect for ISO-standard lathe programs: no
// canned cycles, tool words validated against the shared 0-9999 range.
type ISOTurn struct{}

// Name implements engine.Dialect.
func (ISOTurn) Name() string { return "iso-turn" }

// ValidateTool implements engine.Dialect.
func (ISOTurn) ValidateTool(raw string) (engine.ToolRef, error) {
	return toolRefFromRaw("iso-turn", raw)
}

// Cycle implements engine.Dialect. ISO-turn programs have no canned
// cycles: every lookup misses.
func (ISOTurn) Cycle(string) (engine.CycleExpandFunc, bool) {
	return nil, false
}

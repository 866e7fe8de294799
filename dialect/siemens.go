package dialect

import "github.com/cncplot/gcodego/engine"

// SiemensMill implements engine.Dialect for Siemens-flavoured milling
// programs: the same 0-9999 tool-word range as ISOTurn, plus the canned
// milling cycles POCKET4, SLOT2, CYCLE61 and the drilling family.
type SiemensMill struct{}

// Name implements engine.Dialect.
func (SiemensMill) Name() string { return "siemens-mill" }

// ValidateTool implements engine.Dialect.
func (SiemensMill) ValidateTool(raw string) (engine.ToolRef, error) {
	return toolRefFromRaw("siemens-mill", raw)
}

var siemensCycles = map[string]engine.CycleExpandFunc{
	"POCKET4": pocket4,
	"SLOT2":   slot2,
	"CYCLE61": cycle61,
	"CYCLE81": drill,
	"CYCLE82": drill,
}

// Cycle implements engine.Dialect.
func (SiemensMill) Cycle(name string) (engine.CycleExpandFunc, bool) {
	fn, ok := siemensCycles[name]
	return fn, ok
}

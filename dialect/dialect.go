// Package dialect provides the ISO-turn and Siemens-mill implementations of
// engine.Dialect: tool-number validation and, for milling, the canned-cycle
// registry. Keeping this out of package engine lets the handler chain stay
// dialect-agnostic while each vendor's quirks live in one place.
package dialect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cncplot/gcodego/engine"
)

// toolRefFromRaw decodes a raw T-word (e.g. "0101", "10000") using the
// hundred-split convention common to both dialects: tool = n/100, offset =
// n%100. Both ISO-turn and Siemens-mill reject a T-word outside 0-9999,
// confirmed against the original machine-config test's literal T10000
// (invalid) and T0101=101 (valid) cases.
func toolRefFromRaw(name, raw string) (engine.ToolRef, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return engine.ToolRef{}, fmt.Errorf("%s: invalid tool number %q", name, raw)
	}
	if n < 0 || n > 9999 {
		return engine.ToolRef{}, fmt.Errorf("Tool number T%s out of range (0-9999)", raw)
	}
	return engine.ToolRef{Number: n, Tool: n / 100, Offset: n % 100}, nil
}

// cycleArgs resolves a cycle call's positional argument list (literal
// numbers or `#name`/`Rname` variable references) to floats, looking each
// up against state when needed.
func cycleArgs(raw []string, state *engine.CNCState) ([]float64, error) {
	out := make([]float64, len(raw))
	for i, a := range raw {
		v, err := engine.ResolveLiteral(a, state)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// argAt returns args[i] or def when the call did not supply that many
// positional arguments — canned cycles commonly omit trailing optional
// parameters.
func argAt(args []float64, i int, def float64) float64 {
	if i < 0 || i >= len(args) {
		return def
	}
	return args[i]
}

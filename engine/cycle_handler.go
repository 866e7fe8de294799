package engine

import "fmt"

// CycleHandler dispatches a recognised canned-cycle call (POCKET4, SLOT2,
// CYCLE61, drilling) to the active Dialect's expansion function. The
// expansion itself is dialect-specific geometry (see package dialect), so
// this handler is only a lookup-and-invoke step; it is the last link in a
// Siemens-mill chain and absent entirely from an ISO-turn chain, which has
// no canned cycles.
type CycleHandler struct{}

// NewCycleHandler constructs a CycleHandler.
func NewCycleHandler() *CycleHandler {
	return &CycleHandler{}
}

// Handle implements Handler.
func (h *CycleHandler) Handle(ctx *ExecContext, node *CommandNode, state *CNCState) (*HandlerResult, bool, error) {
	if node.CycleName == "" {
		return nil, false, nil
	}
	if ctx.Dialect == nil {
		return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: fmt.Sprintf("cycle %s called with no dialect configured", node.CycleName)}
	}
	fn, ok := ctx.Dialect.Cycle(node.CycleName)
	if !ok {
		return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: fmt.Sprintf("unrecognised cycle %q for dialect %s", node.CycleName, ctx.Dialect.Name())}
	}
	result, err := fn(ctx, node, state)
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}

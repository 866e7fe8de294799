package engine

// Group5Handler tracks the feed-mode modal group: G94 (feed per minute),
// G95 (feed per revolution), G98 (canned-cycle return to initial plane),
// G99 (canned-cycle return to R-plane). All four are state-only and always
// pass the line on.
type Group5Handler struct{}

// NewGroup5Handler constructs a Group5Handler.
func NewGroup5Handler() *Group5Handler {
	return &Group5Handler{}
}

// Handle implements Handler.
func (h *Group5Handler) Handle(ctx *ExecContext, node *CommandNode, state *CNCState) (*HandlerResult, bool, error) {
	switch {
	case hasGCode(node.GCode, "G94"):
		state.SetModal("feed_mode", "G94")
	case hasGCode(node.GCode, "G95"):
		state.SetModal("feed_mode", "G95")
	case hasGCode(node.GCode, "G98"):
		state.SetModal("cycle_return", "G98")
	case hasGCode(node.GCode, "G99"):
		state.SetModal("cycle_return", "G99")
	}
	return nil, false, nil
}

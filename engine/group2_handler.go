package engine

// Group2Handler tracks the spindle-mode modal group: G96 (constant
// surface speed) and G97 (constant spindle RPM). It only ever updates
// state and always passes the line on, so a composite "G96 S200 G1 X10"
// still reaches MotionHandler.
type Group2Handler struct{}

// NewGroup2Handler constructs a Group2Handler.
func NewGroup2Handler() *Group2Handler {
	return &Group2Handler{}
}

// Handle implements Handler.
func (h *Group2Handler) Handle(ctx *ExecContext, node *CommandNode, state *CNCState) (*HandlerResult, bool, error) {
	switch {
	case hasGCode(node.GCode, "G96"):
		state.SetModal("spindle_mode", "G96")
	case hasGCode(node.GCode, "G97"):
		state.SetModal("spindle_mode", "G97")
	}

	if s, ok := ctx.ResolvedFloat("S"); ok {
		state.SpindleSpeed = &s
	}

	return nil, false, nil
}

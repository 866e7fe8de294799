package engine

// Group0Handler interprets the non-modal motion group: G28 (return to
// reference position through an intermediate point, like a rapid) and G50
// (set the current axis values directly, without any motion — used to
// establish a work offset or re-home a coordinate without traversing it).
//
// Both codes are one-shot and are never recorded in state.ModalGroups,
// matching group0.py's "non-modal" classification. G0-G3 are not recorded
// there either: MotionHandler moves only on a line that carries its own
// motion code.
type Group0Handler struct{}

// NewGroup0Handler constructs a Group0Handler.
func NewGroup0Handler() *Group0Handler {
	return &Group0Handler{}
}

// Handle implements Handler.
func (h *Group0Handler) Handle(ctx *ExecContext, node *CommandNode, state *CNCState) (*HandlerResult, bool, error) {
	switch {
	case hasGCode(node.GCode, "G28"):
		return h.referenceReturn(ctx, node, state)
	case hasGCode(node.GCode, "G50"):
		return h.directSet(ctx, node, state)
	}
	return nil, false, nil
}

// referenceReturn rapids through the intermediate point given on the line
// (any axes present), then on to the machine's zero reference, reusing
// MotionHandler's linear interpolation at rapid feed.
func (h *Group0Handler) referenceReturn(ctx *ExecContext, node *CommandNode, state *CNCState) (*HandlerResult, bool, error) {
	from := make(map[string]float64, len(state.Axes))
	for ax, v := range state.Axes {
		from[ax] = v
	}

	intermediate, err := resolveAxisTargets(ctx, state)
	if err != nil {
		return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: err.Error()}
	}
	mid := state.ResolveTarget(intermediate, isAbsoluteMode(state))

	axes := make([]string, 0, len(mid))
	for ax := range mid {
		axes = append(axes, ax)
	}

	maxSeg := ctx.MaxSegment
	if maxSeg <= 0 {
		maxSeg = 0.5
	}

	leg1, err := linearMove(from, mid, axes, maxSeg, rapidFeedRate)
	if err != nil {
		return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: err.Error()}
	}

	zero := make(map[string]float64, len(axes))
	for _, ax := range axes {
		zero[ax] = 0
	}
	leg2, err := linearMove(mid, zero, axes, maxSeg, rapidFeedRate)
	if err != nil {
		return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: err.Error()}
	}

	points := append(leg1.Points, leg2.Points[1:]...)
	state.UpdateAxes(zero)
	return &HandlerResult{Points: points, Duration: leg1.Duration + leg2.Duration}, true, nil
}

// directSet writes every axis letter present on the line straight into
// state without emitting any motion.
func (h *Group0Handler) directSet(ctx *ExecContext, node *CommandNode, state *CNCState) (*HandlerResult, bool, error) {
	for _, letter := range []string{"X", "Y", "Z", "A", "B", "C"} {
		if v, ok := ctx.ResolvedFloat(letter); ok {
			state.SetAxis(letter, v)
		}
	}
	return nil, true, nil
}

func hasGCode(codes []string, want string) bool {
	for _, c := range codes {
		if canonicalGCode(c) == want {
			return true
		}
	}
	return false
}

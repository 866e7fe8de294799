package engine

// MotionHandler interprets G0/G1/G2/G3 and emits the discretised tool path
// for the move. Besides the plane (G17/G18/G19) and distance (G90/G91)
// modals it captures, it leaves every other modal group's state untouched.
// Ported from motion.py: target resolution through CNCState.ResolveTarget
// (honouring G90/G91), then linear or circular interpolation depending on
// the motion code, segmented at ExecContext.MaxSegment.
//
// Runs after the modal handlers in both default chains (only CycleHandler
// follows it, in the Siemens chain): a composite line like
// "G1 G96 S1000 X10" has already had its spindle-mode modal consumed by
// Group2Handler by the time MotionHandler sees it.
type MotionHandler struct{}

// NewMotionHandler constructs a MotionHandler.
func NewMotionHandler() *MotionHandler {
	return &MotionHandler{}
}

var planeAxes = map[string][2]string{
	"G17": {"X", "Y"},
	"G18": {"X", "Z"},
	"G19": {"Y", "Z"},
}

// Handle implements Handler.
func (h *MotionHandler) Handle(ctx *ExecContext, node *CommandNode, state *CNCState) (*HandlerResult, bool, error) {
	for _, c := range node.GCode {
		switch canonicalGCode(c) {
		case "G17", "G18", "G19":
			state.SetModal("plane", canonicalGCode(c))
		case "G90", "G91":
			state.SetModal("distance", canonicalGCode(c))
		}
	}

	code := motionCode(node.GCode)
	if code == "" {
		return nil, false, nil
	}

	target, err := resolveAxisTargets(ctx, state)
	if err != nil {
		return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: err.Error()}
	}

	from := make(map[string]float64, len(state.Axes))
	for ax, v := range state.Axes {
		from[ax] = v
	}
	resolved := state.ResolveTarget(target, isAbsoluteMode(state))

	axes := make([]string, 0, len(resolved))
	for ax := range resolved {
		axes = append(axes, ax)
	}

	feed := 1.0
	if state.FeedRate != nil {
		feed = *state.FeedRate
	}
	if f, ok := ctx.ResolvedFloat("F"); ok {
		feed = f
		state.FeedRate = &f
	}

	var result *HandlerResult
	switch code {
	case "G0", "G1":
		maxSeg := ctx.MaxSegment
		if maxSeg <= 0 {
			maxSeg = 0.5
		}
		r, err := linearMove(from, resolved, axes, maxSeg, feedOrRapid(code, feed))
		if err != nil {
			return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: err.Error()}
		}
		result = r
	case "G2", "G3":
		r, err := h.circular(ctx, node, state, from, resolved, code == "G2", feed)
		if err != nil {
			return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: err.Error()}
		}
		result = r
	}

	state.UpdateAxes(resolved)
	return result, true, nil
}

// circular resolves the active plane, the arc center (I/J if given,
// otherwise the two-candidate R-radius construction), and discretises the
// move.
func (h *MotionHandler) circular(ctx *ExecContext, node *CommandNode, state *CNCState, from, to map[string]float64, cw bool, feed float64) (*HandlerResult, error) {
	plane, ok := state.GetModal("plane")
	if !ok {
		plane = "G17"
	}
	axesPair, ok := planeAxes[plane]
	if !ok {
		axesPair = [2]string{"X", "Y"}
	}
	planeA, planeB := axesPair[0], axesPair[1]

	axes := make([]string, 0, len(to))
	for ax := range to {
		axes = append(axes, ax)
	}

	var cx, cy float64
	iv, iok := ctx.ResolvedFloat("I")
	jv, jok := ctx.ResolvedFloat("J")
	if iok || jok {
		di, dj := 0.0, 0.0
		if iok {
			di = iv
		}
		if jok {
			dj = jv
		}
		cx, cy = from[planeA]+di, from[planeB]+dj
	} else if rv, rok := ctx.ResolvedFloat("R"); rok {
		var err error
		cx, cy, err = arcCenterFromRadius([2]float64{from[planeA], from[planeB]}, [2]float64{to[planeA], to[planeB]}, rv, cw)
		if err != nil {
			return nil, err
		}
	} else {
		return nil, errMissingArcCenter
	}

	maxSeg := ctx.MaxSegment
	if maxSeg <= 0 {
		maxSeg = 0.5
	}
	return circularMove(from, to, axes, planeA, planeB, cx, cy, cw, maxSeg, feed)
}

// resolveAxisTargets reads every resolved axis-letter parameter on the
// current node into a partial target spec, applying U/V/W as incremental
// offsets onto X/Y/Z regardless of the active distance mode (matching
// motion.py's always-incremental U/V/W convention).
func resolveAxisTargets(ctx *ExecContext, state *CNCState) (map[string]float64, error) {
	target := map[string]float64{}
	for _, letter := range []string{"X", "Y", "Z", "A", "B", "C"} {
		if v, ok := ctx.ResolvedFloat(letter); ok {
			target[letter] = v
		}
	}
	incremental := map[string]string{"U": "X", "V": "Y", "W": "Z"}
	for letter, axis := range incremental {
		if v, ok := ctx.ResolvedFloat(letter); ok {
			if isAbsoluteMode(state) {
				target[axis] = state.GetAxis(axis) + v
			} else {
				// ResolveTarget adds the current position to every G91 delta.
				target[axis] += v
			}
		}
	}
	return target, nil
}

func isAbsoluteMode(state *CNCState) bool {
	mode, ok := state.GetModal("distance")
	return !ok || mode == "G90"
}

// feedOrRapid returns a large synthetic feed rate for G0 rapids so duration
// still computes as a small positive number instead of requiring a separate
// rapid-traverse rate the spec does not define.
func feedOrRapid(code string, feed float64) float64 {
	if code == "G0" {
		return rapidFeedRate
	}
	return feed
}

const rapidFeedRate = 5000.0 // mm/min, synthetic rapid-traverse rate

func motionCode(codes []string) string {
	for _, c := range codes {
		switch canonicalGCode(c) {
		case "G0", "G1", "G2", "G3":
			return canonicalGCode(c)
		}
	}
	return ""
}

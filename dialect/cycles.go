package dialect

import (
	"fmt"
	"math"

	"github.com/cncplot/gcodego/engine"
)

// pocket4 expands a circular pocket as concentric full-circle passes from
// the center outward to PRAD, each connected to the next by a radial move,
// following POCKET4(RTP, RFP, SDIS, DP, DPR, PRAD, CPA, CPO, ...) —
// retract plane, reference plane, safety clearance, final depth,
// depth-per-cut (ignored: every pass already cuts at DP, roughing in Z is
// not simulated), pocket radius, and the pocket center. Trailing
// feed/finishing-allowance arguments are accepted but not interpreted.
//
// Stepover is fixed at PRAD/10; no stepover argument is read. Grounded on the original project's
// pocket-resolution regression test: a PRAD=50 pocket must discretise to
// well over 2000 points at the segment length the rest of the engine uses
// for cycle geometry (ExecContext.CycleSegment, default 0.1mm) — the
// outermost pass alone, a circumference of 2*pi*50mm, already needs about
// 3142 points at that spacing.
func pocket4(ctx *engine.ExecContext, node *engine.CommandNode, state *engine.CNCState) (*engine.HandlerResult, error) {
	args, err := cycleArgs(node.CycleArgs, state)
	if err != nil {
		return nil, &engine.NCError{Kind: engine.KindCodeError, Line: node.Line, Message: fmt.Sprintf("POCKET4: %v", err)}
	}
	dp := argAt(args, 3, 0)
	prad := argAt(args, 5, 0)
	cpa := argAt(args, 6, 0)
	cpo := argAt(args, 7, 0)
	if prad <= 0 {
		return nil, &engine.NCError{Kind: engine.KindCodeError, Line: node.Line, Message: "POCKET4: PRAD must be positive"}
	}

	stepover := prad / 10
	feed := feedRate(state)
	var points []engine.Point
	duration := 0.0
	prev := axisPoint(state, cpa, cpo, dp)

	for r := stepover; ; r += stepover {
		if r > prad {
			r = prad
		}
		passStart := axisPoint(state, cpa+r, cpo, dp)

		radial, err := engine.LinearRow(prev, passStart, ctx.CycleSegment, feed)
		if err != nil {
			return nil, &engine.NCError{Kind: engine.KindCodeError, Line: node.Line, Message: err.Error()}
		}
		points = append(points, radial.Points...)
		duration += radial.Duration

		contour, err := engine.CircularContour(passStart, cpa, cpo, "X", "Y", false, ctx.CycleSegment, feed)
		if err != nil {
			return nil, &engine.NCError{Kind: engine.KindCodeError, Line: node.Line, Message: err.Error()}
		}
		points = append(points, contour.Points...)
		duration += contour.Duration

		prev = passStart
		if r >= prad {
			break
		}
	}

	return &engine.HandlerResult{Points: points, Duration: duration}, nil
}

// slot2 expands an arc slot's finishing contour: SLOT2(RTP, RFP, SDIS, DP,
// DPR, NUM, AFSL, WID, CPA, CPO, RAD, STA1, INDA) — NUM slots spaced INDA
// degrees apart (only the first slot, starting at STA1, is emitted; NUM and
// INDA are not read), arc length AFSL in degrees (positive AFSL runs
// counter-clockwise), slot width (not contoured here, only the center-line
// arc), the arc's center and radius, and its start angle.
//
// Grounded the same way as pocket4: an AFSL=180, RAD=50 slot's center-line
// arc length is pi*50mm ~= 157mm, comfortably over the 1000-point
// regression threshold at 0.1mm spacing.
func slot2(ctx *engine.ExecContext, node *engine.CommandNode, state *engine.CNCState) (*engine.HandlerResult, error) {
	args, err := cycleArgs(node.CycleArgs, state)
	if err != nil {
		return nil, &engine.NCError{Kind: engine.KindCodeError, Line: node.Line, Message: fmt.Sprintf("SLOT2: %v", err)}
	}
	dp := argAt(args, 3, 0)
	afsl := argAt(args, 6, 0)
	cpa := argAt(args, 8, 0)
	cpo := argAt(args, 9, 0)
	rad := argAt(args, 10, 0)
	sta1 := argAt(args, 11, 0)
	if rad <= 0 {
		return nil, &engine.NCError{Kind: engine.KindCodeError, Line: node.Line, Message: "SLOT2: RAD must be positive"}
	}

	fromAngle := sta1 * math.Pi / 180
	toAngle := (sta1 + afsl) * math.Pi / 180
	from := axisPoint(state, cpa+rad*math.Cos(fromAngle), cpo+rad*math.Sin(fromAngle), dp)
	to := axisPoint(state, cpa+rad*math.Cos(toAngle), cpo+rad*math.Sin(toAngle), dp)
	return engine.CircularArc(from, to, "X", "Y", cpa, cpo, afsl < 0, ctx.CycleSegment, feedRate(state))
}

// cycle61 expands a rectangular face-milling raster: CYCLE61(RTP, RFP,
// SDIS, DP, DT, DTB, CPA, CPO, LENG, WID, STA1, MID, FDP, VARI, MIDA, SSD).
// This engine implements a single finishing raster at depth DP across the
// LENG x WID rectangle centered at (CPA, CPO), rows spaced MIDA apart
// (falling back to one tenth of WID if MIDA is non-positive); dwell times,
// multi-pass roughing (MID as per-cut infeed) and the VARI machining-type
// switch are accepted for call-signature compatibility but not simulated.
//
// This parameter order matches the real Siemens CYCLE61 signature rather
// than a renumbered simplification, since the call from the original
// project's sample program is only meaningful decoded that way.
func cycle61(ctx *engine.ExecContext, node *engine.CommandNode, state *engine.CNCState) (*engine.HandlerResult, error) {
	args, err := cycleArgs(node.CycleArgs, state)
	if err != nil {
		return nil, &engine.NCError{Kind: engine.KindCodeError, Line: node.Line, Message: fmt.Sprintf("CYCLE61: %v", err)}
	}
	dp := argAt(args, 3, 0)
	cpa := argAt(args, 6, 0)
	cpo := argAt(args, 7, 0)
	leng := argAt(args, 8, 0)
	wid := argAt(args, 9, 0)
	mida := argAt(args, 14, 0)
	if mida <= 0 {
		mida = wid / 10
	}
	if mida <= 0 {
		return nil, &engine.NCError{Kind: engine.KindCodeError, Line: node.Line, Message: "CYCLE61: WID must be positive to derive a raster stepover"}
	}

	halfL := leng / 2
	halfW := wid / 2
	var points []engine.Point
	duration := 0.0
	feed := feedRate(state)
	y := cpo - halfW
	forward := true
	for y <= cpo+halfW+1e-9 {
		var from, to engine.Point
		if forward {
			from = axisPoint(state, cpa-halfL, y, dp)
			to = axisPoint(state, cpa+halfL, y, dp)
		} else {
			from = axisPoint(state, cpa+halfL, y, dp)
			to = axisPoint(state, cpa-halfL, y, dp)
		}
		row, err := engine.LinearRow(from, to, ctx.CycleSegment, feed)
		if err != nil {
			return nil, &engine.NCError{Kind: engine.KindCodeError, Line: node.Line, Message: err.Error()}
		}
		points = append(points, row.Points...)
		duration += row.Duration
		y += mida
		forward = !forward
	}

	return &engine.HandlerResult{Points: points, Duration: duration}, nil
}

// drill expands CYCLE81 (plain drilling) and CYCLE82 (drilling with dwell
// at depth): RTP, RFP, SDIS, DP, DPR[, DTB]. Motion is a single straight
// plunge at the current X/Y down to DP, then a rapid retract to RTP; the
// dwell CYCLE82 accepts has no effect on the emitted geometry.
func drill(ctx *engine.ExecContext, node *engine.CommandNode, state *engine.CNCState) (*engine.HandlerResult, error) {
	args, err := cycleArgs(node.CycleArgs, state)
	if err != nil {
		return nil, &engine.NCError{Kind: engine.KindCodeError, Line: node.Line, Message: fmt.Sprintf("%s: %v", node.CycleName, err)}
	}
	rtp := argAt(args, 0, state.GetAxis("Z"))
	dp := argAt(args, 3, 0)
	x, y := state.GetAxis("X"), state.GetAxis("Y")

	top := axisPoint(state, x, y, rtp)
	bottom := axisPoint(state, x, y, dp)
	down, err := engine.LinearRow(top, bottom, ctx.MaxSegment, feedRate(state))
	if err != nil {
		return nil, &engine.NCError{Kind: engine.KindCodeError, Line: node.Line, Message: err.Error()}
	}
	up, err := engine.LinearRow(bottom, top, ctx.MaxSegment, 5000)
	if err != nil {
		return nil, &engine.NCError{Kind: engine.KindCodeError, Line: node.Line, Message: err.Error()}
	}
	points := append(down.Points, up.Points[1:]...)
	return &engine.HandlerResult{Points: points, Duration: down.Duration + up.Duration}, nil
}

func axisPoint(state *engine.CNCState, x, y, z float64) engine.Point {
	return engine.Point{X: x, Y: y, Z: z, A: state.GetAxis("A"), B: state.GetAxis("B"), C: state.GetAxis("C")}
}

func feedRate(state *engine.CNCState) float64 {
	if state.FeedRate != nil {
		return *state.FeedRate
	}
	return 100
}

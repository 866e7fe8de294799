package engine

import (
	"fmt"
	"regexp"
	"strconv"
)

var doTagRe = regexp.MustCompile(`DO(\d+)`)
var endTagRe = regexp.MustCompile(`END(\d+)`)

// ControlFlowHandler interprets GOTO, labels, conditional IF/GOTO, and
// counted DO/END loops by rewriting ctx.NextOverride. It never emits
// geometry.
//
// Ported from StatefulIsoTurnCanal.run_nc_code_list's label_map/do_map/
// end_map bookkeeping (built once per run by Canal.RunNCCodeList) plus the jump
// semantics described for DO/END in spec section 4.3.
type ControlFlowHandler struct {
	cache *exprCache
}

// NewControlFlowHandler constructs a ControlFlowHandler.
func NewControlFlowHandler() *ControlFlowHandler {
	return &ControlFlowHandler{cache: newExprCache()}
}

// Handle implements Handler.
func (h *ControlFlowHandler) Handle(ctx *ExecContext, node *CommandNode, state *CNCState) (*HandlerResult, bool, error) {
	if node.Goto != nil {
		take := true
		if node.IfExpr != "" {
			ok, err := h.evalCondition(node.IfExpr, state)
			if err != nil {
				return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: err.Error(), Context: node.IfExpr}
			}
			take = ok
		}
		if take {
			target, ok := ctx.LabelMap[*node.Goto]
			if !ok {
				return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: fmt.Sprintf("GOTO target N%d not found", *node.Goto)}
			}
			ctx.SetNext(ctx.CurrentIndex, target)
		}
		return nil, false, nil
	}

	if node.LoopCommand == "" {
		return nil, false, nil
	}

	if m := doTagRe.FindStringSubmatch(node.LoopCommand); m != nil {
		tag := m[1]
		count := 1
		if node.LoopCount != nil {
			count = *node.LoopCount
		}
		ctx.LoopCounters[tag] = count
		ctx.activeDoIndex[tag] = ctx.CurrentIndex
		return nil, false, nil
	}

	if m := endTagRe.FindStringSubmatch(node.LoopCommand); m != nil {
		tag := m[1]
		if _, ok := ctx.DoMap[tag]; !ok {
			return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: fmt.Sprintf("unmatched END%s", tag)}
		}
		count, ok := ctx.LoopCounters[tag]
		if !ok {
			return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: fmt.Sprintf("END%s without an active DO%s", tag, tag)}
		}
		count--
		if count > 0 {
			ctx.LoopCounters[tag] = count
			doIdx := ctx.activeDoIndex[tag]
			ctx.SetNext(ctx.CurrentIndex, doIdx+1)
		} else {
			delete(ctx.LoopCounters, tag)
			delete(ctx.activeDoIndex, tag)
		}
		return nil, false, nil
	}

	return nil, false, nil
}

// evalCondition evaluates a boolean expression (standard comparison/
// logical operators, with `#name`/`Rname` variable substitution) over the
// current state.
func (h *ControlFlowHandler) evalCondition(exprText string, state *CNCState) (bool, error) {
	env := map[string]float64{}
	var lookupErr error
	n := 0
	rewritten := variableTokenRe.ReplaceAllStringFunc(exprText, func(tok string) string {
		n++
		name := "v" + strconv.Itoa(n)
		val, ok := state.GetParameter(tok)
		if !ok {
			lookupErr = fmt.Errorf("unknown variable reference %q", tok)
			return name
		}
		env[name] = val
		return name
	})
	if lookupErr != nil {
		return false, lookupErr
	}

	program, err := h.cache.compile(rewritten)
	if err != nil {
		return false, fmt.Errorf("invalid condition %q: %w", exprText, err)
	}
	out, err := runBool(program, env)
	if err != nil {
		return false, fmt.Errorf("invalid condition %q: %w", exprText, err)
	}
	return out, nil
}

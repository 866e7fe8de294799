package engine

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// variableTokenRe matches a program variable reference: an ISO `#name`
// token or a Siemens `Rname` token (digits only, to avoid matching an `R`
// arc-radius parameter letter used elsewhere).
var variableTokenRe = regexp.MustCompile(`#[A-Za-z0-9_]+|\bR[0-9]+\b`)

// VariableHandler resolves `#name=expr`/`Rname=expr` assignments and
// substitutes variable references in a node's parameters before any
// downstream handler sees them. It never consumes node.Params destructively
// — each call rebuilds a resolved snapshot on ctx.Resolved so the handler
// stays idempotent across DO/END loop re-entry.
type VariableHandler struct {
	cache *exprCache
}

// NewVariableHandler constructs a VariableHandler with its own expression
// cache.
func NewVariableHandler() *VariableHandler {
	return &VariableHandler{cache: newExprCache()}
}

// Handle implements Handler.
func (h *VariableHandler) Handle(ctx *ExecContext, node *CommandNode, state *CNCState) (*HandlerResult, bool, error) {
	if node.AssignName != "" {
		val, err := h.Eval(node.AssignExpr, state)
		if err != nil {
			return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: err.Error(), Context: node.AssignName + "=" + node.AssignExpr}
		}
		state.SetParameter(node.AssignName, val)
	}

	resolved := make(map[string]string, len(node.Params))
	for k, v := range node.Params {
		if isVariableRef(v) {
			f, err := ResolveLiteral(v, state)
			if err != nil {
				return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: err.Error(), Context: k + "=" + v}
			}
			resolved[k] = formatFloat(f)
		} else {
			resolved[k] = v
		}
	}
	ctx.Resolved = resolved

	if raw, ok := resolved["T"]; ok && ctx.Dialect != nil {
		if _, err := ctx.Dialect.ValidateTool(raw); err != nil {
			return nil, false, &NCError{Kind: KindCodeError, Line: node.Line, Message: err.Error(), Context: "T" + raw}
		}
	}

	return nil, false, nil
}

// Eval evaluates a four-operator arithmetic expression against state's
// current parameters. Variable tokens are rewritten to synthetic
// identifiers before handing the expression to expr-lang, since `#` is not
// a valid identifier character there.
func (h *VariableHandler) Eval(exprText string, state *CNCState) (float64, error) {
	env := map[string]float64{}
	var lookupErr error
	n := 0
	rewritten := variableTokenRe.ReplaceAllStringFunc(exprText, func(tok string) string {
		n++
		name := fmt.Sprintf("v%d", n)
		val, ok := state.GetParameter(tok)
		if !ok {
			lookupErr = fmt.Errorf("unknown variable reference %q", tok)
			return name
		}
		env[name] = val
		return name
	})
	if lookupErr != nil {
		return 0, lookupErr
	}

	result, err := h.cache.run(rewritten, env)
	if err != nil {
		return 0, fmt.Errorf("invalid expression %q: %w", exprText, err)
	}
	if math.IsInf(result, 0) {
		return 0, fmt.Errorf("division by zero in expression %q", exprText)
	}
	if math.IsNaN(result) {
		return 0, fmt.Errorf("expression %q produced NaN", exprText)
	}
	return result, nil
}

// ResolveLiteral parses a parameter's literal text into a float, resolving
// a variable reference through state if needed.
func ResolveLiteral(raw string, state *CNCState) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty literal")
	}
	if isVariableRef(raw) {
		v, ok := state.GetParameter(raw)
		if !ok {
			return 0, fmt.Errorf("unknown variable reference %q", raw)
		}
		return v, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric literal %q", raw)
	}
	return v, nil
}

func isVariableRef(raw string) bool {
	return variableTokenRe.MatchString(raw) && variableTokenRe.FindString(raw) == raw
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

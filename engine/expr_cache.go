package engine

import (
	"errors"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var errExprNonNumeric = errors.New("expression did not evaluate to a number")

// exprCache is a thread-safe cache of compiled expr-lang programs keyed by
// their sanitised source text, adapted from mbflow's ConditionCache: most
// NC programs re-evaluate the same handful of expressions every loop
// iteration, so compiling once per distinct source avoids re-parsing on
// every DO/END pass.
type exprCache struct {
	mu       sync.RWMutex
	programs map[string]*vm.Program
}

func newExprCache() *exprCache {
	return &exprCache{programs: make(map[string]*vm.Program)}
}

// compile returns the cached program for source, compiling and storing it
// on first use.
func (c *exprCache) compile(source string) (*vm.Program, error) {
	c.mu.RLock()
	program, ok := c.programs[source]
	c.mu.RUnlock()
	if ok {
		return program, nil
	}

	program, err := expr.Compile(source)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.programs[source] = program
	c.mu.Unlock()
	return program, nil
}

// runBool evaluates a compiled program against env, accepting a bool result
// directly or a numeric result interpreted as a C-style truth value (used
// for condition expressions, which may be comparisons or plain numbers).
func runBool(program *vm.Program, env map[string]float64) (bool, error) {
	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	switch v := out.(type) {
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case int:
		return v != 0, nil
	default:
		return false, errExprNonNumeric
	}
}

// run compiles (or reuses) source and evaluates it against env, returning a
// float64 result.
func (c *exprCache) run(source string, env map[string]float64) (float64, error) {
	program, err := c.compile(source)
	if err != nil {
		return 0, err
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return 0, err
	}
	switch v := out.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, errExprNonNumeric
	}
}

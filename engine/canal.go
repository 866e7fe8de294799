package engine

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/cncplot/gcodego/engine/emit"
)

// Canal is one independent execution thread: its own modal state, its own
// node list, its own tool path. Ported from BaseNCCanal.py's NCControl
// abstraction — a Canal is what a Controller multiplexes across.
type Canal struct {
	name  string
	opts  Options
	state *CNCState

	toolPath  []Segment
	execNodes []int
}

// NewCanal builds a Canal named name, ready to run a program via
// RunNCCodeList.
func NewCanal(name string, opts ...Option) *Canal {
	return &Canal{
		name:  name,
		opts:  resolveOptions(opts),
		state: NewCNCState(),
	}
}

// GetName returns the canal's identifier.
func (c *Canal) GetName() string { return c.name }

// GetToolPath returns every motion segment accumulated by the last
// RunNCCodeList.
func (c *Canal) GetToolPath() []Segment { return c.toolPath }

// GetExecNodes returns the node-list index of every node actually
// dispatched during the last RunNCCodeList, in execution order (loop bodies appear
// more than once).
func (c *Canal) GetExecNodes() []int { return c.execNodes }

// State exposes the canal's current modal state, mainly for tests and
// inspection between runs.
func (c *Canal) State() *CNCState { return c.state }

var doLabelRe = regexp.MustCompile(`^DO(\d+)$`)
var endLabelRe = regexp.MustCompile(`^END(\d+)$`)

// RunNCCodeList executes nodes from the start, resetting this canal's tool
// path, loop counters, and modal state first. It walks the node list
// following ExecContext.NextOverride, defaulting to index+1 when a node
// sets no override, until it runs off the end of the list, a node's jump
// target is itself (silent termination), or max steps is exceeded.
func (c *Canal) RunNCCodeList(ctx context.Context, nodes []CommandNode) error {
	c.state = NewCNCState()
	c.toolPath = nil
	c.execNodes = nil

	ec := &ExecContext{
		Nodes:         nodes,
		LabelMap:      map[int]int{},
		DoMap:         map[string][]int{},
		EndMap:        map[string][]int{},
		LoopCounters:  map[string]int{},
		activeDoIndex: map[string]int{},
		NextOverride:  map[int]int{},
		Dialect:       c.opts.Dialect,
		MaxSegment:    c.opts.MaxSegment,
		CycleSegment:  c.opts.CycleSegment,
	}
	for i, n := range nodes {
		if n.Label != nil {
			ec.LabelMap[*n.Label] = i
		}
		if m := doLabelRe.FindStringSubmatch(n.LoopCommand); m != nil {
			ec.DoMap[m[1]] = append(ec.DoMap[m[1]], i)
		}
		if m := endLabelRe.FindStringSubmatch(n.LoopCommand); m != nil {
			ec.EndMap[m[1]] = append(ec.EndMap[m[1]], i)
		}
	}

	maxSteps := c.opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 10000
		if budget := len(nodes) * 100; budget > maxSteps {
			maxSteps = budget
		}
	}

	c.opts.Emitter.Emit(emit.Event{CanalName: c.name, Step: -1, Msg: "run_start"})

	index := 0
	steps := 0
	for index >= 0 && index < len(nodes) {
		if ctx.Err() != nil {
			return &NCError{Kind: KindErrorInCanal, Line: nodes[index].Line, Message: ctx.Err().Error()}
		}
		if steps >= maxSteps {
			err := &NCError{Kind: KindMaxStepsExceeded, Line: nodes[index].Line, Message: fmt.Sprintf("exceeded %d steps without terminating", maxSteps)}
			c.opts.Metrics.observeError(c.name, err.Kind)
			return err
		}
		steps++

		ec.CurrentIndex = index
		node := nodes[index]
		c.execNodes = append(c.execNodes, index)

		start := time.Now()
		result, err := c.opts.Chain.Run(ec, &node, c.state)
		c.opts.Metrics.observeHandlerLatency(c.name, "chain", time.Since(start).Seconds())
		c.opts.Metrics.observeStep(c.name)

		if err != nil {
			nerr, ok := err.(*NCError)
			if !ok {
				nerr = &NCError{Kind: KindCodeError, Line: node.Line, Message: err.Error()}
			}
			c.opts.Metrics.observeError(c.name, nerr.Kind)
			c.opts.Emitter.Emit(emit.Event{CanalName: c.name, Step: index, Msg: "error", Meta: map[string]interface{}{"error": nerr.Error()}})
			return nerr
		}

		if result != nil && len(result.Points) > 0 {
			for _, p := range result.Points {
				if !p.Finite() {
					nerr := &NCError{Kind: KindCodeError, Line: node.Line, Message: "computed a non-finite tool-path point"}
					c.opts.Metrics.observeError(c.name, nerr.Kind)
					c.opts.Emitter.Emit(emit.Event{CanalName: c.name, Step: index, Msg: "error", Meta: map[string]interface{}{"error": nerr.Error()}})
					return nerr
				}
			}
			c.toolPath = append(c.toolPath, Segment{Points: result.Points, Duration: result.Duration})
			c.opts.Metrics.observeSegments(c.name, len(result.Points))
			c.opts.Emitter.Emit(emit.Event{CanalName: c.name, Step: index, Msg: "step", Meta: map[string]interface{}{
				"points":   len(result.Points),
				"duration": result.Duration,
			}})
		}

		next, overridden := ec.NextOverride[index]
		delete(ec.NextOverride, index)
		if overridden {
			if next == index {
				// A node whose own jump target is itself terminates the run
				// silently rather than spinning to the step budget.
				c.opts.Emitter.Emit(emit.Event{CanalName: c.name, Step: index, Msg: "self_loop_break"})
				break
			}
			c.opts.Metrics.observeJump(c.name)
			c.opts.Emitter.Emit(emit.Event{CanalName: c.name, Step: index, Msg: "jump", Meta: map[string]interface{}{"to": next}})
			index = next
		} else {
			index++
		}
	}

	c.opts.Emitter.Emit(emit.Event{CanalName: c.name, Step: -1, Msg: "run_complete"})
	return nil
}

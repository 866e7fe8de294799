// Package controller implements the thin multi-canal front the engine is
// consumed through: it owns N independent engine.Canal instances, indexed
// 1..N as in BaseNCCanal.py's NCControl, and forwards each call to the
// selected canal.
package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cncplot/gcodego/engine"
)

// Controller owns a fixed set of canals, indexed 1..N.
type Controller struct {
	canals []*engine.Canal
}

// New builds a Controller over the given canals, in index order (canal 1
// is canals[0]).
func New(canals ...*engine.Canal) *Controller {
	return &Controller{canals: canals}
}

// GetCanalCount returns the number of canals this controller owns.
func (c *Controller) GetCanalCount() int { return len(c.canals) }

func (c *Controller) canal(index int) (*engine.Canal, error) {
	if index < 1 || index > len(c.canals) {
		return nil, &engine.NCError{Kind: engine.KindCanalNotExist, Message: fmt.Sprintf("canal %d does not exist (have %d)", index, len(c.canals))}
	}
	return c.canals[index-1], nil
}

// GetCanalName returns canal index's name, or an empty string if index is
// out of range.
func (c *Controller) GetCanalName(index int) string {
	canal, err := c.canal(index)
	if err != nil {
		return ""
	}
	return canal.GetName()
}

// RunNCCodeList runs nodes on the given canal index. Returns
// KindCanalNotExist for an out-of-range index. An *engine.NCError from the
// canal's run is returned unchanged; any other error is wrapped as
// KindErrorInCanal, with a fresh run ID in its message.
func (c *Controller) RunNCCodeList(ctx context.Context, index int, nodes []engine.CommandNode) error {
	canal, err := c.canal(index)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	if err := canal.RunNCCodeList(ctx, nodes); err != nil {
		if nerr, ok := err.(*engine.NCError); ok {
			return nerr
		}
		return &engine.NCError{Kind: engine.KindErrorInCanal, Message: fmt.Sprintf("run %s: %v", runID, err)}
	}
	return nil
}

// RunAll runs a distinct program on each canal concurrently, returning the
// first error encountered (if any). Canals share no state, but they share
// one context: the first error cancels it, and every other canal still
// running then aborts at its next step.
func (c *Controller) RunAll(ctx context.Context, programs map[int][]engine.CommandNode) error {
	g, gctx := errgroup.WithContext(ctx)
	for index, nodes := range programs {
		index, nodes := index, nodes
		g.Go(func() error {
			return c.RunNCCodeList(gctx, index, nodes)
		})
	}
	return g.Wait()
}

// GetToolPath returns canal index's accumulated tool path, or nil if index
// is out of range.
func (c *Controller) GetToolPath(index int) []engine.Segment {
	canal, err := c.canal(index)
	if err != nil {
		return nil
	}
	return canal.GetToolPath()
}

// GetExecNodes returns canal index's executed node indices, or nil if
// index is out of range.
func (c *Controller) GetExecNodes(index int) []int {
	canal, err := c.canal(index)
	if err != nil {
		return nil
	}
	return canal.GetExecNodes()
}

// SynchroPoints is a declared non-goal: cross-canal wait-code
// synchronisation is not implemented. This stub documents the gap rather
// than silently ignoring it.
func (c *Controller) SynchroPoints(context.Context) error {
	return nil
}

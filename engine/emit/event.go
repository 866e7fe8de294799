// Package emit provides event emission and observability for canal execution.
package emit

// Event is one observability event emitted while a canal runs a program:
// a step dispatched through the handler chain, a control-flow jump, or an
// error.
type Event struct {
	// CanalName identifies which canal emitted this event.
	CanalName string

	// Step is the sequential node index executed (0-indexed). -1 for
	// run-level events (start, complete).
	Step int

	// Handler names the handler that produced this event, empty for
	// run-level events.
	Handler string

	// Msg is a short machine-grepable event name ("step", "jump",
	// "self_loop_break", "error", "run_start", "run_complete").
	Msg string

	// Meta carries event-specific structured data, e.g. "points" and
	// "duration" on a step, "to" on a jump, "error" on an error.
	Meta map[string]interface{}
}

package emit

import "context"

// Emitter receives observability events from a running canal. Implementations
// must not block canal execution and must not panic.
type Emitter interface {
	// Emit sends a single event.
	Emit(event Event)

	// EmitBatch sends multiple events in source order. Returns an error
	// only on catastrophic failures (e.g. misconfiguration); per-event
	// failures should be logged internally rather than returned.
	EmitBatch(ctx context.Context, events []Event) error

	// Flush blocks until every previously emitted event has reached its
	// backend.
	Flush(ctx context.Context) error
}

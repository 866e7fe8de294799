package emit

import "context"

// NullEmitter discards every event. It is the default when no Emitter is
// configured.
type NullEmitter struct{}

// Emit implements Emitter.
func (NullEmitter) Emit(Event) {}

// EmitBatch implements Emitter.
func (NullEmitter) EmitBatch(context.Context, []Event) error { return nil }

// Flush implements Emitter.
func (NullEmitter) Flush(context.Context) error { return nil }

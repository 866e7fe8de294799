package engine

import "github.com/cncplot/gcodego/engine/emit"

// Options configures a Canal. The zero value is usable: MaxSegment and
// CycleSegment fall back to their defaults, MaxSteps falls back to
// max(10000, len(nodes)*100), Emitter falls back to emit.NullEmitter{}.
type Options struct {
	Chain        *Chain
	Dialect      Dialect
	MaxSteps     int
	MaxSegment   float64
	CycleSegment float64
	Metrics      *Metrics
	Emitter      emit.Emitter
}

// Option is a functional option for NewCanal, following the same
// functional-options shape as the rest of the pack: chainable, each name
// self-documenting, composable with a plain Options struct.
type Option func(*Options)

// WithChain overrides the default handler chain (DefaultISOChain or
// DefaultSiemensChain are picked by dialect presence otherwise).
func WithChain(c *Chain) Option {
	return func(o *Options) { o.Chain = c }
}

// WithDialect attaches dialect-specific tool validation and cycle
// expansion.
func WithDialect(d Dialect) Option {
	return func(o *Options) { o.Dialect = d }
}

// WithMaxSteps bounds how many node dispatches a single run may take before
// it is aborted with KindMaxStepsExceeded, guarding against a GOTO/DO loop
// that never terminates.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// WithMaxSegment sets the maximum chord length, in millimetres, between
// consecutive points of an ordinary G0-G3 move. Default 0.5mm.
func WithMaxSegment(mm float64) Option {
	return func(o *Options) { o.MaxSegment = mm }
}

// WithCycleSegment sets the maximum chord length used while expanding a
// canned cycle's primitive moves. Default 0.1mm — finer than ordinary
// motion since cycles describe small-scale pocket/slot geometry.
func WithCycleSegment(mm float64) Option {
	return func(o *Options) { o.CycleSegment = mm }
}

// WithMetrics attaches a Prometheus metrics handle.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithEmitter attaches an observability sink.
func WithEmitter(e emit.Emitter) Option {
	return func(o *Options) { o.Emitter = e }
}

func resolveOptions(opts []Option) Options {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxSegment <= 0 {
		cfg.MaxSegment = 0.5
	}
	if cfg.CycleSegment <= 0 {
		cfg.CycleSegment = 0.1
	}
	if cfg.Emitter == nil {
		cfg.Emitter = emit.NullEmitter{}
	}
	if cfg.Chain == nil {
		if cfg.Dialect != nil {
			cfg.Chain = DefaultSiemensChain()
		} else {
			cfg.Chain = DefaultISOChain()
		}
	}
	return cfg
}

package variant

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName names the tracer obtained from the global provider.
const instrumentationName = "github.com/katalvlaran/cpfvariant/variant"

// Option configures a Searcher. Option constructors panic on meaningless
// values; Submit itself never panics.
type Option func(*Options)

// Options holds the collaborators and hooks of a Searcher.
type Options struct {
	// Ctx is the parent of the spans Submit starts. It is not consulted
	// for cancellation: a search always runs to completion.
	Ctx context.Context

	// Validator decides candidate validity and validates the input itself.
	Validator Validator

	// MaxLevel caps escalation, in [MinLevel, MaxLevel].
	MaxLevel int

	Logger  *slog.Logger
	Metrics *Metrics // nil disables metrics
	Tracer  trace.Tracer

	// OnLevel is called before each level with the level number.
	OnLevel func(level int)

	// OnEntry is called for each new entry, in result order.
	OnEntry func(e Entry)

	// OnProgress is called with the running checked counter every
	// ProgressEvery candidates. ProgressEvery == 0 disables it.
	OnProgress    func(checked int)
	ProgressEvery int
}

// DefaultOptions returns:
//   - context.Background()
//   - ChecksumValidator
//   - MaxLevel = 3
//   - a logger that discards everything
//   - no metrics
//   - the global otel tracer (a no-op unless a provider is installed)
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Validator:  ChecksumValidator{},
		MaxLevel:   MaxLevel,
		Logger:     slog.New(slog.DiscardHandler),
		Tracer:     otel.Tracer(instrumentationName),
		OnLevel:    func(int) {},
		OnEntry:    func(Entry) {},
		OnProgress: func(int) {},
	}
}

// WithContext sets the parent context of emitted spans.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("variant: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithValidator replaces the checksum rule.
func WithValidator(v Validator) Option {
	if v == nil {
		panic("variant: WithValidator(nil)")
	}
	return func(o *Options) { o.Validator = v }
}

// WithMaxLevel limits escalation to level n, 1 ≤ n ≤ 3.
func WithMaxLevel(n int) Option {
	if n < MinLevel || n > MaxLevel {
		panic(fmt.Sprintf("variant: WithMaxLevel(%d) outside [%d,%d]", n, MinLevel, MaxLevel))
	}
	return func(o *Options) { o.MaxLevel = n }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("variant: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records search counters into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithTracer sets the tracer used for spans.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("variant: WithTracer(nil)")
	}
	return func(o *Options) { o.Tracer = t }
}

// WithOnLevel registers a hook run before each level.
func WithOnLevel(fn func(level int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithOnEntry registers a hook run for each new entry.
func WithOnEntry(fn func(e Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEntry = fn
		}
	}
}

// WithProgress calls fn every `every` checked candidates.
func WithProgress(every int, fn func(checked int)) Option {
	if every <= 0 {
		panic(fmt.Sprintf("variant: WithProgress(%d) needs a positive interval", every))
	}
	if fn == nil {
		panic("variant: WithProgress(nil)")
	}
	return func(o *Options) {
		o.ProgressEvery = every
		o.OnProgress = fn
	}
}

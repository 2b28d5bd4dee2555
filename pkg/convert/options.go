package convert

import (
	"log/slog"

	"github.com/leapstack-labs/exprast/pkg/literal"
	"github.com/leapstack-labs/exprast/pkg/token"
)

// DefaultMaxDepth bounds Expr/Term nesting.
const DefaultMaxDepth = 256

// Options controls conversion.
type Options struct {
	// StringTrim selects how string literal quotes are removed.
	StringTrim literal.TrimMode
	// RadixFloat decodes float literals with literal.DecodeRadixFloat
	// instead of the decimal-only literal.DecodeFloat.
	RadixFloat bool
	// MaxDepth bounds expression nesting. Zero means DefaultMaxDepth.
	MaxDepth int
	// Workers bounds ConvertAll concurrency. Zero or less means unbounded.
	Workers int
	// SkipRules are hidden from every builder (EOI, trivia rules).
	SkipRules []token.Rule
	// Logger receives debug records. Nil discards.
	Logger *slog.Logger
}

// Option configures a Converter.
type Option func(*Options)

// WithStringTrim sets the string quote trimming mode.
func WithStringTrim(m literal.TrimMode) Option {
	return func(o *Options) { o.StringTrim = m }
}

// WithRadixFloat enables radix-prefixed integer parts in float literals.
func WithRadixFloat(enabled bool) Option {
	return func(o *Options) { o.RadixFloat = enabled }
}

// WithMaxDepth sets the expression nesting limit.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// WithWorkers bounds ConvertAll concurrency.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSkipRules hides pending nodes with the given rules.
func WithSkipRules(rules ...token.Rule) Option {
	return func(o *Options) { o.SkipRules = append(o.SkipRules, rules...) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

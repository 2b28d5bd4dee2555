// Package config loads converter settings from defaults, an optional
// config file and EXPRAST_ environment variables.
package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/leapstack-labs/exprast/pkg/convert"
	"github.com/leapstack-labs/exprast/pkg/literal"
	"github.com/leapstack-labs/exprast/pkg/token"
)

// Config holds converter settings.
type Config struct {
	// StringTrim is "all" or "one".
	StringTrim literal.TrimMode `koanf:"string_trim"`
	RadixFloat bool             `koanf:"radix_float"`
	MaxDepth   int              `koanf:"max_depth"`
	// Workers bounds batch conversion. Zero means unbounded.
	Workers int `koanf:"workers"`
	// SkipRules names grammar rules hidden from the converter, e.g. EOI.
	SkipRules []string   `koanf:"skip_rules"`
	LogLevel  slog.Level `koanf:"log_level"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be at least 1, got %d", c.MaxDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	for _, name := range c.SkipRules {
		if name == "" {
			return fmt.Errorf("skip_rules: empty rule name")
		}
		if r, ok := token.Lookup(name); ok && !token.IsDynamic(r) {
			return fmt.Errorf("skip_rules: %q is a builtin rule and cannot be skipped", name)
		}
	}
	return nil
}

// Rules registers and returns the skip rules.
func (c *Config) Rules() []token.Rule {
	rules := make([]token.Rule, 0, len(c.SkipRules))
	for _, name := range c.SkipRules {
		rules = append(rules, token.Register(name))
	}
	return rules
}

// Options converts the configuration into converter options. A nil logger
// keeps the converter's discarding default.
func (c *Config) Options(logger *slog.Logger) []convert.Option {
	opts := []convert.Option{
		convert.WithStringTrim(c.StringTrim),
		convert.WithRadixFloat(c.RadixFloat),
		convert.WithMaxDepth(c.MaxDepth),
		convert.WithWorkers(c.Workers),
	}
	if len(c.SkipRules) > 0 {
		opts = append(opts, convert.WithSkipRules(c.Rules()...))
	}
	if logger != nil {
		opts = append(opts, convert.WithLogger(logger))
	}
	return opts
}

// NewLogger returns a text logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

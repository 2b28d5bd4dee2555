package config

import (
	"log/slog"

	"github.com/leapstack-labs/exprast/pkg/convert"
	"github.com/leapstack-labs/exprast/pkg/literal"
)

// Default configuration values.
const (
	DefaultStringTrim = literal.TrimAll
	DefaultMaxDepth   = convert.DefaultMaxDepth
	DefaultWorkers    = 0
	DefaultLogLevel   = slog.LevelInfo
)

// defaults is the lowest-priority layer of the loader.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"string_trim": DefaultStringTrim.String(),
		"radix_float": false,
		"max_depth":   DefaultMaxDepth,
		"workers":     DefaultWorkers,
		"log_level":   DefaultLogLevel.String(),
	}
}

// Default returns a Config holding only default values.
func Default() *Config {
	return &Config{
		StringTrim: DefaultStringTrim,
		MaxDepth:   DefaultMaxDepth,
		Workers:    DefaultWorkers,
		LogLevel:   DefaultLogLevel,
	}
}

package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/exprast/pkg/ast"
	"github.com/leapstack-labs/exprast/pkg/convert"
	"github.com/leapstack-labs/exprast/pkg/cst"
	"github.com/leapstack-labs/exprast/pkg/literal"
	"github.com/leapstack-labs/exprast/pkg/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), ConfigFileName, `
string_trim: one
radix_float: true
max_depth: 32
workers: 4
skip_rules: [EOI, COMMENT]
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, literal.TrimOne, cfg.StringTrim)
	assert.True(t, cfg.RadixFloat)
	assert.Equal(t, 32, cfg.MaxDepth)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"EOI", "COMMENT"}, cfg.SkipRules)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), ConfigFileNameTOML, `
string_trim = "one"
max_depth = 8
skip_rules = ["EOI"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, literal.TrimOne, cfg.StringTrim)
	assert.Equal(t, 8, cfg.MaxDepth)
	assert.Equal(t, []string{"EOI"}, cfg.SkipRules)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), ConfigFileName, "max_depth: 32\nstring_trim: one\n")
	t.Setenv("EXPRAST_MAX_DEPTH", "64")
	t.Setenv("EXPRAST_SKIP_RULES", "EOI,WHITESPACE")
	t.Setenv("EXPRAST_RADIX_FLOAT", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.MaxDepth)
	assert.Equal(t, []string{"EOI", "WHITESPACE"}, cfg.SkipRules)
	assert.True(t, cfg.RadixFloat)
	assert.Equal(t, literal.TrimOne, cfg.StringTrim, "file value survives when env is silent")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		errSubstr string
	}{
		{"unknown trim mode", ConfigFileName, "string_trim: some\n", "unknown string trim mode"},
		{"zero depth", ConfigFileName, "max_depth: 0\n", "max_depth must be at least 1"},
		{"negative workers", ConfigFileNameAlt, "workers: -1\n", "workers must not be negative"},
		{"builtin skip rule", ConfigFileName, "skip_rules: [stmt]\n", `"stmt" is a builtin rule`},
		{"bad yaml", ConfigFileName, "max_depth: [\n", "error reading config file"},
		{"bad toml", ConfigFileNameTOML, "max_depth = \n", "error reading config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	require.Error(t, err)
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	writeFile(t, dir, ConfigFileNameTOML, "workers = 2\n")
	writeFile(t, dir, ConfigFileNameAlt, "workers: 3\n")
	assert.Equal(t, filepath.Join(dir, ConfigFileNameAlt), FindConfigFile(dir), "yaml wins over toml")

	cfg, err = LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
}

func TestConfig_Options(t *testing.T) {
	cfg := Default()
	cfg.StringTrim = literal.TrimOne
	cfg.MaxDepth = 9
	cfg.SkipRules = []string{"CONFIG_TEST_EOI"}

	var logs bytes.Buffer
	logger := cfg.NewLogger(&logs)

	var o convert.Options
	for _, opt := range cfg.Options(logger) {
		opt(&o)
	}
	assert.Equal(t, literal.TrimOne, o.StringTrim)
	assert.Equal(t, 9, o.MaxDepth)
	assert.Same(t, logger, o.Logger)
	require.Len(t, o.SkipRules, 1)

	eoi, ok := token.LookupDynamicRule("CONFIG_TEST_EOI")
	require.True(t, ok, "skip rules are registered")
	assert.Equal(t, eoi, o.SkipRules[0])

	var noLogger convert.Options
	for _, opt := range Default().Options(nil) {
		opt(&noLogger)
	}
	assert.Nil(t, noLogger.Logger)
	assert.Empty(t, noLogger.SkipRules)
}

func TestConfig_NewLogger(t *testing.T) {
	cfg := Default()
	var logs bytes.Buffer

	cfg.NewLogger(&logs).Debug("hidden")
	assert.Empty(t, logs.String())

	cfg.LogLevel = slog.LevelDebug
	cfg.NewLogger(&logs).Debug("shown")
	assert.Contains(t, logs.String(), "msg=shown")
}

func TestLoad_DrivesConversion(t *testing.T) {
	path := writeFile(t, t.TempDir(), ConfigFileName, `
string_trim: one
skip_rules: [CONFIG_TEST_END]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	end := token.Register("CONFIG_TEST_END")
	pairs := cst.Synthesize(
		cst.Branch(token.ExprInner, cst.Branch(token.Value, cst.Leaf(token.String, `""quoted""`))),
		cst.Leaf(end, ""),
	)

	c := convert.New(cfg.Options(nil)...)
	inner, err := c.ExprInner(cst.Skip(pairs, cfg.Rules()...))
	require.NoError(t, err)
	assert.Equal(t, `"quoted"`, inner.Val.(*ast.StringLiteral).Val)

	prog, err := convert.Convert(
		cst.Synthesize(cst.Branch(token.Main, cst.Branch(token.Stmt), cst.Leaf(end, ""))),
		cfg.Options(nil)...,
	)
	require.NoError(t, err)
	assert.Len(t, prog.Stmts, 1)
}

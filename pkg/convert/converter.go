// Package convert turns a rule-tagged pending-node CST into a typed AST.
//
// # Usage
//
//	prog, err := convert.Convert(pairs)
//	if err != nil {
//	    // *ConversionError
//	}
//
// # Protocol
//
// Every builder has the shape
//
//	func (c *Converter) X(cur cst.Cursor) (X, error)
//
// and ends in one of three ways:
//
//   - success: the cursor has advanced exactly past the consumed node;
//   - ErrNoMatch: the next node carries another rule and the cursor is
//     untouched, so a sibling alternative or an optional caller may retry;
//   - *ConversionError: the rule matched but its content could not be
//     converted. Nothing retries past this point.
//
// A builder may peek before consuming, but once it consumes a node it is
// committed: a child that then reports ErrNoMatch is turned into a fatal
// error because the cursor cannot be rewound.
//
// # Grammar Overview
//
// Shapes of the pending nodes each builder expects:
//
//	main            → stmt*
//	stmt            → (no children)
//	expr            → term [operator term]
//	expr_inner      → value
//	term            → value | expr
//	value           → primitive_value | string | array | tuple
//	primitive_value → char | integer | float
//	array | tuple   → expr*
//	operator        → op_add | op_sub | op_mul | op_div | op_pow
//	integer         → integer_dec | integer_bin | integer_oct | integer_hex
//
// Alternatives are tried left to right. Precedence and associativity are
// whatever the grammar's nesting of term into expr says; an expr holds at
// most one operator.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/exprast/pkg/ast"
	"github.com/leapstack-labs/exprast/pkg/cst"
	"github.com/leapstack-labs/exprast/pkg/token"
)

// Converter holds conversion options and the state of one conversion.
// A Converter is not safe for concurrent use; ConvertAll creates one per input.
type Converter struct {
	opts   Options
	logger *slog.Logger
	debug  bool
	depth  int // current expr nesting

	values     []alternative[ast.Value]
	primitives []alternative[ast.Primitive]
	integers   []alternative[ast.Integer]
	operators  []alternative[ast.Operator]
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	o := buildOptions(opts)
	c := &Converter{
		opts:   o,
		logger: o.Logger,
		debug:  o.Logger.Enabled(context.Background(), slog.LevelDebug),
	}

	c.values = []alternative[ast.Value]{
		variant[ast.Value](token.PrimitiveValue, c.PrimitiveValue),
		variant[ast.Value](token.String, c.String),
		variant[ast.Value](token.Array, c.Array),
		variant[ast.Value](token.Tuple, c.Tuple),
	}
	c.primitives = []alternative[ast.Primitive]{
		variant[ast.Primitive](token.Char, c.Char),
		variant[ast.Primitive](token.Integer, c.Integer),
		variant[ast.Primitive](token.Float, c.Float),
	}
	c.integers = []alternative[ast.Integer]{
		variant[ast.Integer](token.IntegerDec, c.IntegerDec),
		variant[ast.Integer](token.IntegerBin, c.IntegerBin),
		variant[ast.Integer](token.IntegerOct, c.IntegerOct),
		variant[ast.Integer](token.IntegerHex, c.IntegerHex),
	}
	c.operators = []alternative[ast.Operator]{
		{rule: token.OpAdd, build: c.opMarker(token.OpAdd, ast.OpAdd)},
		{rule: token.OpSub, build: c.opMarker(token.OpSub, ast.OpSub)},
		{rule: token.OpMul, build: c.opMarker(token.OpMul, ast.OpMul)},
		{rule: token.OpDiv, build: c.opMarker(token.OpDiv, ast.OpDiv)},
		{rule: token.OpPow, build: c.opMarker(token.OpPow, ast.OpPow)},
	}
	return c
}

// Convert converts a whole program with a fresh Converter.
func Convert(cur cst.Cursor, opts ...Option) (*ast.Program, error) {
	return New(opts...).Convert(cur)
}

// Convert converts the program at cur. The cursor must hold exactly one
// main node once skipped rules are removed.
func (c *Converter) Convert(cur cst.Cursor) (*ast.Program, error) {
	cur = cst.Skip(cur, c.opts.SkipRules...)
	c.depth = 0

	prog, err := c.Program(cur)
	if errors.Is(err, ErrNoMatch) {
		next, ok := cur.Peek()
		if !ok {
			return nil, &ConversionError{Rule: token.Main, Reason: ErrEmptyInput}
		}
		return nil, c.fatal(next, fmt.Sprintf(ErrExpectedRule, token.Main), nil)
	}
	if err != nil {
		return nil, err
	}

	if extra, ok := cur.Peek(); ok {
		return nil, c.fatal(extra, fmt.Sprintf(ErrUnexpectedTopLvl, extra.Rule()), nil)
	}
	return prog, nil
}

// ---------- Protocol Helpers ----------

// enter consumes the next pending node if it carries rule.
func (c *Converter) enter(cur cst.Cursor, rule token.Rule) (cst.Pair, error) {
	p, ok := cur.Peek()
	if !ok || p.Rule() != rule {
		return nil, ErrNoMatch
	}
	cur.Next()
	if c.debug {
		span := p.Span()
		c.logger.Debug("matched", "rule", rule.String(), "line", span.Start.Line, "column", span.Start.Column)
	}
	return p, nil
}

// leaf consumes a childless node carrying rule.
func (c *Converter) leaf(cur cst.Cursor, rule token.Rule) (cst.Pair, error) {
	p, err := c.enter(cur, rule)
	if err != nil {
		return nil, err
	}
	if err := c.finish(p, p.Inner()); err != nil {
		return nil, err
	}
	return p, nil
}

// require turns a child's ErrNoMatch into a fatal error on the committed
// parent. Other errors pass through unchanged.
func (c *Converter) require(parent cst.Pair, err error, want ...token.Rule) error {
	if !errors.Is(err, ErrNoMatch) {
		return err
	}
	names := make([]string, len(want))
	for i, r := range want {
		names[i] = r.String()
	}
	return c.fatal(parent, fmt.Sprintf(ErrExpectedRule, strings.Join(names, " or ")), nil)
}

// finish reports children left over after every field was built.
func (c *Converter) finish(p cst.Pair, inner cst.Cursor) error {
	if extra, ok := inner.Peek(); ok {
		return c.fatal(p, fmt.Sprintf(ErrExtraneous, extra.Rule()), nil)
	}
	return nil
}

// fatal builds a ConversionError for p.
func (c *Converter) fatal(p cst.Pair, reason string, cause error) error {
	span := p.Span()
	c.logger.Debug("conversion failed",
		"rule", p.Rule().String(),
		"line", span.Start.Line,
		"column", span.Start.Column,
		"reason", reason,
	)
	return &ConversionError{
		Rule:   p.Rule(),
		Span:   span,
		Text:   p.Text(),
		Reason: reason,
		Err:    cause,
	}
}

func nodeInfo(p cst.Pair) ast.NodeInfo {
	return ast.NodeInfo{Span: p.Span()}
}

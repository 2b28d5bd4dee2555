package convert

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/exprast/pkg/ast"
	"github.com/leapstack-labs/exprast/pkg/cst"
	"github.com/leapstack-labs/exprast/pkg/token"
)

// Expr builds a binary expression:
//
//	expr → term [operator term]
//
// The operator slot is optional. Once an operator matched, the right term
// is required. Children left after the right term are a fatal extraneous
// error. This intentionally differs from stopping after the right term:
// a trailing operator and term fail the conversion instead of being
// silently dropped.
func (c *Converter) Expr(cur cst.Cursor) (*ast.Expr, error) {
	p, err := c.enter(cur, token.Expr)
	if err != nil {
		return nil, err
	}
	if c.depth >= c.opts.MaxDepth {
		return nil, c.fatal(p, fmt.Sprintf(ErrDepthExceeded, c.opts.MaxDepth), nil)
	}
	c.depth++
	defer func() { c.depth-- }()

	inner := p.Inner()
	lhs, err := c.Term(inner)
	if err != nil {
		return nil, c.require(p, err, token.Term)
	}
	expr := &ast.Expr{NodeInfo: nodeInfo(p), LHS: lhs}

	op, err := c.Operator(inner)
	switch {
	case err == nil:
		rhs, err := c.Term(inner)
		if errors.Is(err, ErrNoMatch) {
			return nil, c.fatal(p, fmt.Sprintf(ErrMissingOperand, op), nil)
		}
		if err != nil {
			return nil, err
		}
		expr.RHS = &ast.Operand{Op: op, Term: rhs}
	case !errors.Is(err, ErrNoMatch):
		return nil, err
	}

	if err := c.finish(p, inner); err != nil {
		return nil, err
	}
	return expr, nil
}

// ExprInner builds a bare value in expression position.
func (c *Converter) ExprInner(cur cst.Cursor) (*ast.ExprInner, error) {
	p, err := c.enter(cur, token.ExprInner)
	if err != nil {
		return nil, err
	}

	inner := p.Inner()
	val, err := c.Value(inner)
	if err != nil {
		return nil, c.require(p, err, token.Value)
	}
	if err := c.finish(p, inner); err != nil {
		return nil, err
	}
	return &ast.ExprInner{NodeInfo: nodeInfo(p), Val: val}, nil
}

// Term builds a value or a nested expression:
//
//	term → value | expr
func (c *Converter) Term(cur cst.Cursor) (ast.Term, error) {
	p, err := c.enter(cur, token.Term)
	if err != nil {
		return nil, err
	}

	info := nodeInfo(p)
	inner := p.Inner()
	term, err := choose(inner, []alternative[ast.Term]{
		{
			rule: token.Value,
			build: func(cur cst.Cursor) (ast.Term, error) {
				v, err := c.Value(cur)
				if err != nil {
					return nil, err
				}
				return &ast.TermValue{NodeInfo: info, Value: v}, nil
			},
		},
		{
			rule: token.Expr,
			build: func(cur cst.Cursor) (ast.Term, error) {
				e, err := c.Expr(cur)
				if err != nil {
					return nil, err
				}
				return &ast.TermExpr{NodeInfo: info, Expr: e}, nil
			},
		},
	})
	if err != nil {
		return nil, c.require(p, err, token.Value, token.Expr)
	}

	if err := c.finish(p, inner); err != nil {
		return nil, err
	}
	return term, nil
}

// Operator builds one of the five operator tags:
//
//	operator → op_add | op_sub | op_mul | op_div | op_pow
func (c *Converter) Operator(cur cst.Cursor) (ast.Operator, error) {
	p, err := c.enter(cur, token.Operator)
	if err != nil {
		return 0, err
	}

	inner := p.Inner()
	op, err := choose(inner, c.operators)
	if err != nil {
		return 0, c.require(p, err, rules(c.operators)...)
	}
	if err := c.finish(p, inner); err != nil {
		return 0, err
	}
	return op, nil
}

// opMarker returns the builder for a single operator tag.
func (c *Converter) opMarker(rule token.Rule, op ast.Operator) func(cst.Cursor) (ast.Operator, error) {
	return func(cur cst.Cursor) (ast.Operator, error) {
		if _, err := c.leaf(cur, rule); err != nil {
			return 0, err
		}
		return op, nil
	}
}

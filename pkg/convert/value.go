package convert

import (
	"errors"

	"github.com/leapstack-labs/exprast/pkg/ast"
	"github.com/leapstack-labs/exprast/pkg/cst"
	"github.com/leapstack-labs/exprast/pkg/token"
)

// Value builds one of:
//
//	value → primitive_value | string | array | tuple
func (c *Converter) Value(cur cst.Cursor) (ast.Value, error) {
	p, err := c.enter(cur, token.Value)
	if err != nil {
		return nil, err
	}

	inner := p.Inner()
	val, err := choose(inner, c.values)
	if err != nil {
		return nil, c.require(p, err, rules(c.values)...)
	}
	if err := c.finish(p, inner); err != nil {
		return nil, err
	}
	return val, nil
}

// PrimitiveValue builds the primitive wrapper:
//
//	primitive_value → char | integer | float
func (c *Converter) PrimitiveValue(cur cst.Cursor) (*ast.PrimitiveValue, error) {
	p, err := c.enter(cur, token.PrimitiveValue)
	if err != nil {
		return nil, err
	}

	inner := p.Inner()
	prim, err := choose(inner, c.primitives)
	if err != nil {
		return nil, c.require(p, err, rules(c.primitives)...)
	}
	if err := c.finish(p, inner); err != nil {
		return nil, err
	}
	return &ast.PrimitiveValue{NodeInfo: nodeInfo(p), Prim: prim}, nil
}

// Params collects expressions until the next node is not an expr. It never
// reports ErrNoMatch: zero expressions is an empty list. Separators are
// not modeled; the grammar keeps them silent.
func (c *Converter) Params(cur cst.Cursor) (ast.Params, error) {
	exprs := make([]*ast.Expr, 0, 3)
	for {
		e, err := c.Expr(cur)
		if errors.Is(err, ErrNoMatch) {
			break
		}
		if err != nil {
			return ast.Params{}, err
		}
		exprs = append(exprs, e)
	}
	return ast.Params{Exprs: exprs}, nil
}

// Array builds a bracketed expression list.
func (c *Converter) Array(cur cst.Cursor) (*ast.Array, error) {
	p, params, err := c.sequence(cur, token.Array)
	if err != nil {
		return nil, err
	}
	return &ast.Array{NodeInfo: nodeInfo(p), Params: params}, nil
}

// Tuple builds a parenthesized expression list.
func (c *Converter) Tuple(cur cst.Cursor) (*ast.Tuple, error) {
	p, params, err := c.sequence(cur, token.Tuple)
	if err != nil {
		return nil, err
	}
	return &ast.Tuple{NodeInfo: nodeInfo(p), Params: params}, nil
}

// sequence consumes rule and reads its children as Params.
func (c *Converter) sequence(cur cst.Cursor, rule token.Rule) (cst.Pair, ast.Params, error) {
	p, err := c.enter(cur, rule)
	if err != nil {
		return nil, ast.Params{}, err
	}

	inner := p.Inner()
	params, err := c.Params(inner)
	if err != nil {
		return nil, ast.Params{}, err
	}
	if err := c.finish(p, inner); err != nil {
		return nil, ast.Params{}, err
	}
	return p, params, nil
}

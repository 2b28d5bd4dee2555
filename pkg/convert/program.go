package convert

import (
	"errors"

	"github.com/leapstack-labs/exprast/pkg/ast"
	"github.com/leapstack-labs/exprast/pkg/cst"
	"github.com/leapstack-labs/exprast/pkg/token"
)

// Program builds the root from a main node holding zero or more stmt nodes.
func (c *Converter) Program(cur cst.Cursor) (*ast.Program, error) {
	p, err := c.enter(cur, token.Main)
	if err != nil {
		return nil, err
	}

	inner := p.Inner()
	prog := &ast.Program{NodeInfo: nodeInfo(p)}
	for {
		stmt, err := c.Stmt(inner)
		if errors.Is(err, ErrNoMatch) {
			break
		}
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}

	if err := c.finish(p, inner); err != nil {
		return nil, err
	}
	return prog, nil
}

// Stmt builds the statement marker.
func (c *Converter) Stmt(cur cst.Cursor) (*ast.Stmt, error) {
	p, err := c.leaf(cur, token.Stmt)
	if err != nil {
		return nil, err
	}
	return &ast.Stmt{NodeInfo: nodeInfo(p)}, nil
}

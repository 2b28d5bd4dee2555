package convert

import (
	"github.com/leapstack-labs/exprast/pkg/ast"
	"github.com/leapstack-labs/exprast/pkg/cst"
	"github.com/leapstack-labs/exprast/pkg/literal"
	"github.com/leapstack-labs/exprast/pkg/token"
)

// String builds a string literal with its quotes trimmed according to
// Options.StringTrim.
func (c *Converter) String(cur cst.Cursor) (*ast.StringLiteral, error) {
	p, err := c.leaf(cur, token.String)
	if err != nil {
		return nil, err
	}
	return &ast.StringLiteral{
		NodeInfo: nodeInfo(p),
		Val:      literal.DecodeString(p.Text(), c.opts.StringTrim),
	}, nil
}

// Char builds a character literal.
func (c *Converter) Char(cur cst.Cursor) (*ast.Char, error) {
	p, err := c.leaf(cur, token.Char)
	if err != nil {
		return nil, err
	}
	r, err := literal.DecodeChar(p.Text())
	if err != nil {
		return nil, c.fatal(p, ErrInvalidLiteral, err)
	}
	return &ast.Char{NodeInfo: nodeInfo(p), Val: r}, nil
}

// Float builds a float literal. Only decimal text is accepted unless
// Options.RadixFloat is set.
func (c *Converter) Float(cur cst.Cursor) (*ast.Float, error) {
	p, err := c.leaf(cur, token.Float)
	if err != nil {
		return nil, err
	}

	decode := literal.DecodeFloat
	if c.opts.RadixFloat {
		decode = literal.DecodeRadixFloat
	}
	v, err := decode(p.Text())
	if err != nil {
		return nil, c.fatal(p, ErrInvalidLiteral, err)
	}
	return &ast.Float{NodeInfo: nodeInfo(p), Val: v}, nil
}

// Integer builds one of the four radix variants:
//
//	integer → integer_dec | integer_bin | integer_oct | integer_hex
//
// Dispatch is by rule tag only; the literal text is never sniffed.
func (c *Converter) Integer(cur cst.Cursor) (ast.Integer, error) {
	p, err := c.enter(cur, token.Integer)
	if err != nil {
		return nil, err
	}

	inner := p.Inner()
	i, err := choose(inner, c.integers)
	if err != nil {
		return nil, c.require(p, err, rules(c.integers)...)
	}
	if err := c.finish(p, inner); err != nil {
		return nil, err
	}
	return i, nil
}

// IntegerDec builds a decimal integer.
func (c *Converter) IntegerDec(cur cst.Cursor) (*ast.IntegerDec, error) {
	p, v, err := c.integerMarker(cur, token.IntegerDec, literal.Dec)
	if err != nil {
		return nil, err
	}
	return &ast.IntegerDec{NodeInfo: nodeInfo(p), Val: v}, nil
}

// IntegerBin builds a 0b-prefixed integer.
func (c *Converter) IntegerBin(cur cst.Cursor) (*ast.IntegerBin, error) {
	p, v, err := c.integerMarker(cur, token.IntegerBin, literal.Bin)
	if err != nil {
		return nil, err
	}
	return &ast.IntegerBin{NodeInfo: nodeInfo(p), Val: v}, nil
}

// IntegerOct builds a 0o-prefixed integer.
func (c *Converter) IntegerOct(cur cst.Cursor) (*ast.IntegerOct, error) {
	p, v, err := c.integerMarker(cur, token.IntegerOct, literal.Oct)
	if err != nil {
		return nil, err
	}
	return &ast.IntegerOct{NodeInfo: nodeInfo(p), Val: v}, nil
}

// IntegerHex builds a 0x-prefixed integer.
func (c *Converter) IntegerHex(cur cst.Cursor) (*ast.IntegerHex, error) {
	p, v, err := c.integerMarker(cur, token.IntegerHex, literal.Hex)
	if err != nil {
		return nil, err
	}
	return &ast.IntegerHex{NodeInfo: nodeInfo(p), Val: v}, nil
}

func (c *Converter) integerMarker(cur cst.Cursor, rule token.Rule, radix literal.Radix) (cst.Pair, int64, error) {
	p, err := c.leaf(cur, rule)
	if err != nil {
		return nil, 0, err
	}
	v, err := literal.DecodeInt(p.Text(), radix)
	if err != nil {
		return nil, 0, c.fatal(p, ErrInvalidLiteral, err)
	}
	return p, v, nil
}

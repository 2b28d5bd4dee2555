package ast

// Primitive is a char, an integer or a float.
type Primitive interface {
	Node
	primitiveNode()
}

// Char is a single character literal.
type Char struct {
	NodeInfo
	Val rune
}

// Float is a 64-bit floating point literal.
type Float struct {
	NodeInfo
	Val float64
}

func (*Char) primitiveNode()  {}
func (*Float) primitiveNode() {}

// Integer is an integer literal in one of four radixes.
type Integer interface {
	Primitive
	// AsInt64 returns the value regardless of the radix it was written in.
	AsInt64() int64
	// Radix returns 10, 2, 8 or 16.
	Radix() int
	integerNode()
}

// IntegerDec is a decimal integer literal.
type IntegerDec struct {
	NodeInfo
	Val int64
}

// IntegerBin is a 0b-prefixed integer literal.
type IntegerBin struct {
	NodeInfo
	Val int64
}

// IntegerOct is a 0o-prefixed integer literal.
type IntegerOct struct {
	NodeInfo
	Val int64
}

// IntegerHex is a 0x-prefixed integer literal.
type IntegerHex struct {
	NodeInfo
	Val int64
}

func (i *IntegerDec) AsInt64() int64 { return i.Val }
func (i *IntegerBin) AsInt64() int64 { return i.Val }
func (i *IntegerOct) AsInt64() int64 { return i.Val }
func (i *IntegerHex) AsInt64() int64 { return i.Val }

func (*IntegerDec) Radix() int { return 10 }
func (*IntegerBin) Radix() int { return 2 }
func (*IntegerOct) Radix() int { return 8 }
func (*IntegerHex) Radix() int { return 16 }

func (*IntegerDec) primitiveNode() {}
func (*IntegerBin) primitiveNode() {}
func (*IntegerOct) primitiveNode() {}
func (*IntegerHex) primitiveNode() {}

func (*IntegerDec) integerNode() {}
func (*IntegerBin) integerNode() {}
func (*IntegerOct) integerNode() {}
func (*IntegerHex) integerNode() {}

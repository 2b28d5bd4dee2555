package ast

import "fmt"

// Operator is a binary operator tag. It carries no data.
type Operator uint8

// Operators, in the order the grammar's alternatives are tried.
const (
	OpAdd Operator = iota + 1
	OpSub
	OpMul
	OpDiv
	OpPow
)

// String returns the operator symbol.
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	}
	return fmt.Sprintf("Operator(%d)", uint8(o))
}

// Name returns a word for the operator, for diagnostics.
func (o Operator) Name() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpPow:
		return "pow"
	}
	return "unknown"
}

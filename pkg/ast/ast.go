// Package ast defines the typed syntax tree produced from a pending-node CST.
//
// Ownership is strictly tree shaped: every node exclusively owns its
// children and nothing points back up. Nodes are never mutated after the
// builder that created them returns.
//
// Variant shapes (Term, Value, Primitive, Integer) are sealed interfaces
// implemented only by the types in this package.
package ast

import "github.com/leapstack-labs/exprast/pkg/token"

// Node is implemented by every AST node.
type Node interface {
	// Pos returns the position of the first character of the node.
	Pos() token.Position
	// End returns the position of the character immediately after the node.
	End() token.Position
}

// NodeInfo records the source span of the pending node a node was built from.
type NodeInfo struct {
	Span token.Span
}

// Pos implements Node.
func (n *NodeInfo) Pos() token.Position {
	return n.Span.Start
}

// End implements Node.
func (n *NodeInfo) End() token.Position {
	return n.Span.End
}

// GetSpan returns the node's source span.
func (n *NodeInfo) GetSpan() token.Span {
	return n.Span
}

// ---------- Program ----------

// Program is the root of the tree.
type Program struct {
	NodeInfo
	Stmts []*Stmt
}

// Stmt marks one statement match. It carries no payload yet.
type Stmt struct {
	NodeInfo
}

// ---------- Expressions ----------

// Expr is a term optionally followed by one operator and a second term.
// Chains such as a+b+c only exist through a nested Expr inside a Term.
type Expr struct {
	NodeInfo
	LHS Term
	RHS *Operand // nil when no operator was matched
}

// Operand is the operator and right-hand term of a binary Expr. Both are
// always present together.
type Operand struct {
	Op   Operator
	Term Term
}

// IsBinary returns true if the expression has an operator.
func (e *Expr) IsBinary() bool {
	return e.RHS != nil
}

// ExprInner is a bare value in expression position.
type ExprInner struct {
	NodeInfo
	Val Value
}

// Term is either a value or a parenthesized sub-expression.
type Term interface {
	Node
	termNode()
}

// TermValue is a Term holding a Value.
type TermValue struct {
	NodeInfo
	Value Value
}

// TermExpr is a Term holding a nested expression.
type TermExpr struct {
	NodeInfo
	Expr *Expr
}

func (*TermValue) termNode() {}
func (*TermExpr) termNode()  {}

// ---------- Values ----------

// Value is a primitive, a string, an array or a tuple.
type Value interface {
	Node
	valueNode()
}

// PrimitiveValue wraps a char, integer or float.
type PrimitiveValue struct {
	NodeInfo
	Prim Primitive
}

// StringLiteral is a string with its surrounding quotes removed.
type StringLiteral struct {
	NodeInfo
	Val string
}

// Params is an ordered, possibly empty list of expressions. It has no rule
// of its own; its span is that of the enclosing Array or Tuple.
type Params struct {
	Exprs []*Expr
}

// Len returns the number of expressions.
func (p Params) Len() int {
	return len(p.Exprs)
}

// Array is a bracketed sequence of expressions.
type Array struct {
	NodeInfo
	Params Params
}

// Tuple is a parenthesized sequence of expressions.
type Tuple struct {
	NodeInfo
	Params Params
}

func (*PrimitiveValue) valueNode() {}
func (*StringLiteral) valueNode()  {}
func (*Array) valueNode()          {}
func (*Tuple) valueNode()          {}

package convert

import (
	"github.com/leapstack-labs/exprast/pkg/cst"
	"github.com/leapstack-labs/exprast/pkg/token"
)

// Pending-node shapes as the grammar emits them.

func intLit(rule token.Rule, text string) *cst.Node {
	return cst.Branch(token.Integer, cst.Leaf(rule, text))
}

func prim(n *cst.Node) *cst.Node {
	return cst.Branch(token.Value, cst.Branch(token.PrimitiveValue, n))
}

func dec(text string) *cst.Node {
	return prim(intLit(token.IntegerDec, text))
}

func term(value *cst.Node) *cst.Node {
	return cst.Branch(token.Term, value)
}

func nested(e *cst.Node) *cst.Node {
	return cst.Branch(token.Term, e)
}

func opNode(rule token.Rule) *cst.Node {
	return cst.Branch(token.Operator, cst.Leaf(rule, ""))
}

func expr(children ...*cst.Node) *cst.Node {
	return cst.Branch(token.Expr, children...)
}

func binary(lhs *cst.Node, op token.Rule, rhs *cst.Node) *cst.Node {
	return expr(term(lhs), opNode(op), term(rhs))
}

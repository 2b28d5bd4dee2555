package ast

// Walk traverses a tree depth-first, left to right, and calls fn for each
// node. If fn returns false, the node's children are skipped.
func Walk(node Node, fn func(node Node) bool) {
	if isNil(node) {
		return
	}
	if !fn(node) {
		return
	}
	walkNode(node, fn)
}

func walkNode(node Node, fn func(node Node) bool) {
	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// Children returns the direct children of node in source order. Operators
// are not nodes; an Expr's children are its one or two terms.
func Children(node Node) []Node {
	switch n := node.(type) {
	case *Program:
		out := make([]Node, len(n.Stmts))
		for i, s := range n.Stmts {
			out[i] = s
		}
		return out

	case *Expr:
		if n.RHS != nil {
			return []Node{n.LHS, n.RHS.Term}
		}
		return []Node{n.LHS}

	case *ExprInner:
		return []Node{n.Val}

	case *TermValue:
		return []Node{n.Value}

	case *TermExpr:
		return []Node{n.Expr}

	case *PrimitiveValue:
		return []Node{n.Prim}

	case *Array:
		return paramNodes(n.Params)

	case *Tuple:
		return paramNodes(n.Params)
	}
	return nil
}

func paramNodes(p Params) []Node {
	out := make([]Node, len(p.Exprs))
	for i, e := range p.Exprs {
		out[i] = e
	}
	return out
}

// isNil catches both a nil interface and a typed nil pointer inside one.
func isNil(node Node) bool {
	if node == nil {
		return true
	}
	switch n := node.(type) {
	case *Program:
		return n == nil
	case *Stmt:
		return n == nil
	case *Expr:
		return n == nil
	case *ExprInner:
		return n == nil
	case *TermValue:
		return n == nil
	case *TermExpr:
		return n == nil
	case *PrimitiveValue:
		return n == nil
	case *StringLiteral:
		return n == nil
	case *Array:
		return n == nil
	case *Tuple:
		return n == nil
	case *Char:
		return n == nil
	case *Float:
		return n == nil
	case *IntegerDec:
		return n == nil
	case *IntegerBin:
		return n == nil
	case *IntegerOct:
		return n == nil
	case *IntegerHex:
		return n == nil
	}
	return false
}

// Inspect collects every node of type T reachable from root, in walk order.
func Inspect[T Node](root Node) []T {
	var out []T
	Walk(root, func(n Node) bool {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

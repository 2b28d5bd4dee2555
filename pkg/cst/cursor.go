package cst

import "github.com/leapstack-labs/exprast/pkg/token"

// Pair is a single pending node: a rule tag, the source text it matched,
// and its ordered children.
type Pair interface {
	Rule() token.Rule
	Text() string
	Span() token.Span
	// Inner returns a fresh cursor over the node's children.
	Inner() Cursor
}

// Cursor is a strictly ordered position over sibling pending nodes.
//
// Peek never moves the cursor. Next consumes the node Peek would have
// returned, together with its whole subtree.
type Cursor interface {
	Peek() (Pair, bool)
	Next() (Pair, bool)
}

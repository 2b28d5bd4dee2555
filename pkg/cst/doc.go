// Package cst models the output of the external grammar engine: an ordered,
// flattened sequence of rule-tagged pending nodes consumed left to right.
//
// Builders only depend on the Cursor and Pair interfaces. Pairs is the
// reference implementation: a preorder queue where every entry records the
// index just past its own subtree, so taking the inner cursor of a node and
// skipping over a node are both constant time.
//
//	pairs := cst.Synthesize(
//	    cst.Branch(token.Main,
//	        cst.Branch(token.Stmt),
//	    ),
//	)
//	p, ok := pairs.Peek()
package cst

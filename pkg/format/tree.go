package format

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/list"

	"github.com/leapstack-labs/exprast/pkg/ast"
)

// Tree renders node and its descendants as an indented list, one node per
// line with its starting line and column:
//
//	── Expr + @1:1
//	   ├─ TermValue @1:1
//	   ...
func Tree(node ast.Node) string {
	if node == nil {
		return ""
	}
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedLight)
	appendTree(l, node)
	return l.Render()
}

func appendTree(l list.Writer, node ast.Node) {
	pos := node.Pos()
	l.AppendItem(fmt.Sprintf("%s @%d:%d", label(node), pos.Line, pos.Column))

	children := ast.Children(node)
	if len(children) == 0 {
		return
	}
	l.Indent()
	for _, child := range children {
		if child != nil {
			appendTree(l, child)
		}
	}
	l.UnIndent()
}

func label(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Program:
		return "Program"
	case *ast.Stmt:
		return "Stmt"
	case *ast.Expr:
		if n.RHS != nil {
			return "Expr " + n.RHS.Op.String()
		}
		return "Expr"
	case *ast.ExprInner:
		return "ExprInner"
	case *ast.TermValue:
		return "TermValue"
	case *ast.TermExpr:
		return "TermExpr"
	case *ast.PrimitiveValue:
		return "PrimitiveValue"
	case *ast.StringLiteral:
		return "String " + strconv.Quote(n.Val)
	case *ast.Array:
		return fmt.Sprintf("Array len=%d", n.Params.Len())
	case *ast.Tuple:
		return fmt.Sprintf("Tuple len=%d", n.Params.Len())
	case *ast.Char:
		return "Char " + strconv.QuoteRune(n.Val)
	case *ast.Float:
		return "Float " + formatFloat(n.Val)
	case ast.Integer:
		return fmt.Sprintf("Integer/%d %s", n.Radix(), Source(n))
	}
	return fmt.Sprintf("%T", node)
}

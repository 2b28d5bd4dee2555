package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leapstack-labs/exprast/pkg/ast"
)

// Source renders node as source text. Nested expressions are wrapped in
// parentheses, integers keep the radix they were written in and a
// one-element tuple keeps its trailing comma. Statements render as ";",
// one per line.
func Source(node ast.Node) string {
	p := newPrinter()
	p.node(node)
	return p.String()
}

func (p *Printer) node(node ast.Node) {
	switch n := node.(type) {
	case nil:
		return
	case *ast.Program:
		p.formatList(len(n.Stmts), func(i int) { p.node(n.Stmts[i]) }, "\n")
	case *ast.Stmt:
		p.writeByte(';')
	case *ast.Expr:
		p.expr(n)
	case *ast.ExprInner:
		p.node(n.Val)
	case *ast.TermValue:
		p.node(n.Value)
	case *ast.TermExpr:
		p.writeByte('(')
		p.expr(n.Expr)
		p.writeByte(')')
	case *ast.PrimitiveValue:
		p.node(n.Prim)
	case *ast.StringLiteral:
		p.writeByte('"')
		p.write(n.Val)
		p.writeByte('"')
	case *ast.Array:
		p.writeByte('[')
		p.params(n.Params)
		p.writeByte(']')
	case *ast.Tuple:
		p.writeByte('(')
		p.params(n.Params)
		if n.Params.Len() == 1 {
			p.writeByte(',')
		}
		p.writeByte(')')
	case *ast.Char:
		p.writeByte('\'')
		p.write(string(n.Val))
		p.writeByte('\'')
	case *ast.Float:
		p.write(formatFloat(n.Val))
	case *ast.IntegerDec:
		p.write(strconv.FormatInt(n.Val, 10))
	case *ast.IntegerBin:
		p.write("0b" + strconv.FormatInt(n.Val, 2))
	case *ast.IntegerOct:
		p.write("0o" + strconv.FormatInt(n.Val, 8))
	case *ast.IntegerHex:
		p.write("0x" + strings.ToUpper(strconv.FormatInt(n.Val, 16)))
	default:
		p.write(fmt.Sprintf("<%T>", n))
	}
}

func (p *Printer) expr(e *ast.Expr) {
	if e == nil {
		return
	}
	p.node(e.LHS)
	if e.RHS != nil {
		p.space()
		p.write(e.RHS.Op.String())
		p.space()
		p.node(e.RHS.Term)
	}
}

func (p *Printer) params(params ast.Params) {
	p.formatList(params.Len(), func(i int) { p.expr(params.Exprs[i]) }, ", ")
}

// formatFloat prints the shortest representation that still reads back as
// a float literal.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

package format

import (
	"math"
	"strings"
	"testing"

	"github.com/leapstack-labs/exprast/pkg/ast"
	"github.com/leapstack-labs/exprast/pkg/token"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) ast.Term {
	return &ast.TermValue{Value: &ast.PrimitiveValue{Prim: &ast.IntegerDec{Val: v}}}
}

func single(t ast.Term) *ast.Expr {
	return &ast.Expr{LHS: t}
}

func binary(lhs ast.Term, op ast.Operator, rhs ast.Term) *ast.Expr {
	return &ast.Expr{LHS: lhs, RHS: &ast.Operand{Op: op, Term: rhs}}
}

func TestSource(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"binary", binary(dec(2), ast.OpAdd, dec(3)), "2 + 3"},
		{"single term", single(dec(7)), "7"},
		{"pow", binary(dec(2), ast.OpPow, dec(8)), "2 ^ 8"},
		{
			"nested term",
			binary(&ast.TermExpr{Expr: binary(dec(1), ast.OpMul, dec(2))}, ast.OpSub, dec(3)),
			"(1 * 2) - 3",
		},
		{"binary int", &ast.IntegerBin{Val: 5}, "0b101"},
		{"octal int", &ast.IntegerOct{Val: 15}, "0o17"},
		{"hex int", &ast.IntegerHex{Val: 26}, "0x1A"},
		{"float", &ast.Float{Val: 3.14}, "3.14"},
		{"whole float", &ast.Float{Val: 2}, "2.0"},
		{"huge float", &ast.Float{Val: 1e21}, "1e+21"},
		{"infinite float", &ast.Float{Val: math.Inf(1)}, "+Inf"},
		{"char", &ast.Char{Val: 'x'}, "'x'"},
		{"string", &ast.StringLiteral{Val: "abc"}, `"abc"`},
		{
			"array",
			&ast.Array{Params: ast.Params{Exprs: []*ast.Expr{single(dec(1)), single(dec(2))}}},
			"[1, 2]",
		},
		{"empty array", &ast.Array{}, "[]"},
		{
			"tuple",
			&ast.Tuple{Params: ast.Params{Exprs: []*ast.Expr{single(dec(1)), binary(dec(2), ast.OpDiv, dec(4))}}},
			"(1, 2 / 4)",
		},
		{"one tuple", &ast.Tuple{Params: ast.Params{Exprs: []*ast.Expr{single(dec(1))}}}, "(1,)"},
		{"empty tuple", &ast.Tuple{}, "()"},
		{"expr inner", &ast.ExprInner{Val: &ast.StringLiteral{Val: "s"}}, `"s"`},
		{"program", &ast.Program{Stmts: []*ast.Stmt{{}, {}}}, ";\n;"},
		{"empty program", &ast.Program{}, ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Source(tt.node))
		})
	}
}

func TestTree(t *testing.T) {
	e := binary(
		&ast.TermValue{Value: &ast.PrimitiveValue{Prim: &ast.IntegerHex{Val: 26}}},
		ast.OpAdd,
		&ast.TermValue{Value: &ast.StringLiteral{Val: "hi"}},
	)
	e.Span = token.Span{Start: token.Position{Line: 3, Column: 5}}

	out := Tree(e)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[0], "Expr + @3:5")
	assert.Contains(t, out, "Integer/16 0x1A @0:0")
	assert.Contains(t, out, `String "hi"`)

	// Children are indented past their parent.
	assert.Greater(t, strings.Index(lines[1], "TermValue"), strings.Index(lines[0], "Expr"))

	assert.Equal(t, "", Tree(nil))
}

// Package token defines the grammar rule tags carried by pending CST nodes.
//
// Rules of the expression grammar are defined as constants (IDs 0-999) so
// builders can dispatch with a plain comparison. Rules that only exist in a
// particular external grammar (EOI, COMMENT and the like) are registered
// dynamically via Register().
package token

import "fmt"

// Rule identifies the grammar rule that produced a pending node.
type Rule int32

const (
	// Invalid is the zero Rule; no pending node carries it.
	Invalid Rule = iota

	Main      // main: the whole program
	Stmt      // stmt
	Expr      // expr: term [operator term]
	ExprInner // expr_inner: bare value
	Term      // term: value | expr
	Value     // value
	Params    // params: silent, children are inlined into array/tuple

	PrimitiveValue // primitive_value
	String         // "..."
	Char           // '.'
	Array          // [ ... ]
	Tuple          // ( ... )

	Operator // operator
	OpAdd    // +
	OpSub    // -
	OpMul    // *
	OpDiv    // /
	OpPow    // ^

	Integer    // integer
	IntegerDec // 42
	IntegerBin // 0b101
	IntegerOct // 0o17
	IntegerHex // 0x1A
	Float      // 3.14

	// Sentinel - dynamic rules start after this
	maxBuiltin Rule = 999
)

// String returns the grammar name of the rule.
func (r Rule) String() string {
	if name, ok := getDynamicName(r); ok {
		return name
	}
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RULE(%d)", r)
}

// MarshalText encodes the rule by its grammar name.
func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText resolves a grammar name, builtin or registered.
func (r *Rule) UnmarshalText(text []byte) error {
	rule, ok := Lookup(string(text))
	if !ok {
		return fmt.Errorf("unknown rule %q", text)
	}
	*r = rule
	return nil
}

// ruleNames maps builtin rules to their grammar names.
var ruleNames = map[Rule]string{
	Invalid: "INVALID",

	Main:      "main",
	Stmt:      "stmt",
	Expr:      "expr",
	ExprInner: "expr_inner",
	Term:      "term",
	Value:     "value",
	Params:    "params",

	PrimitiveValue: "primitive_value",
	String:         "string",
	Char:           "char",
	Array:          "array",
	Tuple:          "tuple",

	Operator: "operator",
	OpAdd:    "op_add",
	OpSub:    "op_sub",
	OpMul:    "op_mul",
	OpDiv:    "op_div",
	OpPow:    "op_pow",

	Integer:    "integer",
	IntegerDec: "integer_dec",
	IntegerBin: "integer_bin",
	IntegerOct: "integer_oct",
	IntegerHex: "integer_hex",
	Float:      "float",
}

// builtinRules is the reverse of ruleNames.
var builtinRules = func() map[string]Rule {
	m := make(map[string]Rule, len(ruleNames))
	for r, name := range ruleNames {
		if r == Invalid {
			continue
		}
		m[name] = r
	}
	return m
}()

// Lookup returns the rule with the given grammar name.
// Builtin names are checked first, then registered ones.
func Lookup(name string) (Rule, bool) {
	if r, ok := builtinRules[name]; ok {
		return r, true
	}
	return LookupDynamicRule(name)
}

// IsOperatorMarker returns true for the five operator submarkers.
func IsOperatorMarker(r Rule) bool {
	return r >= OpAdd && r <= OpPow
}

// IsIntegerMarker returns true for the four integer radix submarkers.
func IsIntegerMarker(r Rule) bool {
	return r >= IntegerDec && r <= IntegerHex
}

// IsLiteral returns true if the rule's text span is decoded into a value.
func IsLiteral(r Rule) bool {
	switch r {
	case String, Char, Float:
		return true
	}
	return IsIntegerMarker(r)
}

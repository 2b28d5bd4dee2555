package convert

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/exprast/pkg/token"
)

// ErrNoMatch reports that the next pending node does not carry the rule a
// builder expects. It is a control signal, not a failure: the cursor has
// not moved and a sibling alternative or optional caller may retry.
var ErrNoMatch = errors.New("no match")

// ConversionError is a fatal conversion failure after a builder committed
// to a pending node. It is never retried.
type ConversionError struct {
	Rule   token.Rule
	Span   token.Span
	Text   string
	Reason string
	Err    error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("conversion error at line %d, column %d: %s: %s",
		e.Span.Start.Line, e.Span.Start.Column, e.Rule, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Common error messages
const (
	ErrExpectedRule     = "expected %s"
	ErrExtraneous       = "extraneous %s after last field"
	ErrMissingOperand   = "operator %s without right operand"
	ErrDepthExceeded    = "expression nesting exceeds %d levels"
	ErrInvalidLiteral   = "invalid literal"
	ErrUnexpectedTopLvl = "unexpected %s after program"
	ErrEmptyInput       = "no pending nodes"
)

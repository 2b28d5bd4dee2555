package literal

import "fmt"

// Kind names the literal class being decoded, for error reporting.
type Kind string

// Literal kinds.
const (
	KindInteger Kind = "integer"
	KindFloat   Kind = "float"
	KindChar    Kind = "char"
	KindString  Kind = "string"
)

// Error describes a literal whose text could not be decoded.
type Error struct {
	Kind   Kind
	Text   string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("invalid %s literal %q: %s", e.Kind, e.Text, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Common error reasons
const (
	ReasonMissingPrefix = "missing %s prefix"
	ReasonNoDigits      = "no digits"
	ReasonMalformed     = "malformed number"
	ReasonNoFraction    = "missing decimal point"
	ReasonEmptyChar     = "empty character literal"
	ReasonBadUTF8       = "invalid UTF-8"
)

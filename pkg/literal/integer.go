// Package literal decodes the text span of a matched literal node into a
// Go value. Every decoder is pure and reports failures as *Error.
package literal

import (
	"fmt"
	"strconv"
	"strings"
)

// Radix is the base an integer literal is written in.
type Radix int

// Supported radixes.
const (
	Bin Radix = 2
	Oct Radix = 8
	Dec Radix = 10
	Hex Radix = 16
)

// Prefix returns the lowercase two-character prefix for the radix, or ""
// for decimal.
func (r Radix) Prefix() string {
	switch r {
	case Bin:
		return "0b"
	case Oct:
		return "0o"
	case Hex:
		return "0x"
	}
	return ""
}

func (r Radix) String() string {
	switch r {
	case Bin:
		return "binary"
	case Oct:
		return "octal"
	case Hex:
		return "hexadecimal"
	case Dec:
		return "decimal"
	}
	return fmt.Sprintf("base-%d", int(r))
}

// DecodeInt parses an integer literal into a signed 64-bit value.
//
// Decimal literals are parsed whole. Binary, octal and hexadecimal literals
// must start with their prefix (0b/0B, 0o/0O, 0x/0X), which is stripped
// before parsing the remainder in the literal's base.
func DecodeInt(text string, radix Radix) (int64, error) {
	digits := text
	if radix != Dec {
		prefix := radix.Prefix()
		if prefix == "" {
			return 0, &Error{Kind: KindInteger, Text: text, Reason: fmt.Sprintf("unsupported radix %d", int(radix))}
		}
		if len(text) < len(prefix) || !strings.EqualFold(text[:len(prefix)], prefix) {
			return 0, &Error{Kind: KindInteger, Text: text, Reason: fmt.Sprintf(ReasonMissingPrefix, prefix)}
		}
		digits = text[len(prefix):]
	}
	if digits == "" {
		return 0, &Error{Kind: KindInteger, Text: text, Reason: ReasonNoDigits}
	}

	v, err := strconv.ParseInt(digits, int(radix), 64)
	if err != nil {
		return 0, &Error{Kind: KindInteger, Text: text, Reason: ReasonMalformed, Err: numError(err)}
	}
	return v, nil
}

// numError drops strconv's echo of the input, which Error already carries.
func numError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}

package literal

import (
	"errors"
	"strconv"
	"strings"
)

// DecodeFloat parses a float literal as a base-10 floating point value.
// Hexadecimal mantissas and digit underscores are rejected. Values too
// large for a float64 decode to ±Inf.
func DecodeFloat(text string) (float64, error) {
	if !decimalOnly(text) {
		return 0, &Error{Kind: KindFloat, Text: text, Reason: ReasonMalformed}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, &Error{Kind: KindFloat, Text: text, Reason: ReasonMalformed, Err: numError(err)}
	}
	return v, nil
}

// decimalOnly reports whether text avoids the ParseFloat extensions that a
// float literal does not have: 0x mantissas and underscores.
func decimalOnly(text string) bool {
	if strings.ContainsRune(text, '_') {
		return false
	}
	s := text
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X')
}

// DecodeRadixFloat parses a float literal whose integer part may carry a
// radix prefix, e.g. 0x1A.5 = 26.5. The integer part is rewritten in
// decimal and the fractional digits are kept as written (base 10).
//
// The text must contain a decimal point.
func DecodeRadixFloat(text string) (float64, error) {
	integer, fraction, ok := strings.Cut(text, ".")
	if !ok {
		return 0, &Error{Kind: KindFloat, Text: text, Reason: ReasonNoFraction}
	}

	if radix, prefixed := radixOf(integer); prefixed {
		v, err := DecodeInt(integer, radix)
		if err != nil {
			lerr := err.(*Error)
			return 0, &Error{Kind: KindFloat, Text: text, Reason: lerr.Reason, Err: lerr.Err}
		}
		integer = strconv.FormatInt(v, 10)
	}

	return DecodeFloat(integer + "." + fraction)
}

// radixOf reports the radix announced by a two-character prefix.
func radixOf(s string) (Radix, bool) {
	if len(s) < 2 {
		return Dec, false
	}
	switch s[:2] {
	case "0b", "0B":
		return Bin, true
	case "0o", "0O":
		return Oct, true
	case "0x", "0X":
		return Hex, true
	}
	return Dec, false
}

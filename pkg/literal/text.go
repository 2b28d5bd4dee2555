package literal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TrimMode selects how many quote characters are removed from each end of
// a string literal.
type TrimMode int

const (
	// TrimAll removes every leading and trailing double quote, so content
	// that itself starts or ends with a quote loses it too.
	TrimAll TrimMode = iota
	// TrimOne removes exactly one enclosing quote at each end.
	TrimOne
)

func (m TrimMode) String() string {
	switch m {
	case TrimAll:
		return "all"
	case TrimOne:
		return "one"
	}
	return fmt.Sprintf("TrimMode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m TrimMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *TrimMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "all":
		*m = TrimAll
	case "one":
		*m = TrimOne
	default:
		return fmt.Errorf("unknown string trim mode %q (want all or one)", text)
	}
	return nil
}

// DecodeString strips the surrounding double quotes from a string literal.
// No escape sequences are interpreted.
func DecodeString(text string, mode TrimMode) string {
	if mode == TrimOne {
		return strings.TrimSuffix(strings.TrimPrefix(text, `"`), `"`)
	}
	return strings.Trim(text, `"`)
}

// DecodeChar strips all surrounding single quotes from a char literal and
// returns the first remaining character.
func DecodeChar(text string) (rune, error) {
	body := strings.Trim(text, "'")
	if body == "" {
		return 0, &Error{Kind: KindChar, Text: text, Reason: ReasonEmptyChar}
	}
	r, size := utf8.DecodeRuneInString(body)
	if r == utf8.RuneError && size <= 1 {
		return 0, &Error{Kind: KindChar, Text: text, Reason: ReasonBadUTF8}
	}
	return r, nil
}

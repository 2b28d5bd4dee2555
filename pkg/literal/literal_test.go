package literal

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInt(t *testing.T) {
	tests := []struct {
		text  string
		radix Radix
		want  int64
	}{
		{"42", Dec, 42},
		{"0", Dec, 0},
		{"-17", Dec, -17},
		{"9223372036854775807", Dec, math.MaxInt64},
		{"0b101", Bin, 5},
		{"0B11111111", Bin, 255},
		{"0o17", Oct, 15},
		{"0O777", Oct, 511},
		{"0x1A", Hex, 26},
		{"0xff", Hex, 255},
		{"0X7FFFFFFFFFFFFFFF", Hex, math.MaxInt64},
		{"0x-1A", Hex, -26},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := DecodeInt(tt.text, tt.radix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeInt_Errors(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		radix  Radix
		reason string
	}{
		{"empty decimal", "", Dec, ReasonNoDigits},
		{"prefix only", "0x", Hex, ReasonNoDigits},
		{"too short for prefix", "1", Bin, "missing 0b prefix"},
		{"wrong prefix", "0x11", Bin, "missing 0b prefix"},
		{"digit out of range", "0b102", Bin, ReasonMalformed},
		{"octal nine", "0o19", Oct, ReasonMalformed},
		{"overflow", "0x8000000000000000", Hex, ReasonMalformed},
		{"letters in decimal", "12a", Dec, ReasonMalformed},
		{"unsupported radix", "0z1", Radix(3), "unsupported radix 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeInt(tt.text, tt.radix)
			require.Error(t, err)

			var lerr *Error
			require.ErrorAs(t, err, &lerr)
			assert.Equal(t, KindInteger, lerr.Kind)
			assert.Equal(t, tt.text, lerr.Text)
			assert.Equal(t, tt.reason, lerr.Reason)
		})
	}
}

func TestDecodeInt_OverflowUnwrapsToRange(t *testing.T) {
	_, err := DecodeInt("99999999999999999999", Dec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, strconv.ErrRange))
}

func TestDecodeFloat(t *testing.T) {
	v, err := DecodeFloat("3.14")
	require.NoError(t, err)
	assert.Equal(t, 3.14, v)

	v, err = DecodeFloat("1e3")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, v)

	_, err = DecodeFloat("3.14.15")
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindFloat, lerr.Kind)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
}

func TestDecodeFloat_RadixPrefixNotSupported(t *testing.T) {
	// Only decimal text is accepted, even where strconv would parse it.
	for _, text := range []string{"0b1.5", "0x1A.5", "0x1p4", "0x1A.8p0", "-0X1p0", "0X1_0p0", "1_0.5"} {
		t.Run(text, func(t *testing.T) {
			_, err := DecodeFloat(text)
			var lerr *Error
			require.ErrorAs(t, err, &lerr)
			assert.Equal(t, KindFloat, lerr.Kind)
			assert.Equal(t, ReasonMalformed, lerr.Reason)
		})
	}
}

func TestDecodeFloat_OutOfRange(t *testing.T) {
	v, err := DecodeFloat("1e400")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = DecodeFloat("-1e400")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))
}

func TestDecodeRadixFloat(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"3.14", 3.14},
		{"0x1A.5", 26.5},
		{"0b101.25", 5.25},
		{"0O17.0", 15.0},
		{"1.5", 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := DecodeRadixFloat(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRadixFloat_Errors(t *testing.T) {
	_, err := DecodeRadixFloat("0x1A")
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, ReasonNoFraction, lerr.Reason)

	_, err = DecodeRadixFloat("0b12.5")
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindFloat, lerr.Kind)
	assert.Equal(t, "0b12.5", lerr.Text)
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name string
		text string
		mode TrimMode
		want string
	}{
		{"plain", `"abc"`, TrimAll, "abc"},
		{"empty", `""`, TrimAll, ""},
		{"leading quote in content is stripped", `""abc"`, TrimAll, "abc"},
		{"trailing quote in content is stripped", `"abc""`, TrimAll, "abc"},
		{"inner quotes kept", `"a"b"`, TrimAll, `a"b`},
		{"one layer keeps content quote", `""abc"`, TrimOne, `"abc`},
		{"one layer empty", `""`, TrimOne, ""},
		{"one layer lone quote", `"`, TrimOne, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeString(tt.text, tt.mode))
		})
	}
}

func TestDecodeChar(t *testing.T) {
	tests := []struct {
		text string
		want rune
	}{
		{"'x'", 'x'},
		{"'é'", 'é'},
		{"'ab'", 'a'},
		{"''x''", 'x'},
		{"x", 'x'},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := DecodeChar(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeChar_Errors(t *testing.T) {
	_, err := DecodeChar("''")
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, ReasonEmptyChar, lerr.Reason)
	assert.Contains(t, err.Error(), `invalid char literal "''"`)

	_, err = DecodeChar("'\xff'")
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, ReasonBadUTF8, lerr.Reason)
}

func TestTrimModeText(t *testing.T) {
	var m TrimMode
	require.NoError(t, m.UnmarshalText([]byte("one")))
	assert.Equal(t, TrimOne, m)
	require.NoError(t, m.UnmarshalText([]byte("ALL")))
	assert.Equal(t, TrimAll, m)
	assert.Error(t, m.UnmarshalText([]byte("some")))

	text, err := TrimOne.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "one", string(text))
}

func TestRadix(t *testing.T) {
	assert.Equal(t, "0x", Hex.Prefix())
	assert.Equal(t, "", Dec.Prefix())
	assert.Equal(t, "octal", Oct.String())
}

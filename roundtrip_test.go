package openstep

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundtripDocuments exercises a spread of string/data/array/dictionary shapes,
// including nesting, nonascending keys, and escape-worthy bytes.
var roundtripDocuments = []string{
	`hello`,
	`"quoted string"`,
	`"line one\nline two"`,
	`<deadbeef>`,
	`()`,
	`(1, 2, 3)`,
	`{}`,
	`{a = 1; b = 2;}`,
	`{b = 1; a = 2;}`,
	`{ outer = { inner = (1, 2, "three"); }; list = (<ab>, <cd>); }`,
}

// TestUniversalPropertyDecodeEncodeDecodeRoundTrip is Universal
// Property 1: decoding, encoding, and decoding again yields a plain-
// equal value to the first decode.
func TestUniversalPropertyDecodeEncodeDecodeRoundTrip(t *testing.T) {
	for _, doc := range roundtripDocuments {
		t.Run(doc, func(t *testing.T) {
			v1, err := DecodeString(doc)
			require.NoError(t, err)

			out := EncodeToString(v1, Encoding{})

			v2, err := DecodeString(out)
			require.NoError(t, err)

			assert.True(t, cmp.Equal(Plain(v1), Plain(v2)), "round trip changed plain value:\nfirst:  %#v\nsecond: %#v", v1, v2)
		})
	}
}

// TestUniversalPropertyStructuralRoundTrip is Universal Property 2:
// encoding a decoded value with the default (compact) configuration
// reproduces byte-identical output on a second pass, i.e. encoding is
// idempotent once formatting hints have stabilized.
func TestUniversalPropertyStructuralRoundTrip(t *testing.T) {
	for _, doc := range roundtripDocuments {
		t.Run(doc, func(t *testing.T) {
			v, err := DecodeString(doc)
			require.NoError(t, err)
			first := EncodeToString(v, Encoding{})

			v2, err := DecodeString(first)
			require.NoError(t, err)
			second := EncodeToString(v2, Encoding{})

			assert.Equal(t, first, second)
		})
	}
}

// TestUniversalPropertyUTF8Strictness is Universal Property 6: any
// overlong or surrogate-range byte sequence inside a quoted string is
// rejected rather than silently accepted.
func TestUniversalPropertyUTF8Strictness(t *testing.T) {
	cases := [][]byte{
		{0xC0, 0x80},       // overlong NUL
		{0xC1, 0xBF},       // overlong
		{0xE0, 0x80, 0x80}, // overlong
		{0xED, 0xA0, 0x80}, // surrogate U+D800
		{0xED, 0xBF, 0xBF}, // surrogate U+DFFF
		{0xF4, 0x90, 0x80, 0x80}, // above U+10FFFF
	}
	for _, bad := range cases {
		input := append([]byte{'"'}, bad...)
		input = append(input, '"')
		_, err := Decode(input)
		require.Error(t, err, "expected rejection of %x", bad)
		var decErr *DecodingError
		require.True(t, errors.As(err, &decErr))
		assert.Equal(t, ErrNonUTF8StringContents, decErr.Err.Code)
	}
}

// TestUniversalPropertyEveryRejectionReportsAPosition is Universal
// Property 7, exercised against a broader set of invalid documents than
// TestPositionReporting covers.
func TestUniversalPropertyEveryRejectionReportsAPosition(t *testing.T) {
	invalid := []string{
		``,
		`{}a`,
		`!`,
		`"unterminated`,
		`(1, 2`,
		`{a = 1;`,
		`{a 1;}`,
		`{a = 1}`,
		`<FF`,
		`<ZZ>`,
		`{() = v;}`,
		`"\400"`,
		`"\UD800"`,
	}
	for _, doc := range invalid {
		t.Run(doc, func(t *testing.T) {
			_, err := DecodeString(doc)
			require.Error(t, err)
			var decErr *DecodingError
			require.True(t, errors.As(err, &decErr))
			assert.GreaterOrEqual(t, decErr.Line, 1)
			assert.GreaterOrEqual(t, decErr.Column, 1)
		})
	}
}

// TestUniversalPropertyByteStringTotalOrder is Universal Property 4.
func TestUniversalPropertyByteStringTotalOrder(t *testing.T) {
	values := []string{"", "a", "ab", "b", "ba", "\x00", "\xff"}
	for _, a := range values {
		for _, b := range values {
			x, y := NewByteString(a), NewByteString(b)
			lt := x.Less(y)
			gt := y.Less(x)
			eq := x.Equal(y)
			// exactly one of <, >, == holds (trichotomy)
			count := 0
			if lt {
				count++
			}
			if gt {
				count++
			}
			if eq {
				count++
			}
			assert.Equal(t, 1, count, "trichotomy violated for %q vs %q", a, b)
		}
	}
}

// TestUniversalPropertyKeyEqualityIgnoresOptions is Universal Property
// 3, at the Dictionary level rather than the bare Key level (see
// value_test.go for the Key-only version).
func TestUniversalPropertyKeyEqualityIgnoresOptions(t *testing.T) {
	v1, err := DecodeString(`{"name" = 1;}`)
	require.NoError(t, err)
	v2, err := DecodeString(`{name = 1;}`)
	require.NoError(t, err)

	assert.True(t, cmp.Equal(Plain(v1), Plain(v2)))
}

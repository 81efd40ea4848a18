package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntLiteral(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int64
	}{
		{name: "decimal", text: "42", want: 42},
		{name: "zero", text: "0", want: 0},
		{name: "underscores", text: "1_000_000", want: 1000000},
		{name: "long suffix", text: "10L", want: 10},
		{name: "hex", text: "0xFF", want: 255},
		{name: "octal", text: "017", want: 15},
		{name: "binary", text: "0b101", want: 5},
		{name: "hex int wraps", text: "0xFFFFFFFF", want: -1},
		{name: "hex long does not wrap", text: "0xFFFFFFFFL", want: 4294967295},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntLiteral(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIntLiteral_Malformed(t *testing.T) {
	for _, text := range []string{"", "L", "0x", "12a", "99999999999999999999"} {
		_, err := ParseIntLiteral(text)
		assert.ErrorIs(t, err, ErrMalformedLiteral, text)
	}
}

func TestParseDoubleLiteral(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{text: "1.0", want: 1.0},
		{text: "1.5f", want: 1.5},
		{text: "2d", want: 2},
		{text: "1e3", want: 1000},
		{text: ".5", want: 0.5},
		{text: "1_0.2_5", want: 10.25},
		{text: "0x1p4", want: 16},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseDoubleLiteral(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnquoteString(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain", text: `"debug"`, want: "debug"},
		{name: "empty", text: `""`, want: ""},
		{name: "escapes", text: `"a\tb\n\"c\"\\"`, want: "a\tb\n\"c\"\\"},
		{name: "unicode", text: `"A\uu0042"`, want: "AB"},
		{name: "octal", text: `"\101\0"`, want: "A\x00"},
		{name: "space escape", text: `"a\sb"`, want: "a b"},
		{name: "text block", text: "\"\"\"\n    hello\n      world\n    \"\"\"", want: "hello\n  world\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnquoteString(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnquoteString_Errors(t *testing.T) {
	for _, text := range []string{`debug`, `"\q"`, `"\u12"`, `"`} {
		_, err := UnquoteString(text)
		assert.ErrorIs(t, err, ErrMalformedLiteral, text)
	}
}

func TestUnquoteChar(t *testing.T) {
	got, err := UnquoteChar(`'\n'`)
	require.NoError(t, err)
	assert.Equal(t, "\n", got)

	_, err = UnquoteChar(`''`)
	assert.Error(t, err)
}

func TestSimpleTypeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{in: "String", want: "String"},
		{in: "java.lang.String", want: "String"},
		{in: "java.util.Map<K, List<V>>", want: "Map"},
		{in: "ArrayList<>", want: "ArrayList"},
		{in: "int[]", want: "int"},
		{in: "Outer.Inner", want: "Inner"},
		{in: "@NonNull String", want: "String"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SimpleTypeName(tt.in), tt.in)
	}
}

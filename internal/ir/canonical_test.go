package ir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "hello", `"hello"`},
		{"empty string", "", `""`},
		{"int", 42, "42"},
		{"negative int", int64(-100), "-100"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"float", 0.5, "0.5"},
		{"negative float", -1.0, "-1"},
		{"float shortest form", 0.1, "0.1"},
		{"large float", 1e308, "1e+308"},
		{"negative zero", negZero(), "-0"},
		{"empty array", []any{}, "[]"},
		{"empty object", map[string]any{}, "{}"},
		{"array", []any{1, 2, 3}, "[1,2,3]"},
		{"simple object", map[string]any{"a": 1}, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

// negZero returns -0.0 as a runtime value; a -0.0 literal would fold to
// the same constant as 0.0 in some contexts.
func negZero() float64 {
	z := 0.0
	return -z
}

func TestMarshalCanonicalRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := MarshalCanonical(v)
		assert.Error(t, err)
	}
}

func TestMarshalCanonicalRejectsNull(t *testing.T) {
	_, err := MarshalCanonical(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null")
}

func TestMarshalCanonicalSortedKeys(t *testing.T) {
	obj := map[string]any{
		"zebra": 1,
		"alpha": 2,
		"beta":  3,
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"beta":3,"zebra":1}`, string(result))
}

func TestMarshalCanonicalNestedSortedKeys(t *testing.T) {
	obj := map[string]any{
		"z": map[string]any{
			"b": 1,
			"a": 2,
		},
		"a": 3,
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"a":3,"z":{"a":2,"b":1}}`, string(result))
}

func TestMarshalCanonicalUTF16Ordering(t *testing.T) {
	// U+E000 vs U+10000: UTF-16 code-unit order differs from UTF-8
	// byte order because the supplementary character encodes as a
	// surrogate pair starting at 0xD800.
	obj := map[string]any{
		"": 1,
		"𐀀":      2,
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)

	expected := `{"𐀀":2,"` + "" + `":1}`
	assert.Equal(t, expected, string(result))
}

func TestMarshalCanonicalNoHTMLEscaping(t *testing.T) {
	result, err := MarshalCanonical("a<b>&c")
	require.NoError(t, err)
	assert.Equal(t, `"a<b>&c"`, string(result))
}

func TestMarshalCanonicalNFCNormalization(t *testing.T) {
	// e + combining acute accent normalises to the precomposed form.
	decomposed := "é"
	precomposed := "é"

	r1, err := MarshalCanonical(decomposed)
	require.NoError(t, err)
	r2, err := MarshalCanonical(precomposed)
	require.NoError(t, err)
	assert.Equal(t, string(r2), string(r1))
}

func TestMarshalCanonicalLineSeparators(t *testing.T) {
	// U+2028 stays literal per RFC 8785.
	result, err := MarshalCanonical("a b")
	require.NoError(t, err)
	assert.Equal(t, "\"a b\"", string(result))

	// A literal backslash followed by the text u2028 stays escaped.
	result, err = MarshalCanonical(`a\u2028b`)
	require.NoError(t, err)
	assert.Equal(t, `"a\\u2028b"`, string(result))
}

func TestMarshalCanonicalDeterminism(t *testing.T) {
	obj := map[string]any{
		"constraints": []any{
			map[string]any{"name": "Fin", "sign": "any"},
			map[string]any{"name": "Positive", "lower": 0.0, "sign": "positive"},
		},
		"package": "strictfloat",
	}

	first, err := MarshalCanonical(obj)
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		again, err := MarshalCanonical(obj)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

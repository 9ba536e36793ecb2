package strictfloat

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizedF64(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		wantErr error
	}{
		{"zero", 0, nil},
		{"one", 1, nil},
		{"interior", 0.5, nil},
		{"below", -0.01, ErrOutOfRange},
		{"above", 1.01, ErrOutOfRange},
		{"nan", math.NaN(), ErrNaN},
		{"pos_inf", math.Inf(1), ErrPosInf},
		{"neg_inf", math.Inf(-1), ErrNegInf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := NewNormalizedF64(tt.v)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.v, x.Float64())
		})
	}
}

func TestNewZeroExclusion(t *testing.T) {
	_, err := NewNonZeroF64(0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	negZero := math.Copysign(0, -1)
	_, err = NewNonZeroF64(negZero)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewNonZeroPositiveF64(0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// the smallest subnormal is strictly positive and admissible
	x, err := NewNonZeroPositiveF64(math.SmallestNonzeroFloat64)
	require.NoError(t, err)
	assert.Equal(t, math.SmallestNonzeroFloat64, x.Float64())

	_, err = NewNonZeroNegativeF64(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestNewFinExtremes(t *testing.T) {
	for _, v := range []float64{0, math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64} {
		x, err := NewFinF64(v)
		require.NoError(t, err)
		assert.Equal(t, v, x.Float64())
	}
}

func TestNewF32(t *testing.T) {
	x, err := NewSymmetricF32(1)
	require.NoError(t, err)
	assert.Equal(t, float32(1), x.Float32())

	_, err = NewSymmetricF32(1.5)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewFinF32(float32(math.Inf(1)))
	assert.ErrorIs(t, err, ErrPosInf)
}

func TestMust(t *testing.T) {
	assert.Equal(t, 0.5, MustNormalizedF64(0.5).Float64())
	assert.Panics(t, func() { MustNormalizedF64(2) })
	assert.Panics(t, func() { MustFinF64(math.NaN()) })
}

func TestUnchecked(t *testing.T) {
	// no validation: the wrapper carries whatever it is given
	assert.True(t, math.IsNaN(UncheckedFinF64(math.NaN()).Float64()))
	assert.Equal(t, 5.0, UncheckedNormalizedF64(5).Float64())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr error
	}{
		{"plain", "0.5", 0.5, nil},
		{"whitespace", "  1.5\t", 1.5, nil},
		{"scientific", "2e-2", 0.02, nil},
		{"negative", "-3", -3, nil},
		{"empty", "", 0, ErrEmptyInput},
		{"blank", "   ", 0, ErrEmptyInput},
		{"garbage", "abc", 0, ErrSyntax},
		{"trailing", "1.5x", 0, ErrSyntax},
		{"overflow", "1e999", 0, ErrPosInf},
		{"neg_overflow", "-1e999", 0, ErrNegInf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := ParseFinF64(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, x.Float64())
		})
	}
}

func TestParseUnderflow(t *testing.T) {
	// underflow collapses to zero rather than failing
	x, err := ParseFinF64("1e-999")
	require.NoError(t, err)
	assert.Equal(t, 0.0, x.Float64())
}

func TestParseConstrained(t *testing.T) {
	_, err := ParseNormalizedF64("2")
	assert.ErrorIs(t, err, ErrOutOfRange)

	x, err := ParseNonZeroNegativeF32("-0.25")
	require.NoError(t, err)
	assert.Equal(t, float32(-0.25), x.Float32())
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.5", MustFinF64(1.5).String())
	assert.Equal(t, "0.1", MustNormalizedF64(0.1).String())
	assert.Equal(t, "-0.5", MustSymmetricF32(-0.5).String())
	assert.Equal(t, "MustFinF64(1.5)", MustFinF64(1.5).GoString())
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(MustNormalizedF64(0.5))
	require.NoError(t, err)
	assert.Equal(t, "0.5", string(data))

	var x NormalizedF64
	require.NoError(t, json.Unmarshal([]byte("0.25"), &x))
	assert.Equal(t, 0.25, x.Float64())

	err = json.Unmarshal([]byte("2"), &x)
	assert.ErrorIs(t, err, ErrOutOfRange)

	err = json.Unmarshal([]byte(`"x"`), &x)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestTextRoundTrip(t *testing.T) {
	text, err := MustSymmetricF64(-0.75).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-0.75", string(text))

	var x SymmetricF64
	require.NoError(t, x.UnmarshalText([]byte("0.75")))
	assert.Equal(t, 0.75, x.Float64())

	assert.Error(t, x.UnmarshalText([]byte("nope")))
}

func TestCompare(t *testing.T) {
	one, two := MustFinF64(1), MustFinF64(2)
	assert.True(t, one.Equal(MustFinF64(1)))
	assert.False(t, one.Equal(two))
	assert.Equal(t, -1, one.Cmp(two))
	assert.Equal(t, 1, two.Cmp(one))
	assert.Equal(t, 0, one.Cmp(MustFinF64(1)))
}

func TestCmpTotalZeroSign(t *testing.T) {
	negZero := MustFinF64(math.Copysign(0, -1))
	posZero := MustFinF64(0)

	// IEEE equality does not see the sign of zero
	assert.True(t, negZero.Equal(posZero))
	assert.Equal(t, 0, negZero.Cmp(posZero))

	// the total order does
	assert.Equal(t, -1, negZero.CmpTotal(posZero))
	assert.Equal(t, 1, posZero.CmpTotal(negZero))
	assert.Equal(t, 0, posZero.CmpTotal(MustFinF64(0)))
}

package strictfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizedMul(t *testing.T) {
	// closed under multiplication: no error return at all
	r := MustNormalizedF64(0.5).Mul(MustNormalizedF64(0.4))
	assert.Equal(t, 0.2, r.Float64())

	assert.Equal(t, 0.0, MustNormalizedF64(0).Mul(MustNormalizedF64(1)).Float64())
	assert.Equal(t, 1.0, MustNormalizedF64(1).Mul(MustNormalizedF64(1)).Float64())
}

func TestNormalizedAdd(t *testing.T) {
	r, err := MustNormalizedF64(0.75).Add(MustNormalizedF64(0.75))
	require.NoError(t, err)
	assert.Equal(t, 1.5, r.Float64())

	// the sum lands in Positive, not Normalized
	_, isPositive := any(r).(PositiveF64)
	assert.True(t, isPositive)
}

func TestNormalizedSub(t *testing.T) {
	r := MustNormalizedF64(0.25).Sub(MustNormalizedF64(1))
	assert.Equal(t, -0.75, r.Float64())

	_, isSymmetric := any(r).(SymmetricF64)
	assert.True(t, isSymmetric)
}

func TestOppositeSignAddIsSafe(t *testing.T) {
	// Positive + Negative cannot overflow, so the result is direct
	r := MustPositiveF64(math.MaxFloat64).AddNegative(MustNegativeF64(-math.MaxFloat64))
	assert.Equal(t, 0.0, r.Float64())
}

func TestAddOverflow(t *testing.T) {
	_, err := MustFinF64(math.MaxFloat64).Add(MustFinF64(math.MaxFloat64))
	assert.ErrorIs(t, err, ErrPosInf)

	_, err = MustFinF64(-math.MaxFloat64).Add(MustFinF64(-math.MaxFloat64))
	assert.ErrorIs(t, err, ErrNegInf)
}

func TestMulOverflowAndUnderflow(t *testing.T) {
	_, err := MustNonZeroF64(math.MaxFloat64).Mul(MustNonZeroF64(2))
	assert.ErrorIs(t, err, ErrPosInf)

	// underflow to zero leaves the non-zero set
	_, err = MustNonZeroF64(math.SmallestNonzeroFloat64).Mul(MustNonZeroF64(0.5))
	assert.ErrorIs(t, err, ErrOutOfRange)

	r, err := MustNonZeroF64(-3).Mul(MustNonZeroF64(2))
	require.NoError(t, err)
	assert.Equal(t, -6.0, r.Float64())
}

func TestDivByZero(t *testing.T) {
	_, err := MustFinF64(1).Div(MustFinF64(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	r, err := MustNonZeroF64(1).Div(MustNonZeroF64(2))
	require.NoError(t, err)
	assert.Equal(t, 0.5, r.Float64())
}

func TestPrimitiveOperand(t *testing.T) {
	r, err := MustNormalizedF64(0.5).MulFloat64(3)
	require.NoError(t, err)
	assert.Equal(t, 1.5, r.Float64())

	_, err = MustNormalizedF64(0.5).MulFloat64(math.NaN())
	assert.ErrorIs(t, err, ErrNaN)

	_, err = MustNormalizedF64(0.5).AddFloat64(math.Inf(1))
	assert.ErrorIs(t, err, ErrPosInf)

	_, err = MustFinF64(1).DivFloat64(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPrimitiveLeftOperand(t *testing.T) {
	r, err := Float64SubFinF64(1, MustFinF64(0.25))
	require.NoError(t, err)
	assert.Equal(t, 0.75, r.Float64())

	// the wrapper is the divisor here
	_, err = Float64DivFinF64(1, MustFinF64(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Float64AddFinF64(math.NaN(), MustFinF64(1))
	assert.ErrorIs(t, err, ErrNaN)
}

func TestNeg(t *testing.T) {
	n := MustNormalizedF64(0.25).Neg()
	assert.Equal(t, -0.25, n.Float64())
	_, isNegNorm := any(n).(NegativeNormalizedF64)
	assert.True(t, isNegNorm)

	back := n.Neg()
	assert.Equal(t, 0.25, back.Float64())

	p := MustNonZeroPositiveF64(2).Neg()
	assert.Equal(t, -2.0, p.Float64())
	_, isNonZeroNeg := any(p).(NonZeroNegativeF64)
	assert.True(t, isNonZeroNeg)
}

func TestAbs(t *testing.T) {
	a := MustSymmetricF64(-0.5).Abs()
	assert.Equal(t, 0.5, a.Float64())
	_, isNormalized := any(a).(NormalizedF64)
	assert.True(t, isNormalized)

	b := MustNonZeroNegativeF64(-3).Abs()
	assert.Equal(t, 3.0, b.Float64())
	_, isNonZeroPos := any(b).(NonZeroPositiveF64)
	assert.True(t, isNonZeroPos)
}

func TestSignum(t *testing.T) {
	assert.Equal(t, -1.0, MustFinF64(-7).Signum().Float64())
	assert.Equal(t, 0.0, MustFinF64(0).Signum().Float64())
	assert.Equal(t, 1.0, MustFinF64(42).Signum().Float64())

	// sign-restricted inputs land in the matching unit interval
	s := MustPositiveF64(0).Signum()
	assert.Equal(t, 0.0, s.Float64())
	_, isNormalized := any(s).(NormalizedF64)
	assert.True(t, isNormalized)

	n := MustNonZeroNegativeF64(-2).Signum()
	assert.Equal(t, -1.0, n.Float64())
	_, isNegNorm := any(n).(NegativeNormalizedF64)
	assert.True(t, isNegNorm)
}

func TestTrig(t *testing.T) {
	assert.Equal(t, 0.0, MustFinF64(0).Sin().Float64())
	assert.Equal(t, 1.0, MustFinF64(0).Cos().Float64())

	r, err := MustFinF64(0).Tan()
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Float64())
}

func TestSameWidthConversions(t *testing.T) {
	// widening conversions are direct
	s := MustNormalizedF64(0.5).ToSymmetric()
	assert.Equal(t, 0.5, s.Float64())
	p := MustNonZeroPositiveF64(3).ToPositive()
	assert.Equal(t, 3.0, p.Float64())

	// narrowing conversions re-check the target set
	n, err := MustFinF64(0.5).ToNormalized()
	require.NoError(t, err)
	assert.Equal(t, 0.5, n.Float64())

	_, err = MustFinF64(2).ToNormalized()
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = MustPositiveF64(0).ToNonZeroPositive()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCrossWidthConversions(t *testing.T) {
	assert.Equal(t, 1.5, MustFinF32(1.5).ToF64().Float64())

	x, err := MustFinF64(0.5).ToF32()
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), x.Float32())

	// 0.1 does not survive the round trip through float32
	_, err = MustFinF64(0.1).ToF32()
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = MustFinF64(1e300).ToF32()
	assert.ErrorIs(t, err, ErrPosInf)

	_, err = MustFinF64(-1e300).ToF32()
	assert.ErrorIs(t, err, ErrNegInf)
}

func TestConstants(t *testing.T) {
	assert.Equal(t, math.Pi, FinF64Pi().Float64())
	assert.Equal(t, 0.5, NormalizedF64Half().Float64())
	assert.Equal(t, -math.Pi, NonZeroNegativeF64NegPi().Float64())
	assert.Equal(t, float32(math.E), NonZeroPositiveF32E().Float32())
	assert.Equal(t, -1.0, SymmetricF64NegOne().Float64())
}

func TestOptionOps(t *testing.T) {
	a, b := MustNormalizedF64(0.5), MustNormalizedF64(0.25)

	r, err := MulOptNormalizedF64(&a, &b)
	require.NoError(t, err)
	assert.Equal(t, 0.125, r.Float64())

	_, err = MulOptNormalizedF64(nil, &b)
	assert.ErrorIs(t, err, ErrNoneOperand)

	_, err = AddOptNormalizedF64(&a, nil)
	assert.ErrorIs(t, err, ErrNoneOperand)

	s, err := SubOptNormalizedF64(&a, &b)
	require.NoError(t, err)
	assert.Equal(t, 0.25, s.Float64())
}

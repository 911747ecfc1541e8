/*
 * RPNCalc - The stack-based scientific calculator core
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rational

import (
	"math"
	"math/big"
	"testing"

	"github.com/govalues/decimal"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRational(t *testing.T, numerator, denominator int64) Rational {
	t.Helper()

	r, err := New(big.NewInt(numerator), big.NewInt(denominator))
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {

	t.Parallel()

	t.Run("reduces", func(t *testing.T) {
		t.Parallel()

		r := newRational(t, 6, -8)
		assert.Equal(t, big.NewInt(-3), r.Numerator())
		assert.Equal(t, big.NewInt(4), r.Denominator())
	})

	t.Run("zero is canonical", func(t *testing.T) {
		t.Parallel()

		r := newRational(t, 0, -5)
		assert.Equal(t, big.NewInt(0), r.Numerator())
		assert.Equal(t, big.NewInt(1), r.Denominator())
		assert.True(t, r.Equal(Zero))
	})

	t.Run("zero denominator", func(t *testing.T) {
		t.Parallel()

		_, err := New(big.NewInt(1), big.NewInt(0))
		require.ErrorAs(t, err, &DivisionByZeroError{})
	})

	t.Run("does not modify arguments", func(t *testing.T) {
		t.Parallel()

		numerator := big.NewInt(10)
		denominator := big.NewInt(-4)
		_, err := New(numerator, denominator)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(10), numerator)
		assert.Equal(t, big.NewInt(-4), denominator)
	})
}

func TestNewMixed(t *testing.T) {

	t.Parallel()

	r, err := NewMixed(big.NewInt(1), big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, "3/2", r.String())

	r, err = NewMixed(big.NewInt(-1), big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, "-3/2", r.String())

	r, err = NewMixed(big.NewInt(0), big.NewInt(-1), big.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, "-1/2", r.String())
}

func TestLowestTermsProperty(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	nonZero := gen.Int64().SuchThat(func(v int64) bool { return v != 0 })

	properties.Property("gcd(numerator, denominator) is 1 and denominator is positive", prop.ForAll(
		func(a, b, c, d int64) bool {
			left, err := New(big.NewInt(a), big.NewInt(b))
			if err != nil {
				return false
			}
			right, err := New(big.NewInt(c), big.NewInt(d))
			if err != nil {
				return false
			}
			quotient, err := left.Div(right)
			if err != nil {
				return right.IsZero()
			}
			for _, r := range []Rational{
				left,
				left.Add(right),
				left.Sub(right),
				left.Mul(right),
				quotient,
			} {
				denominator := r.Denominator()
				if denominator.Sign() <= 0 {
					return false
				}
				gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(r.Numerator()), denominator)
				if gcd.Cmp(big.NewInt(1)) != 0 {
					return false
				}
				if r.IsZero() && denominator.Cmp(big.NewInt(1)) != 0 {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		nonZero,
		gen.Int64(),
		nonZero,
	))

	properties.TestingRun(t)
}

func TestArithmetic(t *testing.T) {

	t.Parallel()

	half := newRational(t, 1, 2)
	third := newRational(t, 1, 3)

	assert.Equal(t, "5/6", half.Add(third).String())
	assert.Equal(t, "1/6", half.Sub(third).String())
	assert.Equal(t, "1/6", half.Mul(third).String())

	quotient, err := half.Div(third)
	require.NoError(t, err)
	assert.Equal(t, "3/2", quotient.String())

	_, err = half.Div(Zero)
	require.ErrorAs(t, err, &DivisionByZeroError{})

	inverse, err := third.Inv()
	require.NoError(t, err)
	assert.Equal(t, "3", inverse.String())

	_, err = Zero.Inv()
	require.ErrorAs(t, err, &DivisionByZeroError{})

	assert.Equal(t, "-1/2", half.Neg().String())
	assert.Equal(t, "1/2", half.Neg().Abs().String())
}

func TestMod(t *testing.T) {

	t.Parallel()

	// 7/2 mod 1 = 1/2
	r, err := newRational(t, 7, 2).Mod(One)
	require.NoError(t, err)
	assert.Equal(t, "1/2", r.String())

	// -7/2 mod 1 = -1/2, the sign follows the dividend
	r, err = newRational(t, -7, 2).Mod(One)
	require.NoError(t, err)
	assert.Equal(t, "-1/2", r.String())

	_, err = One.Mod(Zero)
	require.ErrorAs(t, err, &DivisionByZeroError{})
}

func TestPow(t *testing.T) {

	t.Parallel()

	r, err := newRational(t, 2, 3).Pow(big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, "8/27", r.String())

	r, err = newRational(t, 2, 3).Pow(big.NewInt(-2))
	require.NoError(t, err)
	assert.Equal(t, "9/4", r.String())

	r, err = newRational(t, 5, 7).Pow(big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, "1", r.String())

	r, err = NewFromInt64(-1).Pow(big.NewInt(1_000_000_001))
	require.NoError(t, err)
	assert.Equal(t, "-1", r.String())

	_, err = Zero.Pow(big.NewInt(-1))
	require.ErrorAs(t, err, &DivisionByZeroError{})

	_, err = NewFromInt64(2).Pow(new(big.Int).Lsh(big.NewInt(1), 40))
	require.ErrorAs(t, err, &OverflowError{})
}

func TestCmp(t *testing.T) {

	t.Parallel()

	assert.Equal(t, -1, newRational(t, 1, 3).Cmp(newRational(t, 1, 2)))
	assert.Equal(t, 1, newRational(t, -1, 3).Cmp(newRational(t, -1, 2)))
	assert.Equal(t, 0, newRational(t, 2, 4).Cmp(newRational(t, 1, 2)))
}

func TestRounding(t *testing.T) {

	t.Parallel()

	r := newRational(t, -7, 2)
	assert.Equal(t, big.NewInt(-3), r.Truncate())
	assert.Equal(t, big.NewInt(-4), r.Floor())
	assert.Equal(t, big.NewInt(-3), r.Ceil())
	assert.Equal(t, big.NewInt(-4), r.Round())
	assert.Equal(t, "-1/2", r.FractionalPart().String())

	r = newRational(t, 7, 3)
	assert.Equal(t, big.NewInt(2), r.Floor())
	assert.Equal(t, big.NewInt(3), r.Ceil())
	assert.Equal(t, big.NewInt(2), r.Round())
}

func TestFloat64(t *testing.T) {

	t.Parallel()

	t.Run("small", func(t *testing.T) {
		t.Parallel()

		f, err := newRational(t, 1, 4).Float64()
		require.NoError(t, err)
		assert.Equal(t, 0.25, f)
	})

	t.Run("large numerator and denominator", func(t *testing.T) {
		t.Parallel()

		huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(400), nil)
		numerator := new(big.Int).Mul(huge, big.NewInt(3))
		denominator := new(big.Int).Mul(huge, big.NewInt(4))
		denominator.Add(denominator, big.NewInt(1))

		r, err := New(numerator, denominator)
		require.NoError(t, err)

		f, err := r.Float64()
		require.NoError(t, err)
		assert.InDelta(t, 0.75, f, 1e-15)
	})

	t.Run("denormalized", func(t *testing.T) {
		t.Parallel()

		denominator := new(big.Int).Exp(big.NewInt(10), big.NewInt(310), nil)
		r, err := New(big.NewInt(1), denominator)
		require.NoError(t, err)

		f, err := r.Float64()
		require.NoError(t, err)
		assert.InEpsilon(t, 1e-310, f, 1e-6)
	})

	t.Run("overflow", func(t *testing.T) {
		t.Parallel()

		r := NewFromInteger(new(big.Int).Exp(big.NewInt(10), big.NewInt(400), nil))
		_, err := r.Float64()
		require.ErrorAs(t, err, &OverflowError{})
	})
}

func TestNewFromFloat64(t *testing.T) {

	t.Parallel()

	r, err := NewFromFloat64(0.375)
	require.NoError(t, err)
	assert.Equal(t, "3/8", r.String())

	r, err = NewFromFloat64(-12)
	require.NoError(t, err)
	assert.Equal(t, "-12", r.String())

	// 0.1 has no finite binary expansion
	r, err = NewFromFloat64(0.1)
	require.NoError(t, err)
	assert.Equal(t, "3602879701896397/36028797018963968", r.String())

	_, err = NewFromFloat64(math.Inf(1))
	require.ErrorAs(t, err, &OverflowError{})
}

func TestNewFromDecimal(t *testing.T) {

	t.Parallel()

	d, err := decimal.NewFromFloat64(0.1)
	require.NoError(t, err)
	assert.Equal(t, "1/10", NewFromDecimal(d).String())

	d, err = decimal.Parse("-2.75")
	require.NoError(t, err)
	assert.Equal(t, "-11/4", NewFromDecimal(d).String())
}

func TestApproximate(t *testing.T) {

	t.Parallel()

	r, err := Approximate(1.0/3.0, 1e-15)
	require.NoError(t, err)
	assert.Equal(t, "1/3", r.String())

	r, err = Approximate(-0.142857142857142857, 1e-15)
	require.NoError(t, err)
	assert.Equal(t, "-1/7", r.String())

	r, err = Approximate(math.Pi, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, "355/113", r.String())

	r, err = Approximate(0, 1e-15)
	require.NoError(t, err)
	assert.True(t, r.IsZero())

	_, err = Approximate(math.NaN(), 1e-15)
	require.ErrorAs(t, err, &OverflowError{})

	r, err = Approximate(1e-20, 1e-15)
	require.NoError(t, err)
	assert.Equal(t, "1/100000000000000000000", r.String())

	_, err = Approximate(1e-310, 1e-15)
	require.ErrorAs(t, err, &OverflowError{})

	_, err = Approximate(-1e-310, 1e-15)
	require.ErrorAs(t, err, &OverflowError{})
}

func TestApproximateIterationLimit(t *testing.T) {

	t.Parallel()

	// pi needs more than the two terms 3 and 22/7
	_, err := approximate(math.Pi, 1e-15, 2)
	require.ErrorAs(t, err, &OverflowError{})

	r, err := approximate(math.Pi, 1e-2, 2)
	require.NoError(t, err)
	assert.Equal(t, "22/7", r.String())

	r, err = approximate(0.5, 1e-15, 2)
	require.NoError(t, err)
	assert.Equal(t, "1/2", r.String())
}

func TestParse(t *testing.T) {

	t.Parallel()

	for text, expected := range map[string]string{
		"1/2":    "1/2",
		"-2/4":   "-1/2",
		"6":      "6",
		"1_1/2":  "3/2",
		"-1_1/2": "-3/2",
		"-0_1/2": "-1/2",
		"10/-4":  "-5/2",
		" 3/9 ":  "1/3",
		"0_0/7":  "0",
	} {
		r, err := Parse(text)
		require.NoError(t, err, text)
		assert.Equal(t, expected, r.String(), text)
	}

	for _, text := range []string{"", "/", "1/", "a/b", "1_2", "1_-1/2", "1.5/2"} {
		_, err := Parse(text)
		require.ErrorAs(t, err, &InvalidFormatError{}, text)
	}

	_, err := Parse("1/0")
	require.ErrorAs(t, err, &DivisionByZeroError{})
}

func TestFormatting(t *testing.T) {

	t.Parallel()

	r := newRational(t, -7, 2)
	assert.Equal(t, "-7/2", r.String())
	assert.Equal(t, "-3_1/2", r.MixedString())
	assert.Equal(t, "-3.500", r.FixedString(3))

	assert.Equal(t, "1/3", newRational(t, 1, 3).MixedString())
	assert.Equal(t, "0.33", newRational(t, 1, 3).FixedString(2))
	assert.Equal(t, "0.67", newRational(t, 2, 3).FixedString(2))
	assert.Equal(t, "4", NewFromInt64(4).MixedString())
}

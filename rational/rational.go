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
	"strconv"
	"strings"

	"github.com/govalues/decimal"

	"github.com/onflow/rpncalc/fixedpoint"
)

// Rational is an immutable arbitrary-precision fraction.
//
// A Rational is always kept in lowest terms with a positive denominator,
// and zero is always represented as 0/1.
// The zero value of Rational is 0/1.
type Rational struct {
	numerator   *big.Int
	denominator *big.Int
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Zero is the rational 0/1.
var Zero = Rational{}

// One is the rational 1/1.
var One = NewFromInt64(1)

// floatDigitBudget is the number of significant decimal digits
// used when converting large or tiny rationals to floats.
const floatDigitBudget = 20

// maxPowerBits bounds the size of the result of Pow.
const maxPowerBits = 1 << 22

// MaxApproximationIterations bounds the continued fraction expansion of Approximate.
const MaxApproximationIterations = 64

// New returns the rational numerator/denominator in lowest terms.
// The arguments are not modified.
func New(numerator, denominator *big.Int) (Rational, error) {
	if denominator.Sign() == 0 {
		return Rational{}, DivisionByZeroError{}
	}
	return newReduced(
		new(big.Int).Set(numerator),
		new(big.Int).Set(denominator),
	), nil
}

// NewMixed returns the rational whole + numerator/denominator.
// The sign of a non-zero whole part applies to the whole value,
// i.e. NewMixed(-1, 1, 2) is -3/2.
func NewMixed(whole, numerator, denominator *big.Int) (Rational, error) {
	fraction, err := New(numerator, denominator)
	if err != nil {
		return Rational{}, err
	}

	if whole.Sign() < 0 {
		fraction = fraction.Abs().Neg()
	} else if whole.Sign() > 0 {
		fraction = fraction.Abs()
	}

	return NewFromInteger(whole).Add(fraction), nil
}

// NewFromInt64 returns the rational n/1.
func NewFromInt64(n int64) Rational {
	return NewFromInteger(big.NewInt(n))
}

// NewFromInteger returns the rational n/1.
func NewFromInteger(n *big.Int) Rational {
	if n.Sign() == 0 {
		return Rational{}
	}
	return Rational{
		numerator:   new(big.Int).Set(n),
		denominator: big.NewInt(1),
	}
}

// NewFromFloat64 returns the exact binary value of f as a rational.
// The result is exact, which usually makes it a poor "display" fraction,
// see NewFromDecimal and Approximate for friendlier conversions.
func NewFromFloat64(f float64) (Rational, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Rational{}, OverflowError{}
	}
	if f == 0 {
		return Rational{}, nil
	}

	// f = mantissa * 2^exponent, with mantissa an integer
	fraction, exponent := math.Frexp(f)
	mantissa := int64(fraction * (1 << 53))
	exponent -= 53

	numerator := big.NewInt(mantissa)
	denominator := big.NewInt(1)
	if exponent > 0 {
		numerator.Lsh(numerator, uint(exponent))
	} else {
		denominator.Lsh(denominator, uint(-exponent))
	}

	return newReduced(numerator, denominator), nil
}

// NewFromDecimal returns the exact value of the decimal as a rational.
//
// Decimals store base-10 digits, so short decimal expansions
// produce short reduced fractions (0.75 is 3/4).
func NewFromDecimal(d decimal.Decimal) Rational {
	numerator := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		numerator.Neg(numerator)
	}
	return newReduced(
		numerator,
		fixedpoint.Pow10(uint(d.Scale())),
	)
}

// Approximate finds the simplest rational within the relative tolerance of value
// using a continued fraction (Euclidean) expansion.
// It fails with an OverflowError if no such rational is found
// within MaxApproximationIterations steps.
func Approximate(value float64, tolerance float64) (Rational, error) {
	return approximate(value, tolerance, MaxApproximationIterations)
}

func approximate(value float64, tolerance float64, maxIterations int) (Rational, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return Rational{}, OverflowError{}
	}

	// Floats of this magnitude are integers
	if math.Abs(value) >= 1<<53 {
		return NewFromFloat64(value)
	}

	negative := value < 0
	x := math.Abs(value)
	target := x

	// convergents h/k
	h0, h1 := big.NewInt(0), big.NewInt(1)
	k0, k1 := big.NewInt(1), big.NewInt(0)

	for i := 0; i < maxIterations; i++ {
		a := math.Floor(x)
		term, _ := big.NewFloat(a).Int(nil)

		h2 := new(big.Int).Mul(term, h1)
		h2.Add(h2, h0)
		k2 := new(big.Int).Mul(term, k1)
		k2.Add(k2, k0)

		h0, h1 = h1, h2
		k0, k1 = k1, k2

		candidate := newReduced(new(big.Int).Set(h1), new(big.Int).Set(k1))
		approximation, err := candidate.Float64()
		if err != nil {
			return Rational{}, err
		}

		fractional := x - a
		if math.Abs(approximation-target) <= tolerance*target || fractional == 0 {
			if negative {
				candidate = candidate.Neg()
			}
			return candidate, nil
		}

		x = 1 / fractional
		// the reciprocal of a subnormal remainder
		if math.IsInf(x, 0) {
			return Rational{}, OverflowError{}
		}
	}

	return Rational{}, OverflowError{}
}

// Parse parses a fraction written as "n", "n/d", or the mixed form "w_n/d".
func Parse(text string) (Rational, error) {
	trimmed := strings.TrimSpace(text)

	parseInt := func(s string) (*big.Int, bool) {
		if s == "" {
			return nil, false
		}
		return new(big.Int).SetString(s, 10)
	}

	wholeText := ""
	fractionText := trimmed
	if index := strings.IndexByte(trimmed, '_'); index >= 0 {
		wholeText = trimmed[:index]
		fractionText = trimmed[index+1:]
	}

	numeratorText := fractionText
	denominatorText := "1"
	if index := strings.IndexByte(fractionText, '/'); index >= 0 {
		numeratorText = fractionText[:index]
		denominatorText = fractionText[index+1:]
	} else if wholeText != "" {
		// the mixed form requires a fraction
		return Rational{}, InvalidFormatError{Text: text}
	}

	numerator, ok := parseInt(numeratorText)
	if !ok {
		return Rational{}, InvalidFormatError{Text: text}
	}
	denominator, ok := parseInt(denominatorText)
	if !ok {
		return Rational{}, InvalidFormatError{Text: text}
	}

	if wholeText == "" {
		return New(numerator, denominator)
	}

	whole, ok := parseInt(wholeText)
	if !ok || numerator.Sign() < 0 || denominator.Sign() < 0 {
		return Rational{}, InvalidFormatError{Text: text}
	}

	result, err := NewMixed(whole, numerator, denominator)
	if err != nil {
		return Rational{}, err
	}

	// "-0_1/2" keeps its sign
	if whole.Sign() == 0 && strings.HasPrefix(wholeText, "-") {
		result = result.Neg()
	}

	return result, nil
}

// newReduced takes ownership of the arguments and reduces them to lowest terms.
func newReduced(numerator, denominator *big.Int) Rational {
	if numerator.Sign() == 0 {
		return Rational{}
	}

	if denominator.Sign() < 0 {
		numerator.Neg(numerator)
		denominator.Neg(denominator)
	}

	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(numerator), denominator)
	if gcd.Cmp(bigOne) != 0 {
		numerator.Quo(numerator, gcd)
		denominator.Quo(denominator, gcd)
	}

	return Rational{
		numerator:   numerator,
		denominator: denominator,
	}
}

func (r Rational) num() *big.Int {
	if r.numerator == nil {
		return bigZero
	}
	return r.numerator
}

func (r Rational) den() *big.Int {
	if r.denominator == nil {
		return bigOne
	}
	return r.denominator
}

// Numerator returns a copy of the numerator.
func (r Rational) Numerator() *big.Int {
	return new(big.Int).Set(r.num())
}

// Denominator returns a copy of the denominator, which is always positive.
func (r Rational) Denominator() *big.Int {
	return new(big.Int).Set(r.den())
}

func (r Rational) Sign() int {
	return r.num().Sign()
}

func (r Rational) IsZero() bool {
	return r.Sign() == 0
}

// IsInteger reports whether the denominator is 1.
func (r Rational) IsInteger() bool {
	return r.den().Cmp(bigOne) == 0
}

// Cmp compares r and other by cross-multiplication.
func (r Rational) Cmp(other Rational) int {
	left := new(big.Int).Mul(r.num(), other.den())
	right := new(big.Int).Mul(other.num(), r.den())
	return left.Cmp(right)
}

func (r Rational) Equal(other Rational) bool {
	return r.num().Cmp(other.num()) == 0 &&
		r.den().Cmp(other.den()) == 0
}

func (r Rational) Add(other Rational) Rational {
	numerator := new(big.Int).Mul(r.num(), other.den())
	numerator.Add(numerator, new(big.Int).Mul(other.num(), r.den()))
	denominator := new(big.Int).Mul(r.den(), other.den())
	return newReduced(numerator, denominator)
}

func (r Rational) Sub(other Rational) Rational {
	return r.Add(other.Neg())
}

func (r Rational) Mul(other Rational) Rational {
	return newReduced(
		new(big.Int).Mul(r.num(), other.num()),
		new(big.Int).Mul(r.den(), other.den()),
	)
}

func (r Rational) Div(other Rational) (Rational, error) {
	if other.IsZero() {
		return Rational{}, DivisionByZeroError{}
	}
	return newReduced(
		new(big.Int).Mul(r.num(), other.den()),
		new(big.Int).Mul(r.den(), other.num()),
	), nil
}

// Mod returns the remainder of r / other truncated towards zero,
// so the result has the sign of r.
func (r Rational) Mod(other Rational) (Rational, error) {
	quotient, err := r.Div(other)
	if err != nil {
		return Rational{}, err
	}
	truncated := NewFromInteger(quotient.Truncate())
	return r.Sub(truncated.Mul(other)), nil
}

func (r Rational) Neg() Rational {
	if r.IsZero() {
		return r
	}
	return Rational{
		numerator:   new(big.Int).Neg(r.num()),
		denominator: new(big.Int).Set(r.den()),
	}
}

func (r Rational) Abs() Rational {
	if r.Sign() >= 0 {
		return r
	}
	return r.Neg()
}

// Inv returns 1/r.
func (r Rational) Inv() (Rational, error) {
	return One.Div(r)
}

// Pow raises r to an integer exponent. Negative exponents invert the result.
func (r Rational) Pow(exponent *big.Int) (Rational, error) {
	switch exponent.Sign() {
	case 0:
		return One, nil
	case -1:
		inverse, err := r.Inv()
		if err != nil {
			return Rational{}, err
		}
		return inverse.Pow(new(big.Int).Neg(exponent))
	}

	if r.IsZero() || r.Abs().Equal(One) {
		if r.Sign() < 0 && exponent.Bit(0) == 0 {
			return One, nil
		}
		return r, nil
	}

	bits := int64(r.num().BitLen())
	if denominatorBits := int64(r.den().BitLen()); denominatorBits > bits {
		bits = denominatorBits
	}
	if !exponent.IsInt64() ||
		exponent.Int64() > maxPowerBits ||
		bits*exponent.Int64() > maxPowerBits {

		return Rational{}, OverflowError{}
	}

	return newReduced(
		new(big.Int).Exp(r.num(), exponent, nil),
		new(big.Int).Exp(r.den(), exponent, nil),
	), nil
}

// Truncate returns the integer part of r, rounded towards zero.
func (r Rational) Truncate() *big.Int {
	return new(big.Int).Quo(r.num(), r.den())
}

// Floor returns the greatest integer less than or equal to r.
func (r Rational) Floor() *big.Int {
	// Div rounds towards negative infinity for positive divisors
	return new(big.Int).Div(r.num(), r.den())
}

// Ceil returns the least integer greater than or equal to r.
func (r Rational) Ceil() *big.Int {
	floor := r.Floor()
	if !r.IsInteger() {
		floor.Add(floor, bigOne)
	}
	return floor
}

// Round returns the nearest integer, rounding halves away from zero.
func (r Rational) Round() *big.Int {
	return fixedpoint.ScaledQuotient(r.num(), r.den(), 0)
}

// FractionalPart returns r minus its truncated integer part.
// The result has the sign of r.
func (r Rational) FractionalPart() Rational {
	return r.Sub(NewFromInteger(r.Truncate()))
}

// Float64 converts r to the nearest float.
//
// Numerators and denominators which are too large to be converted directly
// are scaled through a fixed decimal digit budget before dividing,
// so only magnitudes beyond the float range fail with an OverflowError.
func (r Rational) Float64() (float64, error) {
	num := r.num()
	den := r.den()

	if num.BitLen() <= 53 && den.BitLen() <= 53 {
		return float64(num.Int64()) / float64(den.Int64()), nil
	}

	exponent := fixedpoint.DecimalDigits(num) - fixedpoint.DecimalDigits(den)
	scale := floatDigitBudget - exponent
	scaled := fixedpoint.ScaledQuotient(num, den, scale)

	text := scaled.String() + "e" + strconv.Itoa(-scale)
	result, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if math.IsInf(result, 0) {
			return 0, OverflowError{}
		}
		// underflow
		return 0, nil
	}
	return result, nil
}

// FixedString renders r as a decimal with exactly the given number of fractional digits,
// rounding halves away from zero.
func (r Rational) FixedString(digits uint) string {
	return fixedpoint.Format(
		fixedpoint.ScaledQuotient(r.num(), r.den(), int(digits)),
		digits,
	)
}

// String returns the improper form "n/d", or "n" for integers.
func (r Rational) String() string {
	if r.IsInteger() {
		return r.num().String()
	}
	return r.num().String() + "/" + r.den().String()
}

// MixedString returns the mixed form "w_n/d", e.g. "-1_1/2".
// Proper fractions and integers are formatted like String.
func (r Rational) MixedString() string {
	whole := r.Truncate()
	if whole.Sign() == 0 || r.IsInteger() {
		return r.String()
	}
	fraction := r.FractionalPart().Abs()
	return whole.String() + "_" + fraction.String()
}

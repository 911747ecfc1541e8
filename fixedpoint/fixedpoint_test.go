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

package fixedpoint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFixedPoint(t *testing.T) {

	t.Parallel()

	negative, integer, fractional := SplitFixedPoint(big.NewInt(-1205), 2)
	assert.True(t, negative)
	assert.Equal(t, big.NewInt(12), integer)
	assert.Equal(t, big.NewInt(5), fractional)
}

func TestDecimalDigits(t *testing.T) {

	t.Parallel()

	for value, digits := range map[int64]int{
		0:       1,
		1:       1,
		9:       1,
		10:      2,
		-99:     2,
		100:     3,
		999999:  6,
		1000000: 7,
	} {
		assert.Equal(t, digits, DecimalDigits(big.NewInt(value)), value)
	}

	assert.Equal(t, 31, DecimalDigits(Pow10(30)))
}

func TestScaledQuotient(t *testing.T) {

	t.Parallel()

	// 1/3 * 10^4 = 3333.33...
	assert.Equal(t, big.NewInt(3333), ScaledQuotient(big.NewInt(1), big.NewInt(3), 4))

	// 2/3 * 10^2 = 66.66... rounds up
	assert.Equal(t, big.NewInt(67), ScaledQuotient(big.NewInt(2), big.NewInt(3), 2))

	// negative
	assert.Equal(t, big.NewInt(-67), ScaledQuotient(big.NewInt(-2), big.NewInt(3), 2))

	// negative scale: 12345 / 10^2 = 123.45
	assert.Equal(t, big.NewInt(123), ScaledQuotient(big.NewInt(12345), big.NewInt(1), -2))
}

func TestFormat(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "-12.34", Format(big.NewInt(-1234), 2))
	assert.Equal(t, "0.05", Format(big.NewInt(5), 2))
	assert.Equal(t, "7", Format(big.NewInt(7), 0))
}

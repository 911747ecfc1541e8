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
)

var ten = big.NewInt(10)

// Pow10 returns 10^n as a new big integer.
func Pow10(n uint) *big.Int {
	return new(big.Int).Exp(ten, new(big.Int).SetUint64(uint64(n)), nil)
}

// SplitFixedPoint splits a value scaled by 10^scale
// into its sign, unsigned integer part, and unsigned fractional part.
func SplitFixedPoint(value *big.Int, scale uint) (negative bool, integer *big.Int, fractional *big.Int) {
	negative = value.Sign() < 0
	unsigned := new(big.Int).Abs(value)
	integer, fractional = new(big.Int).QuoRem(unsigned, Pow10(scale), new(big.Int))
	return
}

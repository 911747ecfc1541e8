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

package values

import (
	"math/big"
	"math/bits"

	"github.com/bits-and-blooms/bitset"

	"github.com/onflow/rpncalc/format"
)

// BinaryValue is an unsigned word.
//
// The word size and the radix are not part of the value:
// arithmetic masks results to the word size of the given settings,
// and negation is two's complement relative to that word size.
// Conversions to other numeric types always treat the stored bits as non-negative.
type BinaryValue uint64

var _ Value = BinaryValue(0)
var _ NumericValue = BinaryValue(0)

// NewBinaryValue returns the value masked to the word size of the settings.
func NewBinaryValue(settings Settings, value uint64) BinaryValue {
	return BinaryValue(value & settings.WordMask())
}

func (BinaryValue) isValue() {}

func (BinaryValue) ValueType() ValueType {
	return ValueTypeBinary
}

func (v BinaryValue) String() string {
	return v.Format(DefaultSettings())
}

func (v BinaryValue) Format(settings Settings) string {
	return v.formatRadix(settings, settings.BinaryFormat)
}

func (v BinaryValue) formatRadix(settings Settings, binaryFormat BinaryFormat) string {
	word := uint64(v) & settings.WordMask()
	return "#" + format.Radix(word, binaryFormat.Radix()) + string(binaryFormat.Suffix())
}

func (v BinaryValue) EntryText() string {
	return "#" + format.Radix(uint64(v), 16) + "h"
}

func (v BinaryValue) DisplayFormats(settings Settings) []DisplayFormat {
	result := make([]DisplayFormat, 0, BinaryFormatCount)
	for i := 0; i < BinaryFormatCount; i++ {
		binaryFormat := BinaryFormat(i)
		result = append(result, DisplayFormat{
			Name: binaryFormat.String(),
			Text: v.formatRadix(settings, binaryFormat),
		})
	}
	return result
}

func (v BinaryValue) Equal(other Value) bool {
	o, ok := other.(BinaryValue)
	return ok && o == v
}

func (v BinaryValue) Plus(settings Settings, other NumericValue) (Value, error) {
	o, ok := other.(BinaryValue)
	if !ok {
		return nil, invalidOperands(OperationAdd, v, other)
	}
	return NewBinaryValue(settings, uint64(v+o)), nil
}

func (v BinaryValue) Minus(settings Settings, other NumericValue) (Value, error) {
	o, ok := other.(BinaryValue)
	if !ok {
		return nil, invalidOperands(OperationSubtract, v, other)
	}
	return NewBinaryValue(settings, uint64(v-o)), nil
}

func (v BinaryValue) Mul(settings Settings, other NumericValue) (Value, error) {
	o, ok := other.(BinaryValue)
	if !ok {
		return nil, invalidOperands(OperationMultiply, v, other)
	}
	return NewBinaryValue(settings, uint64(v*o)), nil
}

func (v BinaryValue) Div(settings Settings, other NumericValue) (Value, error) {
	o, ok := other.(BinaryValue)
	if !ok {
		return nil, invalidOperands(OperationDivide, v, other)
	}
	if o == 0 {
		return nil, DivisionByZeroError{}
	}
	return NewBinaryValue(settings, uint64(v/o)), nil
}

func (v BinaryValue) Mod(settings Settings, other NumericValue) (Value, error) {
	o, ok := other.(BinaryValue)
	if !ok {
		return nil, invalidOperands(OperationModulus, v, other)
	}
	if o == 0 {
		return nil, DivisionByZeroError{}
	}
	return NewBinaryValue(settings, uint64(v%o)), nil
}

// Negate returns the two's complement relative to the word size.
func (v BinaryValue) Negate(settings Settings) (Value, error) {
	return NewBinaryValue(settings, -uint64(v)), nil
}

func (v BinaryValue) Abs() (Value, error) {
	return v, nil
}

func (v BinaryValue) Sign() Value {
	if v == 0 {
		return NewIntegerValueFromInt64(0)
	}
	return NewIntegerValueFromInt64(1)
}

func (v BinaryValue) Compare(other NumericValue) (int, error) {
	o, ok := other.(BinaryValue)
	if !ok {
		return 0, invalidOperands(OperationCompare, v, other)
	}
	switch {
	case v < o:
		return -1, nil
	case v > o:
		return 1, nil
	default:
		return 0, nil
	}
}

func (v BinaryValue) ToDouble() (DoubleValue, error) {
	return DoubleValue(float64(uint64(v))), nil
}

func (v BinaryValue) ToInteger() (IntegerValue, error) {
	return NewIntegerValue(new(big.Int).SetUint64(uint64(v))), nil
}

func (v BinaryValue) ToComplex() (ComplexValue, error) {
	return NewComplexValue(float64(uint64(v)), 0), nil
}

func (v BinaryValue) And(settings Settings, other BinaryValue) BinaryValue {
	return NewBinaryValue(settings, uint64(v&other))
}

func (v BinaryValue) Or(settings Settings, other BinaryValue) BinaryValue {
	return NewBinaryValue(settings, uint64(v|other))
}

func (v BinaryValue) Xor(settings Settings, other BinaryValue) BinaryValue {
	return NewBinaryValue(settings, uint64(v^other))
}

func (v BinaryValue) Not(settings Settings) BinaryValue {
	return NewBinaryValue(settings, ^uint64(v))
}

func (v BinaryValue) ShiftLeft(settings Settings, count int) (BinaryValue, error) {
	if count < 0 {
		return 0, negativeShiftCount(OperationShiftLeft)
	}
	if count >= MaxBinaryWordSize {
		return 0, nil
	}
	return NewBinaryValue(settings, uint64(v)<<uint(count)), nil
}

func (v BinaryValue) ShiftRight(settings Settings, count int) (BinaryValue, error) {
	if count < 0 {
		return 0, negativeShiftCount(OperationShiftRight)
	}
	if count >= MaxBinaryWordSize {
		return 0, nil
	}
	word := uint64(v) & settings.WordMask()
	return NewBinaryValue(settings, word>>uint(count)), nil
}

// ArithmeticShiftRight shifts right, replicating the most significant bit of the word.
func (v BinaryValue) ArithmeticShiftRight(settings Settings, count int) (BinaryValue, error) {
	if count < 0 {
		return 0, negativeShiftCount(OperationArithmeticShiftRight)
	}

	size := settings.WordSize()
	word := uint64(v) & settings.WordMask()

	// Sign-extend the word to 64 bits, shift, then mask again
	shift := uint(MaxBinaryWordSize - size)
	signed := int64(word<<shift) >> shift
	if count >= MaxBinaryWordSize {
		count = MaxBinaryWordSize - 1
	}
	return NewBinaryValue(settings, uint64(signed>>uint(count))), nil
}

func (v BinaryValue) RotateLeft(settings Settings, count int) BinaryValue {
	size := settings.WordSize()
	word := uint64(v) & settings.WordMask()

	if size == MaxBinaryWordSize {
		return BinaryValue(bits.RotateLeft64(word, count))
	}

	count %= size
	if count < 0 {
		count += size
	}
	if count == 0 {
		return BinaryValue(word)
	}
	return NewBinaryValue(settings, word<<uint(count)|word>>uint(size-count))
}

func (v BinaryValue) RotateRight(settings Settings, count int) BinaryValue {
	return v.RotateLeft(settings, -count)
}

func (v BinaryValue) bitSet(settings Settings) *bitset.BitSet {
	return bitset.From([]uint64{uint64(v) & settings.WordMask()})
}

func (v BinaryValue) checkBitIndex(settings Settings, operation Operation, index int) error {
	if index < 0 || index >= settings.WordSize() {
		return ArgumentOutOfRangeError{
			Operation: operation,
			Message:   "bit index is outside of the word size",
		}
	}
	return nil
}

func (v BinaryValue) SetBit(settings Settings, index int) (BinaryValue, error) {
	err := v.checkBitIndex(settings, OperationSetBit, index)
	if err != nil {
		return 0, err
	}
	set := v.bitSet(settings).Set(uint(index))
	return NewBinaryValue(settings, set.Words()[0]), nil
}

func (v BinaryValue) ClearBit(settings Settings, index int) (BinaryValue, error) {
	err := v.checkBitIndex(settings, OperationClearBit, index)
	if err != nil {
		return 0, err
	}
	set := v.bitSet(settings).Clear(uint(index))
	return NewBinaryValue(settings, set.Words()[0]), nil
}

func (v BinaryValue) TestBit(settings Settings, index int) (bool, error) {
	err := v.checkBitIndex(settings, OperationTestBit, index)
	if err != nil {
		return false, err
	}
	return v.bitSet(settings).Test(uint(index)), nil
}

// BitCount returns the number of set bits inside the word size.
func (v BinaryValue) BitCount(settings Settings) int {
	return int(v.bitSet(settings).Count())
}

func negativeShiftCount(operation Operation) error {
	return ArgumentOutOfRangeError{
		Operation: operation,
		Message:   "shift count must not be negative",
	}
}

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

//go:generate go run golang.org/x/tools/cmd/stringer -type=Operation -trimprefix=Operation

// Operation names a value operation in error messages.
type Operation uint8

const (
	OperationUnknown Operation = iota
	OperationAdd
	OperationSubtract
	OperationMultiply
	OperationDivide
	OperationModulus
	OperationNegate
	OperationAbs
	OperationSign
	OperationCompare
	OperationPower
	OperationRoot
	OperationSquare
	OperationSquareRoot
	OperationInvert
	OperationExp
	OperationLn
	OperationLog
	OperationTenToX
	OperationSin
	OperationCos
	OperationTan
	OperationArcSin
	OperationArcCos
	OperationArcTan
	OperationSinh
	OperationCosh
	OperationTanh
	OperationFactorial
	OperationFloor
	OperationCeiling
	OperationRound
	OperationTruncate
	OperationFracPart
	OperationPercent
	OperationPercentChange
	OperationMin
	OperationMax
	OperationCombinations
	OperationPermutations
	OperationConvert
	OperationAnd
	OperationOr
	OperationXor
	OperationNot
	OperationShiftLeft
	OperationShiftRight
	OperationArithmeticShiftRight
	OperationRotateLeft
	OperationRotateRight
	OperationSetBit
	OperationClearBit
	OperationTestBit
	OperationBitCount
)

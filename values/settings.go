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
	"math"

	"golang.org/x/text/language"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=AngleMode -trimprefix=AngleMode
//go:generate go run golang.org/x/tools/cmd/stringer -type=BinaryFormat -trimprefix=BinaryFormat
//go:generate go run golang.org/x/tools/cmd/stringer -type=ComplexFormat -trimprefix=ComplexFormat
//go:generate go run golang.org/x/tools/cmd/stringer -type=DecimalFormat -trimprefix=DecimalFormat
//go:generate go run golang.org/x/tools/cmd/stringer -type=FractionFormat -trimprefix=FractionFormat

type AngleMode uint8

const (
	AngleModeRadians AngleMode = iota
	AngleModeDegrees
	AngleModeGrads
)

const AngleModeCount = int(AngleModeGrads) + 1

type BinaryFormat uint8

const (
	BinaryFormatBinary BinaryFormat = iota
	BinaryFormatOctal
	BinaryFormatDecimal
	BinaryFormatHexadecimal
)

const BinaryFormatCount = int(BinaryFormatHexadecimal) + 1

// Radix returns the numeric base of the format.
func (f BinaryFormat) Radix() int {
	switch f {
	case BinaryFormatBinary:
		return 2
	case BinaryFormatOctal:
		return 8
	case BinaryFormatDecimal:
		return 10
	default:
		return 16
	}
}

// Suffix returns the literal suffix which selects the format on entry.
func (f BinaryFormat) Suffix() byte {
	switch f {
	case BinaryFormatBinary:
		return 'b'
	case BinaryFormatOctal:
		return 'o'
	case BinaryFormatDecimal:
		return 'd'
	default:
		return 'h'
	}
}

type ComplexFormat uint8

const (
	ComplexFormatRectangular ComplexFormat = iota
	ComplexFormatPolar
)

const ComplexFormatCount = int(ComplexFormatPolar) + 1

type DecimalFormat uint8

const (
	DecimalFormatGeneral DecimalFormat = iota
	DecimalFormatFixed
	DecimalFormatScientific
	DecimalFormatNumber
)

const DecimalFormatCount = int(DecimalFormatNumber) + 1

type FractionFormat uint8

const (
	FractionFormatCommon FractionFormat = iota
	FractionFormatMixed
	FractionFormatDecimal
)

const FractionFormatCount = int(FractionFormatDecimal) + 1

const (
	MinBinaryWordSize     = 1
	MaxBinaryWordSize     = 64
	DefaultBinaryWordSize = 32

	MaxFixedDecimalDigits     = 15
	DefaultFixedDecimalDigits = 4
)

// Settings is a snapshot of the display settings.
// They affect formatting and parsing, and also the word size of Binary arithmetic
// and the angle unit of trigonometric functions.
type Settings struct {
	AngleMode          AngleMode
	BinaryFormat       BinaryFormat
	BinaryWordSize     int
	ComplexFormat      ComplexFormat
	DecimalFormat      DecimalFormat
	FractionFormat     FractionFormat
	FixedDecimalDigits int
	// Language selects the digit grouping of the Number decimal format
	Language language.Tag
}

func DefaultSettings() Settings {
	return Settings{
		AngleMode:          AngleModeRadians,
		BinaryFormat:       BinaryFormatHexadecimal,
		BinaryWordSize:     DefaultBinaryWordSize,
		ComplexFormat:      ComplexFormatRectangular,
		DecimalFormat:      DecimalFormatGeneral,
		FractionFormat:     FractionFormatCommon,
		FixedDecimalDigits: DefaultFixedDecimalDigits,
		Language:           language.English,
	}
}

// WordSize returns the Binary word size in bits.
// An out-of-range setting falls back to the full 64 bits.
func (s Settings) WordSize() int {
	if s.BinaryWordSize < MinBinaryWordSize || s.BinaryWordSize > MaxBinaryWordSize {
		return MaxBinaryWordSize
	}
	return s.BinaryWordSize
}

// WordMask returns the mask of the bits which are inside the Binary word size.
func (s Settings) WordMask() uint64 {
	size := s.WordSize()
	if size == MaxBinaryWordSize {
		return ^uint64(0)
	}
	return 1<<uint(size) - 1
}

func (s Settings) fixedDigits() int {
	return min(max(s.FixedDecimalDigits, 0), MaxFixedDecimalDigits)
}

func (s Settings) language() language.Tag {
	if s.Language == language.Und {
		return language.English
	}
	return s.Language
}

// ToRadians converts an angle in the unit of the mode to radians.
func (m AngleMode) ToRadians(angle float64) float64 {
	switch m {
	case AngleModeDegrees:
		return angle * math.Pi / 180
	case AngleModeGrads:
		return angle * math.Pi / 200
	default:
		return angle
	}
}

// FromRadians converts an angle in radians to the unit of the mode.
func (m AngleMode) FromRadians(angle float64) float64 {
	switch m {
	case AngleModeDegrees:
		return angle * 180 / math.Pi
	case AngleModeGrads:
		return angle * 200 / math.Pi
	default:
		return angle
	}
}

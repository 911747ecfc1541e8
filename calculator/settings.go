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

package calculator

import (
	"golang.org/x/text/language"

	"github.com/onflow/rpncalc/nodes"
	"github.com/onflow/rpncalc/values"
)

const (
	settingsNodeName = "Settings"

	angleModeKey          = "AngleMode"
	binaryFormatKey       = "BinaryFormat"
	binaryWordSizeKey     = "BinaryWordSize"
	complexFormatKey      = "ComplexFormat"
	decimalFormatKey      = "DecimalFormat"
	fractionFormatKey     = "FractionFormat"
	fixedDecimalDigitsKey = "FixedDecimalDigits"
	languageKey           = "Language"
)

// Settings are the display settings of a calculator.
//
// Every change of a setting results in exactly one call of the changed function.
type Settings struct {
	values    values.Settings
	onChanged func(values.Settings)
}

func newSettings(onChanged func(values.Settings)) *Settings {
	return &Settings{
		values:    values.DefaultSettings(),
		onChanged: onChanged,
	}
}

// Values returns a snapshot of the settings.
func (s *Settings) Values() values.Settings {
	return s.values
}

func (s *Settings) update(settings values.Settings) {
	if settings == s.values {
		return
	}
	s.values = settings
	if s.onChanged != nil {
		s.onChanged(settings)
	}
}

func (s *Settings) AngleMode() values.AngleMode {
	return s.values.AngleMode
}

func (s *Settings) SetAngleMode(mode values.AngleMode) error {
	if int(mode) >= values.AngleModeCount {
		return InvalidSettingError{Setting: angleModeKey, Value: mode}
	}
	settings := s.values
	settings.AngleMode = mode
	s.update(settings)
	return nil
}

func (s *Settings) BinaryFormat() values.BinaryFormat {
	return s.values.BinaryFormat
}

func (s *Settings) SetBinaryFormat(format values.BinaryFormat) error {
	if int(format) >= values.BinaryFormatCount {
		return InvalidSettingError{Setting: binaryFormatKey, Value: format}
	}
	settings := s.values
	settings.BinaryFormat = format
	s.update(settings)
	return nil
}

func (s *Settings) BinaryWordSize() int {
	return s.values.BinaryWordSize
}

func (s *Settings) SetBinaryWordSize(size int) error {
	if size < values.MinBinaryWordSize || size > values.MaxBinaryWordSize {
		return values.InvalidWordSizeError{WordSize: size}
	}
	settings := s.values
	settings.BinaryWordSize = size
	s.update(settings)
	return nil
}

func (s *Settings) ComplexFormat() values.ComplexFormat {
	return s.values.ComplexFormat
}

func (s *Settings) SetComplexFormat(format values.ComplexFormat) error {
	if int(format) >= values.ComplexFormatCount {
		return InvalidSettingError{Setting: complexFormatKey, Value: format}
	}
	settings := s.values
	settings.ComplexFormat = format
	s.update(settings)
	return nil
}

func (s *Settings) DecimalFormat() values.DecimalFormat {
	return s.values.DecimalFormat
}

func (s *Settings) SetDecimalFormat(format values.DecimalFormat) error {
	if int(format) >= values.DecimalFormatCount {
		return InvalidSettingError{Setting: decimalFormatKey, Value: format}
	}
	settings := s.values
	settings.DecimalFormat = format
	s.update(settings)
	return nil
}

func (s *Settings) FractionFormat() values.FractionFormat {
	return s.values.FractionFormat
}

func (s *Settings) SetFractionFormat(format values.FractionFormat) error {
	if int(format) >= values.FractionFormatCount {
		return InvalidSettingError{Setting: fractionFormatKey, Value: format}
	}
	settings := s.values
	settings.FractionFormat = format
	s.update(settings)
	return nil
}

func (s *Settings) FixedDecimalDigits() int {
	return s.values.FixedDecimalDigits
}

func (s *Settings) SetFixedDecimalDigits(digits int) error {
	if digits < 0 || digits > values.MaxFixedDecimalDigits {
		return InvalidSettingError{Setting: fixedDecimalDigitsKey, Value: digits}
	}
	settings := s.values
	settings.FixedDecimalDigits = digits
	s.update(settings)
	return nil
}

// Language is used for digit grouping in the Number decimal format.
func (s *Settings) Language() language.Tag {
	return s.values.Language
}

func (s *Settings) SetLanguage(tag language.Tag) {
	settings := s.values
	settings.Language = tag
	s.update(settings)
}

// Save stores the settings in a "Settings" sub-node of the given node.
func (s *Settings) Save(node nodes.Node) {
	settingsNode := node.GetOrCreateSubNode(settingsNodeName)
	nodes.SetEnum(settingsNode, angleModeKey, s.values.AngleMode)
	nodes.SetEnum(settingsNode, binaryFormatKey, s.values.BinaryFormat)
	settingsNode.SetInt(binaryWordSizeKey, int64(s.values.BinaryWordSize))
	nodes.SetEnum(settingsNode, complexFormatKey, s.values.ComplexFormat)
	nodes.SetEnum(settingsNode, decimalFormatKey, s.values.DecimalFormat)
	nodes.SetEnum(settingsNode, fractionFormatKey, s.values.FractionFormat)
	settingsNode.SetInt(fixedDecimalDigitsKey, int64(s.values.FixedDecimalDigits))
	settingsNode.SetString(languageKey, s.values.Language.String())
}

// Load replaces the settings with the ones stored in the "Settings" sub-node of the given node.
// Missing or invalid settings are reset to their defaults.
func (s *Settings) Load(node nodes.Node) {
	defaults := values.DefaultSettings()

	settingsNode := node.GetSubNode(settingsNodeName)
	if settingsNode == nil {
		s.update(defaults)
		return
	}

	settings := values.Settings{
		AngleMode: nodes.GetEnum(
			settingsNode,
			angleModeKey,
			values.AngleModeCount,
			defaults.AngleMode,
		),
		BinaryFormat: nodes.GetEnum(
			settingsNode,
			binaryFormatKey,
			values.BinaryFormatCount,
			defaults.BinaryFormat,
		),
		BinaryWordSize: loadInt(
			settingsNode,
			binaryWordSizeKey,
			values.MinBinaryWordSize,
			values.MaxBinaryWordSize,
			defaults.BinaryWordSize,
		),
		ComplexFormat: nodes.GetEnum(
			settingsNode,
			complexFormatKey,
			values.ComplexFormatCount,
			defaults.ComplexFormat,
		),
		DecimalFormat: nodes.GetEnum(
			settingsNode,
			decimalFormatKey,
			values.DecimalFormatCount,
			defaults.DecimalFormat,
		),
		FractionFormat: nodes.GetEnum(
			settingsNode,
			fractionFormatKey,
			values.FractionFormatCount,
			defaults.FractionFormat,
		),
		FixedDecimalDigits: loadInt(
			settingsNode,
			fixedDecimalDigitsKey,
			0,
			values.MaxFixedDecimalDigits,
			defaults.FixedDecimalDigits,
		),
		Language: defaults.Language,
	}

	if name, ok := settingsNode.GetString(languageKey); ok {
		if tag, err := language.Parse(name); err == nil {
			settings.Language = tag
		}
	}

	s.update(settings)
}

func loadInt(node nodes.Node, key string, lower, upper, defaultValue int) int {
	value, ok := node.GetInt(key)
	if !ok || value < int64(lower) || value > int64(upper) {
		return defaultValue
	}
	return int(value)
}

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

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestPadLeft(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "0007", PadLeft("7", '0', 4))
	assert.Equal(t, "12345", PadLeft("12345", '0', 4))
}

func TestRadix(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "FF", Radix(255, 16))
	assert.Equal(t, "377", Radix(255, 8))
	assert.Equal(t, "11111111", Radix(255, 2))
	assert.Equal(t, "255", Radix(255, 10))
}

func TestGroupDigits(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "1", GroupDigits("1", ","))
	assert.Equal(t, "123", GroupDigits("123", ","))
	assert.Equal(t, "1,234", GroupDigits("1234", ","))
	assert.Equal(t, "-123,456", GroupDigits("-123456", ","))
	assert.Equal(t, "12,345,678", GroupDigits("12345678", ","))
}

func TestFloat(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "0.1", FloatGeneral(0.1))
	assert.Equal(t, "1e+21", FloatGeneral(1e21))

	assert.Equal(t, "5.0", FloatEntry(5))
	assert.Equal(t, "-0.25", FloatEntry(-0.25))
	assert.Equal(t, "1e+21", FloatEntry(1e21))

	assert.Equal(t, "3.14", FloatFixed(3.14159, 2))
	assert.Equal(t, "1.50E+03", FloatScientific(1500, 2))

	assert.Equal(t, "1,234.50", FloatNumber(1234.5, 2, language.English))
}

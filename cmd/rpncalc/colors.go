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

package main

import (
	"github.com/logrusorgru/aurora/v4"
)

type colors struct {
	aurora *aurora.Aurora
}

func newColors(enabled bool) colors {
	return colors{
		aurora: aurora.New(aurora.WithColors(enabled)),
	}
}

func (c colors) value(text string) string {
	return c.aurora.Colorize(text, aurora.YellowFg|aurora.BrightFg).String()
}

func (c colors) level(text string) string {
	return c.aurora.Colorize(text, aurora.BlackFg|aurora.BrightFg).String()
}

func (c colors) error(message string) string {
	return c.aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}

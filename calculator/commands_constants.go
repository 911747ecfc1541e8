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
	"math"

	"github.com/onflow/rpncalc/values"
)

var constantCommands = &commandGroup{
	name: "constants",
	commands: map[string]commandFunc{
		"Pi":  constantCommand(math.Pi),
		"E":   constantCommand(math.E),
		"Phi": constantCommand(math.Phi),
		"Tau": constantCommand(2 * math.Pi),
	},
}

func constantCommand(constant float64) commandFunc {
	return func(command *Command) error {
		return command.Commit(values.DoubleValue(constant))
	}
}

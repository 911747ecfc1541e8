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
	"errors"
	"io/fs"
	"os"

	"github.com/onflow/rpncalc/calculator"
	"github.com/onflow/rpncalc/nodes"
)

const stateNodeName = "RPNCalc"

// loadState restores the calculator from the YAML state file.
// A missing file leaves the calculator unchanged.
func loadState(path string, calc *calculator.Calculator) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	node, err := nodes.DecodeYAML(data)
	if err != nil {
		return err
	}

	calc.Load(node)
	return nil
}

func saveState(path string, calc *calculator.Calculator) error {
	node := nodes.NewMemoryNode(stateNodeName)
	calc.Save(node)

	data, err := nodes.EncodeYAML(node)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

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

// Package stack implements the operand stack of the calculator.
//
// Values are addressed by their offset from the top of the stack:
// offset 0 is the most recently pushed value.
package stack

import (
	"github.com/onflow/rpncalc/errors"
	"github.com/onflow/rpncalc/values"
)

type Stack struct {
	// bottom to top
	values    []values.Value
	observers []func()
}

func New() *Stack {
	return &Stack{}
}

// OnChanged registers a function which is called after every change of the stack.
func (s *Stack) OnChanged(observer func()) {
	s.observers = append(s.observers, observer)
}

func (s *Stack) changed() {
	for _, observer := range s.observers {
		observer()
	}
}

func (s *Stack) Count() int {
	return len(s.values)
}

func (s *Stack) Push(value values.Value) {
	s.append(value)
	s.changed()
}

// PushRange pushes the values in order,
// i.e. the last value ends up on top of the stack.
func (s *Stack) PushRange(values []values.Value) {
	if len(values) == 0 {
		return
	}
	s.append(values...)
	s.changed()
}

func (s *Stack) append(values ...values.Value) {
	for _, value := range values {
		if value == nil {
			panic(errors.NewUnexpectedError("cannot push nil value"))
		}
	}
	s.values = append(s.values, values...)
}

func (s *Stack) Pop() (values.Value, error) {
	popped, err := s.PopRange(1)
	if err != nil {
		return nil, err
	}
	return popped[0], nil
}

// PopRange removes the top n values and returns them top-first.
// Either all n values are removed, or none.
func (s *Stack) PopRange(n int) ([]values.Value, error) {
	result, err := s.PeekRange(n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return result, nil
	}
	s.truncate(n)
	s.changed()
	return result, nil
}

func (s *Stack) truncate(n int) {
	count := len(s.values)
	clear(s.values[count-n:])
	s.values = s.values[:count-n]
}

func (s *Stack) Peek() (values.Value, error) {
	return s.PeekAt(0)
}

func (s *Stack) PeekAt(offset int) (values.Value, error) {
	if offset < 0 || offset >= len(s.values) {
		return nil, UnderflowError{
			Requested: offset + 1,
			Count:     len(s.values),
		}
	}
	return s.values[len(s.values)-1-offset], nil
}

// PeekRange returns the top n values, top-first, without removing them.
func (s *Stack) PeekRange(n int) ([]values.Value, error) {
	count := len(s.values)
	if n < 0 || n > count {
		return nil, UnderflowError{
			Requested: n,
			Count:     count,
		}
	}
	result := make([]values.Value, n)
	for i := range n {
		result[i] = s.values[count-1-i]
	}
	return result, nil
}

// Replace removes the top n values and pushes the given values,
// as a single change.
func (s *Stack) Replace(n int, values []values.Value) error {
	count := len(s.values)
	if n < 0 || n > count {
		return UnderflowError{
			Requested: n,
			Count:     count,
		}
	}
	if n == 0 && len(values) == 0 {
		return nil
	}
	s.truncate(n)
	s.append(values...)
	s.changed()
	return nil
}

// Values returns all values, top-first.
func (s *Stack) Values() []values.Value {
	result, _ := s.PeekRange(len(s.values))
	return result
}

func (s *Stack) Clear() {
	if len(s.values) == 0 {
		return
	}
	s.truncate(len(s.values))
	s.changed()
}

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

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testUserError struct{}

func (testUserError) Error() string { return "user" }

func (testUserError) IsUserError() {}

func TestIsUserError(t *testing.T) {

	t.Parallel()

	assert.True(t, IsUserError(testUserError{}))
	assert.True(t, IsUserError(NewDefaultUserError("bad %d", 1)))
	assert.True(t, IsUserError(fmt.Errorf("wrapped: %w", testUserError{})))
	assert.False(t, IsUserError(NewUnexpectedError("oops")))
	assert.False(t, IsUserError(fmt.Errorf("plain")))
}

func TestIsInternalError(t *testing.T) {

	t.Parallel()

	assert.True(t, IsInternalError(NewUnexpectedError("oops")))
	assert.True(t, IsInternalError(NewUnreachableError()))
	assert.True(t, IsInternalError(fmt.Errorf("wrapped: %w", NewUnexpectedError("oops"))))
	assert.False(t, IsInternalError(NewDefaultUserError("bad")))
	assert.False(t, IsInternalError(nil))
}

func TestUnexpectedErrorUnwrap(t *testing.T) {

	t.Parallel()

	cause := fmt.Errorf("cause")
	err := NewUnexpectedErrorFromCause(cause)
	assert.Equal(t, "cause", err.Error())
	assert.ErrorIs(t, err, cause)
}

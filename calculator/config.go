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
	"time"

	"github.com/rs/zerolog"

	"github.com/onflow/rpncalc/values"
)

const DefaultMaxEntryHistory = 20

// Config configures a calculator.
type Config struct {
	// Logger receives debug logs for executed commands,
	// warnings for skipped stack entries, and internal errors.
	// The zero value discards all logs
	Logger zerolog.Logger
	Tracer
	// OnSettingsChanged is called after a display setting changed
	OnSettingsChanged func(settings values.Settings)
	// OnStackChanged is called after the stack changed
	OnStackChanged func()
	// OnErrorMessageChanged is called after the current error message changed
	OnErrorMessageChanged func(message string)
	// MaxEntryHistory is the number of remembered entry lines.
	// Zero means DefaultMaxEntryHistory
	MaxEntryHistory int
	// Now returns the current time. Nil means time.Now
	Now func() time.Time
}

func (c Config) maxEntryHistory() int {
	if c.MaxEntryHistory <= 0 {
		return DefaultMaxEntryHistory
	}
	return c.MaxEntryHistory
}

func (c Config) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

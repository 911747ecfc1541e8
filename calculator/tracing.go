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

	"go.opentelemetry.io/otel/attribute"
)

const (
	tracingCommandPrefix = "command."
)

// OnRecordTraceFunc is a function that records a trace.
type OnRecordTraceFunc func(
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

type Tracer struct {
	// OnRecordTrace is triggered when a trace is recorded
	OnRecordTrace OnRecordTraceFunc
	// TracingEnabled determines if tracing is enabled.
	// Tracing reports every executed command
	TracingEnabled bool
}

func (tracer Tracer) enabled() bool {
	return tracer.TracingEnabled && tracer.OnRecordTrace != nil
}

func prepareCommandTraceAttrs(
	parameter *int,
	depth int,
	outcome string,
) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.Int("depth", depth),
		attribute.String("outcome", outcome),
	}
	if parameter != nil {
		attrs = append(attrs, attribute.Int("parameter", *parameter))
	}
	return attrs
}

func (tracer Tracer) reportCommandTrace(
	name string,
	parameter *int,
	depth int,
	outcome string,
	duration time.Duration,
) {
	tracer.OnRecordTrace(
		tracingCommandPrefix+name,
		duration,
		prepareCommandTraceAttrs(parameter, depth, outcome),
	)
}

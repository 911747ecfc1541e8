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
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/onflow/rpncalc/calculator"
)

func main() {

	stateFlag := flag.String("state", "", "file the calculator state is loaded from and saved to")
	logLevelFlag := flag.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	traceFlag := flag.Bool("trace", false, "log a trace of every executed command")

	flag.Parse()

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.DateTime,
	}
	log := zerolog.New(consoleWriter).With().Timestamp().Logger()

	level, err := zerolog.ParseLevel(*logLevelFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log = log.Level(level)

	config := calculator.Config{
		Logger: log,
	}
	if *traceFlag {
		config.Tracer = calculator.Tracer{
			TracingEnabled: true,
			OnRecordTrace:  logTrace(log),
		}
	}

	calc := calculator.New(config)

	statePath := *stateFlag
	if statePath != "" {
		err = loadState(statePath, calc)
		if err != nil {
			log.Fatal().Err(err).Str("path", statePath).Msg("failed to load state")
		}
	}

	newREPL(calc, os.Stdout, true).run()

	if statePath != "" {
		err = saveState(statePath, calc)
		if err != nil {
			log.Fatal().Err(err).Str("path", statePath).Msg("failed to save state")
		}
	}
}

func logTrace(log zerolog.Logger) calculator.OnRecordTraceFunc {
	return func(operationName string, duration time.Duration, attrs []attribute.KeyValue) {
		event := log.Info().
			Str("operation", operationName).
			Dur("duration", duration)
		for _, attr := range attrs {
			event = event.Str(string(attr.Key), attr.Value.Emit())
		}
		event.Msg("trace")
	}
}

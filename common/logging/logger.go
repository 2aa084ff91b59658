// Copyright 2024 the Chirp authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging configures the process-wide logger. Components log
// through slog; zerolog sits underneath as the output backend, as JSON or
// as a console writer for interactive runs.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

const DefaultLogLevel = slog.LevelInfo

var (
	// LogLevel Used for flags.
	LogLevel = DefaultLogLevel
	// LogJSON Used for flags.
	LogJSON bool
)

// ParseLogLevel maps a level name (debug, info, warn, error, in any case)
// to its slog level.
func ParseLogLevel(levelStr string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		return DefaultLogLevel, errors.Errorf("unknown log level: %s", levelStr)
	}
	return level, nil
}

// ConfigureLogger installs the process default slog logger, honoring the
// LogLevel and LogJSON flag values.
func ConfigureLogger() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var writer io.Writer = os.Stdout
	if !LogJSON {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.StampMicro,
		}
	}

	backend := zerolog.New(writer).
		With().
		Timestamp().
		Stack().
		Logger()

	slog.SetDefault(slog.New(
		slogzerolog.Option{
			Level:  LogLevel,
			Logger: &backend,
		}.NewZerologHandler(),
	))
}

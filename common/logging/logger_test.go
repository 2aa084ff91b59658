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

package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	for _, test := range []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	} {
		level, err := ParseLogLevel(test.input)
		assert.NoError(t, err)
		assert.Equal(t, test.expected, level)
	}

	level, err := ParseLogLevel("verbose")
	assert.Error(t, err)
	assert.Equal(t, DefaultLogLevel, level)
}

func TestConfigureLogger(t *testing.T) {
	LogLevel = slog.LevelDebug
	LogJSON = true
	ConfigureLogger()

	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	LogLevel = DefaultLogLevel
	LogJSON = false
	ConfigureLogger()

	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
}

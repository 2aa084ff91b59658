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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/chirpdev/chirp/cmd/client"
	"github.com/chirpdev/chirp/cmd/coordinator"
	"github.com/chirpdev/chirp/cmd/server"
	"github.com/chirpdev/chirp/common/logging"
	"github.com/chirpdev/chirp/common/process"
)

var (
	logLevelStr string

	rootCmd = &cobra.Command{
		Use:               "chirp",
		Short:             "Chirp is a sharded social stream service",
		Long:              `Chirp is a sharded social stream service`,
		PersistentPreRunE: configureLogLevel,
	}
)

type logLevelError string

func (l logLevelError) Error() string {
	return fmt.Sprintf("unknown log level (%s)", string(l))
}

func configureLogLevel(_ *cobra.Command, _ []string) error {
	logLevel, err := logging.ParseLogLevel(logLevelStr)
	if err != nil {
		return logLevelError(logLevelStr)
	}
	logging.LogLevel = logLevel
	logging.ConfigureLogger()
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevelStr, "log-level", "l", logging.DefaultLogLevel.String(), "Set logging level [debug|info|warn|error]")
	rootCmd.PersistentFlags().BoolVarP(&logging.LogJSON, "log-json", "j", false, "Print logs in JSON format")

	rootCmd.AddCommand(client.Cmd)
	rootCmd.AddCommand(coordinator.Cmd)
	rootCmd.AddCommand(server.Cmd)
}

func main() {
	process.DoWithLabels(context.Background(), map[string]string{
		"chirp": "main",
	}, func() {
		if _, err := maxprocs.Set(); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
	})
}

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

package server

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chirpdev/chirp/cmd/flag"
	"github.com/chirpdev/chirp/common/process"
	"github.com/chirpdev/chirp/server"
)

var (
	conf = server.NewConfig()

	Cmd = &cobra.Command{
		Use:     "server",
		Short:   "Start a shard server",
		Long:    `Start a shard server`,
		PreRunE: validate,
		RunE:    exec,
	}
)

func init() {
	Cmd.Flags().SortFlags = false

	flag.BindAddr(Cmd, &conf.BindAddress, conf.BindAddress)
	flag.MetricsAddr(Cmd, &conf.MetricsBindAddress, conf.MetricsBindAddress)
	flag.CoordinatorAddr(Cmd, &conf.CoordinatorAddress)
	Cmd.Flags().Int32VarP(&conf.ShardId, "shard", "s", conf.ShardId, "Shard served by this server")
	Cmd.Flags().StringVar(&conf.AdvertisedHostname, "advertised-hostname", "", "Hostname advertised to clients (defaults to the local hostname)")
	Cmd.Flags().Int32Var(&conf.AdvertisedPort, "advertised-port", 0, "Port advertised to clients (defaults to the bound port)")
	Cmd.Flags().DurationVar(&conf.HeartbeatInterval, "heartbeat-interval", conf.HeartbeatInterval, "Interval between heartbeats to the coordinator")
	Cmd.Flags().StringVar(&conf.DataDir, "data-dir", conf.DataDir, "Directory where to store journal data")
	Cmd.Flags().BoolVar(&conf.InMemory, "in-memory", false, "Keep the journal in memory instead of on disk")
}

func validate(*cobra.Command, []string) error {
	if conf.ShardId < 1 {
		return errors.New("shard must be at least 1")
	}
	if conf.HeartbeatInterval <= 0 {
		return errors.New("heartbeat-interval must be positive")
	}
	return nil
}

func exec(*cobra.Command, []string) error {
	process.RunProcess(func() (io.Closer, error) {
		return server.New(conf)
	})
	return nil
}

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

package coordinator

import (
	"io"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chirpdev/chirp/cmd/flag"
	"github.com/chirpdev/chirp/common/process"
	"github.com/chirpdev/chirp/coordinator"
)

var (
	conf       = coordinator.NewConfig()
	configFile string

	Cmd = &cobra.Command{
		Use:     "coordinator",
		Short:   "Start a coordinator",
		Long:    `Start a coordinator`,
		PreRunE: validate,
		RunE:    exec,
	}
)

// clusterConfig is the optional YAML file shape. Values set here are
// overridden by any flag passed explicitly on the command line.
type clusterConfig struct {
	ShardCount     int32         `mapstructure:"shardCount"`
	SweepInterval  time.Duration `mapstructure:"sweepInterval"`
	LivenessWindow time.Duration `mapstructure:"livenessWindow"`
}

func init() {
	flag.BindAddr(Cmd, &conf.BindAddress, conf.BindAddress)
	flag.MetricsAddr(Cmd, &conf.MetricsBindAddress, conf.MetricsBindAddress)
	Cmd.Flags().Int32VarP(&conf.ShardCount, "shards", "s", conf.ShardCount, "Number of shards in the cluster")
	Cmd.Flags().DurationVar(&conf.SweepInterval, "sweep-interval", conf.SweepInterval, "Interval between liveness sweeps")
	Cmd.Flags().DurationVar(&conf.LivenessWindow, "liveness-window", conf.LivenessWindow, "Time without heartbeats after which a flagged server is inactive")
	Cmd.Flags().StringVarP(&configFile, "conf", "f", "", "Cluster config file")
}

func validate(*cobra.Command, []string) error {
	if conf.ShardCount < 1 {
		return errors.New("shards must be at least 1")
	}
	if conf.SweepInterval >= conf.LivenessWindow {
		return errors.New("sweep-interval must be shorter than liveness-window")
	}
	return nil
}

func loadClusterConfig(v *viper.Viper) (clusterConfig, error) {
	cc := clusterConfig{}

	v.SetConfigType("yaml")
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return cc, err
	}

	if err := v.Unmarshal(&cc, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(), // default hook
		mapstructure.StringToSliceHookFunc(","),     // default hook
	))); err != nil {
		return cc, errors.Wrap(err, "failed to load cluster config")
	}

	return cc, nil
}

func applyClusterConfig(cmd *cobra.Command, cc clusterConfig) {
	if cc.ShardCount != 0 && !cmd.Flags().Changed("shards") {
		conf.ShardCount = cc.ShardCount
	}
	if cc.SweepInterval != 0 && !cmd.Flags().Changed("sweep-interval") {
		conf.SweepInterval = cc.SweepInterval
	}
	if cc.LivenessWindow != 0 && !cmd.Flags().Changed("liveness-window") {
		conf.LivenessWindow = cc.LivenessWindow
	}
}

func exec(cmd *cobra.Command, _ []string) error {
	if configFile != "" {
		cc, err := loadClusterConfig(viper.New())
		if err != nil {
			return err
		}
		applyClusterConfig(cmd, cc)
		if err = validate(cmd, nil); err != nil {
			return err
		}
	}

	process.RunProcess(func() (io.Closer, error) {
		return coordinator.New(conf)
	})
	return nil
}

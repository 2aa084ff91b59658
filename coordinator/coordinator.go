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
	"log/slog"
	"time"

	"go.uber.org/multierr"
	"google.golang.org/grpc"

	"github.com/chirpdev/chirp/common"
	"github.com/chirpdev/chirp/common/container"
	"github.com/chirpdev/chirp/common/metrics"
	"github.com/chirpdev/chirp/proto"
)

const (
	DefaultShardCount     = 3
	DefaultSweepInterval  = 3 * time.Second
	DefaultLivenessWindow = 10 * time.Second
)

type Config struct {
	BindAddress        string
	MetricsBindAddress string

	// ShardCount is fixed for the lifetime of the deployment; routing
	// is a modulus over it and is never rehashed.
	ShardCount     int32
	SweepInterval  time.Duration
	LivenessWindow time.Duration
}

func NewConfig() Config {
	return Config{
		BindAddress:        "0.0.0.0:9090",
		MetricsBindAddress: "0.0.0.0:8080",
		ShardCount:         DefaultShardCount,
		SweepInterval:      DefaultSweepInterval,
		LivenessWindow:     DefaultLivenessWindow,
	}
}

// Coordinator runs the node registry, the liveness sweep and the
// CoordinatorService RPC surface.
type Coordinator struct {
	registry   *Registry
	monitor    HeartbeatMonitor
	grpcServer container.GrpcServer
	metrics    *metrics.PrometheusMetrics

	log *slog.Logger
}

func New(config Config) (*Coordinator, error) {
	log := slog.With(
		slog.String("component", "coordinator"),
	)
	log.Info(
		"Starting coordinator",
		slog.Any("config", config),
	)

	c := &Coordinator{
		registry: NewRegistry(config.ShardCount, config.LivenessWindow, common.SystemClock()),
		log:      log,
	}
	c.monitor = NewHeartbeatMonitor(c.registry, config.SweepInterval)

	var err error
	c.grpcServer, err = container.StartGrpcServer("coordinator", config.BindAddress,
		func(registrar grpc.ServiceRegistrar) {
			proto.RegisterCoordinatorServiceServer(registrar, newRpcServer(c.registry))
		})
	if err != nil {
		return nil, multierr.Append(err, c.Close())
	}

	if config.MetricsBindAddress != "" {
		if c.metrics, err = metrics.Start(config.MetricsBindAddress); err != nil {
			return nil, multierr.Append(err, c.Close())
		}
	}

	return c, nil
}

func (c *Coordinator) Port() int {
	return c.grpcServer.Port()
}

func (c *Coordinator) Close() error {
	var err error
	if c.monitor != nil {
		err = multierr.Append(err, c.monitor.Close())
	}
	if c.grpcServer != nil {
		err = multierr.Append(err, c.grpcServer.Close())
	}
	err = multierr.Append(err, c.registry.Close())

	if c.metrics != nil {
		err = multierr.Append(err, c.metrics.Close())
	}

	c.log.Info("Coordinator closed")
	return err
}

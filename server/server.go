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
	"log/slog"
	"os"
	"strconv"
	"time"

	"go.uber.org/multierr"
	"google.golang.org/grpc"

	"github.com/chirpdev/chirp/common"
	"github.com/chirpdev/chirp/common/container"
	"github.com/chirpdev/chirp/common/metrics"
	"github.com/chirpdev/chirp/proto"
	"github.com/chirpdev/chirp/server/journal"
)

const DefaultHeartbeatInterval = 1 * time.Second

type Config struct {
	ShardId     int32
	BindAddress string

	// AdvertisedHostname and AdvertisedPort are what the coordinator hands
	// out to clients. They default to the local hostname and the bound port.
	AdvertisedHostname string
	AdvertisedPort     int32

	CoordinatorAddress string
	HeartbeatInterval  time.Duration

	DataDir  string
	InMemory bool

	MetricsBindAddress string
}

func NewConfig() Config {
	return Config{
		ShardId:            1,
		BindAddress:        "0.0.0.0:10001",
		CoordinatorAddress: "localhost:9090",
		HeartbeatInterval:  DefaultHeartbeatInterval,
		DataDir:            "./data",
		MetricsBindAddress: "0.0.0.0:8081",
	}
}

type Server struct {
	config Config

	journal *journal.Journal
	graph   *SocialGraph
	hub     *TimelineHub

	grpcServer container.GrpcServer
	clientPool common.ClientPool
	emitter    HeartbeatEmitter
	metrics    *metrics.PrometheusMetrics

	log *slog.Logger
}

func New(config Config) (*Server, error) {
	log := slog.With(
		slog.String("component", "server"),
		slog.Int("shard", int(config.ShardId)),
	)
	log.Info(
		"Starting chirp server",
		slog.Any("config", config),
	)

	j, err := journal.Open(journal.Options{
		DataDir:  config.DataDir,
		InMemory: config.InMemory,
	})
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:  config,
		journal: j,
		graph:   NewSocialGraph(config.ShardId),
		log:     log,
	}
	s.hub = NewTimelineHub(s.graph, j, config.ShardId)

	rpc := newPublicRpcServer(s.graph, s.hub, j)
	s.grpcServer, err = container.StartGrpcServer("public", config.BindAddress, func(registrar grpc.ServiceRegistrar) {
		proto.RegisterSocialServiceServer(registrar, rpc)
	})
	if err != nil {
		return nil, multierr.Append(err, s.Close())
	}

	hostname := config.AdvertisedHostname
	if hostname == "" {
		if hostname, err = os.Hostname(); err != nil {
			return nil, multierr.Append(err, s.Close())
		}
	}
	port := int(config.AdvertisedPort)
	if port == 0 {
		port = s.grpcServer.Port()
	}

	s.clientPool = common.NewClientPool()
	s.emitter = NewHeartbeatEmitter(s.clientPool, config.CoordinatorAddress, &proto.ServerInfo{
		ShardId:  config.ShardId,
		Hostname: hostname,
		Port:     strconv.Itoa(port),
	}, config.HeartbeatInterval)

	if config.MetricsBindAddress != "" {
		if s.metrics, err = metrics.Start(config.MetricsBindAddress); err != nil {
			return nil, multierr.Append(err, s.Close())
		}
	}

	return s, nil
}

func (s *Server) Port() int {
	return s.grpcServer.Port()
}

func (s *Server) Close() error {
	var err error
	if s.emitter != nil {
		err = multierr.Append(err, s.emitter.Close())
	}
	if s.grpcServer != nil {
		err = multierr.Append(err, s.grpcServer.Close())
	}
	if s.clientPool != nil {
		err = multierr.Append(err, s.clientPool.Close())
	}
	if s.hub != nil {
		err = multierr.Append(err, s.hub.Close())
	}
	err = multierr.Combine(err,
		s.graph.Close(),
		s.journal.Close(),
	)
	if s.metrics != nil {
		err = multierr.Append(err, s.metrics.Close())
	}
	return err
}

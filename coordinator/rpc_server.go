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
	"context"
	"fmt"
	"log/slog"

	"github.com/chirpdev/chirp/proto"
)

type rpcServer struct {
	proto.UnimplementedCoordinatorServiceServer

	registry *Registry
	log      *slog.Logger
}

func newRpcServer(registry *Registry) *rpcServer {
	return &rpcServer{
		registry: registry,
		log: slog.With(
			slog.String("component", "coordinator-rpc-server"),
		),
	}
}

func (s *rpcServer) Heartbeat(_ context.Context, info *proto.ServerInfo) (*proto.HeartbeatAck, error) {
	if _, err := s.registry.RecordHeartbeat(info.ShardId, info.Hostname, info.Port); err != nil {
		return nil, err
	}

	return &proto.HeartbeatAck{Ok: true}, nil
}

func (s *rpcServer) GetAssignment(_ context.Context, req *proto.AssignmentRequest) (*proto.ServerInfo, error) {
	node, err := s.registry.Assign(req.ClientId)
	if err != nil {
		s.log.Warn(
			"Failed to assign client",
			slog.Int("client-id", int(req.ClientId)),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.log.Info(
		"Assigned client to server",
		slog.Int("client-id", int(req.ClientId)),
		slog.Int("shard", int(node.ShardId)),
		slog.String("server", fmt.Sprintf("%s:%s", node.Hostname, node.Port)),
	)

	return &proto.ServerInfo{
		ShardId:  node.ShardId,
		Hostname: node.Hostname,
		Port:     node.Port,
	}, nil
}

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

package common

import (
	"io"
	"log/slog"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/chirpdev/chirp/proto"
)

// ClientPool caches one gRPC connection per target and hands out typed
// stubs over it.
type ClientPool interface {
	io.Closer
	GetCoordinatorRpc(target string) (proto.CoordinatorServiceClient, error)
	GetSocialRpc(target string) (proto.SocialServiceClient, error)
}

type clientPool struct {
	sync.Mutex
	connections sync.Map

	log *slog.Logger
}

func NewClientPool() ClientPool {
	return &clientPool{
		log: slog.With(
			slog.String("component", "client-pool"),
		),
	}
}

func (cp *clientPool) Close() error {
	cp.connections.Range(func(key any, value any) bool {
		if err := value.(*grpc.ClientConn).Close(); err != nil {
			cp.log.Warn(
				"Failed to close GRPC connection",
				slog.String("server-address", key.(string)),
				slog.Any("error", err),
			)
		}
		return true
	})

	return nil
}

func (cp *clientPool) GetCoordinatorRpc(target string) (proto.CoordinatorServiceClient, error) {
	cnx, err := cp.getConnection(target)
	if err != nil {
		return nil, err
	}
	return proto.NewCoordinatorServiceClient(cnx), nil
}

func (cp *clientPool) GetSocialRpc(target string) (proto.SocialServiceClient, error) {
	cnx, err := cp.getConnection(target)
	if err != nil {
		return nil, err
	}
	return proto.NewSocialServiceClient(cnx), nil
}

func (cp *clientPool) getConnection(target string) (grpc.ClientConnInterface, error) {
	cnx, ok := cp.connections.Load(target)
	if ok {
		return cnx.(grpc.ClientConnInterface), nil
	}

	cp.Lock()
	defer cp.Unlock()

	cnx, ok = cp.connections.Load(target)
	if ok {
		return cnx.(grpc.ClientConnInterface), nil
	}

	cp.log.Info(
		"Creating new GRPC connection",
		slog.String("server-address", target),
	)

	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	cp.connections.Store(target, conn)
	return conn, nil
}

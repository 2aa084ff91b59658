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

package container

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"

	grpcprometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/chirpdev/chirp/common/process"
)

const maxGrpcFrameSize = 4 * 1024 * 1024

type GrpcServer interface {
	io.Closer

	Port() int
}

type defaultGrpcServer struct {
	server       *grpc.Server
	port         int
	healthServer *health.Server
	log          *slog.Logger
}

// StartGrpcServer binds the listener, registers the services through
// registerFunc and starts serving on a background goroutine. Failing to
// bind is the only startup error.
func StartGrpcServer(name, bindAddress string, registerFunc func(grpc.ServiceRegistrar)) (GrpcServer, error) {
	c := &defaultGrpcServer{
		server: grpc.NewServer(
			grpc.ChainStreamInterceptor(grpcprometheus.StreamServerInterceptor),
			grpc.ChainUnaryInterceptor(grpcprometheus.UnaryServerInterceptor),
			grpc.MaxRecvMsgSize(maxGrpcFrameSize),
		),
		healthServer: health.NewServer(),
	}
	registerFunc(c.server)
	grpc_health_v1.RegisterHealthServer(c.server, c.healthServer)
	grpcprometheus.Register(c.server)

	listener, err := net.Listen("tcp", bindAddress)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to listen on %s", bindAddress)
	}

	c.port = listener.Addr().(*net.TCPAddr).Port
	c.log = slog.With(
		slog.String("grpc-server", name),
		slog.String("bindAddress", listener.Addr().String()),
	)

	go process.DoWithLabels(context.Background(), map[string]string{
		"chirp": name,
		"bind":  listener.Addr().String(),
	}, func() {
		if err := c.server.Serve(listener); err != nil {
			c.log.Error(
				"Failed to start serving",
				slog.Any("error", err),
			)
			os.Exit(1)
		}
	})

	c.log.Info("Started Grpc server")
	return c, nil
}

func (c *defaultGrpcServer) Port() int {
	return c.port
}

func (c *defaultGrpcServer) Close() error {
	c.healthServer.Shutdown()
	c.server.GracefulStop()
	c.log.Info("Stopped Grpc server")
	return nil
}

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
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"

	"github.com/chirpdev/chirp/proto"
)

type fakeCoordinatorClient struct {
	sync.Mutex
	heartbeats []*proto.ServerInfo
	failures   int
}

func (c *fakeCoordinatorClient) Heartbeat(_ context.Context, info *proto.ServerInfo, _ ...grpc.CallOption) (*proto.HeartbeatAck, error) {
	c.Lock()
	defer c.Unlock()

	if c.failures > 0 {
		c.failures--
		return nil, errors.New("coordinator unavailable")
	}
	c.heartbeats = append(c.heartbeats, info)
	return &proto.HeartbeatAck{Ok: true}, nil
}

func (*fakeCoordinatorClient) GetAssignment(context.Context, *proto.AssignmentRequest, ...grpc.CallOption) (*proto.ServerInfo, error) {
	return nil, errors.New("not implemented")
}

func (c *fakeCoordinatorClient) count() int {
	c.Lock()
	defer c.Unlock()
	return len(c.heartbeats)
}

type fakeClientPool struct {
	coordinator *fakeCoordinatorClient
}

func (*fakeClientPool) Close() error {
	return nil
}

func (p *fakeClientPool) GetCoordinatorRpc(string) (proto.CoordinatorServiceClient, error) {
	return p.coordinator, nil
}

func (*fakeClientPool) GetSocialRpc(string) (proto.SocialServiceClient, error) {
	return nil, errors.New("not implemented")
}

func TestHeartbeatEmitter(t *testing.T) {
	coordinator := &fakeCoordinatorClient{}
	pool := &fakeClientPool{coordinator: coordinator}

	e := NewHeartbeatEmitter(pool, "localhost:9090", &proto.ServerInfo{
		ShardId:  2,
		Hostname: "host-a",
		Port:     "10001",
	}, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return coordinator.count() >= 3
	}, 10*time.Second, 10*time.Millisecond)

	coordinator.Lock()
	info := coordinator.heartbeats[0]
	coordinator.Unlock()
	assert.Equal(t, int32(2), info.ShardId)
	assert.Equal(t, "host-a", info.Hostname)
	assert.Equal(t, "10001", info.Port)

	assert.NoError(t, e.Close())
}

func TestHeartbeatEmitter_RetriesAfterFailure(t *testing.T) {
	coordinator := &fakeCoordinatorClient{failures: 2}
	pool := &fakeClientPool{coordinator: coordinator}

	e := NewHeartbeatEmitter(pool, "localhost:9090", &proto.ServerInfo{
		ShardId:  1,
		Hostname: "host-a",
		Port:     "10001",
	}, 10*time.Millisecond)

	// The first attempts fail, the emitter keeps retrying until they land
	assert.Eventually(t, func() bool {
		return coordinator.count() >= 1
	}, 10*time.Second, 10*time.Millisecond)

	assert.NoError(t, e.Close())
}

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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chirpdev/chirp/common"
)

func TestShardForClient(t *testing.T) {
	for _, test := range []struct {
		clientId   int32
		shardCount int32
		expected   int32
	}{
		{1, 3, 1},
		{2, 3, 2},
		{3, 3, 3},
		{4, 3, 1},
		{5, 3, 2},
		{6, 3, 3},
		{7, 3, 1},
		{1, 1, 1},
		{100, 1, 1},
	} {
		assert.Equal(t, test.expected, ShardForClient(test.clientId, test.shardCount))
	}
}

func TestRegistry_RecordHeartbeat(t *testing.T) {
	clock := common.NewMockClock()
	r := NewRegistry(3, 10*time.Second, clock)
	defer r.Close()

	created, err := r.RecordHeartbeat(1, "host-a", "10001")
	assert.NoError(t, err)
	assert.True(t, created)

	// Same endpoint refreshes, it does not register twice
	created, err = r.RecordHeartbeat(1, "host-a", "10001")
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, r.NodeCount())

	// Different endpoint on the same shard is a new node
	created, err = r.RecordHeartbeat(1, "host-b", "10001")
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 2, r.NodeCount())

	_, err = r.RecordHeartbeat(0, "host-a", "10001")
	assert.ErrorIs(t, err, ErrInvalidShard)
	_, err = r.RecordHeartbeat(4, "host-a", "10001")
	assert.ErrorIs(t, err, ErrInvalidShard)
}

func TestRegistry_AssignInvalidClientId(t *testing.T) {
	clock := common.NewMockClock()
	r := NewRegistry(3, 10*time.Second, clock)
	defer r.Close()

	_, err := r.RecordHeartbeat(1, "host-a", "10001")
	assert.NoError(t, err)

	// A request that leaves the client id unset carries the zero value
	_, err = r.Assign(0)
	assert.ErrorIs(t, err, ErrInvalidClientId)
	_, err = r.Assign(-3)
	assert.ErrorIs(t, err, ErrInvalidClientId)

	node, err := r.Assign(1)
	assert.NoError(t, err)
	assert.Equal(t, "host-a", node.Hostname)
}

func TestRegistry_Assign(t *testing.T) {
	clock := common.NewMockClock()
	r := NewRegistry(3, 10*time.Second, clock)
	defer r.Close()

	// Nothing registered anywhere
	_, err := r.Assign(1)
	assert.ErrorIs(t, err, ErrShardEmpty)

	_, err = r.RecordHeartbeat(1, "host-a", "10001")
	assert.NoError(t, err)
	_, err = r.RecordHeartbeat(2, "host-b", "10002")
	assert.NoError(t, err)

	// Clients 1 and 4 both land on shard 1
	for _, clientId := range []int32{1, 4} {
		node, err := r.Assign(clientId)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), node.ShardId)
		assert.Equal(t, "host-a", node.Hostname)
		assert.Equal(t, "10001", node.Port)
	}

	node, err := r.Assign(2)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), node.ShardId)
	assert.Equal(t, "host-b", node.Hostname)

	// Shard 3 never saw a heartbeat
	_, err = r.Assign(3)
	assert.ErrorIs(t, err, ErrShardEmpty)
}

func TestRegistry_AssignFirstFit(t *testing.T) {
	clock := common.NewMockClock()
	r := NewRegistry(1, 10*time.Second, clock)
	defer r.Close()

	_, err := r.RecordHeartbeat(1, "host-a", "10001")
	assert.NoError(t, err)
	_, err = r.RecordHeartbeat(1, "host-b", "10002")
	assert.NoError(t, err)

	// Both active: the first registered node wins
	node, err := r.Assign(1)
	assert.NoError(t, err)
	assert.Equal(t, "host-a", node.Hostname)

	// Let host-a go quiet past the window, then fall back to host-b
	clock.Advance(11 * time.Second)
	_, err = r.RecordHeartbeat(1, "host-b", "10002")
	assert.NoError(t, err)
	r.Sweep()
	clock.Advance(11 * time.Second)
	_, err = r.RecordHeartbeat(1, "host-b", "10002")
	assert.NoError(t, err)

	node, err = r.Assign(1)
	assert.NoError(t, err)
	assert.Equal(t, "host-b", node.Hostname)
}

func TestRegistry_SteadyHeartbeatsStayActive(t *testing.T) {
	clock := common.NewMockClock()
	r := NewRegistry(1, 10*time.Second, clock)
	defer r.Close()

	_, err := r.RecordHeartbeat(1, "host-a", "10001")
	assert.NoError(t, err)

	// Heartbeats every 9s with sweeps in between never deactivate the node
	for i := 0; i < 10; i++ {
		clock.Advance(9 * time.Second)
		r.Sweep()
		_, err = r.RecordHeartbeat(1, "host-a", "10001")
		assert.NoError(t, err)

		node, err := r.Assign(1)
		assert.NoError(t, err)
		assert.Equal(t, "host-a", node.Hostname)
	}
	assert.Equal(t, 1, r.ActiveNodeCount())
}

func TestRegistry_FlaggedNodeGetsGracePeriod(t *testing.T) {
	clock := common.NewMockClock()
	r := NewRegistry(1, 10*time.Second, clock)
	defer r.Close()

	_, err := r.RecordHeartbeat(1, "host-a", "10001")
	assert.NoError(t, err)

	// First sweep past the window flags the node but also restarts its
	// clock, so it is still assignable for another full window.
	clock.Advance(11 * time.Second)
	r.Sweep()

	node, err := r.Assign(1)
	assert.NoError(t, err)
	assert.Equal(t, "host-a", node.Hostname)

	// Still within the grace window
	clock.Advance(9 * time.Second)
	_, err = r.Assign(1)
	assert.NoError(t, err)

	// Grace window expired with no fresh heartbeat
	clock.Advance(2 * time.Second)
	_, err = r.Assign(1)
	assert.ErrorIs(t, err, ErrAllInactive)
	assert.Equal(t, 1, r.NodeCount())
	assert.Equal(t, 0, r.ActiveNodeCount())

	// A single heartbeat fully restores the node
	_, err = r.RecordHeartbeat(1, "host-a", "10001")
	assert.NoError(t, err)
	node, err = r.Assign(1)
	assert.NoError(t, err)
	assert.Equal(t, "host-a", node.Hostname)
	assert.Equal(t, 1, r.ActiveNodeCount())
}

func TestRegistry_SweepFlagsOnlyOnce(t *testing.T) {
	clock := common.NewMockClock()
	r := NewRegistry(1, 10*time.Second, clock)
	defer r.Close()

	_, err := r.RecordHeartbeat(1, "host-a", "10001")
	assert.NoError(t, err)

	clock.Advance(11 * time.Second)
	r.Sweep()

	// Repeated sweeps inside the grace window must not keep pushing the
	// flagged timestamp forward, or the node would never expire.
	for i := 0; i < 3; i++ {
		clock.Advance(3 * time.Second)
		r.Sweep()
	}

	clock.Advance(2 * time.Second)
	_, err = r.Assign(1)
	assert.ErrorIs(t, err, ErrAllInactive)
}

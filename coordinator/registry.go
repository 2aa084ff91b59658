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
	"sync"
	"time"

	"github.com/chirpdev/chirp/common"
	"github.com/chirpdev/chirp/common/metrics"
)

// serverNode is one registered shard server. Nodes are never removed, only
// flagged inactive; all fields are guarded by the Registry lock.
type serverNode struct {
	shardId         int32
	hostname        string
	port            string
	lastHeartbeat   time.Time
	missedHeartbeat bool
}

// active is the liveness predicate. A node that was flagged by a sweep
// stays eligible until a full liveness window elapses with no fresh
// heartbeat, and a single heartbeat always restores it.
func (n *serverNode) active(now time.Time, window time.Duration) bool {
	return !n.missedHeartbeat || now.Sub(n.lastHeartbeat) < window
}

// NodeInfo is the immutable routing view of a serverNode.
type NodeInfo struct {
	ShardId  int32
	Hostname string
	Port     string
}

// ShardForClient maps a client id to its shard. The mapping is static:
// it never changes as registry membership changes.
func ShardForClient(clientId, shardCount int32) int32 {
	return ((clientId - 1) % shardCount) + 1
}

// Registry owns the shard to server-node mapping and the liveness state of
// every node. All operations take the single registry lock for the
// duration of the in-memory scan only.
type Registry struct {
	sync.Mutex

	clock          common.Clock
	shardCount     int32
	livenessWindow time.Duration

	// One slice per shard, in registration order. First-fit selection
	// depends on that order being preserved.
	shards [][]*serverNode

	log *slog.Logger

	heartbeatsReceived metrics.Counter
	nodesFlagged       metrics.Counter
	assignmentsServed  metrics.Counter
	assignmentsFailed  metrics.Counter
	nodesGauge         metrics.Gauge
	activeNodesGauge   metrics.Gauge
}

func NewRegistry(shardCount int32, livenessWindow time.Duration, clock common.Clock) *Registry {
	r := &Registry{
		clock:          clock,
		shardCount:     shardCount,
		livenessWindow: livenessWindow,
		shards:         make([][]*serverNode, shardCount),
		log: slog.With(
			slog.String("component", "registry"),
		),

		heartbeatsReceived: metrics.NewCounter("chirp_coordinator_heartbeats_received",
			"The number of heartbeats received from shard servers", "count", nil),
		nodesFlagged: metrics.NewCounter("chirp_coordinator_nodes_flagged",
			"The number of times a node was flagged for a missed heartbeat", "count", nil),
		assignmentsServed: metrics.NewCounter("chirp_coordinator_assignments_served",
			"The number of client assignments served", "count", nil),
		assignmentsFailed: metrics.NewCounter("chirp_coordinator_assignments_failed",
			"The number of client assignments that could not be served", "count", nil),
	}

	r.nodesGauge = metrics.NewGauge("chirp_coordinator_nodes",
		"The number of registered shard servers", "count", nil, func() int64 {
			return int64(r.NodeCount())
		})
	r.activeNodesGauge = metrics.NewGauge("chirp_coordinator_nodes_active",
		"The number of registered shard servers currently active", "count", nil, func() int64 {
			return int64(r.ActiveNodeCount())
		})

	return r
}

// RecordHeartbeat registers a new node for (shardId, hostname, port) or
// refreshes the existing one, clearing any missed-heartbeat flag. It
// reports whether the node was newly registered.
func (r *Registry) RecordHeartbeat(shardId int32, hostname, port string) (bool, error) {
	if shardId < 1 || shardId > r.shardCount {
		r.log.Error(
			"Received heartbeat for invalid shard",
			slog.Int("shard", int(shardId)),
			slog.String("hostname", hostname),
			slog.String("port", port),
		)
		return false, ErrInvalidShard
	}

	r.Lock()
	defer r.Unlock()

	r.heartbeatsReceived.Inc()
	now := r.clock.Now()

	for _, node := range r.shards[shardId-1] {
		if node.hostname == hostname && node.port == port {
			node.lastHeartbeat = now
			node.missedHeartbeat = false
			r.log.Debug(
				"Heartbeat refreshed",
				slog.Int("shard", int(shardId)),
				slog.String("hostname", hostname),
				slog.String("port", port),
			)
			return false, nil
		}
	}

	r.shards[shardId-1] = append(r.shards[shardId-1], &serverNode{
		shardId:         shardId,
		hostname:        hostname,
		port:            port,
		lastHeartbeat:   now,
		missedHeartbeat: false,
	})
	r.log.Info(
		"Registered new server",
		slog.Int("shard", int(shardId)),
		slog.String("hostname", hostname),
		slog.String("port", port),
	)
	return true, nil
}

// Sweep flags every node whose last heartbeat is older than the liveness
// window. Flagging also resets the heartbeat timestamp: the node gets one
// more full window before the active predicate starts failing, and a
// single fresh heartbeat restores it at any point.
func (r *Registry) Sweep() {
	r.Lock()
	defer r.Unlock()

	now := r.clock.Now()
	for _, shard := range r.shards {
		for _, node := range shard {
			if now.Sub(node.lastHeartbeat) > r.livenessWindow && !node.missedHeartbeat {
				node.missedHeartbeat = true
				node.lastHeartbeat = now
				r.nodesFlagged.Inc()
				r.log.Warn(
					"Missed heartbeat from server",
					slog.Int("shard", int(node.shardId)),
					slog.String("hostname", node.hostname),
					slog.String("port", node.port),
				)
			}
		}
	}
}

// Assign routes a client to the first active node of its shard, scanning
// in registration order. Client ids start at 1; the mapping is undefined
// below that, so anything else is rejected up front.
func (r *Registry) Assign(clientId int32) (NodeInfo, error) {
	if clientId < 1 {
		r.assignmentsFailed.Inc()
		return NodeInfo{}, ErrInvalidClientId
	}

	shardId := ShardForClient(clientId, r.shardCount)

	r.Lock()
	defer r.Unlock()

	nodes := r.shards[shardId-1]
	if len(nodes) == 0 {
		r.assignmentsFailed.Inc()
		return NodeInfo{}, ErrShardEmpty
	}

	now := r.clock.Now()
	for _, node := range nodes {
		if node.active(now, r.livenessWindow) {
			r.assignmentsServed.Inc()
			return NodeInfo{
				ShardId:  node.shardId,
				Hostname: node.hostname,
				Port:     node.port,
			}, nil
		}
	}

	r.assignmentsFailed.Inc()
	return NodeInfo{}, ErrAllInactive
}

func (r *Registry) NodeCount() int {
	r.Lock()
	defer r.Unlock()

	count := 0
	for _, shard := range r.shards {
		count += len(shard)
	}
	return count
}

func (r *Registry) ActiveNodeCount() int {
	r.Lock()
	defer r.Unlock()

	now := r.clock.Now()
	count := 0
	for _, shard := range r.shards {
		for _, node := range shard {
			if node.active(now, r.livenessWindow) {
				count++
			}
		}
	}
	return count
}

func (r *Registry) Close() error {
	r.nodesGauge.Unregister()
	r.activeNodesGauge.Unregister()
	return nil
}

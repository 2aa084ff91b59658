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
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"

	"github.com/chirpdev/chirp/common"
	"github.com/chirpdev/chirp/common/metrics"
	"github.com/chirpdev/chirp/common/process"
	"github.com/chirpdev/chirp/proto"
)

const (
	heartbeatRpcTimeout          = 2 * time.Second
	heartbeatInitialRetryBackoff = 500 * time.Millisecond
)

// HeartbeatEmitter periodically registers this shard server in the
// coordinator registry. It runs on its own fixed cadence, decoupled from
// the coordinator's sweep period; the cadence must stay below the sweep
// interval so normal jitter never looks like a missed heartbeat.
type HeartbeatEmitter interface {
	io.Closer
}

type heartbeatEmitter struct {
	clientPool         common.ClientPool
	coordinatorAddress string
	info               *proto.ServerInfo
	interval           time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	log    *slog.Logger

	heartbeatsSent    metrics.Counter
	heartbeatFailures metrics.Counter
}

func NewHeartbeatEmitter(pool common.ClientPool, coordinatorAddress string,
	info *proto.ServerInfo, interval time.Duration) HeartbeatEmitter {
	labels := metrics.LabelsForShard(info.ShardId)
	e := &heartbeatEmitter{
		clientPool:         pool,
		coordinatorAddress: coordinatorAddress,
		info:               info,
		interval:           interval,
		done:               make(chan struct{}),
		log: slog.With(
			slog.String("component", "heartbeat-emitter"),
			slog.Int("shard", int(info.ShardId)),
			slog.String("coordinator", coordinatorAddress),
		),

		heartbeatsSent: metrics.NewCounter("chirp_server_heartbeats_sent",
			"The number of heartbeats sent to the coordinator", "count", labels),
		heartbeatFailures: metrics.NewCounter("chirp_server_heartbeat_failures",
			"The number of heartbeats that failed", "count", labels),
	}
	e.ctx, e.cancel = context.WithCancel(context.Background())

	go process.DoWithLabels(e.ctx, map[string]string{
		"chirp": "heartbeat-emitter",
		"shard": fmt.Sprintf("%d", e.info.ShardId),
	}, e.emitWithRetries)

	e.log.Info(
		"Started heartbeat emitter",
		slog.Duration("interval", interval),
	)
	return e
}

func (e *heartbeatEmitter) emitWithRetries() {
	defer close(e.done)

	backOff := common.NewBackOffWithInitialInterval(e.ctx, heartbeatInitialRetryBackoff)
	_ = backoff.RetryNotify(func() error {
		return e.emitLoop(backOff)
	}, backOff, func(err error, duration time.Duration) {
		e.log.Warn(
			"Heartbeat loop failed",
			slog.Any("error", err),
			slog.Duration("retry-after", duration),
		)
	})
}

func (e *heartbeatEmitter) emitLoop(backOff backoff.BackOff) error {
	client, err := e.clientPool.GetCoordinatorRpc(e.coordinatorAddress)
	if err != nil {
		return err
	}

	// Register immediately so routing does not wait for the first tick.
	if err := e.emit(client); err != nil {
		return err
	}

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := e.emit(client); err != nil {
				return err
			}
			backOff.Reset()

		case <-e.ctx.Done():
			return backoff.Permanent(e.ctx.Err())
		}
	}
}

func (e *heartbeatEmitter) emit(client proto.CoordinatorServiceClient) error {
	ctx, cancel := context.WithTimeout(e.ctx, heartbeatRpcTimeout)
	defer cancel()

	ack, err := client.Heartbeat(ctx, e.info)
	if err != nil {
		e.heartbeatFailures.Inc()
		return err
	}
	if !ack.Ok {
		e.heartbeatFailures.Inc()
		return errors.New("heartbeat rejected by coordinator")
	}

	e.heartbeatsSent.Inc()
	e.log.Debug("Heartbeat sent")
	return nil
}

func (e *heartbeatEmitter) Close() error {
	e.cancel()
	<-e.done

	e.log.Info("Closed heartbeat emitter")
	return nil
}

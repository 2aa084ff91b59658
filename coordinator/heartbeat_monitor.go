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
	"io"
	"log/slog"
	"time"

	"github.com/chirpdev/chirp/common/metrics"
	"github.com/chirpdev/chirp/common/process"
)

// HeartbeatMonitor periodically sweeps the registry to flag nodes that
// stopped sending heartbeats. It runs for the whole coordinator lifetime
// and is stopped only at shutdown.
type HeartbeatMonitor interface {
	io.Closer
}

type heartbeatMonitor struct {
	registry *Registry
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	log    *slog.Logger

	sweeps metrics.Counter
}

func NewHeartbeatMonitor(registry *Registry, interval time.Duration) HeartbeatMonitor {
	m := &heartbeatMonitor{
		registry: registry,
		interval: interval,
		done:     make(chan struct{}),
		log: slog.With(
			slog.String("component", "heartbeat-monitor"),
		),

		sweeps: metrics.NewCounter("chirp_coordinator_sweeps",
			"The number of liveness sweeps performed", "count", nil),
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())

	go process.DoWithLabels(m.ctx, map[string]string{
		"chirp": "heartbeat-monitor",
	}, m.run)

	m.log.Info(
		"Started heartbeat monitor",
		slog.Duration("interval", interval),
	)
	return m
}

func (m *heartbeatMonitor) run() {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.registry.Sweep()
			m.sweeps.Inc()

		case <-m.ctx.Done():
			return
		}
	}
}

func (m *heartbeatMonitor) Close() error {
	m.cancel()
	<-m.done

	m.log.Info("Closed heartbeat monitor")
	return nil
}

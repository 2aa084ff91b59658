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
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/chirpdev/chirp/common/metrics"
	"github.com/chirpdev/chirp/proto"
	"github.com/chirpdev/chirp/server/journal"
)

// streamSessionQueueSize bounds the per-follower outbound queue. A
// follower that falls further behind starts dropping deliveries instead of
// stalling publishers.
const streamSessionQueueSize = 128

// StreamHandle is the outbound side of one attached timeline stream.
type StreamHandle interface {
	Send(*proto.Post) error
}

// StreamSession is one live timeline attachment. A dedicated writer task
// drains the queue to the handle so that all sends happen from a single
// goroutine.
type StreamSession struct {
	id       string
	username string
	handle   StreamHandle
	queue    chan *proto.Post

	ctx    context.Context
	cancel context.CancelFunc

	hub *TimelineHub
	log *slog.Logger
}

// Done is closed when the session terminates, whichever side ends it.
func (s *StreamSession) Done() <-chan struct{} {
	return s.ctx.Done()
}

func (s *StreamSession) writeLoop() {
	for {
		select {
		case post := <-s.queue:
			if err := s.handle.Send(post); err != nil {
				s.log.Warn(
					"Failed to deliver post, closing stream session",
					slog.Any("error", err),
				)
				s.cancel()
				return
			}
			s.hub.delivered.Inc()

		case <-s.ctx.Done():
			return
		}
	}
}

// TimelineHub owns the live stream handle of every connected account and
// fans published posts out to the author's followers.
type TimelineHub struct {
	sync.Mutex

	graph    *SocialGraph
	journal  *journal.Journal
	sessions map[string]*StreamSession

	log *slog.Logger

	published metrics.Counter
	delivered metrics.Counter
	dropped   metrics.Counter

	streamsGauge metrics.Gauge
}

func NewTimelineHub(graph *SocialGraph, j *journal.Journal, shardId int32) *TimelineHub {
	labels := metrics.LabelsForShard(shardId)
	h := &TimelineHub{
		graph:    graph,
		journal:  j,
		sessions: make(map[string]*StreamSession),
		log: slog.With(
			slog.String("component", "timeline-hub"),
			slog.Int("shard", int(shardId)),
		),

		published: metrics.NewCounter("chirp_server_posts_published",
			"The number of posts published", "count", labels),
		delivered: metrics.NewCounter("chirp_server_fanout_delivered",
			"The number of posts delivered to follower streams", "count", labels),
		dropped: metrics.NewCounter("chirp_server_fanout_dropped",
			"The number of fan-out deliveries dropped", "count", labels),
	}

	h.streamsGauge = metrics.NewGauge("chirp_server_streams_attached",
		"The number of timeline streams currently attached", "count", labels, func() int64 {
			return int64(h.AttachedCount())
		})

	return h
}

// Attach registers the stream handle for the account, unconditionally
// replacing any prior one. The replaced session is cancelled; its later
// detach is a no-op since it no longer owns the hub entry.
func (h *TimelineHub) Attach(username string, handle StreamHandle) *StreamSession {
	s := &StreamSession{
		id:       uuid.NewString(),
		username: username,
		handle:   handle,
		queue:    make(chan *proto.Post, streamSessionQueueSize),
		hub:      h,
		log: slog.With(
			slog.String("component", "stream-session"),
			slog.String("username", username),
		),
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	h.Lock()
	prev := h.sessions[username]
	h.sessions[username] = s
	h.Unlock()

	if prev != nil {
		prev.cancel()
		h.log.Info(
			"Replaced existing stream session",
			slog.String("username", username),
		)
	}

	go s.writeLoop()

	h.log.Info(
		"Attached timeline stream",
		slog.String("username", username),
	)
	return s
}

// Detach clears the hub entry if the session still owns it and cancels the
// session either way. It reports whether the entry was cleared, so a stale
// teardown after a last-writer-wins replacement cannot drop a newer
// stream.
func (h *TimelineHub) Detach(s *StreamSession) bool {
	h.Lock()
	current, ok := h.sessions[s.username]
	owned := ok && current.id == s.id
	if owned {
		delete(h.sessions, s.username)
	}
	h.Unlock()

	s.cancel()

	if owned {
		h.log.Info(
			"Detached timeline stream",
			slog.String("username", s.username),
		)
	}
	return owned
}

// Publish appends the post to the author's durable timeline log, then
// enqueues it to every follower with a live stream. Each delivery is
// independent and best-effort: a dead session or a full queue drops that
// one delivery without affecting the others or the publisher.
func (h *TimelineHub) Publish(post *proto.Post) {
	if err := h.journal.AppendPost(post.Author, post.Body, post.CreatedAt); err != nil {
		h.log.Warn(
			"Failed to append post to timeline log",
			slog.String("author", post.Author),
			slog.Any("error", err),
		)
	}

	followers := h.graph.Followers(post.Author)

	h.Lock()
	targets := make([]*StreamSession, 0, len(followers))
	for _, follower := range followers {
		if s, ok := h.sessions[follower]; ok {
			targets = append(targets, s)
		}
	}
	h.Unlock()

	for _, s := range targets {
		select {
		case s.queue <- post:

		case <-s.ctx.Done():
			h.dropped.Inc()
			h.log.Debug(
				"Dropped delivery to closed stream",
				slog.String("follower", s.username),
			)

		default:
			h.dropped.Inc()
			h.log.Warn(
				"Dropped delivery to slow follower",
				slog.String("follower", s.username),
			)
		}
	}

	h.published.Inc()
}

func (h *TimelineHub) AttachedCount() int {
	h.Lock()
	defer h.Unlock()

	return len(h.sessions)
}

func (h *TimelineHub) Close() error {
	h.Lock()
	sessions := make([]*StreamSession, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.Unlock()

	for _, s := range sessions {
		h.Detach(s)
	}

	h.streamsGauge.Unregister()
	return nil
}

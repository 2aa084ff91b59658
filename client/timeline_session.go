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

package client

import (
	"log/slog"
	"sync"
	"time"

	"github.com/chirpdev/chirp/proto"
)

const timelineSessionQueueSize = 128

// TimelineSession is an open live stream. Posts() yields every post
// delivered to this user; Post publishes on the same stream. The channel
// is closed when the server ends the stream or Close is called.
type TimelineSession struct {
	username string
	stream   proto.SocialService_TimelineClient

	posts chan *proto.Post
	done  chan struct{}

	closeOnce sync.Once
	log       *slog.Logger
}

func newTimelineSession(username string, stream proto.SocialService_TimelineClient, log *slog.Logger) *TimelineSession {
	s := &TimelineSession{
		username: username,
		stream:   stream,
		posts:    make(chan *proto.Post, timelineSessionQueueSize),
		done:     make(chan struct{}),
		log:      log,
	}

	go s.receiveLoop()
	return s
}

func (s *TimelineSession) receiveLoop() {
	defer close(s.posts)

	for {
		post, err := s.stream.Recv()
		if err != nil {
			select {
			case <-s.done:
			default:
				s.log.Info(
					"Timeline stream ended",
					slog.Any("error", err),
				)
			}
			return
		}

		select {
		case s.posts <- post:
		case <-s.done:
			return
		}
	}
}

// Post publishes a new post on the stream. The server stamps the author
// from the handshake, so only the body matters here.
func (s *TimelineSession) Post(body string) error {
	return s.stream.Send(&proto.Post{
		Author:    s.username,
		Body:      body,
		CreatedAt: time.Now().Unix(),
	})
}

func (s *TimelineSession) Posts() <-chan *proto.Post {
	return s.posts
}

func (s *TimelineSession) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.stream.CloseSend()
	})
	return err
}

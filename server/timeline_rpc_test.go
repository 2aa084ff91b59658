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
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chirpdev/chirp/proto"
)

type fakeTimelineServerStream struct {
	grpc.ServerStream

	ctx     context.Context
	inbound chan *proto.Post

	capturingHandle
}

func newFakeTimelineServerStream() *fakeTimelineServerStream {
	return &fakeTimelineServerStream{
		ctx:     context.Background(),
		inbound: make(chan *proto.Post, 16),
	}
}

func (s *fakeTimelineServerStream) Context() context.Context {
	return s.ctx
}

func (s *fakeTimelineServerStream) Recv() (*proto.Post, error) {
	post, ok := <-s.inbound
	if !ok {
		return nil, io.EOF
	}
	return post, nil
}

func TestTimeline_HandshakeValidation(t *testing.T) {
	s, _ := newTestRpcServer(t)

	// Empty author in the handshake frame
	stream := newFakeTimelineServerStream()
	stream.inbound <- &proto.Post{}
	err := s.Timeline(stream)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// Handshake for an account that never logged in
	stream = newFakeTimelineServerStream()
	stream.inbound <- &proto.Post{Author: "ghost"}
	err = s.Timeline(stream)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestTimeline_PublishAndFanOut(t *testing.T) {
	s, _ := newTestRpcServer(t)

	for _, username := range []string{"alice", "bob"} {
		_, err := s.Login(context.Background(), &proto.LoginRequest{Username: username})
		assert.NoError(t, err)
	}
	_, err := s.Follow(context.Background(), &proto.FollowRequest{Username: "bob", Target: "alice"})
	assert.NoError(t, err)

	bob := &capturingHandle{}
	s.hub.Attach("bob", bob)

	stream := newFakeTimelineServerStream()
	stream.inbound <- &proto.Post{Author: "alice"}

	done := make(chan error, 1)
	go func() {
		done <- s.Timeline(stream)
	}()

	stream.inbound <- &proto.Post{Body: "hello from alice"}

	assert.Eventually(t, func() bool {
		return bob.count() == 1
	}, 10*time.Second, 10*time.Millisecond)

	posts := bob.bodies()
	assert.Equal(t, []string{"hello from alice"}, posts)

	// The author is stamped from the handshake, whatever the frame said
	bob.Lock()
	assert.Equal(t, "alice", bob.posts[0].Author)
	assert.NotZero(t, bob.posts[0].CreatedAt)
	bob.Unlock()

	// Client closes its side: the handler returns and the account is
	// logged out, so a new login reconnects instead of failing.
	close(stream.inbound)
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for handler to return")
	}

	assert.Equal(t, 0, s.hub.AttachedCount())
	result, err := s.graph.Login("alice")
	assert.NoError(t, err)
	assert.Equal(t, LoginReconnected, result)
}

func TestTimeline_ReplacedStreamDoesNotLogout(t *testing.T) {
	s, _ := newTestRpcServer(t)

	_, err := s.Login(context.Background(), &proto.LoginRequest{Username: "alice"})
	assert.NoError(t, err)

	first := newFakeTimelineServerStream()
	first.inbound <- &proto.Post{Author: "alice"}
	firstDone := make(chan error, 1)
	go func() {
		firstDone <- s.Timeline(first)
	}()

	assert.Eventually(t, func() bool {
		return s.hub.AttachedCount() == 1
	}, 10*time.Second, 10*time.Millisecond)

	// A second stream for the same account replaces the first one
	second := newFakeTimelineServerStream()
	second.inbound <- &proto.Post{Author: "alice"}
	secondDone := make(chan error, 1)
	go func() {
		secondDone <- s.Timeline(second)
	}()

	// The first handler ends without logging the account out from under
	// the second stream
	select {
	case err = <-firstDone:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for replaced handler to return")
	}
	assert.Equal(t, 1, s.hub.AttachedCount())

	_, err = s.graph.Login("alice")
	assert.ErrorIs(t, err, ErrAlreadyLoggedIn)

	close(second.inbound)
	select {
	case err = <-secondDone:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for handler to return")
	}
	assert.Equal(t, 0, s.hub.AttachedCount())
}

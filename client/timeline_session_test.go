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
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"

	"github.com/chirpdev/chirp/proto"
)

type fakeTimelineStream struct {
	grpc.ClientStream

	sync.Mutex
	sent     []*proto.Post
	inbound  chan *proto.Post
	sendDone bool
}

func newFakeTimelineStream() *fakeTimelineStream {
	return &fakeTimelineStream{
		inbound: make(chan *proto.Post, 16),
	}
}

func (s *fakeTimelineStream) Send(post *proto.Post) error {
	s.Lock()
	defer s.Unlock()
	s.sent = append(s.sent, post)
	return nil
}

func (s *fakeTimelineStream) Recv() (*proto.Post, error) {
	post, ok := <-s.inbound
	if !ok {
		return nil, io.EOF
	}
	return post, nil
}

func (s *fakeTimelineStream) CloseSend() error {
	s.Lock()
	defer s.Unlock()
	s.sendDone = true
	return nil
}

func (s *fakeTimelineStream) sentPosts() []*proto.Post {
	s.Lock()
	defer s.Unlock()
	return append([]*proto.Post{}, s.sent...)
}

func TestTimelineSession_ReceivesPosts(t *testing.T) {
	stream := newFakeTimelineStream()
	session := newTimelineSession("alice", stream, slog.Default())
	defer session.Close()

	stream.inbound <- &proto.Post{Author: "bob", Body: "hello", CreatedAt: 1}
	stream.inbound <- &proto.Post{Author: "carol", Body: "hi", CreatedAt: 2}

	var received []*proto.Post
	for len(received) < 2 {
		select {
		case post := <-session.Posts():
			received = append(received, post)
		case <-time.After(10 * time.Second):
			t.Fatal("timed out waiting for posts")
		}
	}
	assert.Equal(t, "bob", received[0].Author)
	assert.Equal(t, "hi", received[1].Body)
}

func TestTimelineSession_PostsChannelClosesOnStreamEnd(t *testing.T) {
	stream := newFakeTimelineStream()
	session := newTimelineSession("alice", stream, slog.Default())
	defer session.Close()

	close(stream.inbound)

	select {
	case _, ok := <-session.Posts():
		assert.False(t, ok)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestTimelineSession_Post(t *testing.T) {
	stream := newFakeTimelineStream()
	session := newTimelineSession("alice", stream, slog.Default())

	assert.NoError(t, session.Post("first chirp"))

	sent := stream.sentPosts()
	assert.Len(t, sent, 1)
	assert.Equal(t, "alice", sent[0].Author)
	assert.Equal(t, "first chirp", sent[0].Body)
	assert.NotZero(t, sent[0].CreatedAt)

	assert.NoError(t, session.Close())
	stream.Lock()
	assert.True(t, stream.sendDone)
	stream.Unlock()

	// Close is idempotent
	assert.NoError(t, session.Close())
}

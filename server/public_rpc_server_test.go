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
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chirpdev/chirp/proto"
	"github.com/chirpdev/chirp/server/journal"
)

func newTestRpcServer(t *testing.T) (*publicRpcServer, *journal.Journal) {
	t.Helper()

	g := NewSocialGraph(1)
	j, err := journal.Open(journal.Options{InMemory: true})
	assert.NoError(t, err)
	h := NewTimelineHub(g, j, 1)

	t.Cleanup(func() {
		assert.NoError(t, h.Close())
		assert.NoError(t, g.Close())
		assert.NoError(t, j.Close())
	})
	return newPublicRpcServer(g, h, j), j
}

func TestPublicRpcServer_Login(t *testing.T) {
	s, _ := newTestRpcServer(t)

	res, err := s.Login(context.Background(), &proto.LoginRequest{Username: "alice"})
	assert.NoError(t, err)
	assert.Equal(t, "new account created and logged in", res.Status)

	_, err = s.Login(context.Background(), &proto.LoginRequest{Username: "alice"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	s.graph.Logout("alice")
	res, err = s.Login(context.Background(), &proto.LoginRequest{Username: "alice"})
	assert.NoError(t, err)
	assert.Equal(t, "login successful", res.Status)
}

func TestPublicRpcServer_Follow(t *testing.T) {
	s, j := newTestRpcServer(t)

	for _, username := range []string{"alice", "bob"} {
		_, err := s.Login(context.Background(), &proto.LoginRequest{Username: username})
		assert.NoError(t, err)
	}

	res, err := s.Follow(context.Background(), &proto.FollowRequest{Username: "alice", Target: "bob"})
	assert.NoError(t, err)
	assert.Equal(t, "OK", res.Status)

	// The follow action is also journaled
	records, err := j.ReadFollowAudit("alice")
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Contains(t, records[0], "bob|")

	_, err = s.Follow(context.Background(), &proto.FollowRequest{Username: "alice", Target: "bob"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
	_, err = s.Follow(context.Background(), &proto.FollowRequest{Username: "alice", Target: "alice"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = s.Follow(context.Background(), &proto.FollowRequest{Username: "alice", Target: "nobody"})
	assert.Equal(t, codes.NotFound, status.Code(err))
	_, err = s.Follow(context.Background(), &proto.FollowRequest{Username: "alice"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestPublicRpcServer_UnFollow(t *testing.T) {
	s, _ := newTestRpcServer(t)

	for _, username := range []string{"alice", "bob"} {
		_, err := s.Login(context.Background(), &proto.LoginRequest{Username: username})
		assert.NoError(t, err)
	}

	_, err := s.UnFollow(context.Background(), &proto.FollowRequest{Username: "alice", Target: "bob"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = s.Follow(context.Background(), &proto.FollowRequest{Username: "alice", Target: "bob"})
	assert.NoError(t, err)

	res, err := s.UnFollow(context.Background(), &proto.FollowRequest{Username: "alice", Target: "bob"})
	assert.NoError(t, err)
	assert.Equal(t, "OK", res.Status)
}

func TestPublicRpcServer_List(t *testing.T) {
	s, _ := newTestRpcServer(t)

	for _, username := range []string{"alice", "bob", "carol"} {
		_, err := s.Login(context.Background(), &proto.LoginRequest{Username: username})
		assert.NoError(t, err)
	}
	_, err := s.Follow(context.Background(), &proto.FollowRequest{Username: "bob", Target: "alice"})
	assert.NoError(t, err)

	res, err := s.List(context.Background(), &proto.ListRequest{Username: "alice"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, res.AllUsers)
	assert.Equal(t, []string{"bob"}, res.Followers)

	// Unknown users are not an error
	res, err = s.List(context.Background(), &proto.ListRequest{Username: "nobody"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, res.AllUsers)
	assert.Empty(t, res.Followers)
}

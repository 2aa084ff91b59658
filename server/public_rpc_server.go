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
	"time"

	"github.com/chirpdev/chirp/proto"
	"github.com/chirpdev/chirp/server/journal"
)

type publicRpcServer struct {
	proto.UnimplementedSocialServiceServer

	graph   *SocialGraph
	hub     *TimelineHub
	journal *journal.Journal

	log *slog.Logger
}

func newPublicRpcServer(graph *SocialGraph, hub *TimelineHub, j *journal.Journal) *publicRpcServer {
	return &publicRpcServer{
		graph:   graph,
		hub:     hub,
		journal: j,
		log: slog.With(
			slog.String("component", "social-rpc-server"),
		),
	}
}

func (s *publicRpcServer) Login(_ context.Context, req *proto.LoginRequest) (*proto.LoginResponse, error) {
	result, err := s.graph.Login(req.Username)
	if err != nil {
		return nil, err
	}

	status := "login successful"
	if result == LoginNewAccount {
		status = "new account created and logged in"
	}
	return &proto.LoginResponse{Status: status}, nil
}

func (s *publicRpcServer) Follow(_ context.Context, req *proto.FollowRequest) (*proto.FollowResponse, error) {
	if err := s.graph.Follow(req.Username, req.Target); err != nil {
		return nil, err
	}

	if err := s.journal.AppendFollowAudit(req.Username, req.Target, time.Now()); err != nil {
		s.log.Warn(
			"Failed to append follow audit record",
			slog.String("username", req.Username),
			slog.Any("error", err),
		)
	}

	return &proto.FollowResponse{Status: "OK"}, nil
}

func (s *publicRpcServer) UnFollow(_ context.Context, req *proto.FollowRequest) (*proto.FollowResponse, error) {
	if err := s.graph.UnFollow(req.Username, req.Target); err != nil {
		return nil, err
	}
	return &proto.FollowResponse{Status: "OK"}, nil
}

func (s *publicRpcServer) List(_ context.Context, req *proto.ListRequest) (*proto.ListResponse, error) {
	allUsers, followers := s.graph.List(req.Username)
	return &proto.ListResponse{
		AllUsers:  allUsers,
		Followers: followers,
	}, nil
}

// Timeline binds the stream to the account named in the handshake frame,
// then publishes every later inbound frame. The inbound reader and the
// session writer are independent tasks: whichever ends first tears the
// session down, and the stream is detached exactly once.
func (s *publicRpcServer) Timeline(stream proto.SocialService_TimelineServer) error {
	handshake, err := stream.Recv()
	if err != nil {
		return err
	}
	username := handshake.Author
	if username == "" {
		return ErrMissingHandshake
	}
	if !s.graph.Exists(username) {
		return ErrUnknownAccount
	}

	session := s.hub.Attach(username, stream)
	defer func() {
		if s.hub.Detach(session) {
			s.graph.Logout(username)
		}
	}()

	s.log.Info(
		"Timeline stream opened",
		slog.String("username", username),
	)

	inbound := make(chan *proto.Post)
	readErr := make(chan error, 1)
	go func() {
		for {
			post, err := stream.Recv()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case inbound <- post:
			case <-session.Done():
				return
			}
		}
	}()

	for {
		select {
		case post := <-inbound:
			// The stream author is authoritative for every frame.
			post.Author = username
			if post.CreatedAt == 0 {
				post.CreatedAt = time.Now().Unix()
			}
			s.hub.Publish(post)

		case err := <-readErr:
			s.log.Info(
				"Timeline stream closed",
				slog.String("username", username),
				slog.Any("error", err),
			)
			return nil

		case <-session.Done():
			// The writer side ended the session, or a newer stream
			// replaced this one.
			return nil

		case <-stream.Context().Done():
			return nil
		}
	}
}

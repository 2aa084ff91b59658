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

// Package client provides the chirp client library. A client resolves its
// shard server through the coordinator, logs in, and then talks to that
// server for the rest of the session.
package client

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/multierr"

	"github.com/chirpdev/chirp/common"
	"github.com/chirpdev/chirp/proto"
)

type Config struct {
	CoordinatorAddress string
	ClientId           int32
	Username           string
}

func NewConfig() Config {
	return Config{
		CoordinatorAddress: "localhost:9090",
	}
}

// Client is a logged-in session against a single shard server.
type Client struct {
	config Config

	clientPool    common.ClientPool
	serverAddress string
	social        proto.SocialServiceClient

	log *slog.Logger
}

// New asks the coordinator for this client's shard server, connects to it
// and logs in. The returned client is bound to that server for its lifetime.
func New(ctx context.Context, config Config) (*Client, error) {
	c := &Client{
		config:     config,
		clientPool: common.NewClientPool(),
		log: slog.With(
			slog.String("component", "client"),
			slog.String("username", config.Username),
		),
	}

	coordinator, err := c.clientPool.GetCoordinatorRpc(config.CoordinatorAddress)
	if err != nil {
		return nil, multierr.Append(err, c.Close())
	}

	assignment, err := coordinator.GetAssignment(ctx, &proto.AssignmentRequest{ClientId: config.ClientId})
	if err != nil {
		return nil, multierr.Append(err, c.Close())
	}

	c.serverAddress = fmt.Sprintf("%s:%s", assignment.Hostname, assignment.Port)
	c.log.Info(
		"Resolved shard server",
		slog.Int("shard", int(assignment.ShardId)),
		slog.String("server-address", c.serverAddress),
	)

	if c.social, err = c.clientPool.GetSocialRpc(c.serverAddress); err != nil {
		return nil, multierr.Append(err, c.Close())
	}

	if _, err = c.social.Login(ctx, &proto.LoginRequest{Username: config.Username}); err != nil {
		return nil, multierr.Append(err, c.Close())
	}

	return c, nil
}

func (c *Client) ServerAddress() string {
	return c.serverAddress
}

func (c *Client) Follow(ctx context.Context, target string) error {
	_, err := c.social.Follow(ctx, &proto.FollowRequest{
		Username: c.config.Username,
		Target:   target,
	})
	return err
}

func (c *Client) UnFollow(ctx context.Context, target string) error {
	_, err := c.social.UnFollow(ctx, &proto.FollowRequest{
		Username: c.config.Username,
		Target:   target,
	})
	return err
}

func (c *Client) List(ctx context.Context) (allUsers []string, followers []string, err error) {
	res, err := c.social.List(ctx, &proto.ListRequest{Username: c.config.Username})
	if err != nil {
		return nil, nil, err
	}
	return res.AllUsers, res.Followers, nil
}

// Timeline opens the live stream for this session. The first frame sent on
// the wire is the handshake binding the stream to this username; only
// frames after that are published posts.
func (c *Client) Timeline(ctx context.Context) (*TimelineSession, error) {
	stream, err := c.social.Timeline(ctx)
	if err != nil {
		return nil, err
	}

	if err = stream.Send(&proto.Post{Author: c.config.Username}); err != nil {
		return nil, err
	}

	return newTimelineSession(c.config.Username, stream, c.log), nil
}

func (c *Client) Close() error {
	return c.clientPool.Close()
}

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
	"log/slog"
	"sync"

	"github.com/chirpdev/chirp/common/metrics"
)

type LoginResult int

const (
	LoginNewAccount LoginResult = iota
	LoginReconnected
)

// account is one registered user on this shard. Edges are stored as
// username keys into the accounts table, mirrored on both sides, so the
// table stays the single owner of every account.
type account struct {
	username  string
	connected bool
	following map[string]struct{}
	followers map[string]struct{}
}

// SocialGraph owns the accounts of one shard and the symmetric follow
// relation between them. Accounts are created on first login and never
// deleted. All state is guarded by a single lock; every operation holds it
// only for the in-memory scan or mutation.
type SocialGraph struct {
	sync.RWMutex

	accounts map[string]*account

	// Usernames in creation order: List reports all users in the order
	// they first logged in.
	order []string

	log *slog.Logger

	logins  metrics.Counter
	follows metrics.Counter

	accountsGauge metrics.Gauge
}

func NewSocialGraph(shardId int32) *SocialGraph {
	labels := metrics.LabelsForShard(shardId)
	g := &SocialGraph{
		accounts: make(map[string]*account),
		log: slog.With(
			slog.String("component", "social-graph"),
			slog.Int("shard", int(shardId)),
		),

		logins: metrics.NewCounter("chirp_server_logins",
			"The number of successful logins", "count", labels),
		follows: metrics.NewCounter("chirp_server_follows",
			"The number of follow edges created", "count", labels),
	}

	g.accountsGauge = metrics.NewGauge("chirp_server_accounts",
		"The number of accounts registered on this shard", "count", labels, func() int64 {
			return int64(g.AccountCount())
		})

	return g
}

// Login creates the account on first sight, reconnects a disconnected
// account, and rejects a login for an account that is still connected.
func (g *SocialGraph) Login(username string) (LoginResult, error) {
	g.Lock()
	defer g.Unlock()

	if a, ok := g.accounts[username]; ok {
		if a.connected {
			return 0, ErrAlreadyLoggedIn
		}
		a.connected = true
		g.logins.Inc()
		g.log.Info(
			"User reconnected",
			slog.String("username", username),
		)
		return LoginReconnected, nil
	}

	g.accounts[username] = &account{
		username:  username,
		connected: true,
		following: make(map[string]struct{}),
		followers: make(map[string]struct{}),
	}
	g.order = append(g.order, username)
	g.logins.Inc()
	g.log.Info(
		"New account created",
		slog.String("username", username),
	)
	return LoginNewAccount, nil
}

// Logout marks the account as disconnected so a later Login reconnects it.
func (g *SocialGraph) Logout(username string) {
	g.Lock()
	defer g.Unlock()

	if a, ok := g.accounts[username]; ok {
		a.connected = false
	}
}

func (g *SocialGraph) Exists(username string) bool {
	g.RLock()
	defer g.RUnlock()

	_, ok := g.accounts[username]
	return ok
}

// Follow inserts the symmetric edge user -> target. Validation order:
// missing target, self reference, unknown accounts, duplicate edge.
func (g *SocialGraph) Follow(username, target string) error {
	if target == "" {
		return ErrMissingTarget
	}
	if username == target {
		return ErrSelfFollow
	}

	g.Lock()
	defer g.Unlock()

	user, ok := g.accounts[username]
	if !ok {
		return ErrUnknownAccount
	}
	followee, ok := g.accounts[target]
	if !ok {
		return ErrUnknownAccount
	}

	if _, ok := user.following[target]; ok {
		return ErrAlreadyFollowing
	}

	user.following[target] = struct{}{}
	followee.followers[username] = struct{}{}
	g.follows.Inc()
	g.log.Info(
		"Follow edge created",
		slog.String("username", username),
		slog.String("target", target),
	)
	return nil
}

// UnFollow removes the symmetric edge user -> target, restoring the exact
// pre-Follow state.
func (g *SocialGraph) UnFollow(username, target string) error {
	if target == "" {
		return ErrMissingTarget
	}
	if username == target {
		return ErrSelfFollow
	}

	g.Lock()
	defer g.Unlock()

	user, ok := g.accounts[username]
	if !ok {
		return ErrUnknownAccount
	}
	followee, ok := g.accounts[target]
	if !ok {
		return ErrUnknownAccount
	}

	if _, ok := user.following[target]; !ok {
		return ErrNotFollowing
	}

	delete(user.following, target)
	delete(followee.followers, username)
	g.log.Info(
		"Follow edge removed",
		slog.String("username", username),
		slog.String("target", target),
	)
	return nil
}

// List returns every known username in creation order plus the requesting
// user's followers. An unknown user gets the full user list and no
// followers rather than an error.
func (g *SocialGraph) List(username string) (allUsers []string, followers []string) {
	g.RLock()
	defer g.RUnlock()

	allUsers = make([]string, len(g.order))
	copy(allUsers, g.order)

	if a, ok := g.accounts[username]; ok {
		followers = make([]string, 0, len(a.followers))
		for _, candidate := range g.order {
			if _, ok := a.followers[candidate]; ok {
				followers = append(followers, candidate)
			}
		}
	}
	return allUsers, followers
}

// Followers returns a snapshot of the author's follower set.
func (g *SocialGraph) Followers(username string) []string {
	g.RLock()
	defer g.RUnlock()

	a, ok := g.accounts[username]
	if !ok {
		return nil
	}

	followers := make([]string, 0, len(a.followers))
	for follower := range a.followers {
		followers = append(followers, follower)
	}
	return followers
}

func (g *SocialGraph) AccountCount() int {
	g.RLock()
	defer g.RUnlock()

	return len(g.accounts)
}

func (g *SocialGraph) Close() error {
	g.accountsGauge.Unregister()
	return nil
}

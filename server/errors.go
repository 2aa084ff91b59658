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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrMissingTarget    = status.Error(codes.InvalidArgument, "chirp: missing target username")
	ErrSelfFollow       = status.Error(codes.InvalidArgument, "chirp: cannot follow or unfollow yourself")
	ErrMissingHandshake = status.Error(codes.InvalidArgument, "chirp: missing author in handshake frame")
	ErrUnknownAccount   = status.Error(codes.NotFound, "chirp: unknown account")
	ErrAlreadyLoggedIn  = status.Error(codes.FailedPrecondition, "chirp: user already logged in")
	ErrAlreadyFollowing = status.Error(codes.AlreadyExists, "chirp: already following user")
	ErrNotFollowing     = status.Error(codes.FailedPrecondition, "chirp: not following user")
)

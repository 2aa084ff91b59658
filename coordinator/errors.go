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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrInvalidShard    = status.Error(codes.InvalidArgument, "chirp: shard id outside the configured range")
	ErrInvalidClientId = status.Error(codes.InvalidArgument, "chirp: client id must be positive")
	ErrShardEmpty      = status.Error(codes.NotFound, "chirp: no server registered for shard")
	ErrAllInactive     = status.Error(codes.Unavailable, "chirp: all servers for shard are inactive")
)

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

package proto

import (
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
)

func TestPostRoundTrip(t *testing.T) {
	post := &Post{
		Author:    "alice",
		Body:      "hello from shard 1",
		CreatedAt: time.Now().Unix(),
	}

	data, err := proto.Marshal(post)
	assert.NoError(t, err)

	decoded := &Post{}
	assert.NoError(t, proto.Unmarshal(data, decoded))
	assert.Equal(t, post.Author, decoded.Author)
	assert.Equal(t, post.Body, decoded.Body)
	assert.Equal(t, post.CreatedAt, decoded.CreatedAt)
}

func Benchmark_ProtoMarshall(b *testing.B) {
	post := &Post{
		Author:    "alice",
		Body:      "hello from shard 1",
		CreatedAt: time.Now().Unix(),
	}
	for i := 0; i < b.N; i++ {
		_, err := proto.Marshal(post)
		assert.NoError(b, err)
	}
}

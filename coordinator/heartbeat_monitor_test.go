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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chirpdev/chirp/common"
)

func TestHeartbeatMonitor(t *testing.T) {
	clock := common.NewMockClock()
	r := NewRegistry(1, 10*time.Second, clock)
	defer r.Close()

	_, err := r.RecordHeartbeat(1, "host-a", "10001")
	assert.NoError(t, err)

	m := NewHeartbeatMonitor(r, 10*time.Millisecond)

	// The node went quiet past the liveness window. A sweep flags it, a
	// second sweep after the grace window makes it inactive.
	clock.Advance(11 * time.Second)
	assert.Eventually(t, func() bool {
		clock.Advance(11 * time.Second)
		return r.ActiveNodeCount() == 0
	}, 10*time.Second, 10*time.Millisecond)

	assert.NoError(t, m.Close())
	assert.Equal(t, 1, r.NodeCount())
}

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

package common

import (
	"sync"
	"time"
)

// Clock abstracts wall-clock reads so that liveness decisions can be
// tested deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
}

func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced Clock for tests.
type MockClock struct {
	sync.Mutex
	now time.Time
}

func NewMockClock() *MockClock {
	return &MockClock{now: time.UnixMilli(0)}
}

func (c *MockClock) Now() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.now
}

func (c *MockClock) Advance(d time.Duration) {
	c.Lock()
	defer c.Unlock()
	c.now = c.now.Add(d)
}

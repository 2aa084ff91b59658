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
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// NewBackOff returns an exponential backoff bound to the context, retrying
// until the context is cancelled.
func NewBackOff(ctx context.Context) backoff.BackOffContext {
	return NewBackOffWithInitialInterval(ctx, backoff.DefaultInitialInterval)
}

func NewBackOffWithInitialInterval(ctx context.Context, initialInterval time.Duration) backoff.BackOffContext {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialInterval

	// Never give up retrying.
	bo.MaxElapsedTime = 0
	return backoff.WithContext(bo, ctx)
}

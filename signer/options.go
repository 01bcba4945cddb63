// Copyright 2026 Blink Labs Software
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

package signer

import (
	"log/slog"
)

type config struct {
	logger     *slog.Logger
	selfVerify bool
}

// SignOptionFunc is a type that represents functions that modify the signing config
type SignOptionFunc func(*config)

// WithLogger specifies the logger to use. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) SignOptionFunc {
	return func(c *config) {
		c.logger = logger
	}
}

// WithSelfVerify specifies whether to verify the new witness against the
// original body bytes before returning. This is disabled by default
func WithSelfVerify(selfVerify bool) SignOptionFunc {
	return func(c *config) {
		c.selfVerify = selfVerify
	}
}

func newConfig(opts []SignOptionFunc) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

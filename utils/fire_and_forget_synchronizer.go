// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package utils

import (
	"github.com/codetrail-dev/codetrail/monitoring"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/pkg/errors"
)

type fireAndForgetSynchronizer struct{}

// NewFireAndForgetSynchronizer runs each fn on its own goroutine. Panics
// are recovered and reported instead of tearing the process down.
func NewFireAndForgetSynchronizer() shared.FireAndForgetSynchronizer {
	return &fireAndForgetSynchronizer{}
}

func (s *fireAndForgetSynchronizer) FireAndForget(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				monitoring.RecoverAndAlert("fire and forget job panicked", errors.Errorf("%v", r))
			}
		}()
		fn()
	}()
}

type syncFireAndForgetSynchronizer struct{}

// NewSyncFireAndForgetSynchronizer runs each fn inline. Used in tests to
// make background work deterministic.
func NewSyncFireAndForgetSynchronizer() shared.FireAndForgetSynchronizer {
	return &syncFireAndForgetSynchronizer{}
}

func (s *syncFireAndForgetSynchronizer) FireAndForget(fn func()) {
	fn()
}

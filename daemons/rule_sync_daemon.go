// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package daemons holds the periodic background jobs: rule repository
// synchronization and risk metric recalculation.
package daemons

import (
	"context"
	"log/slog"
	"time"

	"github.com/codetrail-dev/codetrail/shared"
)

// SyncRuleRepositories pulls every registered rule repository checkout and
// re-imports its rules. One failing repository does not stop the others.
func SyncRuleRepositories(ctx context.Context, ruleRepositoryRepository shared.RuleRepositoryRepository, ruleService shared.RuleService) error {
	repos, err := ruleRepositoryRepository.All()
	if err != nil {
		return err
	}

	start := time.Now()
	for _, repo := range repos {
		if err := ruleService.PullRepository(ctx, repo); err != nil {
			slog.Error("could not pull rule repository", "repository", repo.Name, "err", err)
			continue
		}
		if err := ruleService.Sync(ctx, repo); err != nil {
			slog.Error("could not synchronize rule repository", "repository", repo.Name, "err", err)
		}
	}
	slog.Info("rule repositories synchronized", "repositories", len(repos), "duration", time.Since(start))
	return nil
}

// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/rules"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/pkg/errors"
)

type ruleService struct {
	ruleRepositoryRepository shared.RuleRepositoryRepository
	synchronizer             *rules.Synchronizer
	cloner                   shared.RepositoryCloner
}

func NewRuleService(ruleRepositoryRepository shared.RuleRepositoryRepository, synchronizer *rules.Synchronizer, cloner shared.RepositoryCloner) *ruleService {
	return &ruleService{
		ruleRepositoryRepository: ruleRepositoryRepository,
		synchronizer:             synchronizer,
		cloner:                   cloner,
	}
}

func (s *ruleService) Sync(ctx context.Context, repo models.RuleRepository) error {
	return s.synchronizer.Sync(ctx, repo)
}

// CloneRepository checks the repository out under the rules directory and
// stamps LastUpdateOn.
func (s *ruleService) CloneRepository(ctx context.Context, repo models.RuleRepository) error {
	if err := s.cloner.Clone(ctx, repo.URI, s.checkoutPath(repo)); err != nil {
		return err
	}
	return s.touch(repo)
}

// PullRepository fast-forwards an existing checkout and stamps
// LastUpdateOn.
func (s *ruleService) PullRepository(ctx context.Context, repo models.RuleRepository) error {
	if err := s.cloner.Pull(ctx, s.checkoutPath(repo)); err != nil {
		return err
	}
	return s.touch(repo)
}

func (s *ruleService) checkoutPath(repo models.RuleRepository) string {
	return filepath.Join(shared.RulesDir(), repo.Name)
}

func (s *ruleService) touch(repo models.RuleRepository) error {
	repo.LastUpdateOn = shared.Ptr(time.Now())
	if err := s.ruleRepositoryRepository.Save(nil, &repo); err != nil {
		return errors.Wrap(err, "could not update rule repository timestamp")
	}
	slog.Debug("rule repository checkout updated", "repository", repo.Name)
	return nil
}

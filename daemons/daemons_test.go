// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package daemons

import (
	"context"
	"testing"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/mocks"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSyncRuleRepositories(t *testing.T) {
	broken := models.RuleRepository{Model: models.Model{ID: uuid.New()}, Name: "broken"}
	healthy := models.RuleRepository{Model: models.Model{ID: uuid.New()}, Name: "healthy"}

	ruleRepositoryRepository := mocks.NewRuleRepositoryRepository(t)
	ruleRepositoryRepository.On("All").Return([]models.RuleRepository{broken, healthy}, nil)

	// a failing pull skips the sync of that repository but not the others
	ruleService := mocks.NewRuleService(t)
	ruleService.On("PullRepository", mock.Anything, broken).Return(errors.New("unreachable"))
	ruleService.On("PullRepository", mock.Anything, healthy).Return(nil)
	ruleService.On("Sync", mock.Anything, healthy).Return(nil)

	require.NoError(t, SyncRuleRepositories(context.Background(), ruleRepositoryRepository, ruleService))
}

func TestRecalculateRiskMetrics(t *testing.T) {
	first := models.Project{Model: models.Model{ID: uuid.New()}, Slug: "first"}
	second := models.Project{Model: models.Model{ID: uuid.New()}, Slug: "second"}

	projectRepository := mocks.NewProjectRepository(t)
	projectRepository.On("All").Return([]models.Project{first, second}, nil)

	projectService := mocks.NewProjectService(t)
	projectService.On("RiskLevel", first.ID).Return(0, errors.New("missing results"))
	projectService.On("RiskLevel", second.ID).Return(83, nil)

	require.NoError(t, RecalculateRiskMetrics(projectRepository, projectService))
}

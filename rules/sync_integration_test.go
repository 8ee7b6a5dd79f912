// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rules_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/database/repositories"
	"github.com/codetrail-dev/codetrail/integrationtestutil"
	"github.com/codetrail-dev/codetrail/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sqliRule = `rules:
  - id: python-sqli
    languages: [python]
    metadata:
      cwe: CWE-89
      owasp: "A03:2021 - Injection"
`

const sqliRuleUpdated = `rules:
  - id: python-sqli-new-title
    languages: [python, go]
    metadata:
      cwe: CWE-79
      owasp: "A03:2021 - Injection"
`

func TestRuleSyncIdempotence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	rulesDir := t.TempDir()
	t.Setenv("RULES_DIR", rulesDir)

	repoDir := filepath.Join(rulesDir, "community", "python", "django")
	require.NoError(t, os.MkdirAll(repoDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(repoDir, "sqli.yaml"), []byte(sqliRule), 0644))

	ruleRepositoryRepository := repositories.NewRuleRepositoryRepository(db)
	repo := models.RuleRepository{Name: "community", URI: "https://example.com/rules.git"}
	require.NoError(t, ruleRepositoryRepository.Create(nil, &repo))

	ruleRepo := repositories.NewRuleRepo(db)
	synchronizer := rules.NewSynchronizer(ruleRepo, repositories.NewSupportedLanguageRepository(db))

	require.NoError(t, synchronizer.Sync(context.Background(), repo))

	created, err := ruleRepo.ReadByFilePath("community/python/django/sqli.yaml")
	require.NoError(t, err)
	assert.Equal(t, "python-sqli", created.Title)
	assert.Equal(t, "python.django", created.Category)
	assert.Equal(t, models.SeverityCritical, created.Severity)
	require.Len(t, created.Languages, 1)
	assert.Equal(t, "Python", created.Languages[0].Name)

	// a second run over the unchanged checkout must not duplicate anything
	require.NoError(t, synchronizer.Sync(context.Background(), repo))

	all, err := ruleRepo.ListByRepositoryID(repo.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	require.Len(t, all[0].Languages, 1)

	// an upstream edit keeps the identifier but refreshes the classification
	require.NoError(t, os.WriteFile(filepath.Join(repoDir, "sqli.yaml"), []byte(sqliRuleUpdated), 0644))
	require.NoError(t, synchronizer.Sync(context.Background(), repo))

	updated, err := ruleRepo.ReadByFilePath("community/python/django/sqli.yaml")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "python-sqli", updated.Title)
	assert.Equal(t, models.SeverityMedium, updated.Severity)
	assert.Len(t, updated.Languages, 2)
}

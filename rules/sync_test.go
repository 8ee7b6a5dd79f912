// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rules

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/mocks"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var languagePython = models.SupportedLanguage{
	Model: models.Model{ID: uuid.New()},
	Name:  "Python",
}

var languageGo = models.SupportedLanguage{
	Model: models.Model{ID: uuid.New()},
	Name:  "Go",
}

func setupCheckout(t *testing.T, repoName string) string {
	t.Helper()
	rulesDir := t.TempDir()
	t.Setenv("RULES_DIR", rulesDir)
	return filepath.Join(rulesDir, repoName)
}

func passThroughTransaction(ruleRepo *mocks.RuleRepo) {
	ruleRepo.On("Transaction", mock.Anything).Return(func(fn func(tx shared.DB) error) error {
		return fn(nil)
	})
}

func TestSynchronizerSync(t *testing.T) {
	repo := models.RuleRepository{
		Model: models.Model{ID: uuid.New()},
		Name:  "community",
		URI:   "https://example.com/community-rules.git",
	}

	t.Run("creates a new rule with derived fields", func(t *testing.T) {
		checkout := setupCheckout(t, repo.Name)
		writeFile(t, filepath.Join(checkout, "python", "django", "sqli.yaml"), `rules:
  - id: django-sql-injection
    languages: [Python]
    metadata:
      cwe: "CWE-89: SQL Injection"
      owasp:
        - "A03:2021 - Injection"
        - "A1:2017 - Injection"
`)

		ruleRepo := mocks.NewRuleRepo(t)
		languageRepo := mocks.NewSupportedLanguageRepository(t)
		languageRepo.On("All").Return([]models.SupportedLanguage{languagePython, languageGo}, nil)

		passThroughTransaction(ruleRepo)
		ruleRepo.On("ReadByFilePath", "community/python/django/sqli.yaml").Return(models.Rule{}, gorm.ErrRecordNotFound)
		ruleRepo.On("Create", mock.Anything, mock.MatchedBy(func(rule *models.Rule) bool {
			return rule.Title == "django-sql-injection" &&
				rule.FilePath == "community/python/django/sqli.yaml" &&
				rule.RepositoryID == repo.ID &&
				rule.Category == "python.django" &&
				rule.CWE != nil && *rule.CWE == "CWE-89: SQL Injection" &&
				rule.OWASP != nil && *rule.OWASP == "A03:2021 - Injection" &&
				rule.Severity == models.SeverityCritical
		})).Return(nil)
		ruleRepo.On("AppendLanguages", mock.Anything, mock.Anything, []models.SupportedLanguage{languagePython}).Return(nil)

		synchronizer := NewSynchronizer(ruleRepo, languageRepo)
		require.NoError(t, synchronizer.Sync(context.Background(), repo))
	})

	t.Run("updates an existing rule in place", func(t *testing.T) {
		checkout := setupCheckout(t, repo.Name)
		writeFile(t, filepath.Join(checkout, "go", "xss.yml"), `rules:
  - id: go-reflected-xss
    metadata:
      cwe: "CWE-79: Cross-site Scripting"
`)

		existingID := uuid.New()
		existing := models.Rule{
			Model:        models.Model{ID: existingID},
			Title:        "go-reflected-xss",
			FilePath:     "community/go/xss.yml",
			RepositoryID: repo.ID,
			Category:     "go",
		}

		ruleRepo := mocks.NewRuleRepo(t)
		languageRepo := mocks.NewSupportedLanguageRepository(t)
		languageRepo.On("All").Return([]models.SupportedLanguage{languagePython, languageGo}, nil)

		passThroughTransaction(ruleRepo)
		ruleRepo.On("ReadByFilePath", "community/go/xss.yml").Return(existing, nil)
		ruleRepo.On("Save", mock.Anything, mock.MatchedBy(func(rule *models.Rule) bool {
			// the id must survive so rule packs keep working
			return rule.ID == existingID && rule.Severity == models.SeverityMedium
		})).Return(nil)

		synchronizer := NewSynchronizer(ruleRepo, languageRepo)
		require.NoError(t, synchronizer.Sync(context.Background(), repo))
	})

	t.Run("does not re-append already associated languages", func(t *testing.T) {
		checkout := setupCheckout(t, repo.Name)
		writeFile(t, filepath.Join(checkout, "python", "eval.yaml"), `rules:
  - id: python-eval
    languages: [python, go]
`)

		existing := models.Rule{
			Model:        models.Model{ID: uuid.New()},
			Title:        "python-eval",
			FilePath:     "community/python/eval.yaml",
			RepositoryID: repo.ID,
			Languages:    []models.SupportedLanguage{languagePython},
		}

		ruleRepo := mocks.NewRuleRepo(t)
		languageRepo := mocks.NewSupportedLanguageRepository(t)
		languageRepo.On("All").Return([]models.SupportedLanguage{languagePython, languageGo}, nil)

		passThroughTransaction(ruleRepo)
		ruleRepo.On("ReadByFilePath", "community/python/eval.yaml").Return(existing, nil)
		ruleRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		ruleRepo.On("AppendLanguages", mock.Anything, mock.Anything, []models.SupportedLanguage{languageGo}).Return(nil)

		synchronizer := NewSynchronizer(ruleRepo, languageRepo)
		require.NoError(t, synchronizer.Sync(context.Background(), repo))
	})

	t.Run("a rule without cwe is classified low", func(t *testing.T) {
		checkout := setupCheckout(t, repo.Name)
		writeFile(t, filepath.Join(checkout, "misc", "todo.yaml"), `rules:
  - id: leftover-todo
`)

		ruleRepo := mocks.NewRuleRepo(t)
		languageRepo := mocks.NewSupportedLanguageRepository(t)
		languageRepo.On("All").Return([]models.SupportedLanguage{languagePython}, nil)

		passThroughTransaction(ruleRepo)
		ruleRepo.On("ReadByFilePath", "community/misc/todo.yaml").Return(models.Rule{}, gorm.ErrRecordNotFound)
		ruleRepo.On("Create", mock.Anything, mock.MatchedBy(func(rule *models.Rule) bool {
			return rule.Severity == models.SeverityLow
		})).Return(nil)

		synchronizer := NewSynchronizer(ruleRepo, languageRepo)
		require.NoError(t, synchronizer.Sync(context.Background(), repo))
	})

	t.Run("a failing rule lookup aborts instead of creating a duplicate", func(t *testing.T) {
		checkout := setupCheckout(t, repo.Name)
		writeFile(t, filepath.Join(checkout, "misc", "todo.yaml"), `rules:
  - id: leftover-todo
`)

		ruleRepo := mocks.NewRuleRepo(t)
		languageRepo := mocks.NewSupportedLanguageRepository(t)
		languageRepo.On("All").Return([]models.SupportedLanguage{languagePython}, nil)

		passThroughTransaction(ruleRepo)
		ruleRepo.On("ReadByFilePath", "community/misc/todo.yaml").Return(models.Rule{}, errors.New("connection refused"))

		synchronizer := NewSynchronizer(ruleRepo, languageRepo)
		assert.Error(t, synchronizer.Sync(context.Background(), repo))
	})

	t.Run("a file that cannot be parsed aborts the run", func(t *testing.T) {
		checkout := setupCheckout(t, repo.Name)
		writeFile(t, filepath.Join(checkout, "broken.yaml"), "rules:\n  - id: [unclosed\n")

		ruleRepo := mocks.NewRuleRepo(t)
		languageRepo := mocks.NewSupportedLanguageRepository(t)
		languageRepo.On("All").Return([]models.SupportedLanguage{languagePython}, nil)

		synchronizer := NewSynchronizer(ruleRepo, languageRepo)
		assert.Error(t, synchronizer.Sync(context.Background(), repo))
	})

	t.Run("files without rules are skipped", func(t *testing.T) {
		checkout := setupCheckout(t, repo.Name)
		writeFile(t, filepath.Join(checkout, "empty.yaml"), "rules: []")

		ruleRepo := mocks.NewRuleRepo(t)
		languageRepo := mocks.NewSupportedLanguageRepository(t)
		languageRepo.On("All").Return([]models.SupportedLanguage{languagePython}, nil)

		synchronizer := NewSynchronizer(ruleRepo, languageRepo)
		require.NoError(t, synchronizer.Sync(context.Background(), repo))
	})
}

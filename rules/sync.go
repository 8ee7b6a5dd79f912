// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rules

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/monitoring"
	"github.com/codetrail-dev/codetrail/risk"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/codetrail-dev/codetrail/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Synchronizer imports the rule definition files of a repository checkout
// into the rule store. Rules are keyed by their file path: a re-run updates
// existing rows in place instead of creating duplicates, so rule ids stay
// stable across synchronizations.
type Synchronizer struct {
	ruleRepo     shared.RuleRepo
	languageRepo shared.SupportedLanguageRepository

	// serializes runs per repository id
	locks sync.Map
}

func NewSynchronizer(ruleRepo shared.RuleRepo, languageRepo shared.SupportedLanguageRepository) *Synchronizer {
	return &Synchronizer{
		ruleRepo:     ruleRepo,
		languageRepo: languageRepo,
	}
}

func (s *Synchronizer) lockFor(key string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Sync walks the checkout of repo under the rules directory and upserts
// every rule it finds. Each file is committed in its own transaction; a
// file that cannot be parsed aborts the run, already committed files stay
// imported.
func (s *Synchronizer) Sync(ctx context.Context, repo models.RuleRepository) error {
	lock := s.lockFor(repo.ID.String())
	lock.Lock()
	defer lock.Unlock()

	begin := time.Now()
	monitoring.RuleSyncAmount.Inc()

	checkout := filepath.Join(shared.RulesDir(), repo.Name)
	files, err := listRuleFiles(checkout)
	if err != nil {
		monitoring.RuleSyncFailures.Inc()
		return errors.Wrap(err, "could not list rule files")
	}

	supportedLanguages, err := s.languageRepo.All()
	if err != nil {
		monitoring.RuleSyncFailures.Inc()
		return errors.Wrap(err, "could not load supported languages")
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			monitoring.RuleSyncFailures.Inc()
			return err
		}
		if err := s.syncFile(repo, checkout, file, supportedLanguages); err != nil {
			monitoring.RuleSyncFailures.Inc()
			return err
		}
	}

	monitoring.RuleSyncDuration.Observe(time.Since(begin).Seconds())
	slog.Info("rule repository synchronized", "repository", repo.Name, "files", len(files), "duration", time.Since(begin))
	return nil
}

func (s *Synchronizer) syncFile(repo models.RuleRepository, checkout, file string, supportedLanguages []models.SupportedLanguage) error {
	parsed, err := parseRuleFile(file)
	if err != nil {
		return err
	}
	if len(parsed.Rules) == 0 {
		return nil
	}

	rel, err := filepath.Rel(checkout, file)
	if err != nil {
		return errors.Wrap(err, "could not relativize rule file path")
	}
	// repository name prefixed so file paths stay unique across repositories
	rulePath := filepath.ToSlash(filepath.Join(repo.Name, rel))
	_, category := splitRulePath(rulePath)

	return s.ruleRepo.Transaction(func(tx shared.DB) error {
		rule, err := s.ruleRepo.ReadByFilePath(rulePath)
		created := false
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(err, "could not look up rule %s", rulePath)
			}
			// keep the id of an existing rule, create otherwise
			rule = models.Rule{
				Title:        parsed.Rules[0].ID,
				FilePath:     rulePath,
				RepositoryID: repo.ID,
				Category:     category,
			}
			created = true
		}

		var newLanguages []models.SupportedLanguage
		for _, entry := range parsed.Rules {
			for _, name := range entry.Languages {
				if language, ok := matchLanguage(supportedLanguages, name); ok && !hasLanguage(rule.Languages, newLanguages, language) {
					newLanguages = append(newLanguages, language)
				}
			}
			if entry.Metadata.CWE != nil {
				rule.CWE = entry.Metadata.CWE
			}
			if owasp := entry.Metadata.OWASP.First(); owasp != nil {
				rule.OWASP = owasp
			}
		}
		rule.Severity = risk.SeverityFromCWE(rule.CWE)

		if created {
			if err := s.ruleRepo.Create(tx, &rule); err != nil {
				return err
			}
		} else {
			if err := s.ruleRepo.Save(tx, &rule); err != nil {
				return err
			}
		}
		if len(newLanguages) > 0 {
			if err := s.ruleRepo.AppendLanguages(tx, &rule, newLanguages); err != nil {
				return err
			}
		}

		monitoring.RulesImported.Inc()
		slog.Debug("rule imported", "rule", repo.Name+"/"+rule.Category+"/"+rule.Title)
		return nil
	})
}

func matchLanguage(supported []models.SupportedLanguage, name string) (models.SupportedLanguage, bool) {
	return utils.Find(supported, func(language models.SupportedLanguage) bool {
		return strings.EqualFold(language.Name, name)
	})
}

func hasLanguage(existing, pending []models.SupportedLanguage, candidate models.SupportedLanguage) bool {
	for _, language := range existing {
		if language.ID == candidate.ID {
			return true
		}
	}
	for _, language := range pending {
		if language.ID == candidate.ID {
			return true
		}
	}
	return false
}

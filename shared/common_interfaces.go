// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package shared

import (
	"context"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/linecount"
	"github.com/google/uuid"
)

type ProjectRepository interface {
	Read(id uuid.UUID) (models.Project, error)
	ReadBySlug(slug string) (models.Project, error)
	// ReadWithResults preloads the analysis (with findings) and the lines
	// count.
	ReadWithResults(id uuid.UUID) (models.Project, error)
	List(ids []uuid.UUID) ([]models.Project, error)
	All() ([]models.Project, error)
	Create(tx DB, project *models.Project) error
	Save(tx DB, project *models.Project) error
	Delete(tx DB, id uuid.UUID) error
	Transaction(fn func(tx DB) error) error
}

type AnalysisRepository interface {
	ReadByProjectID(projectID uuid.UUID) (models.Analysis, error)
	Save(tx DB, analysis *models.Analysis) error
	DeleteByProjectID(tx DB, projectID uuid.UUID) error
	Transaction(fn func(tx DB) error) error
}

type LinesCountRepository interface {
	ReadByProjectID(projectID uuid.UUID) (models.ProjectLinesCount, error)
	// ReplaceForProject drops a previous lines count of the project, if any,
	// and persists the given one in a single transaction.
	ReplaceForProject(tx DB, projectID uuid.UUID, linesCount *models.ProjectLinesCount) error
}

// RuleRepo is the store for detection rules. The lookup by file path is the
// identity guarantee rule synchronization is built on.
type RuleRepo interface {
	ReadByFilePath(filePath string) (models.Rule, error)
	ListByRepositoryID(repositoryID uuid.UUID) ([]models.Rule, error)
	All() ([]models.Rule, error)
	Create(tx DB, rule *models.Rule) error
	Save(tx DB, rule *models.Rule) error
	// AppendLanguages adds the given language associations without removing
	// existing ones.
	AppendLanguages(tx DB, rule *models.Rule, languages []models.SupportedLanguage) error
	Transaction(fn func(tx DB) error) error
}

type RuleRepositoryRepository interface {
	Read(id uuid.UUID) (models.RuleRepository, error)
	ReadByName(name string) (models.RuleRepository, error)
	All() ([]models.RuleRepository, error)
	Create(tx DB, repo *models.RuleRepository) error
	Save(tx DB, repo *models.RuleRepository) error
	Delete(tx DB, id uuid.UUID) error
}

type SupportedLanguageRepository interface {
	All() ([]models.SupportedLanguage, error)
}

type TeamRepository interface {
	TeamsOfUser(username string) ([]models.Team, error)
	TeamsOfProject(projectID uuid.UUID) ([]models.Team, error)
	All() ([]models.Team, error)
	Create(tx DB, team *models.Team) error
}

type UserRepository interface {
	ReadByUsername(username string) (models.User, error)
	Save(tx DB, user *models.User) error
}

type AccessResolver interface {
	AccessibleProjectIDs(user models.User) ([]uuid.UUID, error)
	HasAccess(user models.User, project models.Project) (bool, error)
}

// LineCounter wraps the external line-counting binary.
type LineCounter interface {
	Count(ctx context.Context, dir string) ([]linecount.Language, error)
}

// RepositoryCloner wraps the git operations on rule repository checkouts.
type RepositoryCloner interface {
	Clone(ctx context.Context, uri, path string) error
	Pull(ctx context.Context, path string) error
}

type ProjectService interface {
	CreateFromArchive(ctx context.Context, name, description, archivePath string) (models.Project, error)
	Delete(projectID uuid.UUID) error
	RiskLevel(projectID uuid.UUID) (int, error)
}

type ScanService interface {
	// ScanProject runs the full pipeline synchronously: line counting and
	// scanner ingestion, persisted atomically.
	ScanProject(ctx context.Context, project models.Project) error
	// TriggerScan schedules ScanProject as a background job and returns its
	// job id.
	TriggerScan(project models.Project) string
}

type RuleService interface {
	// Sync walks the repository checkout and upserts all rules, preserving
	// rule identifiers.
	Sync(ctx context.Context, repo models.RuleRepository) error
	CloneRepository(ctx context.Context, repo models.RuleRepository) error
	PullRepository(ctx context.Context, repo models.RuleRepository) error
}

type FireAndForgetSynchronizer interface {
	FireAndForget(fn func())
}

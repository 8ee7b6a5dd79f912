// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/codetrail-dev/codetrail/archive"
	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/risk"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

const archiveFileName = "source.zip"

type projectService struct {
	projectRepository shared.ProjectRepository
	scanService       shared.ScanService
}

func NewProjectService(projectRepository shared.ProjectRepository, scanService shared.ScanService) *projectService {
	return &projectService{
		projectRepository: projectRepository,
		scanService:       scanService,
	}
}

// CreateFromArchive validates the uploaded zip, stores it under the project
// workspace, extracts the sources and schedules the first scan. The
// database row and the on-disk workspace are created together: a failing
// disk operation rolls the row back.
func (s *projectService) CreateFromArchive(ctx context.Context, name, description, archivePath string) (models.Project, error) {
	if err := archive.ValidateZip(archivePath); err != nil {
		return models.Project{}, err
	}
	digest, err := archive.Sha256Sum(archivePath)
	if err != nil {
		return models.Project{}, errors.Wrap(err, "could not digest archive")
	}

	project := models.Project{
		Name:          name,
		Slug:          slug.Make(name),
		Description:   description,
		ArchiveDigest: digest,
	}

	err = s.projectRepository.Transaction(func(tx shared.DB) error {
		if err := s.projectRepository.Create(tx, &project); err != nil {
			return errors.Wrap(err, "could not create project")
		}

		projectDir := filepath.Join(shared.ProjectsDir(), project.ID.String())
		if err := os.MkdirAll(projectDir, 0o755); err != nil {
			return errors.Wrap(err, "could not create project workspace")
		}
		storedArchive := filepath.Join(projectDir, archiveFileName)
		if err := copyFile(archivePath, storedArchive); err != nil {
			return errors.Wrap(err, "could not store archive")
		}
		if err := archive.Extract(storedArchive, filepath.Join(projectDir, sourceDirName)); err != nil {
			return errors.Wrap(err, "could not extract archive")
		}
		return nil
	})
	if err != nil {
		return models.Project{}, err
	}

	jobID := s.scanService.TriggerScan(project)
	slog.Info("project created", "project", project.Slug, "jobId", jobID)
	return project, nil
}

// Delete removes the project row (analysis, lines count and findings
// cascade) together with its on-disk workspace.
func (s *projectService) Delete(projectID uuid.UUID) error {
	return s.projectRepository.Transaction(func(tx shared.DB) error {
		if err := s.projectRepository.Delete(tx, projectID); err != nil {
			return errors.Wrap(err, "could not delete project")
		}
		projectDir := filepath.Join(shared.ProjectsDir(), projectID.String())
		if err := os.RemoveAll(projectDir); err != nil {
			return errors.Wrap(err, "could not remove project workspace")
		}
		return nil
	})
}

func (s *projectService) RiskLevel(projectID uuid.UUID) (int, error) {
	project, err := s.projectRepository.ReadWithResults(projectID)
	if err != nil {
		return 0, errors.Wrap(err, "could not load project results")
	}
	return risk.Level(project.Analysis, project.LinesCount), nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

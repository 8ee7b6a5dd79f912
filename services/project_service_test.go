// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/mocks"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.zip")
	out, err := os.Create(path)
	require.NoError(t, err)

	writer := zip.NewWriter(out)
	for name, content := range files {
		entry, err := writer.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	require.NoError(t, out.Close())
	return path
}

func passThroughProjectTransaction(projectRepository *mocks.ProjectRepository) {
	projectRepository.On("Transaction", mock.Anything).Return(func(fn func(tx shared.DB) error) error {
		return fn(nil)
	})
}

func TestCreateFromArchive(t *testing.T) {
	t.Run("creates the project with workspace and schedules a scan", func(t *testing.T) {
		projectsDir := t.TempDir()
		t.Setenv("PROJECTS_DIR", projectsDir)
		archivePath := writeZip(t, map[string]string{"src/main.py": "print('hi')\n"})

		projectID := uuid.New()
		projectRepository := mocks.NewProjectRepository(t)
		passThroughProjectTransaction(projectRepository)
		projectRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Project).ID = projectID
		}).Return(nil)

		scanService := mocks.NewScanService(t)
		scanService.On("TriggerScan", mock.MatchedBy(func(project models.Project) bool {
			return project.ID == projectID
		})).Return("job-1")

		service := NewProjectService(projectRepository, scanService)
		project, err := service.CreateFromArchive(context.Background(), "Shop Backend", "the shop", archivePath)

		require.NoError(t, err)
		assert.Equal(t, "Shop Backend", project.Name)
		assert.Equal(t, "shop-backend", project.Slug)
		assert.Len(t, project.ArchiveDigest, 64)

		projectDir := filepath.Join(projectsDir, projectID.String())
		assert.FileExists(t, filepath.Join(projectDir, archiveFileName))
		assert.FileExists(t, filepath.Join(projectDir, sourceDirName, "src", "main.py"))
	})

	t.Run("rejects a non-zip upload before touching the database", func(t *testing.T) {
		t.Setenv("PROJECTS_DIR", t.TempDir())
		notAZip := filepath.Join(t.TempDir(), "bogus.zip")
		require.NoError(t, os.WriteFile(notAZip, []byte("plain text"), 0o644))

		projectRepository := mocks.NewProjectRepository(t)
		scanService := mocks.NewScanService(t)

		service := NewProjectService(projectRepository, scanService)
		_, err := service.CreateFromArchive(context.Background(), "Bogus", "", notAZip)

		assert.Error(t, err)
	})
}

func TestDeleteProject(t *testing.T) {
	projectsDir := t.TempDir()
	t.Setenv("PROJECTS_DIR", projectsDir)

	projectID := uuid.New()
	projectDir := filepath.Join(projectsDir, projectID.String())
	require.NoError(t, os.MkdirAll(filepath.Join(projectDir, sourceDirName), 0o755))

	projectRepository := mocks.NewProjectRepository(t)
	passThroughProjectTransaction(projectRepository)
	projectRepository.On("Delete", mock.Anything, projectID).Return(nil)

	service := NewProjectService(projectRepository, mocks.NewScanService(t))
	require.NoError(t, service.Delete(projectID))

	assert.NoDirExists(t, projectDir)
}

func TestProjectRiskLevel(t *testing.T) {
	projectID := uuid.New()
	project := models.Project{
		Model: models.Model{ID: projectID},
		Analysis: &models.Analysis{
			Vulnerabilities: []models.Vulnerability{{Severity: models.SeverityCritical}},
		},
		LinesCount: &models.ProjectLinesCount{TotalCodeCount: 1000},
	}

	projectRepository := mocks.NewProjectRepository(t)
	projectRepository.On("ReadWithResults", projectID).Return(project, nil)

	service := NewProjectService(projectRepository, mocks.NewScanService(t))
	level, err := service.RiskLevel(projectID)

	require.NoError(t, err)
	assert.Equal(t, 75, level)
}

// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/linecount"
	"github.com/codetrail-dev/codetrail/monitoring"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	sourceDirName  = "source"
	reportsDirName = "reports"
)

type scanService struct {
	analysisRepository   shared.AnalysisRepository
	linesCountRepository shared.LinesCountRepository
	lineCounter          shared.LineCounter
	synchronizer         shared.FireAndForgetSynchronizer
}

func NewScanService(analysisRepository shared.AnalysisRepository, linesCountRepository shared.LinesCountRepository, lineCounter shared.LineCounter, synchronizer shared.FireAndForgetSynchronizer) *scanService {
	return &scanService{
		analysisRepository:   analysisRepository,
		linesCountRepository: linesCountRepository,
		lineCounter:          lineCounter,
		synchronizer:         synchronizer,
	}
}

func (s *scanService) ScanProject(ctx context.Context, project models.Project) error {
	return s.scan(ctx, project, uuid.NewString())
}

// TriggerScan schedules the scan pipeline on a background goroutine and
// returns the job id the resulting analysis will carry.
func (s *scanService) TriggerScan(project models.Project) string {
	jobID := uuid.NewString()
	s.synchronizer.FireAndForget(func() {
		if err := s.scan(context.Background(), project, jobID); err != nil {
			monitoring.Alert("scan job failed", err)
		}
	})
	return jobID
}

// scan runs the full pipeline: line counting and scanner report ingestion
// fan out, the results are persisted in a single transaction so a project
// never exposes a half-updated analysis.
func (s *scanService) scan(ctx context.Context, project models.Project, jobID string) error {
	startedAt := time.Now()
	monitoring.ScanAmount.Inc()

	projectDir := filepath.Join(shared.ProjectsDir(), project.ID.String())

	var linesCount models.ProjectLinesCount
	var vulnerabilities []models.Vulnerability
	var dependencies []models.VulnerableDependency

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		countStart := time.Now()
		languages, err := s.lineCounter.Count(groupCtx, filepath.Join(projectDir, sourceDirName))
		if err != nil {
			return errors.Wrap(err, "could not count lines")
		}
		monitoring.LineCountDuration.Observe(time.Since(countStart).Seconds())
		linesCount = linecount.Aggregate(languages)
		return nil
	})
	group.Go(func() error {
		var err error
		vulnerabilities, err = readVulnerabilities(filepath.Join(projectDir, reportsDirName))
		return err
	})
	group.Go(func() error {
		var err error
		dependencies, err = readVulnerableDependencies(filepath.Join(projectDir, reportsDirName))
		return err
	})
	if err := group.Wait(); err != nil {
		monitoring.ScanFailures.Inc()
		return err
	}

	finishedAt := time.Now()
	analysis := models.Analysis{
		ProjectID:              project.ID,
		JobID:                  jobID,
		StartedAt:              &startedAt,
		FinishedAt:             &finishedAt,
		Vulnerabilities:        vulnerabilities,
		VulnerableDependencies: dependencies,
	}

	err := s.analysisRepository.Transaction(func(tx shared.DB) error {
		if err := s.analysisRepository.DeleteByProjectID(tx, project.ID); err != nil {
			return err
		}
		if err := s.analysisRepository.Save(tx, &analysis); err != nil {
			return err
		}
		return s.linesCountRepository.ReplaceForProject(tx, project.ID, &linesCount)
	})
	if err != nil {
		monitoring.ScanFailures.Inc()
		return errors.Wrap(err, "could not persist scan results")
	}

	monitoring.ScanDuration.Observe(time.Since(startedAt).Seconds())
	slog.Info("project scanned", "project", project.Slug, "jobId", jobID,
		"vulnerabilities", len(vulnerabilities), "vulnerableDependencies", len(dependencies),
		"duration", time.Since(startedAt))
	return nil
}

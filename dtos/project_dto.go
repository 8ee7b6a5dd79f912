// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/google/uuid"
)

type ProjectCreateRequest struct {
	Name        string `form:"name" validate:"required,max=255"`
	Description string `form:"description"`
}

type ProjectDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	ArchiveDigest string    `json:"archiveDigest"`
	CreatedAt     time.Time `json:"createdAt"`
}

func ProjectToDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:            project.ID,
		Name:          project.Name,
		Slug:          project.Slug,
		Description:   project.Description,
		ArchiveDigest: project.ArchiveDigest,
		CreatedAt:     project.CreatedAt,
	}
}

type ScanTriggeredResponse struct {
	ProjectID uuid.UUID `json:"projectId"`
	JobID     string    `json:"jobId"`
}

type RiskLevelDTO struct {
	ProjectID uuid.UUID `json:"projectId"`
	RiskLevel int       `json:"riskLevel"`
}

type LanguageLinesCountDTO struct {
	Language        string `json:"language"`
	FileCount       int    `json:"fileCount"`
	LineCount       int    `json:"lineCount"`
	BlankCount      int    `json:"blankCount"`
	CommentCount    int    `json:"commentCount"`
	CodeCount       int    `json:"codeCount"`
	ComplexityCount int    `json:"complexityCount"`
}

func LanguageLinesCountToDTO(count models.LanguageLinesCount) LanguageLinesCountDTO {
	return LanguageLinesCountDTO{
		Language:        count.Language,
		FileCount:       count.FileCount,
		LineCount:       count.LineCount,
		BlankCount:      count.BlankCount,
		CommentCount:    count.CommentCount,
		CodeCount:       count.CodeCount,
		ComplexityCount: count.ComplexityCount,
	}
}

type LinesCountDTO struct {
	TotalFileCount       int                     `json:"totalFileCount"`
	TotalLineCount       int                     `json:"totalLineCount"`
	TotalBlankCount      int                     `json:"totalBlankCount"`
	TotalCommentCount    int                     `json:"totalCommentCount"`
	TotalCodeCount       int                     `json:"totalCodeCount"`
	TotalComplexityCount int                     `json:"totalComplexityCount"`
	Languages            []LanguageLinesCountDTO `json:"languages"`
}

func LinesCountToDTO(linesCount models.ProjectLinesCount) LinesCountDTO {
	dto := LinesCountDTO{
		TotalFileCount:       linesCount.TotalFileCount,
		TotalLineCount:       linesCount.TotalLineCount,
		TotalBlankCount:      linesCount.TotalBlankCount,
		TotalCommentCount:    linesCount.TotalCommentCount,
		TotalCodeCount:       linesCount.TotalCodeCount,
		TotalComplexityCount: linesCount.TotalComplexityCount,
	}
	for _, language := range linesCount.LanguageLinesCounts {
		dto.Languages = append(dto.Languages, LanguageLinesCountToDTO(language))
	}
	return dto
}

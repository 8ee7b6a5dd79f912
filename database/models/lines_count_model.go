// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import "github.com/google/uuid"

// ProjectLinesCount aggregates the line-counting tool output for a project.
// Invariant: every total equals the sum of the matching counter over all
// owned LanguageLinesCount rows.
type ProjectLinesCount struct {
	Model
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;uniqueIndex;not null"`

	TotalFileCount       int `json:"totalFileCount"`
	TotalLineCount       int `json:"totalLineCount"`
	TotalBlankCount      int `json:"totalBlankCount"`
	TotalCommentCount    int `json:"totalCommentCount"`
	TotalCodeCount       int `json:"totalCodeCount"`
	TotalComplexityCount int `json:"totalComplexityCount"`

	// ordered as emitted by the tool
	LanguageLinesCounts []LanguageLinesCount `json:"languageLinesCounts" gorm:"constraint:OnDelete:CASCADE;"`
}

func (p ProjectLinesCount) TableName() string {
	return "project_lines_counts"
}

type LanguageLinesCount struct {
	Model
	ProjectLinesCountID uuid.UUID `json:"projectLinesCountId" gorm:"type:uuid;not null;index"`

	// position in the tool output, keeps insertion order stable across reads
	SortIndex int `json:"sortIndex" gorm:"not null;default:0"`

	Language        string `json:"language" gorm:"type:varchar(255);not null"`
	FileCount       int    `json:"fileCount"`
	LineCount       int    `json:"lineCount"`
	BlankCount      int    `json:"blankCount"`
	CommentCount    int    `json:"commentCount"`
	CodeCount       int    `json:"codeCount"`
	ComplexityCount int    `json:"complexityCount"`
}

func (l LanguageLinesCount) TableName() string {
	return "language_lines_counts"
}

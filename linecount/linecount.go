// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package linecount turns the output of the external line-counting tool
// into the per-project and per-language count structures.
package linecount

import (
	"sort"
	"strings"

	"github.com/codetrail-dev/codetrail/database/models"
)

// Language is one entry of the line counter's JSON output.
type Language struct {
	Name       string `json:"Name"`
	Count      int    `json:"Count"`
	Lines      int    `json:"Lines"`
	Blank      int    `json:"Blank"`
	Comment    int    `json:"Comment"`
	Code       int    `json:"Code"`
	Complexity int    `json:"Complexity"`
}

// Aggregate builds a ProjectLinesCount from the tool output. The project
// totals are the sums over all languages and the per-language entries keep
// the tool's output order.
func Aggregate(languages []Language) models.ProjectLinesCount {
	linesCount := models.ProjectLinesCount{}
	for i, language := range languages {
		linesCount.LanguageLinesCounts = append(linesCount.LanguageLinesCounts, models.LanguageLinesCount{
			SortIndex:       i,
			Language:        language.Name,
			FileCount:       language.Count,
			LineCount:       language.Lines,
			BlankCount:      language.Blank,
			CommentCount:    language.Comment,
			CodeCount:       language.Code,
			ComplexityCount: language.Complexity,
		})

		linesCount.TotalFileCount += language.Count
		linesCount.TotalLineCount += language.Lines
		linesCount.TotalBlankCount += language.Blank
		linesCount.TotalCommentCount += language.Comment
		linesCount.TotalCodeCount += language.Code
		linesCount.TotalComplexityCount += language.Complexity
	}
	return linesCount
}

// TopLanguages returns the n languages with the greatest code count,
// descending. Ties keep the original order.
func TopLanguages(linesCount models.ProjectLinesCount, n int) []models.LanguageLinesCount {
	sorted := make([]models.LanguageLinesCount, len(linesCount.LanguageLinesCounts))
	copy(sorted, linesCount.LanguageLinesCounts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CodeCount > sorted[j].CodeCount
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	if n < 0 {
		n = 0
	}
	return sorted[:n]
}

// TopSupportedLanguages maps the detected languages, by code count
// descending, onto the known supported languages. Matching is
// case-insensitive on the name; a detected language without a match
// contributes nothing, one that matches several supported languages
// contributes each of them.
func TopSupportedLanguages(linesCount models.ProjectLinesCount, supported []models.SupportedLanguage) []models.SupportedLanguage {
	byCode := TopLanguages(linesCount, len(linesCount.LanguageLinesCounts))

	var result []models.SupportedLanguage
	for _, language := range byCode {
		for _, supportedLanguage := range supported {
			if strings.EqualFold(supportedLanguage.Name, language.Language) {
				result = append(result, supportedLanguage)
			}
		}
	}
	return result
}

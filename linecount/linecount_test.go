// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package linecount

import (
	"context"
	"testing"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sccOutput = []Language{
	{Name: "Go", Count: 20, Lines: 4000, Blank: 300, Comment: 700, Code: 3000, Complexity: 120},
	{Name: "Java", Count: 5, Lines: 1500, Blank: 100, Comment: 400, Code: 1000, Complexity: 40},
	{Name: "Makefile", Count: 1, Lines: 50, Blank: 10, Comment: 5, Code: 35, Complexity: 0},
	{Name: "Python", Count: 7, Lines: 1300, Blank: 120, Comment: 180, Code: 1000, Complexity: 33},
}

func TestAggregate(t *testing.T) {
	linesCount := Aggregate(sccOutput)

	t.Run("totals equal the sums of the per-language counters", func(t *testing.T) {
		var files, lines, blank, comment, code, complexity int
		for _, l := range linesCount.LanguageLinesCounts {
			files += l.FileCount
			lines += l.LineCount
			blank += l.BlankCount
			comment += l.CommentCount
			code += l.CodeCount
			complexity += l.ComplexityCount
		}
		assert.Equal(t, files, linesCount.TotalFileCount)
		assert.Equal(t, lines, linesCount.TotalLineCount)
		assert.Equal(t, blank, linesCount.TotalBlankCount)
		assert.Equal(t, comment, linesCount.TotalCommentCount)
		assert.Equal(t, code, linesCount.TotalCodeCount)
		assert.Equal(t, complexity, linesCount.TotalComplexityCount)
	})

	t.Run("keeps the tool output order", func(t *testing.T) {
		require.Len(t, linesCount.LanguageLinesCounts, 4)
		assert.Equal(t, "Go", linesCount.LanguageLinesCounts[0].Language)
		assert.Equal(t, "Java", linesCount.LanguageLinesCounts[1].Language)
		assert.Equal(t, "Makefile", linesCount.LanguageLinesCounts[2].Language)
		assert.Equal(t, "Python", linesCount.LanguageLinesCounts[3].Language)
		for i, l := range linesCount.LanguageLinesCounts {
			assert.Equal(t, i, l.SortIndex)
		}
	})

	t.Run("empty output yields zero totals and no languages", func(t *testing.T) {
		empty := Aggregate(nil)
		assert.Zero(t, empty.TotalCodeCount)
		assert.Empty(t, empty.LanguageLinesCounts)
	})
}

func TestTopLanguages(t *testing.T) {
	linesCount := Aggregate(sccOutput)

	t.Run("sorts by code count descending, stable on ties", func(t *testing.T) {
		top := TopLanguages(linesCount, 3)
		require.Len(t, top, 3)
		assert.Equal(t, "Go", top[0].Language)
		// Java and Python tie on 1000 code lines, Java came first
		assert.Equal(t, "Java", top[1].Language)
		assert.Equal(t, "Python", top[2].Language)
	})

	t.Run("returns at most n entries", func(t *testing.T) {
		assert.Len(t, TopLanguages(linesCount, 2), 2)
		assert.Len(t, TopLanguages(linesCount, 100), 4)
		assert.Empty(t, TopLanguages(linesCount, 0))
	})

	t.Run("does not mutate the input order", func(t *testing.T) {
		_ = TopLanguages(linesCount, 4)
		assert.Equal(t, "Go", linesCount.LanguageLinesCounts[0].Language)
		assert.Equal(t, "Java", linesCount.LanguageLinesCounts[1].Language)
	})
}

func TestTopSupportedLanguages(t *testing.T) {
	linesCount := Aggregate(sccOutput)
	supported := []models.SupportedLanguage{
		{Name: "python"},
		{Name: "Java"},
		{Name: "Go"},
	}

	t.Run("matches case insensitively, ordered by code count", func(t *testing.T) {
		result := TopSupportedLanguages(linesCount, supported)
		require.Len(t, result, 3)
		assert.Equal(t, "Go", result[0].Name)
		assert.Equal(t, "Java", result[1].Name)
		assert.Equal(t, "python", result[2].Name)
	})

	t.Run("a language without a match contributes nothing", func(t *testing.T) {
		result := TopSupportedLanguages(linesCount, []models.SupportedLanguage{{Name: "Rust"}})
		assert.Empty(t, result)
	})

	t.Run("a name matching several supported languages contributes each", func(t *testing.T) {
		result := TopSupportedLanguages(linesCount, []models.SupportedLanguage{{Name: "go"}, {Name: "GO"}})
		assert.Len(t, result, 2)
	})
}

func TestRunner(t *testing.T) {
	t.Run("a missing binary is an error, not an empty result", func(t *testing.T) {
		t.Setenv("SCC_BINARY", "definitely-not-a-line-counter")
		runner := NewRunner()
		languages, err := runner.Count(context.Background(), t.TempDir())
		assert.Error(t, err)
		assert.Nil(t, languages)
	})
}

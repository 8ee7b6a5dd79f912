// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/mocks"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProjectContext(t *testing.T, project models.Project) (shared.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	shared.SetProject(ctx, project)
	return ctx, rec
}

func newProjectController(linesCountRepository *mocks.LinesCountRepository, supportedLanguageRepository *mocks.SupportedLanguageRepository) *ProjectController {
	return &ProjectController{
		linesCountRepository:        linesCountRepository,
		supportedLanguageRepository: supportedLanguageRepository,
	}
}

func TestProjectLanguages(t *testing.T) {
	project := models.Project{Model: models.Model{ID: uuid.New()}}

	t.Run("maps detected languages onto the supported ones by code count", func(t *testing.T) {
		linesCountRepository := mocks.NewLinesCountRepository(t)
		linesCountRepository.On("ReadByProjectID", project.ID).Return(models.ProjectLinesCount{
			LanguageLinesCounts: []models.LanguageLinesCount{
				{Language: "Markdown", CodeCount: 900},
				{Language: "Go", CodeCount: 100},
				{Language: "Python", CodeCount: 1200},
			},
		}, nil)

		supportedLanguageRepository := mocks.NewSupportedLanguageRepository(t)
		supportedLanguageRepository.On("All").Return([]models.SupportedLanguage{
			{Model: models.Model{ID: uuid.New()}, Name: "Python"},
			{Model: models.Model{ID: uuid.New()}, Name: "Go"},
		}, nil)

		controller := newProjectController(linesCountRepository, supportedLanguageRepository)

		ctx, rec := newProjectContext(t, project)
		require.NoError(t, controller.Languages(ctx))

		assert.Equal(t, 200, rec.Code)
		// markdown is not a supported language and contributes nothing
		assert.JSONEq(t, `["Python","Go"]`, rec.Body.String())
	})

	t.Run("a project without a lines count reads as missing", func(t *testing.T) {
		linesCountRepository := mocks.NewLinesCountRepository(t)
		linesCountRepository.On("ReadByProjectID", project.ID).Return(models.ProjectLinesCount{}, gorm.ErrRecordNotFound)

		controller := newProjectController(linesCountRepository, mocks.NewSupportedLanguageRepository(t))

		ctx, _ := newProjectContext(t, project)
		err := controller.Languages(ctx)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 404, httpErr.Code)
	})
}

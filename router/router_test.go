// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codetrail-dev/codetrail/controllers"
	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/middlewares"
	"github.com/codetrail-dev/codetrail/mocks"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRouters(t *testing.T) (*echo.Echo, *mocks.UserRepository, *mocks.ProjectRepository, *mocks.AccessResolver) {
	t.Helper()
	e := echo.New()

	userRepository := mocks.NewUserRepository(t)
	apiV1Router := NewAPIV1Router(e, userRepository)

	projectRepository := mocks.NewProjectRepository(t)
	accessResolver := mocks.NewAccessResolver(t)
	projectController := controllers.NewProjectController(
		projectRepository,
		mocks.NewLinesCountRepository(t),
		mocks.NewSupportedLanguageRepository(t),
		mocks.NewProjectService(t),
		mocks.NewScanService(t),
		accessResolver,
	)
	NewProjectRouter(apiV1Router, projectController, projectRepository, accessResolver)

	ruleController := controllers.NewRuleController(mocks.NewRuleRepo(t))
	ruleRepositoryController := controllers.NewRuleRepositoryController(
		mocks.NewRuleRepositoryRepository(t),
		mocks.NewRuleService(t),
		mocks.NewFireAndForgetSynchronizer(t),
	)
	NewRuleRouter(apiV1Router, ruleController, ruleRepositoryController)

	return e, userRepository, projectRepository, accessResolver
}

func TestRoutesRegistered(t *testing.T) {
	e, _, _, _ := setupRouters(t)

	registered := make(map[string]struct{})
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = struct{}{}
	}

	for _, want := range []string{
		"GET /api/v1/health/",
		"GET /api/v1/metrics/",
		"POST /api/v1/projects/",
		"GET /api/v1/projects/",
		"GET /api/v1/projects/:projectID/",
		"DELETE /api/v1/projects/:projectID/",
		"POST /api/v1/projects/:projectID/scan/",
		"GET /api/v1/projects/:projectID/risk/",
		"GET /api/v1/projects/:projectID/lines/",
		"GET /api/v1/projects/:projectID/top-languages/",
		"GET /api/v1/projects/:projectID/languages/",
		"GET /api/v1/rules/",
		"GET /api/v1/rule-repositories/",
		"POST /api/v1/rule-repositories/",
		"DELETE /api/v1/rule-repositories/:ruleRepositoryID/",
		"POST /api/v1/rule-repositories/:ruleRepositoryID/sync/",
	} {
		assert.Contains(t, registered, want)
	}
}

func TestProjectRoutesGuarded(t *testing.T) {
	e, userRepository, projectRepository, accessResolver := setupRouters(t)
	projectID := uuid.New()

	t.Run("without a session the project route rejects", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/projects/%s/", projectID), nil)
		e.ServeHTTP(rec, req)

		assert.Equal(t, 401, rec.Code)
	})

	t.Run("an inaccessible project reads as missing", func(t *testing.T) {
		userRepository.On("ReadByUsername", "dev").Return(models.User{Username: "dev", Role: models.RoleMember}, nil)
		projectRepository.On("Read", projectID).Return(models.Project{Model: models.Model{ID: projectID}}, nil)
		accessResolver.On("HasAccess", mock.Anything, mock.Anything).Return(false, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/projects/%s/", projectID), nil)
		req.Header.Set(middlewares.IdentityHeader, "dev")
		e.ServeHTTP(rec, req)

		assert.Equal(t, 404, rec.Code)
	})

	t.Run("rule repository management requires the admin role", func(t *testing.T) {
		userRepository.On("ReadByUsername", "dev").Return(models.User{Username: "dev", Role: models.RoleMember}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rule-repositories/", nil)
		req.Header.Set(middlewares.IdentityHeader, "dev")
		e.ServeHTTP(rec, req)

		assert.Equal(t, 403, rec.Code)
	})
}

// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package middlewares

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
)

func newProjectContext(t *testing.T, user models.User, projectID string) shared.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("projectID")
	ctx.SetParamValues(projectID)
	shared.SetUser(ctx, user)
	return ctx
}

func TestProjectAccessMiddleware(t *testing.T) {
	member := models.User{Username: "alice", Role: models.RoleMember}
	project := models.Project{Model: models.Model{ID: uuid.New()}, Slug: "shop-backend"}

	t.Run("rejects malformed ids", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		accessResolver := mocks.NewAccessResolver(t)

		handler := ProjectAccessMiddleware(projectRepository, accessResolver)(func(ctx shared.Context) error {
			t.Fatal("next handler must not run")
			return nil
		})

		err := handler(newProjectContext(t, member, "not-a-uuid"))

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("denied access looks like a missing project", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		projectRepository.On("Read", project.ID).Return(project, nil)
		accessResolver := mocks.NewAccessResolver(t)
		accessResolver.On("HasAccess", member, project).Return(false, nil)

		handler := ProjectAccessMiddleware(projectRepository, accessResolver)(func(ctx shared.Context) error {
			t.Fatal("next handler must not run")
			return nil
		})

		err := handler(newProjectContext(t, member, project.ID.String()))

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("grants access and puts the project on the context", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		projectRepository.On("Read", project.ID).Return(project, nil)
		accessResolver := mocks.NewAccessResolver(t)
		accessResolver.On("HasAccess", member, project).Return(true, nil)

		var seen models.Project
		handler := ProjectAccessMiddleware(projectRepository, accessResolver)(func(ctx shared.Context) error {
			seen = shared.GetProject(ctx)
			return nil
		})

		require.NoError(t, handler(newProjectContext(t, member, project.ID.String())))
		assert.Equal(t, project, seen)
	})
}

func TestAdminOnlyMiddleware(t *testing.T) {
	t.Run("rejects members", func(t *testing.T) {
		handler := AdminOnlyMiddleware()(func(ctx shared.Context) error {
			t.Fatal("next handler must not run")
			return nil
		})

		err := handler(newProjectContext(t, models.User{Username: "alice", Role: models.RoleMember}, uuid.NewString()))

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 403, httpErr.Code)
	})

	t.Run("lets admins through", func(t *testing.T) {
		called := false
		handler := AdminOnlyMiddleware()(func(ctx shared.Context) error {
			called = true
			return nil
		})

		require.NoError(t, handler(newProjectContext(t, models.User{Username: "root", Role: models.RoleAdmin}, uuid.NewString())))
		assert.True(t, called)
	})
}

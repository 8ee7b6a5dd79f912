// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package middlewares

import (
	"log/slog"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProjectAccessMiddleware resolves the projectID path parameter and denies
// the request unless the session user may see the project. Denied and
// missing projects are indistinguishable to the caller.
func ProjectAccessMiddleware(projectRepository shared.ProjectRepository, accessResolver shared.AccessResolver) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			projectID, err := uuid.Parse(ctx.Param("projectID"))
			if err != nil {
				return echo.NewHTTPError(400, "invalid project id").WithInternal(err)
			}

			project, err := projectRepository.Read(projectID)
			if err != nil {
				return echo.NewHTTPError(404, "could not find project").WithInternal(err)
			}

			user := shared.GetUser(ctx)
			allowed, err := accessResolver.HasAccess(user, project)
			if err != nil {
				return echo.NewHTTPError(500, "could not determine project access").WithInternal(err)
			}
			if !allowed {
				slog.Debug("project access denied", "username", user.Username, "project", project.Slug)
				return echo.NewHTTPError(404, "could not find project")
			}

			shared.SetProject(ctx, project)
			return next(ctx)
		}
	}
}

// AdminOnlyMiddleware guards the rule management surface.
func AdminOnlyMiddleware() shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			user := shared.GetUser(ctx)
			if user.Role != models.RoleAdmin {
				return echo.NewHTTPError(403, "admin role required")
			}
			return next(ctx)
		}
	}
}

// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/codetrail-dev/codetrail/controllers"
	"github.com/codetrail-dev/codetrail/middlewares"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/labstack/echo/v4"
)

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(
	apiV1Router APIV1Router,
	projectController *controllers.ProjectController,
	projectRepository shared.ProjectRepository,
	accessResolver shared.AccessResolver,
) ProjectRouter {
	apiV1Router.POST("/projects/", projectController.Create)
	apiV1Router.GET("/projects/", projectController.List)

	// everything below is scoped to one project and guarded by the access
	// resolver
	projectRouter := apiV1Router.Group.Group("/projects/:projectID", middlewares.ProjectAccessMiddleware(projectRepository, accessResolver))
	projectRouter.GET("/", projectController.Read)
	projectRouter.DELETE("/", projectController.Delete)
	projectRouter.POST("/scan/", projectController.Scan)
	projectRouter.GET("/risk/", projectController.RiskLevel)
	projectRouter.GET("/lines/", projectController.Lines)
	projectRouter.GET("/top-languages/", projectController.TopLanguages)
	projectRouter.GET("/languages/", projectController.Languages)

	return ProjectRouter{Group: projectRouter}
}

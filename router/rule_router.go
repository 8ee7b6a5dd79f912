// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/codetrail-dev/codetrail/controllers"
	"github.com/codetrail-dev/codetrail/middlewares"
	"github.com/labstack/echo/v4"
)

type RuleRouter struct {
	*echo.Group
}

func NewRuleRouter(
	apiV1Router APIV1Router,
	ruleController *controllers.RuleController,
	ruleRepositoryController *controllers.RuleRepositoryController,
) RuleRouter {
	apiV1Router.GET("/rules/", ruleController.List)
	apiV1Router.GET("/rule-repositories/", ruleRepositoryController.List)

	// rule management changes scan behavior for everyone, admins only
	adminGroup := apiV1Router.Group.Group("/rule-repositories", middlewares.AdminOnlyMiddleware())
	adminGroup.POST("/", ruleRepositoryController.Create)
	adminGroup.DELETE("/:ruleRepositoryID/", ruleRepositoryController.Delete)
	adminGroup.POST("/:ruleRepositoryID/sync/", ruleRepositoryController.Sync)

	return RuleRouter{Group: adminGroup}
}

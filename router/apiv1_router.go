// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router attaches the HTTP surface to the echo server. Each router
// owns one resource subtree; they are wired by fx and register their routes
// on construction.
package router

import (
	"github.com/codetrail-dev/codetrail/middlewares"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	// session scoped group all resource routers build on
	*echo.Group
}

func NewAPIV1Router(e *echo.Echo, userRepository shared.UserRepository) APIV1Router {
	apiV1Router := e.Group("/api/v1")

	// unauthenticated operational endpoints
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		return ctx.JSON(200, map[string]string{"status": "ok"})
	})
	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))

	sessionGroup := apiV1Router.Group("", middlewares.SessionMiddleware(userRepository))
	return APIV1Router{Group: sessionGroup}
}

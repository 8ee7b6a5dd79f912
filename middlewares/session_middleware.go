// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package middlewares carries the echo middlewares between the router and
// the controllers: session resolution from the auth proxy and per-project
// access control.
package middlewares

import (
	"log/slog"

	"github.com/codetrail-dev/codetrail/shared"
	"github.com/labstack/echo/v4"
)

// IdentityHeader is set by the authenticating reverse proxy in front of the
// API. Requests without it are anonymous and rejected.
const IdentityHeader = "X-Auth-Username"

func SessionMiddleware(userRepository shared.UserRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			username := ctx.Request().Header.Get(IdentityHeader)
			if username == "" {
				return echo.NewHTTPError(401, "no session")
			}

			user, err := userRepository.ReadByUsername(username)
			if err != nil {
				slog.Debug("unknown user in session middleware", "username", username)
				return echo.NewHTTPError(401, "no session").WithInternal(err)
			}

			shared.SetUser(ctx, user)
			return next(ctx)
		}
	}
}

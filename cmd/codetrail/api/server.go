// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/codetrail-dev/codetrail/middlewares"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NewServer builds the echo instance and binds its lifetime to the fx
// application. The listener starts in the background so fx can finish
// wiring the routers first.
func NewServer(lc fx.Lifecycle) *echo.Echo {
	e := middlewares.Server()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
					slog.Error("failed to start server", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return e
}

// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package shared

import (
	"github.com/codetrail-dev/codetrail/database/models"
)

// GetUser returns the authenticated user set by the session middleware.
// Panics when called on a route without the middleware.
func GetUser(ctx Context) models.User {
	return ctx.Get("user").(models.User)
}

func SetUser(ctx Context, user models.User) {
	ctx.Set("user", user)
}

func GetProject(ctx Context) models.Project {
	return ctx.Get("project").(models.Project)
}

func SetProject(ctx Context, project models.Project) {
	ctx.Set("project", project)
}

// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"go.uber.org/fx"
)

// Module provides all controller constructors
var Module = fx.Options(
	fx.Provide(NewProjectController),
	fx.Provide(NewRuleController),
	fx.Provide(NewRuleRepositoryController),
)

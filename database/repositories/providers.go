// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/codetrail-dev/codetrail/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces.
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewAnalysisRepository, fx.As(new(shared.AnalysisRepository)))),
	fx.Provide(fx.Annotate(NewLinesCountRepository, fx.As(new(shared.LinesCountRepository)))),
	fx.Provide(fx.Annotate(NewRuleRepo, fx.As(new(shared.RuleRepo)))),
	fx.Provide(fx.Annotate(NewRuleRepositoryRepository, fx.As(new(shared.RuleRepositoryRepository)))),
	fx.Provide(fx.Annotate(NewSupportedLanguageRepository, fx.As(new(shared.SupportedLanguageRepository)))),
	fx.Provide(fx.Annotate(NewTeamRepository, fx.As(new(shared.TeamRepository)))),
	fx.Provide(fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository)))),
)

// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"github.com/codetrail-dev/codetrail/linecount"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/codetrail-dev/codetrail/utils"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(utils.NewFireAndForgetSynchronizer),
	fx.Provide(fx.Annotate(linecount.NewRunner, fx.As(new(shared.LineCounter)))),
	fx.Provide(fx.Annotate(NewScanService, fx.As(new(shared.ScanService)))),
	fx.Provide(fx.Annotate(NewProjectService, fx.As(new(shared.ProjectService)))),
	fx.Provide(fx.Annotate(NewRuleService, fx.As(new(shared.RuleService)))),
)

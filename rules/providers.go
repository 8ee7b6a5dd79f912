// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rules

import (
	"github.com/codetrail-dev/codetrail/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		NewSynchronizer,
		fx.Annotate(NewCloner, fx.As(new(shared.RepositoryCloner))),
	),
)

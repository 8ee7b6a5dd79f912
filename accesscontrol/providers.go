// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package accesscontrol

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(NewResolver),
)

// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package linecount

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// Runner invokes the external line-counting binary (scc) on a source
// directory. A non-zero exit or unparsable output is an error, never an
// empty result: callers must be able to tell tool failure apart from a
// genuinely empty codebase.
type Runner struct {
	binary string
}

func NewRunner() Runner {
	binary := os.Getenv("SCC_BINARY")
	if binary == "" {
		binary = "scc"
	}
	return Runner{binary: binary}
}

func (r Runner) Count(ctx context.Context, dir string) ([]Language, error) {
	cmd := exec.CommandContext(ctx, r.binary, dir, "-f", "json")
	var out bytes.Buffer
	var errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, "line counter failed: %s", errOut.String())
	}

	var languages []Language
	if err := json.Unmarshal(out.Bytes(), &languages); err != nil {
		return nil, errors.Wrap(err, "could not parse line counter output")
	}
	return languages, nil
}

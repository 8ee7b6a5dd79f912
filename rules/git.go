// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rules

import (
	"context"

	git "github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
)

// Cloner manages rule repository checkouts on disk.
type Cloner struct{}

func NewCloner() *Cloner {
	return &Cloner{}
}

// Clone creates a fresh checkout of uri at path. An existing checkout at
// path is reused via pull instead.
func (c *Cloner) Clone(ctx context.Context, uri, path string) error {
	_, err := git.PlainCloneContext(ctx, path, false, &git.CloneOptions{
		URL:   uri,
		Depth: 1,
	})
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return c.Pull(ctx, path)
	}
	if err != nil {
		return errors.Wrapf(err, "could not clone %s", uri)
	}
	return nil
}

// Pull fast-forwards an existing checkout at path.
func (c *Cloner) Pull(ctx context.Context, path string) error {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return errors.Wrapf(err, "could not open checkout at %s", path)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return errors.Wrap(err, "could not open worktree")
	}
	err = worktree.PullContext(ctx, &git.PullOptions{})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "could not pull checkout at %s", path)
	}
	return nil
}

// Package gitrepo answers the version resolver's VCS queries with
// go-git: tag lookup by naming convention, commit counting since a
// reference, and repository root detection. No git binary is invoked.
package gitrepo

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Repository wraps an opened git repository rooted at a worktree.
type Repository struct {
	repo *git.Repository
	root string
}

// Open finds the repository containing dir, searching parent
// directories the way the git CLI does.
func Open(dir string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("resolving worktree for %s: %w", dir, err)
	}

	root, err := filepath.Abs(wt.Filesystem.Root())
	if err != nil {
		return nil, fmt.Errorf("resolving repository root: %w", err)
	}

	return &Repository{repo: repo, root: root}, nil
}

// Root returns the absolute path of the repository's worktree root.
func (r *Repository) Root() string {
	return r.root
}

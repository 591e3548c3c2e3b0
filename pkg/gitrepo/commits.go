package gitrepo

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// CommitsSince counts commits reachable from the working head but not
// from the named tag, restricted to changes under relPath. An empty
// relPath (project at the repository root) counts every commit in the
// range. relPath uses forward slashes relative to the repository root.
func (r *Repository) CommitsSince(tagName, relPath string) (int, error) {
	tagCommit, err := r.peelToCommit(tagName)
	if err != nil {
		return 0, err
	}

	excluded := make(map[plumbing.Hash]bool)
	if err := r.walk(tagCommit, nil, func(c *object.Commit) { excluded[c.Hash] = true }); err != nil {
		return 0, fmt.Errorf("walking history of tag %s: %w", tagName, err)
	}

	head, err := r.repo.Head()
	if err != nil {
		return 0, fmt.Errorf("resolving HEAD: %w", err)
	}

	count := 0
	err = r.walk(head.Hash(), pathFilter(relPath), func(c *object.Commit) {
		if !excluded[c.Hash] {
			count++
		}
	})
	if err != nil {
		return 0, fmt.Errorf("counting commits since %s: %w", tagName, err)
	}

	return count, nil
}

// TotalCommits counts every commit reachable from the working head,
// with no path restriction. Used only for the first release of a
// brand-new project, where no tag exists to count from.
func (r *Repository) TotalCommits() (int, error) {
	head, err := r.repo.Head()
	if err != nil {
		return 0, fmt.Errorf("resolving HEAD: %w", err)
	}

	count := 0
	if err := r.walk(head.Hash(), nil, func(*object.Commit) { count++ }); err != nil {
		return 0, fmt.Errorf("counting repository history: %w", err)
	}

	return count, nil
}

// walk visits every commit reachable from the given hash, applying an
// optional path filter.
func (r *Repository) walk(from plumbing.Hash, filter func(string) bool, visit func(*object.Commit)) error {
	iter, err := r.repo.Log(&git.LogOptions{From: from, PathFilter: filter})
	if err != nil {
		return err
	}
	defer iter.Close()

	for {
		c, err := iter.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		visit(c)
	}
}

// peelToCommit resolves a tag name to the commit it points at,
// following annotated tag objects to their target.
func (r *Repository) peelToCommit(tagName string) (plumbing.Hash, error) {
	ref, err := r.repo.Tag(tagName)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolving tag %s: %w", tagName, err)
	}

	if tagObj, terr := r.repo.TagObject(ref.Hash()); terr == nil {
		commit, err := tagObj.Commit()
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("resolving annotated tag %s: %w", tagName, err)
		}
		return commit.Hash, nil
	}

	return ref.Hash(), nil
}

// pathFilter restricts a log walk to commits touching relPath or
// anything beneath it. A nil filter means no restriction.
func pathFilter(relPath string) func(string) bool {
	if relPath == "" || relPath == "." {
		return nil
	}
	prefix := strings.TrimSuffix(relPath, "/") + "/"
	return func(p string) bool {
		return p == relPath || strings.HasPrefix(p, prefix)
	}
}

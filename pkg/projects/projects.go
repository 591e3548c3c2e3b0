// Package projects discovers subproject directories in a monorepo by
// locating package manifest files under a root.
package projects

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Project is a directory holding one package manifest. Name doubles as
// the project identifier for tag patterns; Rel is the slash-separated
// path of the directory relative to the repository root, empty for the
// root itself.
type Project struct {
	Name string
	Dir  string
	Rel  string
}

// FromDir builds the Project for a single directory under root,
// without requiring a manifest. Used when the caller names a project
// directory explicitly instead of discovering it.
func FromDir(root, dir string) (Project, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return Project{}, err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return Project{}, err
	}

	rel, err := filepath.Rel(absRoot, absDir)
	if err != nil {
		return Project{}, fmt.Errorf("%s is not under %s: %w", dir, root, err)
	}
	if rel == "." {
		rel = ""
	}

	return Project{
		Name: filepath.Base(absDir),
		Dir:  absDir,
		Rel:  filepath.ToSlash(rel),
	}, nil
}

// Discover walks root for files matching manifestGlob (a doublestar
// pattern such as "**/*.csproj") and returns one Project per matching
// directory, ordered by relative path. A directory with several
// manifests still yields a single project.
func Discover(root, manifestGlob string) ([]Project, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var dirs []string

	err = doublestar.GlobWalk(os.DirFS(absRoot), manifestGlob, func(p string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		dir := path.Dir(p)
		if dir == "." {
			dir = ""
		}
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering projects under %s: %w", root, err)
	}

	sort.Strings(dirs)

	result := make([]Project, 0, len(dirs))
	for _, dir := range dirs {
		name := path.Base(dir)
		if dir == "" {
			name = filepath.Base(absRoot)
		}
		result = append(result, Project{
			Name: name,
			Dir:  filepath.Join(absRoot, filepath.FromSlash(dir)),
			Rel:  dir,
		})
	}

	return result, nil
}

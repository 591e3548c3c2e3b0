package gitrepo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// fixture builds a throwaway repository commit by commit. Each commit
// advances a fake clock so tag creation dates are distinct and ordered.
type fixture struct {
	t     *testing.T
	dir   string
	repo  *git.Repository
	wt    *git.Worktree
	clock time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	return &fixture{
		t:     t,
		dir:   dir,
		repo:  repo,
		wt:    wt,
		clock: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) commit(relPath, msg string) plumbing.Hash {
	f.t.Helper()

	full := filepath.Join(f.dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		f.t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, []byte(msg+"\n"), 0o644); err != nil {
		f.t.Fatalf("WriteFile: %v", err)
	}
	if _, err := f.wt.Add(relPath); err != nil {
		f.t.Fatalf("Add %s: %v", relPath, err)
	}

	f.clock = f.clock.Add(time.Minute)
	sig := &object.Signature{Name: "tester", Email: "tester@example.com", When: f.clock}
	hash, err := f.wt.Commit(msg, &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		f.t.Fatalf("Commit %s: %v", msg, err)
	}
	return hash
}

func (f *fixture) tag(name string, hash plumbing.Hash) {
	f.t.Helper()
	if _, err := f.repo.CreateTag(name, hash, nil); err != nil {
		f.t.Fatalf("CreateTag %s: %v", name, err)
	}
}

func (f *fixture) annotatedTag(name string, hash plumbing.Hash) {
	f.t.Helper()
	f.clock = f.clock.Add(time.Minute)
	_, err := f.repo.CreateTag(name, hash, &git.CreateTagOptions{
		Tagger:  &object.Signature{Name: "tester", Email: "tester@example.com", When: f.clock},
		Message: "release " + name,
	})
	if err != nil {
		f.t.Fatalf("CreateTag %s: %v", name, err)
	}
}

func (f *fixture) open() *Repository {
	f.t.Helper()
	r, err := Open(f.dir)
	if err != nil {
		f.t.Fatalf("Open: %v", err)
	}
	return r
}

func TestOpenDetectsRootFromSubdirectory(t *testing.T) {
	f := newFixture(t)
	f.commit("svc/main.txt", "initial")

	r, err := Open(filepath.Join(f.dir, "svc"))
	if err != nil {
		t.Fatalf("Open from subdirectory: %v", err)
	}

	wantRoot, err := filepath.EvalSymlinks(f.dir)
	if err != nil {
		t.Fatal(err)
	}
	gotRoot, err := filepath.EvalSymlinks(r.Root())
	if err != nil {
		t.Fatal(err)
	}
	if gotRoot != wantRoot {
		t.Errorf("Root() = %q, want %q", gotRoot, wantRoot)
	}
}

func TestOpenOutsideRepository(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Fatal("Open outside a repository: want error, got nil")
	}
}

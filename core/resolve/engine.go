// Package resolve computes the next release and prerelease version for
// a monorepo subproject from its changelog and git tags.
//
// Precedence is fixed: a changelog with released entries decides the
// release version on its own (its unreleased section's "+semver:"
// directive applied to the latest entry); only without one do tags
// speak, and only without either does the bootstrap version 0.0.1
// apply. A changelog and a tag that disagree are not reconciled.
package resolve

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/monover-labs/monover/core/semver"
	"github.com/monover-labs/monover/pkg/changelog"
	"github.com/monover-labs/monover/pkg/gitrepo"
	"github.com/monover-labs/monover/pkg/projects"
)

// VCS is the query surface the engine needs from version control.
// *gitrepo.Repository satisfies it.
type VCS interface {
	// MostRecentTag returns the newest tag for the project's naming
	// conventions, or found=false when none matches.
	MostRecentTag(project string) (tag string, found bool, err error)

	// CommitsSince counts commits since the tag touching relPath
	// (every commit in the range when relPath is empty).
	CommitsSince(tag, relPath string) (int, error)

	// TotalCommits counts the repository's entire history. Consulted
	// only for the first release of a brand-new project.
	TotalCommits() (int, error)
}

// Options adjusts naming conventions. Zero values select the defaults.
type Options struct {
	// ChangelogName is the changelog's file name inside each project
	// directory. Default "CHANGELOG.md".
	ChangelogName string

	// PrereleaseLabel prefixes the commit count in prerelease
	// versions. Default "alpha".
	PrereleaseLabel string

	// PrereleaseWidth is the minimum digit count of the zero-padded
	// commit count. Counts wider than this are never truncated.
	// Default 4.
	PrereleaseWidth int
}

// Engine resolves versions for one repository. It holds no per-project
// state; every resolution is recomputed from current repository state.
type Engine struct {
	vcs    VCS
	logger *log.Logger
	opts   Options
}

// NewEngine builds an engine over the given VCS. A nil logger
// discards warnings.
func NewEngine(vcs VCS, logger *log.Logger, opts Options) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.ChangelogName == "" {
		opts.ChangelogName = "CHANGELOG.md"
	}
	if opts.PrereleaseLabel == "" {
		opts.PrereleaseLabel = "alpha"
	}
	if opts.PrereleaseWidth == 0 {
		opts.PrereleaseWidth = 4
	}
	return &Engine{vcs: vcs, logger: logger, opts: opts}
}

// NextReleaseVersion resolves the version the project's next release
// would carry, without a prerelease suffix.
func (e *Engine) NextReleaseVersion(p projects.Project) (string, error) {
	cl, err := changelog.MaybeLoad(filepath.Join(p.Dir, e.opts.ChangelogName))
	if err != nil {
		return "", err
	}

	if cl.HasEntries() {
		version, err := e.versionFromChangelog(p, cl)
		if err != nil {
			return "", err
		}
		e.logger.Debug("release version from changelog", "project", p.Name, "version", version)
		return version, nil
	}

	tag, found, err := e.vcs.MostRecentTag(p.Name)
	if err != nil {
		return "", err
	}
	if found {
		// The tag's name already names a released version; no bump.
		version := gitrepo.VersionFromTag(p.Name, tag)
		e.logger.Debug("release version from tag", "project", p.Name, "tag", tag, "version", version)
		return version, nil
	}

	e.logger.Debug("no changelog entries or tags, using bootstrap version", "project", p.Name)
	return semver.Bootstrap, nil
}

// NextPrereleaseVersion resolves the project's next prerelease version:
// the next release version suffixed with the zero-padded count of
// commits since the last matching tag. It fails when a non-bootstrap
// version has no tag to count from; see MissingTagError.
func (e *Engine) NextPrereleaseVersion(p projects.Project) (string, error) {
	version, err := e.NextReleaseVersion(p)
	if err != nil {
		return "", err
	}

	tag, found, err := e.vcs.MostRecentTag(p.Name)
	if err != nil {
		return "", err
	}

	var count int
	switch {
	case found:
		count, err = e.vcs.CommitsSince(tag, p.Rel)
		if err != nil {
			return "", err
		}
	case version == semver.Bootstrap:
		// First release ever: "commits since last tag" is undefined,
		// so count from repository inception instead.
		count, err = e.vcs.TotalCommits()
		if err != nil {
			return "", err
		}
	default:
		return "", &MissingTagError{Project: p.Name, Version: version}
	}

	return fmt.Sprintf("%s-%s%0*d", version, e.opts.PrereleaseLabel, e.opts.PrereleaseWidth, count), nil
}

// PromoteChangelog rewrites the changelog at srcPath with its
// unreleased section folded into a new head entry, writing the result
// to dstPath. A "none"/"skip" directive copies the changelog unchanged.
// An empty version applies the changelog's own directive to its latest
// entry; a non-empty version is stamped as given.
func (e *Engine) PromoteChangelog(srcPath, dstPath, version string) error {
	cl, err := changelog.Load(srcPath)
	if err != nil {
		return err
	}

	bump, token, known := semver.DirectiveBump(cl.Unreleased)
	if !known {
		e.logger.Warn("unknown semver directive, defaulting to patch", "directive", token, "changelog", srcPath)
	}

	if version == "" {
		if bump == semver.BumpNone {
			return changelog.Save(cl, dstPath)
		}
		version, err = e.bumpedLatest(cl, bump)
		if err != nil {
			return fmt.Errorf("promoting %s: %w", srcPath, err)
		}
	}

	notes := semver.StripDirectives(cl.Unreleased)
	promoted := cl.Promoted(version, time.Now().UTC(), notes)
	return changelog.Save(&promoted, dstPath)
}

// versionFromChangelog applies the unreleased directive to the latest
// released entry.
func (e *Engine) versionFromChangelog(p projects.Project, cl *changelog.Changelog) (string, error) {
	bump, token, known := semver.DirectiveBump(cl.Unreleased)
	if !known {
		e.logger.Warn("unknown semver directive, defaulting to patch", "directive", token, "project", p.Name)
	}
	return e.bumpedLatest(cl, bump)
}

// bumpedLatest bumps the changelog's latest entry version, or returns
// the bootstrap version when no entry exists.
func (e *Engine) bumpedLatest(cl *changelog.Changelog, bump semver.Bump) (string, error) {
	latest := cl.LatestEntry()
	if latest == nil {
		return semver.Bootstrap, nil
	}

	base, err := semver.Parse(latest.Version)
	if err != nil {
		return "", fmt.Errorf("latest changelog entry: %w", err)
	}
	return base.Bumped(bump).String(), nil
}

package gitrepo

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5/plumbing"
)

type tagInfo struct {
	name string
	when time.Time
}

// MostRecentTag returns the newest tag matching the project's naming
// conventions. Tags named "<project>-v*" take absolute precedence: if
// any exist, the looser "<project>-*" convention is never consulted,
// even when it holds more recent tags. The second result is false when
// no tag matches either pattern.
func (r *Repository) MostRecentTag(project string) (string, bool, error) {
	tags, err := r.collectTags()
	if err != nil {
		return "", false, err
	}

	for _, pattern := range []string{project + "-v*", project + "-*"} {
		var matched []tagInfo
		for _, t := range tags {
			ok, err := doublestar.Match(pattern, t.name)
			if err != nil {
				return "", false, fmt.Errorf("matching tag pattern %q: %w", pattern, err)
			}
			if ok {
				matched = append(matched, t)
			}
		}
		if len(matched) == 0 {
			continue
		}

		// Newest first; equal timestamps fall back to name order so
		// the result is deterministic.
		sort.Slice(matched, func(i, j int) bool {
			if !matched[i].when.Equal(matched[j].when) {
				return matched[i].when.After(matched[j].when)
			}
			return matched[i].name > matched[j].name
		})
		return matched[0].name, true, nil
	}

	return "", false, nil
}

// VersionFromTag derives the raw version substring from a tag name by
// stripping the project prefix: "<project>-v" when present, else
// "<project>-". The result is not validated as a semantic version.
func VersionFromTag(project, tag string) string {
	if v, ok := strings.CutPrefix(tag, project+"-v"); ok {
		return v
	}
	return strings.TrimPrefix(tag, project+"-")
}

// collectTags lists every tag with its creation time: the tagger date
// for annotated tags, the target commit's committer date otherwise.
func (r *Repository) collectTags() ([]tagInfo, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var tags []tagInfo
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()

		if tagObj, terr := r.repo.TagObject(ref.Hash()); terr == nil {
			tags = append(tags, tagInfo{name: name, when: tagObj.Tagger.When})
			return nil
		}

		commit, cerr := r.repo.CommitObject(ref.Hash())
		if cerr != nil {
			return fmt.Errorf("resolving tag %s: %w", name, cerr)
		}
		tags = append(tags, tagInfo{name: name, when: commit.Committer.When})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tags, nil
}

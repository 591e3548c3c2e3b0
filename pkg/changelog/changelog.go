// Package changelog reads and writes keep-a-changelog style markdown
// files: a header, an optional description, an optional unreleased
// section, and released entries ordered most recent first.
package changelog

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrNotFound reports that no changelog file exists at the given path.
// Callers that treat an absent changelog as a normal condition should
// use MaybeLoad instead of matching this error themselves.
var ErrNotFound = errors.New("changelog not found")

// Entry is one released version's record.
type Entry struct {
	Version string
	Date    string
	Notes   string
}

// Changelog is the parsed representation of a changelog file.
type Changelog struct {
	Header      string
	Description string
	Unreleased  string
	Entries     []Entry
}

// LatestEntry returns the most recent released entry, or nil when the
// changelog has none.
func (c *Changelog) LatestEntry() *Entry {
	if len(c.Entries) == 0 {
		return nil
	}
	return &c.Entries[0]
}

// HasEntries reports whether at least one version has been released.
// A changelog without entries is equivalent to no changelog for bump
// purposes: there is nothing to bump from.
func (c *Changelog) HasEntries() bool {
	return c != nil && len(c.Entries) > 0
}

// Load reads and parses the changelog at path. An absent file returns
// an error wrapping ErrNotFound.
func Load(path string) (*Changelog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading changelog %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// MaybeLoad is Load with the absent-file case folded into a nil
// changelog: (nil, nil) means "no changelog here".
func MaybeLoad(path string) (*Changelog, error) {
	c, err := Load(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Save writes the changelog's rendering to path. The path may differ
// from the one the changelog was loaded from.
func Save(c *Changelog, path string) error {
	if err := os.WriteFile(path, []byte(c.Render()), 0o644); err != nil {
		return fmt.Errorf("writing changelog %s: %w", path, err)
	}
	return nil
}

// Promoted returns a new changelog with the unreleased section cleared
// and folded into a new head entry stamped with the given version and
// date. The notes argument carries the unreleased text to fold in,
// already cleaned of directive lines; prior entries keep their order.
func (c *Changelog) Promoted(version string, date time.Time, notes string) Changelog {
	entries := make([]Entry, 0, len(c.Entries)+1)
	entries = append(entries, Entry{
		Version: version,
		Date:    date.Format("2006-01-02"),
		Notes:   notes,
	})
	entries = append(entries, c.Entries...)

	return Changelog{
		Header:      c.Header,
		Description: c.Description,
		Entries:     entries,
	}
}

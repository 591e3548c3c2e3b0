package changelog

import (
	"regexp"
	"strings"
)

var (
	// Entry headings look like "## [1.2.3] - 2026-08-29"; the brackets
	// and date are optional and a leading "v" on the version tolerated.
	entryHeading = regexp.MustCompile(`^## \[?v?(\d+\.\d+\.\d+[^\]\s]*)\]?(?:\s*-\s*(\S+))?\s*$`)

	unreleasedHeading = regexp.MustCompile(`(?i)^## \[?unreleased\]?\s*$`)
)

// Parse builds a Changelog from markdown text. Unrecognized lines
// before the first section heading become the description; lines under
// a heading belong to that section until the next heading.
func Parse(text string) *Changelog {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	c := &Changelog{}

	// Collector for the section currently being read. Starts on the
	// description; each "## " heading switches it.
	var block []string
	assign := func(s string) { c.Description = s }

	for _, line := range lines {
		if m := unreleasedHeading.FindStringSubmatch(line); m != nil {
			assign(joinBlock(block))
			block = nil
			assign = func(s string) { c.Unreleased = s }
			continue
		}
		if m := entryHeading.FindStringSubmatch(line); m != nil {
			assign(joinBlock(block))
			block = nil
			c.Entries = append(c.Entries, Entry{Version: m[1], Date: m[2]})
			idx := len(c.Entries) - 1
			assign = func(s string) { c.Entries[idx].Notes = s }
			continue
		}
		if c.Header == "" && strings.HasPrefix(line, "# ") {
			c.Header = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			continue
		}
		block = append(block, line)
	}
	assign(joinBlock(block))

	return c
}

// Render writes the changelog back to markdown. Sections are separated
// by single blank lines; an empty unreleased section is omitted.
func (c *Changelog) Render() string {
	var b strings.Builder

	if c.Header != "" {
		b.WriteString("# " + c.Header + "\n")
	}
	if c.Description != "" {
		b.WriteString("\n" + c.Description + "\n")
	}
	if c.Unreleased != "" {
		b.WriteString("\n## [Unreleased]\n\n" + c.Unreleased + "\n")
	}
	for _, e := range c.Entries {
		heading := "## [" + e.Version + "]"
		if e.Date != "" {
			heading += " - " + e.Date
		}
		b.WriteString("\n" + heading + "\n")
		if e.Notes != "" {
			b.WriteString("\n" + e.Notes + "\n")
		}
	}

	return b.String()
}

// joinBlock trims the blank padding lines around a section body.
func joinBlock(lines []string) string {
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

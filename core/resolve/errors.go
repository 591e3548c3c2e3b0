package resolve

import "fmt"

// MissingTagError is the one fatal resolution failure: a project whose
// next version is past bootstrap has no tag to count prerelease commits
// from. The message names both tag spellings the operator can create.
type MissingTagError struct {
	Project string
	Version string
}

func (e *MissingTagError) Error() string {
	return fmt.Sprintf(
		"no tag found for project %s at version %s: create tag %q or %q to establish a prerelease reference point",
		e.Project, e.Version,
		e.Project+"-"+e.Version,
		e.Project+"-v"+e.Version,
	)
}

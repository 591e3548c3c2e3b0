package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// VersionOptions holds the parsed arguments for the "next" and
// "prerelease" commands, which share a single-directory surface.
type VersionOptions struct {
	Dir string
}

// VersionRunFunc is the handler signature for the single-project
// version commands. It is injected by the wiring layer
// (cmd/monover/main.go).
type VersionRunFunc func(ctx context.Context, opts VersionOptions) error

// NewNextCmd creates the "next" subcommand.
func NewNextCmd(runFunc VersionRunFunc) *cobra.Command {
	return newVersionCmd(
		"next <project-dir>",
		"Print the next release version for a project directory",
		"Resolve the next release version from the project's changelog, falling back\n"+
			"to git tags, and print it.",
		runFunc,
	)
}

// NewPrereleaseCmd creates the "prerelease" subcommand.
func NewPrereleaseCmd(runFunc VersionRunFunc) *cobra.Command {
	return newVersionCmd(
		"prerelease <project-dir>",
		"Print the next prerelease version for a project directory",
		"Resolve the next release version and suffix it with the zero-padded count of\n"+
			"commits since the project's last tag. Fails when a released version has no\n"+
			"matching tag to count from.",
		runFunc,
	)
}

func newVersionCmd(use, short, long string, runFunc VersionRunFunc) *cobra.Command {
	var opts VersionOptions

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Dir = args[0]
			return validateProjectDir(opts.Dir)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), opts)
		},
	}

	return cmd
}

func validateProjectDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("project directory does not exist: %s", dir)
		}
		return fmt.Errorf("cannot access project directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}
	return nil
}

package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// PromoteOptions holds the parsed flags for "promote".
type PromoteOptions struct {
	Dir     string
	Out     string
	Version string
}

// PromoteRunFunc is the handler for the "promote" command.
type PromoteRunFunc func(ctx context.Context, opts PromoteOptions) error

// NewPromoteCmd creates the "promote" subcommand.
func NewPromoteCmd(runFunc PromoteRunFunc) *cobra.Command {
	var opts PromoteOptions

	cmd := &cobra.Command{
		Use:   "promote <project-dir>",
		Short: "Fold a changelog's unreleased section into a new release entry",
		Long: "Rewrite the project's changelog with the unreleased notes promoted to a new\n" +
			"entry stamped with the next release version. A \"+semver: none\" or \"skip\"\n" +
			"directive copies the changelog unchanged.",
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Dir = args[0]
			return validateProjectDir(opts.Dir)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Out, "out", "", "Write the promoted changelog here instead of in place")
	cmd.Flags().StringVar(&opts.Version, "version", "", "Stamp this version instead of the resolved one")

	return cmd
}

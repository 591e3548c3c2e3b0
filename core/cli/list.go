package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// ListRunFunc is the handler for the "list" command.
type ListRunFunc func(ctx context.Context) error

// NewListCmd creates the "list" subcommand.
func NewListCmd(runFunc ListRunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Resolve versions for every project under the root",
		Long: "Discover project directories by their package manifests and print the next\n" +
			"release and prerelease version for each. The run stops at the first project\n" +
			"that fails to resolve.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context())
		},
	}
}

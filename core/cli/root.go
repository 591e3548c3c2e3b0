package cli

import (
	"github.com/spf13/cobra"
)

// GlobalOptions holds flags shared by every subcommand.
type GlobalOptions struct {
	Root    string
	Config  string
	Verbose bool
}

// NewRootCmd creates the top-level monover command.
func NewRootCmd(version string, opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monover",
		Short: "Monorepo version resolution tool",
		Long: "Monover resolves the next semantic version for each subproject of a monorepo\n" +
			"from its changelog and git tags, for both release and prerelease builds.",
	}

	cmd.Version = version

	cmd.PersistentFlags().StringVar(&opts.Root, "root", ".", "Repository root to resolve projects against")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "Path to a monover config file")
	cmd.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "Enable debug logging")

	return cmd
}

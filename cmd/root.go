package cmd

import (
	"github.com/spf13/cobra"
)

// Execute wires the dependency container and runs the dispatcher.
func Execute() error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	defer func() { _ = c.logger.Sync() }()
	return newRootCmd(c).Execute()
}

// newRootCmd builds the top-level dispatcher. Recognized subcommands are
// clone, release and help; everything else — including no arguments at
// all — is forwarded verbatim to the wrapped git binary, whose exit status
// the process inherits.
func newRootCmd(c *container) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitx",
		Short: "git with structured clone and release workflows",
		Long: `gitx extends git with a structured clone command and an interactive
release workflow. Any invocation it does not recognize is passed through
to git unchanged.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if args == nil {
				args = []string{}
			}
			return c.git.Passthrough(cmd.Context(), args)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(newCloneCmd(c))
	rootCmd.AddCommand(newReleaseCmd(c))
	rootCmd.SetHelpCommand(newHelpCmd())
	return rootCmd
}

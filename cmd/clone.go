package cmd

import (
	"fmt"

	"github.com/gitx-cli/gitx/internal/orchestrator"
	"github.com/spf13/cobra"
)

// newCloneCmd creates the clone command
func newCloneCmd(c *container) *cobra.Command {
	var cloneRoot string
	cmd := &cobra.Command{
		Use:   "clone <url>",
		Short: "Clone a repository into a directory named after its owner",
		Long: `Clone a repository into <owner>/<repo> instead of ./<repo>.

The owner (organization or user) is derived from the repository URL, the
owner directory is created if needed, and the actual transfer is delegated
to git. Both https://host/owner/repo and git@host:owner/repo forms are
accepted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ref string
			if len(args) > 0 {
				ref = args[0]
			}
			orch := orchestrator.NewCloneOrchestrator(c.git, c.fs, c.logger)
			dir, err := orch.Execute(cmd.Context(), ref, cloneRoot)
			if err != nil {
				return err
			}
			// The clone directory is the primary result.
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&cloneRoot, "root", ".", "Parent directory for the owner directory")
	return cmd
}

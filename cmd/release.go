package cmd

import (
	"fmt"

	"github.com/gitx-cli/gitx/internal/domain"
	"github.com/gitx-cli/gitx/internal/orchestrator"
	"github.com/spf13/cobra"
)

// newReleaseCmd creates the release command
func newReleaseCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "release <major|minor|patch>",
		Short: "Publish the next semantic version as a release",
		Long: `Run the interactive release workflow:

- resolve the repository's default branch
- compute the next version from the latest published release
- collect release notes through your editor
- ask for confirmation, then publish the release

Requires git on PATH and an authenticated gh session. Declining the
confirmation aborts cleanly without publishing anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inc, err := domain.ParseIncrement(args[0])
			if err != nil {
				return err
			}
			// The lock is keyed to the worktree root so invocations from
			// different subdirectories of one repository still contend.
			root, err := c.git.WorktreeRoot()
			if err != nil {
				return fmt.Errorf("release precondition failed: %w", err)
			}
			orch := orchestrator.NewReleaseOrchestrator(
				c.git,
				c.hosting,
				c.editor,
				c.logger,
				c.in,
				cmd.OutOrStdout(),
				orchestrator.ReleaseLockPath(root),
			)
			return orch.Execute(cmd.Context(), inc)
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/gitx-cli/gitx/pkg/version"
	"github.com/spf13/cobra"
)

// helpTopics is the static manual, built once at startup and read-only
// afterwards.
var helpTopics = map[string]string{
	"clone": `gitx clone <url>

Clone a repository into <owner>/<repo>. The owner directory is derived
from the URL (https://host/owner/repo or git@host:owner/repo), created if
absent, and the transfer itself is delegated to git.`,
	"release": `gitx release <major|minor|patch>

Publish the next semantic version: resolve the default branch, bump the
latest release tag by the given increment, collect notes through $EDITOR
(or $GITX_EDITOR), confirm, and create the release via gh.`,
	"help": `gitx help [command]

Show the command list, or the manual entry for one command.`,
}

// helpOrder keeps the command listing stable.
var helpOrder = []string{"clone", "release", "help"}

// newHelpCmd creates the help command. An unknown topic is not an error:
// it falls back to suggesting git's own help.
func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Show help for gitx commands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintf(out, "gitx %s — git with structured clone and release workflows\n\n", version.Summary())
				fmt.Fprintln(out, "Commands:")
				for _, name := range helpOrder {
					fmt.Fprintf(out, "  %-8s %s\n", name, firstLine(helpTopics[name]))
				}
				fmt.Fprintln(out, "\nAnything else is forwarded to git unchanged.")
				return nil
			}
			topic := args[0]
			if text, ok := helpTopics[topic]; ok {
				fmt.Fprintln(out, text)
				return nil
			}
			fmt.Fprintf(out, "no gitx help entry for %q; try `git help %s`\n", topic, topic)
			return nil
		},
	}
}

func firstLine(text string) string {
	for i, r := range text {
		if r == '\n' {
			return text[:i]
		}
	}
	return text
}

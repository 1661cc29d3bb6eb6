package repository

import (
	"context"

	"github.com/gitx-cli/gitx/internal/domain"
)

// HostingClient defines the interface for the hosting platform's
// command-line client, bound to the current repository's origin remote.
type HostingClient interface {
	// AuthStatus reports whether the caller is authenticated against the
	// platform. Failure is fatal for the release workflow.
	AuthStatus(ctx context.Context) error
	// LatestReleaseTag returns the most recent release tag name, or the
	// empty string when no release exists or the query fails. Release
	// history absence is an expected state, not an error.
	LatestReleaseTag(ctx context.Context) (string, error)
	// DefaultBranch resolves the repository's default branch. There is no
	// graceful fallback: without it no release target can be chosen.
	DefaultBranch(ctx context.Context) (string, error)
	// CreateRelease publishes the release. Mutating; never retried
	// automatically, since a retried creation risks duplicate tags.
	CreateRelease(ctx context.Context, release *domain.Release) error
}

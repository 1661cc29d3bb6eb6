package repository

import (
	"context"
	"fmt"
)

// GitClient defines the interface for the wrapped version-control tool.
// Every operation delegates to the git binary as an opaque subprocess; the
// wrapper never reimplements version-control primitives.
type GitClient interface {
	// Available reports whether the git binary is resolvable on this system.
	Available() error
	// LsRemote enumerates the remote behind ref, proving it is reachable.
	LsRemote(ctx context.Context, ref string) error
	// CloneInto clones ref inside dir. The target directory is threaded
	// explicitly; the process working directory is never mutated.
	CloneInto(ctx context.Context, dir, ref string) error
	// OriginURL reports the configured URL of the enclosing repository's
	// remote, proving the caller runs inside a repository.
	OriginURL() (string, error)
	// WorktreeRoot resolves the absolute path of the enclosing repository's
	// worktree, the same path from any subdirectory, so per-repository
	// state stays keyed consistently.
	WorktreeRoot() (string, error)
	// Passthrough forwards args verbatim with inherited stdio. A non-zero
	// exit from git is returned as *ExitError so callers can inherit it.
	Passthrough(ctx context.Context, args []string) error
}

// ExitError carries a subprocess exit status so main can exit with the
// wrapped tool's code verbatim.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

package domain

import "errors"

// Failure taxonomy shared across orchestrators and services. Callers wrap
// these with %w and add guidance; main maps any of them to exit status 1.
var (
	// ErrMissingReference signals that a repository reference was required
	// but not supplied.
	ErrMissingReference = errors.New("missing repository reference")

	// ErrUnparsableReference signals that no owner segment could be derived
	// from a repository reference.
	ErrUnparsableReference = errors.New("unparsable repository reference")

	// ErrUnreachableReference signals that the wrapped tool could not
	// enumerate the remote.
	ErrUnreachableReference = errors.New("unreachable repository reference")

	// ErrCloneFailed signals that the delegated clone did not complete.
	ErrCloneFailed = errors.New("clone failed")

	// ErrEditorNotConfigured signals that no editor command is configured.
	ErrEditorNotConfigured = errors.New("editor not configured")

	// ErrEditorNotFound signals that the configured editor command is not
	// resolvable on this system.
	ErrEditorNotFound = errors.New("editor not found")

	// ErrEmptyReleaseNotes signals that the collected notes were empty after
	// comment stripping.
	ErrEmptyReleaseNotes = errors.New("empty release notes")

	// ErrBranchResolutionFailed signals that the hosting platform could not
	// report a default branch.
	ErrBranchResolutionFailed = errors.New("default branch resolution failed")

	// ErrInvalidIncrement signals an unrecognized version increment token.
	ErrInvalidIncrement = errors.New("invalid version increment")

	// ErrReleaseInProgress signals that another release workflow already
	// holds the repository lock.
	ErrReleaseInProgress = errors.New("another release is already in progress")
)

package service

import "context"

// EditorService obtains free-form release notes through an external editor.
type EditorService interface {
	// CollectNotes blocks until the user's editor exits, then returns the
	// authored text with comment lines stripped. The temporary notes file
	// is removed on every exit path.
	CollectNotes(ctx context.Context, version string) (string, error)
}

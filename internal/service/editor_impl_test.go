package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gitx-cli/gitx/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeFakeEditor creates an executable script that appends a line to the
// file it is handed, standing in for an interactive editor.
func writeFakeEditor(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-editor.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func remainingNotesFiles(t *testing.T, fs afero.Fs) []string {
	t.Helper()
	matches, err := afero.Glob(fs, filepath.Join(os.TempDir(), "gitx-release-notes-*.md"))
	require.NoError(t, err)
	return matches
}

func TestEditorService_CollectNotes(t *testing.T) {
	t.Run("Should fail when no editor is configured", func(t *testing.T) {
		svc := NewEditorService("", afero.NewOsFs(), zap.NewNop())
		_, err := svc.CollectNotes(context.Background(), "v1.0.0")
		assert.ErrorIs(t, err, domain.ErrEditorNotConfigured)
		assert.Contains(t, err.Error(), "EDITOR")
	})
	t.Run("Should fail when the configured editor is not resolvable", func(t *testing.T) {
		svc := NewEditorService("definitely-not-a-real-editor-xyz", afero.NewOsFs(), zap.NewNop())
		_, err := svc.CollectNotes(context.Background(), "v1.0.0")
		assert.ErrorIs(t, err, domain.ErrEditorNotFound)
	})
	t.Run("Should return authored text with comments stripped", func(t *testing.T) {
		editor := writeFakeEditor(t, `echo "first fix" >> "$1"; echo "# scratch" >> "$1"; echo "second fix" >> "$1"`)
		fs := afero.NewOsFs()
		svc := NewEditorService(editor, fs, zap.NewNop())
		before := len(remainingNotesFiles(t, fs))
		notes, err := svc.CollectNotes(context.Background(), "v1.2.0")
		require.NoError(t, err)
		assert.Equal(t, "first fix\nsecond fix", notes)
		assert.Len(t, remainingNotesFiles(t, fs), before)
	})
	t.Run("Should fail with empty notes when the user writes nothing", func(t *testing.T) {
		editor := writeFakeEditor(t, `exit 0`)
		fs := afero.NewOsFs()
		svc := NewEditorService(editor, fs, zap.NewNop())
		before := len(remainingNotesFiles(t, fs))
		_, err := svc.CollectNotes(context.Background(), "v1.2.0")
		assert.ErrorIs(t, err, domain.ErrEmptyReleaseNotes)
		assert.Len(t, remainingNotesFiles(t, fs), before)
	})
	t.Run("Should clean up when the editor exits non-zero", func(t *testing.T) {
		editor := writeFakeEditor(t, `exit 3`)
		fs := afero.NewOsFs()
		svc := NewEditorService(editor, fs, zap.NewNop())
		before := len(remainingNotesFiles(t, fs))
		_, err := svc.CollectNotes(context.Background(), "v1.2.0")
		require.Error(t, err)
		assert.Len(t, remainingNotesFiles(t, fs), before)
	})
	t.Run("Should pass extra editor arguments through", func(t *testing.T) {
		// The configured command may carry arguments, e.g. "code --wait".
		editor := writeFakeEditor(t, `[ "$1" = "--flag" ] || exit 9; echo done >> "$2"`)
		svc := NewEditorService(editor+" --flag", afero.NewOsFs(), zap.NewNop())
		notes, err := svc.CollectNotes(context.Background(), "v1.2.0")
		require.NoError(t, err)
		assert.Equal(t, "done", notes)
	})
}

func TestStripComments(t *testing.T) {
	t.Run("Should drop comment lines only", func(t *testing.T) {
		in := "# header\nkeep one\n# middle\nkeep two\n"
		assert.Equal(t, "keep one\nkeep two", StripComments(in))
	})
	t.Run("Should return empty for all-comment input", func(t *testing.T) {
		assert.Empty(t, StripComments("# a\n# b\n"))
	})
	t.Run("Should keep lines with an inner marker", func(t *testing.T) {
		assert.Equal(t, "fix #42", StripComments("fix #42\n"))
	})
}

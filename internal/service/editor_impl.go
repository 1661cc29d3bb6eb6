package service

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gitx-cli/gitx/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// NoteCommentMarker prefixes instructional lines that never reach the
// published notes.
const NoteCommentMarker = "#"

// editorService is the implementation of the EditorService interface.
type editorService struct {
	// command is the configured editor invocation, possibly with arguments
	// (e.g. "code --wait").
	command string
	fs      afero.Fs
	logger  *zap.Logger
}

// NewEditorService creates a new EditorService around the configured
// editor command.
func NewEditorService(command string, fs afero.Fs, logger *zap.Logger) EditorService {
	return &editorService{command: command, fs: fs, logger: logger}
}

// CollectNotes hands a scoped temporary file to the editor and returns the
// stripped result.
func (s *editorService) CollectNotes(ctx context.Context, version string) (string, error) {
	command := strings.TrimSpace(s.command)
	if command == "" {
		return "", fmt.Errorf(
			"%w: set GITX_EDITOR or EDITOR to your editor command (e.g. `export EDITOR=vim`)",
			domain.ErrEditorNotConfigured)
	}
	fields := strings.Fields(command)
	editorPath, err := exec.LookPath(fields[0])
	if err != nil {
		return "", fmt.Errorf(
			"%w: %q is not resolvable on this system; point GITX_EDITOR or EDITOR at an installed editor: %v",
			domain.ErrEditorNotFound, fields[0], err)
	}
	notesPath := filepath.Join(os.TempDir(), fmt.Sprintf("gitx-release-notes-%s.md", uuid.NewString()))
	header := fmt.Sprintf("%s Release notes for %s. Lines starting with %q are ignored.\n",
		NoteCommentMarker, version, NoteCommentMarker)
	if err := afero.WriteFile(s.fs, notesPath, []byte(header), 0o600); err != nil {
		return "", fmt.Errorf("failed to create notes file: %w", err)
	}
	defer func() {
		if removeErr := s.fs.Remove(notesPath); removeErr != nil {
			s.logger.Warn("failed to remove notes file", zap.String("path", notesPath), zap.Error(removeErr))
		}
	}()
	if err := s.runEditor(ctx, editorPath, fields[1:], notesPath); err != nil {
		return "", err
	}
	data, err := afero.ReadFile(s.fs, notesPath)
	if err != nil {
		return "", fmt.Errorf("failed to read notes file: %w", err)
	}
	notes := StripComments(string(data))
	if notes == "" {
		return "", domain.ErrEmptyReleaseNotes
	}
	return notes, nil
}

// runEditor blocks in the foreground until the editor exits. There is no
// timeout: notes cannot be synthesized, so a stuck editor stalls the
// workflow by design of the workflow contract.
func (s *editorService) runEditor(ctx context.Context, editorPath string, extraArgs []string, notesPath string) error {
	args := append(append([]string{}, extraArgs...), notesPath)
	s.logger.Debug("exec", zap.String("binary", editorPath), zap.Strings("args", args))
	cmd := exec.CommandContext(ctx, editorPath, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s exited with an error: %w", editorPath, err)
	}
	return nil
}

// StripComments removes lines starting with the comment marker and trims
// the remainder.
func StripComments(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, NoteCommentMarker) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

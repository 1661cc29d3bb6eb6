package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gitx-cli/gitx/internal/domain"
	"github.com/gitx-cli/gitx/internal/repository"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// CloneOrchestrator clones a repository into a directory named after its
// owner segment. The destination is threaded explicitly to the clone call;
// the process working directory is never mutated.
type CloneOrchestrator struct {
	git    repository.GitClient
	fs     afero.Fs
	logger *zap.Logger
}

// NewCloneOrchestrator creates a new clone orchestrator.
func NewCloneOrchestrator(git repository.GitClient, fs afero.Fs, logger *zap.Logger) *CloneOrchestrator {
	return &CloneOrchestrator{git: git, fs: fs, logger: logger}
}

// Execute validates ref, derives the owner directory under root, and
// delegates the transfer to the wrapped tool. It returns the directory the
// clone ran in.
func (o *CloneOrchestrator) Execute(ctx context.Context, ref, root string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", fmt.Errorf("%w: usage: gitx clone <url> (%s)", domain.ErrMissingReference, domain.RefGuidance)
	}
	if err := o.git.Available(); err != nil {
		return "", fmt.Errorf("clone precondition failed: %w", err)
	}
	if err := o.git.LsRemote(ctx, ref); err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrUnreachableReference, ref, err)
	}
	owner, err := domain.OwnerSegment(ref)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, owner)
	// MkdirAll is idempotent: a pre-existing owner directory is fine.
	if err := o.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	o.logger.Info("cloning", zap.String("ref", ref), zap.String("dir", dir))
	if err := o.git.CloneInto(ctx, dir, ref); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCloneFailed, err)
	}
	return dir, nil
}

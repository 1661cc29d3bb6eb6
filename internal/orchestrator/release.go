package orchestrator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gitx-cli/gitx/internal/domain"
	"github.com/gitx-cli/gitx/internal/repository"
	"github.com/gitx-cli/gitx/internal/service"
	"github.com/gitx-cli/gitx/internal/usecase"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReleaseOrchestrator sequences the release workflow: resolve the target
// branch, compute the next version, collect notes, then publish behind an
// explicit confirmation gate. Steps are strictly sequential with no
// backward transitions; each is gated on success of the prior.
type ReleaseOrchestrator struct {
	git     repository.GitClient
	hosting repository.HostingClient
	editor  service.EditorService
	logger  *zap.Logger
	in      io.Reader
	out     io.Writer
	// lockPath guards against concurrent release runs in the same
	// repository; empty disables the guard.
	lockPath string
}

// NewReleaseOrchestrator creates a new release orchestrator. in and out are
// the interactive streams for the confirmation gate; progress and
// diagnostics go to the logger only, never to out.
func NewReleaseOrchestrator(
	git repository.GitClient,
	hosting repository.HostingClient,
	editor service.EditorService,
	logger *zap.Logger,
	in io.Reader,
	out io.Writer,
	lockPath string,
) *ReleaseOrchestrator {
	return &ReleaseOrchestrator{
		git:      git,
		hosting:  hosting,
		editor:   editor,
		logger:   logger,
		in:       in,
		out:      out,
		lockPath: lockPath,
	}
}

// Execute runs the complete release workflow. A user decline at the
// confirmation gate returns nil: it is a clean abort, not an error.
func (o *ReleaseOrchestrator) Execute(ctx context.Context, inc domain.Increment) error {
	logger := o.logger.With(zap.String("session", uuid.NewString()))
	// Preconditions, checked once before any state transition.
	if err := o.git.Available(); err != nil {
		return fmt.Errorf("release precondition failed: %w", err)
	}
	originURL, err := o.git.OriginURL()
	if err != nil {
		return fmt.Errorf("release precondition failed: %w", err)
	}
	if err := o.hosting.AuthStatus(ctx); err != nil {
		return fmt.Errorf("release precondition failed: %w", err)
	}
	if o.lockPath != "" {
		lock := flock.New(o.lockPath)
		locked, lockErr := lock.TryLock()
		if lockErr != nil {
			return fmt.Errorf("failed to acquire release lock: %w", lockErr)
		}
		if !locked {
			return fmt.Errorf("%w (lock %s)", domain.ErrReleaseInProgress, o.lockPath)
		}
		defer func() {
			if unlockErr := lock.Unlock(); unlockErr != nil {
				logger.Warn("failed to release lock", zap.Error(unlockErr))
			}
		}()
	}
	// Step 1: ResolveBranch
	branch, err := o.hosting.DefaultBranch(ctx)
	if err != nil {
		return err
	}
	logger.Info("resolved release target", zap.String("branch", branch))
	// Step 2: ComputeVersion
	uc := &usecase.CalculateVersionUseCase{Hosting: o.hosting}
	version, err := uc.Execute(ctx, inc)
	if err != nil {
		return fmt.Errorf("failed to compute version: %w", err)
	}
	logger.Info("computed next version",
		zap.String("increment", inc.String()),
		zap.String("version", version.String()))
	// Step 3: CollectNotes
	notes, err := o.editor.CollectNotes(ctx, version.String())
	if err != nil {
		return err
	}
	// Step 4: ConfirmAndPublish
	if !o.confirm(originURL, branch, version) {
		logger.Info("release cancelled by user")
		return nil
	}
	release := &domain.Release{
		Version:      version,
		Title:        version.String(),
		Notes:        notes,
		TargetBranch: branch,
	}
	if err := o.hosting.CreateRelease(ctx, release); err != nil {
		return err
	}
	fmt.Fprintf(o.out, "Created release %s targeting %s\n", version, branch)
	return nil
}

// confirm renders the release summary and reads the interactive response.
// Only "y" or "Y" proceed; anything else, including empty input or a closed
// stream, declines.
func (o *ReleaseOrchestrator) confirm(originURL, branch string, version *domain.Version) bool {
	highlight := color.New(color.FgCyan, color.Bold)
	fmt.Fprintf(o.out, "Release summary\n")
	fmt.Fprintf(o.out, "  repository:    %s\n", originURL)
	fmt.Fprintf(o.out, "  target branch: %s\n", highlight.Sprint(branch))
	fmt.Fprintf(o.out, "  version:       %s\n", highlight.Sprint(version.String()))
	fmt.Fprintf(o.out, "Create release %s? [y/N] ", version)
	answer, _ := bufio.NewReader(o.in).ReadString('\n')
	answer = strings.TrimSpace(answer)
	return answer == "y" || answer == "Y"
}

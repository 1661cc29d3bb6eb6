package repository

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/gitx-cli/gitx/internal/domain"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	// validTag matches git tag names the client is willing to pass on a
	// command line.
	validTag = regexp.MustCompile(`^[a-zA-Z0-9._/\-]+$`)
	// validBranch matches branch names the platform may report.
	validBranch = regexp.MustCompile(`^[a-zA-Z0-9._/\-]+$`)
)

// hostingClient implements HostingClient by shelling out to the gh CLI.
type hostingClient struct {
	binary string
	fs     afero.Fs
	logger *zap.Logger
}

// NewHostingClient creates a new HostingClient backed by the given binary.
func NewHostingClient(binary string, fs afero.Fs, logger *zap.Logger) HostingClient {
	return &hostingClient{binary: binary, fs: fs, logger: logger}
}

// executeCommand runs a gh invocation with timeout and captured streams.
func (h *hostingClient) executeCommand(
	ctx context.Context,
	timeout time.Duration,
	args ...string,
) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	h.logger.Debug("exec", zap.String("binary", h.binary), zap.Strings("args", args))
	cmd := exec.CommandContext(ctx, h.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("command timed out after %v", timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("command failed: %w (stderr: %s)", err, msg)
		}
		return nil, fmt.Errorf("command failed: %w", err)
	}
	return stdout.Bytes(), nil
}

// AuthStatus verifies the gh binary resolves and the session is
// authenticated.
func (h *hostingClient) AuthStatus(ctx context.Context) error {
	if _, err := exec.LookPath(h.binary); err != nil {
		return fmt.Errorf(
			"%s is not installed or not on PATH (see https://cli.github.com): %w", h.binary, err)
	}
	if _, err := h.executeCommand(ctx, DefaultQueryTimeout, "auth", "status"); err != nil {
		return fmt.Errorf("not authenticated against the hosting platform (run `%s auth login`): %w",
			h.binary, err)
	}
	return nil
}

// LatestReleaseTag queries the most recent release. Any failure reads as
// "no prior release".
func (h *hostingClient) LatestReleaseTag(ctx context.Context) (string, error) {
	output, err := h.executeCommand(ctx, DefaultQueryTimeout,
		"release", "list", "--limit", "1", "--json", "tagName", "--jq", ".[0].tagName")
	if err != nil {
		h.logger.Debug("release list query failed, treating as no prior release", zap.Error(err))
		return "", nil
	}
	tag := strings.TrimSpace(string(output))
	if tag == "" || tag == "null" {
		return "", nil
	}
	if !validTag.MatchString(tag) {
		h.logger.Debug("ignoring malformed release tag", zap.String("tag", tag))
		return "", nil
	}
	return tag, nil
}

// DefaultBranch resolves the default branch via `gh repo view`.
func (h *hostingClient) DefaultBranch(ctx context.Context) (string, error) {
	output, err := h.executeCommand(ctx, DefaultQueryTimeout,
		"repo", "view", "--json", "defaultBranchRef", "--jq", ".defaultBranchRef.name")
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrBranchResolutionFailed, err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" || branch == "null" || !validBranch.MatchString(branch) {
		return "", fmt.Errorf("%w: platform reported %q", domain.ErrBranchResolutionFailed, branch)
	}
	return branch, nil
}

// CreateRelease publishes the release, handing the notes over through a
// scoped temporary file that is removed when the call returns.
func (h *hostingClient) CreateRelease(ctx context.Context, release *domain.Release) error {
	tag := release.Version.String()
	if !validTag.MatchString(tag) {
		return fmt.Errorf("invalid tag format: %s", tag)
	}
	if !validBranch.MatchString(release.TargetBranch) {
		return fmt.Errorf("invalid target branch: %s", release.TargetBranch)
	}
	notesFile, err := afero.TempFile(h.fs, "", "gitx-release-*.md")
	if err != nil {
		return fmt.Errorf("failed to create notes file: %w", err)
	}
	defer func() {
		if removeErr := h.fs.Remove(notesFile.Name()); removeErr != nil {
			h.logger.Warn("failed to remove notes file", zap.Error(removeErr))
		}
	}()
	if _, err := notesFile.WriteString(release.Notes); err != nil {
		notesFile.Close()
		return fmt.Errorf("failed to write notes file: %w", err)
	}
	if err := notesFile.Close(); err != nil {
		return fmt.Errorf("failed to close notes file: %w", err)
	}
	_, err = h.executeCommand(ctx, DefaultPublishTimeout,
		"release", "create", tag,
		"--title", release.Title,
		"--target", release.TargetBranch,
		"--notes-file", notesFile.Name())
	if err != nil {
		return fmt.Errorf("release creation failed: %w", err)
	}
	return nil
}
